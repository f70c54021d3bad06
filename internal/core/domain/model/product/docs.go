// Package product provides the Product aggregate: a sellable item with a price, an
// optional stock level and an optional expiration date.
//
// Key business rules:
//   - A new product has a 3 to 255 character name and a positive price
//   - deletedAt is stamped once when the product is deactivated and cleared when it
//     is activated again
//   - Stored products are trusted: RestoreProduct does not re-run the name and price
//     rules, and neither do Update, Activate and Deactivate. Callers that persist
//     an updated product check it with validation.Check first.
package product
