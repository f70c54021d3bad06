// Package checkin provides the CheckinOrder aggregate: an order that brings products
// into stock, made of priced line items and cancelable as a whole.
//
// The package includes:
//   - Order: the aggregate root with its cancel/uncancel lifecycle
//   - OrderItem: the immutable line item value object, equal by id only
//   - OrderID: the identifier of check-in orders
//
// Key business rules:
//   - An order always holds at least one item
//   - Every item has a 3 to 255 character name, a positive price, a positive
//     quantity and a product reference
//   - deletedAt is stamped once when the order is canceled and cleared when it is
//     uncanceled
//   - Every state-changing operation validates a staged copy and commits it only
//     when no constraint is violated, reporting all violations at once
package checkin
