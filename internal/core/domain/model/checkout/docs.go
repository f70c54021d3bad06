// Package checkout provides the CheckoutOrder aggregate: an order that takes products
// out to a customer and is settled with a final status.
//
// The package includes:
//   - Order: the aggregate root with its open/close lifecycle
//   - OrderItem: the immutable line item value object, equal by id only
//   - Status: the settlement state (PENDING, COMPLETED, ERROR)
//   - OrderID: the identifier of checkout orders
//
// Key business rules:
//   - An order always holds at least one item and a positive amount
//   - The amount is set by the caller and is never derived from the items
//   - An open order is PENDING; a closed order is COMPLETED or ERROR
//   - deletedAt is stamped once when the order is closed and cleared when it is
//     reopened
//
// Lifecycle:
//
//	         Close(COMPLETED | ERROR)
//	  open ─────────────────────────────> closed
//	PENDING <───────────────────────────  COMPLETED | ERROR
//	                  Open()
package checkout
