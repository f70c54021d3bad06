// Package ports defines the gateway interfaces the application layer uses to store
// and load aggregates, and the unit of work that binds them to one transaction.
package ports

import (
	"context"

	"frosty/internal/core/domain/model/checkin"
)

// CheckinOrderGateway is the persistence contract for check-in orders.
type CheckinOrderGateway interface {
	// Create stores a new order with its items.
	Create(ctx context.Context, order *checkin.Order) error

	// Update replaces the stored state of an existing order, items included.
	// Returns *errs.ObjectNotFoundError when the order does not exist.
	Update(ctx context.Context, order *checkin.Order) error

	// FindByID loads an order. Returns *errs.ObjectNotFoundError when it is missing.
	FindByID(ctx context.Context, id checkin.OrderID) (*checkin.Order, error)

	// DeleteByID removes an order and its items. Deleting a missing order is not an error.
	DeleteByID(ctx context.Context, id checkin.OrderID) error

	// FindAll returns one page of orders. Terms match item names.
	FindAll(ctx context.Context, query SearchQuery) (Pagination[*checkin.Order], error)

	// ExistsByIDs returns the subset of ids that are stored.
	ExistsByIDs(ctx context.Context, ids []checkin.OrderID) ([]checkin.OrderID, error)
}
