package ports

import (
	"context"

	"frosty/internal/core/domain/model/checkout"
)

// CheckoutOrderGateway is the persistence contract for checkout orders.
type CheckoutOrderGateway interface {
	Create(ctx context.Context, order *checkout.Order) error

	// Update returns *errs.ObjectNotFoundError when the order does not exist.
	Update(ctx context.Context, order *checkout.Order) error

	// FindByID returns *errs.ObjectNotFoundError when the order is missing.
	FindByID(ctx context.Context, id checkout.OrderID) (*checkout.Order, error)

	DeleteByID(ctx context.Context, id checkout.OrderID) error

	// FindAll returns one page of orders. Terms match the customer name.
	FindAll(ctx context.Context, query SearchQuery) (Pagination[*checkout.Order], error)

	ExistsByIDs(ctx context.Context, ids []checkout.OrderID) ([]checkout.OrderID, error)
}
