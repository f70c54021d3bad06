// Package queries contains read operations for retrieving system state.
// Queries return read models shaped for the HTTP API and never change stored data.
package queries

import (
	"context"

	"frosty/internal/core/domain/model/checkin"
	"frosty/internal/core/domain/model/checkout"
	"frosty/internal/core/domain/model/product"
	"frosty/internal/core/ports"
)

// Read-side subsets of the gateways.
type (
	CheckinOrderReader interface {
		FindByID(ctx context.Context, id checkin.OrderID) (*checkin.Order, error)
		FindAll(ctx context.Context, query ports.SearchQuery) (ports.Pagination[*checkin.Order], error)
	}

	CheckoutOrderReader interface {
		FindByID(ctx context.Context, id checkout.OrderID) (*checkout.Order, error)
		FindAll(ctx context.Context, query ports.SearchQuery) (ports.Pagination[*checkout.Order], error)
	}

	ProductReader interface {
		FindByID(ctx context.Context, id product.ID) (*product.Product, error)
		FindAll(ctx context.Context, query ports.SearchQuery) (ports.Pagination[*product.Product], error)
	}
)
