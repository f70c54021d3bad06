package ports

import (
	"context"
	"time"

	"frosty/internal/core/domain/model/product"
)

// ProductGateway is the persistence contract for products.
type ProductGateway interface {
	Create(ctx context.Context, product *product.Product) error

	// Update returns *errs.ObjectNotFoundError when the product does not exist.
	Update(ctx context.Context, product *product.Product) error

	// FindByID returns *errs.ObjectNotFoundError when the product is missing.
	FindByID(ctx context.Context, id product.ID) (*product.Product, error)

	DeleteByID(ctx context.Context, id product.ID) error

	// FindAll returns one page of products. Terms match the name and the description.
	FindAll(ctx context.Context, query SearchQuery) (Pagination[*product.Product], error)

	// ExistsByIDs returns the subset of ids that are stored.
	ExistsByIDs(ctx context.Context, ids []product.ID) ([]product.ID, error)

	// FindActiveExpiredAt returns at most limit active products whose expiration
	// date is not after at.
	FindActiveExpiredAt(ctx context.Context, at time.Time, limit int) ([]*product.Product, error)
}
