package queries

import (
	"errors"
	"time"

	"frosty/internal/core/domain/model/product"
	"frosty/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetProductQueryIsNotConstructed = errors.New(
	"GetProductQuery must be created via NewGetProductQuery constructor",
)

type GetProductQuery struct {
	productID product.ID

	guard guard.ConstructorGuard
}

func NewGetProductQuery(productID string) (GetProductQuery, error) {
	id, err := product.IDFrom(productID)
	if err != nil {
		return GetProductQuery{}, err
	}

	return GetProductQuery{productID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

func (q GetProductQuery) ProductID() product.ID {
	return q.productID
}

// ProductResponse is the read model of a product.
type ProductResponse struct {
	ID             string           `json:"id"`
	Name           *string          `json:"name"`
	Description    *string          `json:"description"`
	Active         bool             `json:"active"`
	Price          *decimal.Decimal `json:"price"`
	ExpirationDate *time.Time       `json:"expirationDate"`
	Stock          *int             `json:"stock"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
	DeletedAt      *time.Time       `json:"deletedAt"`
}

func newProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID().String(),
		Name:           p.Name(),
		Description:    p.Description(),
		Active:         p.IsActive(),
		Price:          p.Price(),
		ExpirationDate: p.ExpirationDate(),
		Stock:          p.Stock(),
		CreatedAt:      p.CreatedAt(),
		UpdatedAt:      p.UpdatedAt(),
		DeletedAt:      p.DeletedAt(),
	}
}
