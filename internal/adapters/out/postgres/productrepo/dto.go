package productrepo

import (
	"time"

	"frosty/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductDTO is the row of a product. Stored products are trusted, so name and
// price are nullable here as they are in the aggregate.
type ProductDTO struct {
	ID             string              `gorm:"type:varchar(64);primaryKey"`
	Name           *string             `gorm:"type:varchar(255)"`
	Description    *string             `gorm:"type:text"`
	Active         bool                `gorm:"not null;index"`
	Price          decimal.NullDecimal `gorm:"type:numeric"`
	ExpirationDate *time.Time          `gorm:"index"`
	Stock          *int
	CreatedAt      time.Time  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt      time.Time  `gorm:"not null;autoUpdateTime:false"`
	DeletedAt      *time.Time `gorm:"index"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	var price decimal.NullDecimal
	if v := p.Price(); v != nil {
		price = decimal.NewNullDecimal(*v)
	}

	return ProductDTO{
		ID:             p.ID().String(),
		Name:           p.Name(),
		Description:    p.Description(),
		Active:         p.IsActive(),
		Price:          price,
		ExpirationDate: p.ExpirationDate(),
		Stock:          p.Stock(),
		CreatedAt:      p.CreatedAt(),
		UpdatedAt:      p.UpdatedAt(),
		DeletedAt:      p.DeletedAt(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := product.IDFrom(dto.ID)
	if err != nil {
		return nil, err
	}

	var price *decimal.Decimal
	if dto.Price.Valid {
		price = &dto.Price.Decimal
	}

	return product.RestoreProduct(
		id,
		dto.Name,
		dto.Description,
		dto.Active,
		price,
		utc(dto.ExpirationDate),
		dto.Stock,
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
		utc(dto.DeletedAt),
	)
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
