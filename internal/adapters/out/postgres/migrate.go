package postgres

import (
	"frosty/internal/adapters/out/postgres/checkinrepo"
	"frosty/internal/adapters/out/postgres/checkoutrepo"
	"frosty/internal/adapters/out/postgres/productrepo"

	"gorm.io/gorm"
)

// Models lists every table owned by the service, parents before children.
func Models() []any {
	return []any{
		&productrepo.ProductDTO{},
		&checkinrepo.OrderDTO{},
		&checkinrepo.OrderItemDTO{},
		&checkoutrepo.OrderDTO{},
		&checkoutrepo.OrderItemDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
