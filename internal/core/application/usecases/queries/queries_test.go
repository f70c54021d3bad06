package queries_test

import (
	"testing"
	"time"

	"frosty/internal/adapters/out/postgres"
	"frosty/internal/core/domain/model/checkin"
	"frosty/internal/core/domain/model/checkout"
	"frosty/internal/core/domain/model/kernel"
	"frosty/internal/core/domain/model/product"
	"frosty/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fixture struct {
	uow      ports.UnitOfWork
	supplier *kernel.SequenceSupplier
}

// setup returns gateways bound to a fresh in-memory database.
func setup(t *testing.T) fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, postgres.Migrate(db))

	return fixture{
		uow:      postgres.NewGormUnitOfWorkFactory(db).Create(),
		supplier: kernel.NewSequenceSupplier(time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC), time.Second),
	}
}

func (f fixture) storeProduct(t *testing.T, name string, price string) *product.Product {
	t.Helper()

	p := decimal.RequireFromString(price)
	created, err := product.NewProduct(f.supplier, product.Attributes{Name: &name, Price: &p, Active: true})
	require.NoError(t, err)
	require.NoError(t, f.uow.ProductGateway().Create(t.Context(), created))
	return created
}

func (f fixture) storeCheckinOrder(t *testing.T, itemName string, productID string) *checkin.Order {
	t.Helper()

	item, err := checkin.NewOrderItem(f.supplier, itemName, decimal.RequireFromString("3.50"), 2, productID)
	require.NoError(t, err)
	order, err := checkin.NewOrder(f.supplier, []checkin.OrderItem{item}, false)
	require.NoError(t, err)
	require.NoError(t, f.uow.CheckinOrderGateway().Create(t.Context(), order))
	return order
}

func (f fixture) storeCheckoutOrder(t *testing.T, customer string, productID string) *checkout.Order {
	t.Helper()

	item, err := checkout.NewOrderItem(f.supplier, decimal.RequireFromString("10.75"), 2, productID)
	require.NoError(t, err)
	amount := decimal.RequireFromString("21.50")
	order, err := checkout.NewOrder(f.supplier, &amount, []checkout.OrderItem{item}, true, checkout.Pending, &customer)
	require.NoError(t, err)
	require.NoError(t, f.uow.CheckoutOrderGateway().Create(t.Context(), order))
	return order
}
