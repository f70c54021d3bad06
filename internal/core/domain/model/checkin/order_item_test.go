package checkin_test

import (
	"testing"
	"time"

	"frosty/internal/core/domain/model/checkin"
	"frosty/internal/core/domain/model/kernel"
	"frosty/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestoreOrderItem(t *testing.T) {
	t.Run("should create item with all fields", func(t *testing.T) {
		item, err := checkin.RestoreOrderItem("123", "Item 1", decimal.RequireFromString("10.75"), 1, "123")

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "123", item.ID())
		assert.Equal(t, "Item 1", item.Name())
		assert.True(t, decimal.RequireFromString("10.75").Equal(item.Price()))
		assert.Equal(t, 1, item.Quantity())
		assert.Equal(t, "123", item.ProductID())
	})

	t.Run("should fail without id", func(t *testing.T) {
		item, err := checkin.RestoreOrderItem(" ", "Item 1", decimal.RequireFromString("10.75"), 1, "123")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, checkin.ErrOrderItemIsNotConstructed, item.Validate())
	})

	t.Run("should defer business rules to the order", func(t *testing.T) {
		_, err := checkin.RestoreOrderItem("123", "", decimal.Zero, -1, "")

		require.NoError(t, err)
	})
}

func TestNewOrderItem(t *testing.T) {
	supplier := kernel.NewSequenceSupplier(time.Now(), time.Second)

	item, err := checkin.NewOrderItem(supplier, "Item 1", decimal.RequireFromString("2.50"), 3, "p-1")

	require.NoError(t, err)
	assert.NotEmpty(t, item.ID())
	assert.True(t, decimal.RequireFromString("7.50").Equal(item.Total()))
}

func TestOrderItem_IsEqual(t *testing.T) {
	price := decimal.RequireFromString("10.75")

	t.Run("should be equal by id regardless of content", func(t *testing.T) {
		a, _ := checkin.RestoreOrderItem("1", "Item A", price, 1, "p-1")
		b, _ := checkin.RestoreOrderItem("1", "Item B", price.Add(decimal.NewFromInt(1)), 9, "p-2")

		assert.True(t, a.IsEqual(b))
	})

	t.Run("should differ by id even with identical content", func(t *testing.T) {
		a, _ := checkin.RestoreOrderItem("1", "Item A", price, 1, "p-1")
		b, _ := checkin.RestoreOrderItem("2", "Item A", price, 1, "p-1")

		assert.False(t, a.IsEqual(b))
	})
}
