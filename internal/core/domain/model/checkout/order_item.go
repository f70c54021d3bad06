package checkout

import (
	"errors"
	"strings"

	"frosty/internal/core/domain/model/kernel"
	"frosty/internal/pkg/errs"
	"frosty/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem or RestoreOrderItem")

// OrderItem is one line of a checkout order, compared by id only.
type OrderItem struct {
	id        string
	price     decimal.Decimal
	quantity  int
	productID string

	guard guard.ConstructorGuard
}

// NewOrderItem creates an item with a generated id.
func NewOrderItem(ids kernel.IDGenerator, price decimal.Decimal, quantity int, productID string) (OrderItem, error) {
	return RestoreOrderItem(ids.NewID(), price, quantity, productID)
}

// RestoreOrderItem creates an item with a known id.
func RestoreOrderItem(id string, price decimal.Decimal, quantity int, productID string) (OrderItem, error) {
	if strings.TrimSpace(id) == "" {
		return OrderItem{}, errs.NewValueIsRequiredError("id")
	}

	return OrderItem{
		id:        id,
		price:     price,
		quantity:  quantity,
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (i OrderItem) Validate() error {
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

func (i OrderItem) IsEqual(other OrderItem) bool {
	return i.id == other.id
}

func (i OrderItem) Total() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i OrderItem) ID() string {
	return i.id
}

func (i OrderItem) Price() decimal.Decimal {
	return i.price
}

func (i OrderItem) Quantity() int {
	return i.quantity
}

func (i OrderItem) ProductID() string {
	return i.productID
}
