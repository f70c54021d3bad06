package checkin

import (
	"errors"
	"strings"

	"frosty/internal/core/domain/model/kernel"
	"frosty/internal/pkg/errs"
	"frosty/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrOrderItemIsNotConstructed is returned when an OrderItem was not built by its constructors.
var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem or RestoreOrderItem")

// OrderItem is one line of a check-in order. It is immutable and compared by id only:
// two items with the same price and quantity but different ids are different items.
//
// Constructors only reject a missing id. Name, price, quantity and product rules are
// enforced by the owning Order, which reports them with the item's position.
type OrderItem struct {
	id        string
	name      string
	price     decimal.Decimal
	quantity  int
	productID string

	guard guard.ConstructorGuard
}

// NewOrderItem creates an item with a generated id.
func NewOrderItem(
	ids kernel.IDGenerator,
	name string,
	price decimal.Decimal,
	quantity int,
	productID string,
) (OrderItem, error) {
	return RestoreOrderItem(ids.NewID(), name, price, quantity, productID)
}

// RestoreOrderItem creates an item with a known id, e.g. when loading it from storage.
func RestoreOrderItem(
	id string,
	name string,
	price decimal.Decimal,
	quantity int,
	productID string,
) (OrderItem, error) {
	if strings.TrimSpace(id) == "" {
		return OrderItem{}, errs.NewValueIsRequiredError("id")
	}

	return OrderItem{
		id:        id,
		name:      name,
		price:     price,
		quantity:  quantity,
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the item was built by one of its constructors.
func (i OrderItem) Validate() error {
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

// IsEqual compares two items by id.
func (i OrderItem) IsEqual(other OrderItem) bool {
	return i.id == other.id
}

// Total returns price × quantity.
func (i OrderItem) Total() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i OrderItem) ID() string {
	return i.id
}

func (i OrderItem) Name() string {
	return i.name
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
