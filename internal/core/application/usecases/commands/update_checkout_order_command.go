package commands

import (
	"errors"
	"slices"

	"frosty/internal/core/domain/model/checkout"
	"frosty/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateCheckoutOrderCommandIsNotConstructed = errors.New(
	"UpdateCheckoutOrderCommand must be created via NewUpdateCheckoutOrderCommand constructor",
)

// UpdateCheckoutOrderCommand replaces the amount, the items and the open state of a
// checkout order. Status only matters when the order is closed by the update.
type UpdateCheckoutOrderCommand struct { //nolint:recvcheck //using for validation
	orderID checkout.OrderID
	amount  *decimal.Decimal
	items   []CheckoutItem
	open    bool
	status  checkout.Status

	guard guard.ConstructorGuard
}

func NewUpdateCheckoutOrderCommand(
	orderID string,
	amount *decimal.Decimal,
	items []CheckoutItem,
	open bool,
	status string,
) (UpdateCheckoutOrderCommand, error) {
	command := UpdateCheckoutOrderCommand{
		amount: amount,
		items:  slices.Clone(items),
		open:   open,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setStatus(status),
	); err != nil {
		return UpdateCheckoutOrderCommand{}, err
	}

	return command, nil
}

func (c UpdateCheckoutOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCheckoutOrderCommandIsNotConstructed)
}

func (c UpdateCheckoutOrderCommand) OrderID() checkout.OrderID {
	return c.orderID
}

func (c UpdateCheckoutOrderCommand) Amount() *decimal.Decimal {
	return c.amount
}

func (c UpdateCheckoutOrderCommand) Items() []CheckoutItem {
	return slices.Clone(c.items)
}

func (c UpdateCheckoutOrderCommand) IsOpen() bool {
	return c.open
}

func (c UpdateCheckoutOrderCommand) Status() checkout.Status {
	return c.status
}

func (c *UpdateCheckoutOrderCommand) setOrderID(value string) error {
	id, err := checkout.OrderIDFrom(value)
	if err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *UpdateCheckoutOrderCommand) setStatus(value string) error {
	status, err := parseStatus(value)
	if err != nil {
		return err
	}

	c.status = status
	return nil
}
