package commands

import (
	"errors"
	"slices"

	"frosty/internal/core/domain/model/checkin"
	"frosty/internal/pkg/guard"
)

var ErrUpdateCheckinOrderCommandIsNotConstructed = errors.New(
	"UpdateCheckinOrderCommand must be created via NewUpdateCheckinOrderCommand constructor",
)

// UpdateCheckinOrderCommand replaces the items and the canceled flag of a check-in order.
type UpdateCheckinOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  checkin.OrderID
	items    []CheckinItem
	canceled bool

	guard guard.ConstructorGuard
}

// NewUpdateCheckinOrderCommand parses orderID and keeps the items as given.
func NewUpdateCheckinOrderCommand(orderID string, items []CheckinItem, canceled bool) (UpdateCheckinOrderCommand, error) {
	command := UpdateCheckinOrderCommand{
		items:    slices.Clone(items),
		canceled: canceled,
		guard:    guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return UpdateCheckinOrderCommand{}, err
	}

	return command, nil
}

func (c UpdateCheckinOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCheckinOrderCommandIsNotConstructed)
}

func (c UpdateCheckinOrderCommand) OrderID() checkin.OrderID {
	return c.orderID
}

func (c UpdateCheckinOrderCommand) Items() []CheckinItem {
	return slices.Clone(c.items)
}

func (c UpdateCheckinOrderCommand) IsCanceled() bool {
	return c.canceled
}

func (c *UpdateCheckinOrderCommand) setOrderID(value string) error {
	id, err := checkin.OrderIDFrom(value)
	if err != nil {
		return err
	}

	c.orderID = id
	return nil
}
