package commands

import (
	"errors"

	"frosty/internal/core/domain/model/checkin"
	"frosty/internal/pkg/guard"
)

var ErrDeleteCheckinOrderCommandIsNotConstructed = errors.New(
	"DeleteCheckinOrderCommand must be created via NewDeleteCheckinOrderCommand constructor",
)

// DeleteCheckinOrderCommand removes a check-in order and its items.
type DeleteCheckinOrderCommand struct { //nolint:recvcheck //using for validation
	orderID checkin.OrderID

	guard guard.ConstructorGuard
}

func NewDeleteCheckinOrderCommand(orderID string) (DeleteCheckinOrderCommand, error) {
	id, err := checkin.OrderIDFrom(orderID)
	if err != nil {
		return DeleteCheckinOrderCommand{}, err
	}

	return DeleteCheckinOrderCommand{
		orderID: id,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteCheckinOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCheckinOrderCommandIsNotConstructed)
}

func (c DeleteCheckinOrderCommand) OrderID() checkin.OrderID {
	return c.orderID
}
