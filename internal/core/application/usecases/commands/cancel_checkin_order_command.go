package commands

import (
	"errors"

	"frosty/internal/core/domain/model/checkin"
	"frosty/internal/pkg/guard"
)

var ErrCancelCheckinOrderCommandIsNotConstructed = errors.New(
	"CancelCheckinOrderCommand must be created via NewCancelCheckinOrderCommand constructor",
)

// CancelCheckinOrderCommand marks a check-in order as canceled.
type CancelCheckinOrderCommand struct { //nolint:recvcheck //using for validation
	orderID checkin.OrderID

	guard guard.ConstructorGuard
}

func NewCancelCheckinOrderCommand(orderID string) (CancelCheckinOrderCommand, error) {
	id, err := checkin.OrderIDFrom(orderID)
	if err != nil {
		return CancelCheckinOrderCommand{}, err
	}

	return CancelCheckinOrderCommand{
		orderID: id,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CancelCheckinOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelCheckinOrderCommandIsNotConstructed)
}

func (c CancelCheckinOrderCommand) OrderID() checkin.OrderID {
	return c.orderID
}
