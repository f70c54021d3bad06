package commands

import (
	"errors"

	"frosty/internal/core/domain/model/checkout"
	"frosty/internal/pkg/guard"
)

var ErrOpenCheckoutOrderCommandIsNotConstructed = errors.New(
	"OpenCheckoutOrderCommand must be created via NewOpenCheckoutOrderCommand constructor",
)

// OpenCheckoutOrderCommand reopens a closed checkout order as PENDING.
type OpenCheckoutOrderCommand struct { //nolint:recvcheck //using for validation
	orderID checkout.OrderID

	guard guard.ConstructorGuard
}

func NewOpenCheckoutOrderCommand(orderID string) (OpenCheckoutOrderCommand, error) {
	id, err := checkout.OrderIDFrom(orderID)
	if err != nil {
		return OpenCheckoutOrderCommand{}, err
	}

	return OpenCheckoutOrderCommand{
		orderID: id,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c OpenCheckoutOrderCommand) Validate() error {
	return c.guard.Validate(ErrOpenCheckoutOrderCommandIsNotConstructed)
}

func (c OpenCheckoutOrderCommand) OrderID() checkout.OrderID {
	return c.orderID
}
