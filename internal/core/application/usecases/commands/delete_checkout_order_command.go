package commands

import (
	"errors"

	"frosty/internal/core/domain/model/checkout"
	"frosty/internal/pkg/guard"
)

var ErrDeleteCheckoutOrderCommandIsNotConstructed = errors.New(
	"DeleteCheckoutOrderCommand must be created via NewDeleteCheckoutOrderCommand constructor",
)

type DeleteCheckoutOrderCommand struct { //nolint:recvcheck //using for validation
	orderID checkout.OrderID

	guard guard.ConstructorGuard
}

func NewDeleteCheckoutOrderCommand(orderID string) (DeleteCheckoutOrderCommand, error) {
	id, err := checkout.OrderIDFrom(orderID)
	if err != nil {
		return DeleteCheckoutOrderCommand{}, err
	}

	return DeleteCheckoutOrderCommand{
		orderID: id,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteCheckoutOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCheckoutOrderCommandIsNotConstructed)
}

func (c DeleteCheckoutOrderCommand) OrderID() checkout.OrderID {
	return c.orderID
}
