package commands

import (
	"errors"

	"frosty/internal/core/domain/model/checkout"
	"frosty/internal/pkg/guard"
)

var ErrCloseCheckoutOrderCommandIsNotConstructed = errors.New(
	"CloseCheckoutOrderCommand must be created via NewCloseCheckoutOrderCommand constructor",
)

// CloseCheckoutOrderCommand closes a checkout order with a final status.
type CloseCheckoutOrderCommand struct { //nolint:recvcheck //using for validation
	orderID checkout.OrderID
	status  checkout.Status

	guard guard.ConstructorGuard
}

func NewCloseCheckoutOrderCommand(orderID string, status string) (CloseCheckoutOrderCommand, error) {
	command := CloseCheckoutOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	id, idErr := checkout.OrderIDFrom(orderID)
	parsed, statusErr := parseStatus(status)
	if err := errors.Join(idErr, statusErr); err != nil {
		return CloseCheckoutOrderCommand{}, err
	}

	command.orderID = id
	command.status = parsed
	return command, nil
}

func (c CloseCheckoutOrderCommand) Validate() error {
	return c.guard.Validate(ErrCloseCheckoutOrderCommandIsNotConstructed)
}

func (c CloseCheckoutOrderCommand) OrderID() checkout.OrderID {
	return c.orderID
}

func (c CloseCheckoutOrderCommand) Status() checkout.Status {
	return c.status
}
