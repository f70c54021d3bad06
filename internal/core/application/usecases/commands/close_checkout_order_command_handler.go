package commands

import (
	"context"

	"frosty/internal/core/domain/model/kernel"
)

// CloseCheckoutOrderCommandHandler closes a stored checkout order. Closing with
// PENDING fails validation and leaves the order open.
//
// Example:
//
//	cmd, _ := NewCloseCheckoutOrderCommand(orderID, "COMPLETED")
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err // *validation.NotificationError for PENDING
//	}
type CloseCheckoutOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	clock      kernel.Clock
}

// NewCloseCheckoutOrderCommandHandler creates a handler for closing checkout orders.
func NewCloseCheckoutOrderCommandHandler(uowFactory CheckoutUoWFactory, clock kernel.Clock) CloseCheckoutOrderCommandHandler {
	return CloseCheckoutOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle loads the order, closes it with the command's status and stores it.
// Nothing is written when the closed order would be invalid.
func (h *CloseCheckoutOrderCommandHandler) Handle(ctx context.Context, cmd CloseCheckoutOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.CheckoutOrderGateway()
	order, err := orders.FindByID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = order.Close(h.clock, cmd.Status()); err != nil {
		return err
	}

	if err = orders.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
