package commands

import (
	"context"

	"frosty/internal/core/domain/model/kernel"
)

// OpenCheckoutOrderCommandHandler reopens a checkout order: it becomes PENDING and
// loses its deletion time. Reopening is never rejected by validation.
type OpenCheckoutOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	clock      kernel.Clock
}

// NewOpenCheckoutOrderCommandHandler creates a handler that stamps the change with clock.
func NewOpenCheckoutOrderCommandHandler(uowFactory CheckoutUoWFactory, clock kernel.Clock) OpenCheckoutOrderCommandHandler {
	return OpenCheckoutOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle loads the order, reopens it and stores it in one transaction.
// A missing order yields *errs.ObjectNotFoundError.
func (h *OpenCheckoutOrderCommandHandler) Handle(ctx context.Context, cmd OpenCheckoutOrderCommand) error {
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

	order.Open(h.clock)

	if err = orders.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
