package commands

import (
	"context"

	"frosty/internal/core/domain/model/kernel"
)

// CancelCheckinOrderCommandHandler cancels a stored check-in order. Canceling an
// already canceled order keeps its original deletion time.
type CancelCheckinOrderCommandHandler struct {
	uowFactory CheckinUoWFactory
	clock      kernel.Clock
}

// NewCancelCheckinOrderCommandHandler creates a handler that stamps the cancellation
// with clock.
func NewCancelCheckinOrderCommandHandler(uowFactory CheckinUoWFactory, clock kernel.Clock) CancelCheckinOrderCommandHandler {
	return CancelCheckinOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle loads the order, cancels it and stores it in one transaction.
// A missing order yields *errs.ObjectNotFoundError.
func (h *CancelCheckinOrderCommandHandler) Handle(ctx context.Context, cmd CancelCheckinOrderCommand) error {
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

	orders := uow.CheckinOrderGateway()
	order, err := orders.FindByID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	order.Cancel(h.clock)

	if err = orders.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
