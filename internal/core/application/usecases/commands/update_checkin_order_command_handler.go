package commands

import (
	"context"

	"frosty/internal/core/domain/model/kernel"
)

// UpdateCheckinOrderCommandHandler loads a check-in order, applies the update and
// stores it. A failed update leaves the stored order untouched.
//
// Example:
//
//	cmd, _ := NewUpdateCheckinOrderCommand(orderID, items, false)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err // not found, unknown product or *validation.NotificationError
//	}
type UpdateCheckinOrderCommandHandler struct {
	uowFactory CheckinUoWFactory
	supplier   kernel.Supplier
}

// NewUpdateCheckinOrderCommandHandler creates a handler that builds new items and
// stamps the update with supplier.
func NewUpdateCheckinOrderCommandHandler(
	uowFactory CheckinUoWFactory,
	supplier kernel.Supplier,
) UpdateCheckinOrderCommandHandler {
	return UpdateCheckinOrderCommandHandler{
		uowFactory: uowFactory,
		supplier:   supplier,
	}
}

// Handle loads the order, replaces its items and cancellation state, checks the
// referenced products and stores the result in one transaction.
func (h *UpdateCheckinOrderCommandHandler) Handle(ctx context.Context, cmd UpdateCheckinOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items, err := checkinItems(h.supplier, cmd.Items())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = order.Update(h.supplier, items, cmd.IsCanceled()); err != nil {
		return err
	}

	if err = requireProducts(ctx, uow.ProductGateway(), checkinProductIDs(order.Items())); err != nil {
		return err
	}

	if err = orders.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
