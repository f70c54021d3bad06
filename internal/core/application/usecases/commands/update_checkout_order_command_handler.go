package commands

import (
	"context"

	"frosty/internal/core/domain/model/kernel"
)

// UpdateCheckoutOrderCommandHandler replaces the amount, items and open state of a
// checkout order.
//
// Example:
//
//	amount := decimal.RequireFromString("21.50")
//	cmd, _ := NewUpdateCheckoutOrderCommand(orderID, &amount, items, false, "COMPLETED")
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
//	// the order is closed with status COMPLETED
type UpdateCheckoutOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	supplier   kernel.Supplier
}

// NewUpdateCheckoutOrderCommandHandler creates a handler that builds new items and
// stamps the update with supplier.
func NewUpdateCheckoutOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	supplier kernel.Supplier,
) UpdateCheckoutOrderCommandHandler {
	return UpdateCheckoutOrderCommandHandler{
		uowFactory: uowFactory,
		supplier:   supplier,
	}
}

// Handle applies the update to the stored order. When the updated order would be
// invalid nothing is written and the *validation.NotificationError is returned.
func (h *UpdateCheckoutOrderCommandHandler) Handle(ctx context.Context, cmd UpdateCheckoutOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items, err := checkoutItems(h.supplier, cmd.Items())
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

	orders := uow.CheckoutOrderGateway()
	order, err := orders.FindByID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = order.Update(h.supplier, cmd.Amount(), items, cmd.IsOpen(), cmd.Status()); err != nil {
		return err
	}

	if err = requireProducts(ctx, uow.ProductGateway(), checkoutProductIDs(order.Items())); err != nil {
		return err
	}

	if err = orders.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
