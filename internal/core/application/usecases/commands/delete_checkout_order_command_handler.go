package commands

import "context"

// DeleteCheckoutOrderCommandHandler deletes a checkout order. Deleting a missing order succeeds.
type DeleteCheckoutOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewDeleteCheckoutOrderCommandHandler creates a handler for checkout order removal.
func NewDeleteCheckoutOrderCommandHandler(uowFactory CheckoutUoWFactory) DeleteCheckoutOrderCommandHandler {
	return DeleteCheckoutOrderCommandHandler{uowFactory: uowFactory}
}

// Handle removes the order and its items in one transaction.
func (h *DeleteCheckoutOrderCommandHandler) Handle(ctx context.Context, cmd DeleteCheckoutOrderCommand) error {
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

	if err := uow.CheckoutOrderGateway().DeleteByID(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
