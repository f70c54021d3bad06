package commands

import "context"

// DeleteCheckinOrderCommandHandler deletes a check-in order. Deleting a missing order succeeds.
type DeleteCheckinOrderCommandHandler struct {
	uowFactory CheckinUoWFactory
}

// NewDeleteCheckinOrderCommandHandler creates a handler for check-in order removal.
func NewDeleteCheckinOrderCommandHandler(uowFactory CheckinUoWFactory) DeleteCheckinOrderCommandHandler {
	return DeleteCheckinOrderCommandHandler{uowFactory: uowFactory}
}

// Handle removes the order and its items in one transaction.
func (h *DeleteCheckinOrderCommandHandler) Handle(ctx context.Context, cmd DeleteCheckinOrderCommand) error {
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

	if err := uow.CheckinOrderGateway().DeleteByID(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
