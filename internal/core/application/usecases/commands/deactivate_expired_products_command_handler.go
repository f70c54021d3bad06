package commands

import (
	"context"

	"frosty/internal/core/domain/model/kernel"
)

// DeactivateExpiredProductsCommandHandler deactivates one batch of expired products
// in a single transaction.
type DeactivateExpiredProductsCommandHandler struct {
	uowFactory ProductUoWFactory
	clock      kernel.Clock
}

// NewDeactivateExpiredProductsCommandHandler creates a handler that decides expiry
// and stamps deactivation with clock.
func NewDeactivateExpiredProductsCommandHandler(
	uowFactory ProductUoWFactory,
	clock kernel.Clock,
) DeactivateExpiredProductsCommandHandler {
	return DeactivateExpiredProductsCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns how many products were deactivated. Candidates returned by the
// gateway are checked again against the handler's clock; products that are not
// expired at that instant are left untouched. A result equal to the batch size
// means more expired products may be waiting.
//
// Example:
//
//	cmd, _ := NewDeactivateExpiredProductsCommand(100)
//	n, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err // nothing from this batch was stored
//	}
func (h *DeactivateExpiredProductsCommandHandler) Handle(
	ctx context.Context,
	cmd DeactivateExpiredProductsCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := h.clock.Now()
	products := uow.ProductGateway()
	candidates, err := products.FindActiveExpiredAt(ctx, now, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	deactivated := 0
	for _, p := range candidates {
		if !p.IsActive() || !p.IsExpired(now) {
			continue
		}
		p.Deactivate(h.clock)
		if err = products.Update(ctx, p); err != nil {
			return 0, err
		}
		deactivated++
	}

	if deactivated == 0 {
		return 0, nil
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return deactivated, nil
}
