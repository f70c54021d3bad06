package commands

import (
	"context"

	"frosty/internal/core/domain/model/kernel"
	"frosty/internal/pkg/validation"
)

const msgUpdateProductFailed = "failed to update a product"

// UpdateProductCommandHandler updates a stored product. The updated product must
// pass validation before it is written.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	clock      kernel.Clock
}

// NewUpdateProductCommandHandler creates a handler that stamps the update with clock.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory, clock kernel.Clock) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle loads the product, applies the attributes, validates the result and
// stores it. An invalid product is not written.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
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

	products := uow.ProductGateway()
	p, err := products.FindByID(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	p.Update(h.clock, cmd.Attributes())
	if err = validation.Check(p, msgUpdateProductFailed); err != nil {
		return err
	}

	if err = products.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
