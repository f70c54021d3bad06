package commands

import (
	"context"

	"frosty/internal/core/domain/model/checkout"
	"frosty/internal/core/domain/model/kernel"
)

// CreateCheckoutOrderCommandHandler builds a checkout order, verifies the referenced
// products and persists the order.
type CreateCheckoutOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	supplier   kernel.Supplier
}

// NewCreateCheckoutOrderCommandHandler creates a handler that takes ids and
// timestamps from supplier.
func NewCreateCheckoutOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	supplier kernel.Supplier,
) CreateCheckoutOrderCommandHandler {
	return CreateCheckoutOrderCommandHandler{
		uowFactory: uowFactory,
		supplier:   supplier,
	}
}

// Handle builds and validates the order, checks that every item references a
// stored product and persists the order in one transaction. It returns the new id.
func (h *CreateCheckoutOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateCheckoutOrderCommand,
) (checkout.OrderID, error) {
	if err := cmd.Validate(); err != nil {
		return checkout.OrderID{}, err
	}

	items, err := checkoutItems(h.supplier, cmd.Items())
	if err != nil {
		return checkout.OrderID{}, err
	}

	order, err := checkout.NewOrder(h.supplier, cmd.Amount(), items, cmd.IsOpen(), cmd.Status(), cmd.CustomerName())
	if err != nil {
		return checkout.OrderID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return checkout.OrderID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = requireProducts(ctx, uow.ProductGateway(), checkoutProductIDs(order.Items())); err != nil {
		return checkout.OrderID{}, err
	}

	if err = uow.CheckoutOrderGateway().Create(ctx, order); err != nil {
		return checkout.OrderID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return checkout.OrderID{}, err
	}

	return order.ID(), nil
}
