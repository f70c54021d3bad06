package commands

import (
	"context"

	"frosty/internal/core/domain/model/checkin"
	"frosty/internal/core/domain/model/kernel"
)

// CreateCheckinOrderCommandHandler builds a check-in order, verifies that every
// item references a stored product and persists the order.
//
// Example:
//
//	handler := NewCreateCheckinOrderCommandHandler(uowFactory, kernel.NewSystemSupplier())
//	cmd, _ := NewCreateCheckinOrderCommand([]CheckinItem{{
//	    Name: "Frozen peas", Price: decimal.RequireFromString("2.49"), Quantity: 4, ProductID: productID,
//	}}, false)
//
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("checkin order creation failed: %w", err)
//	}
type CreateCheckinOrderCommandHandler struct {
	uowFactory CheckinUoWFactory
	supplier   kernel.Supplier
}

// NewCreateCheckinOrderCommandHandler creates a handler that takes ids and
// timestamps from supplier.
func NewCreateCheckinOrderCommandHandler(
	uowFactory CheckinUoWFactory,
	supplier kernel.Supplier,
) CreateCheckinOrderCommandHandler {
	return CreateCheckinOrderCommandHandler{
		uowFactory: uowFactory,
		supplier:   supplier,
	}
}

// Handle returns the id of the stored order. A *validation.NotificationError is
// returned before any storage access when the order is invalid.
func (h *CreateCheckinOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateCheckinOrderCommand,
) (checkin.OrderID, error) {
	if err := cmd.Validate(); err != nil {
		return checkin.OrderID{}, err
	}

	items, err := checkinItems(h.supplier, cmd.Items())
	if err != nil {
		return checkin.OrderID{}, err
	}

	order, err := checkin.NewOrder(h.supplier, items, cmd.IsCanceled())
	if err != nil {
		return checkin.OrderID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return checkin.OrderID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = requireProducts(ctx, uow.ProductGateway(), checkinProductIDs(order.Items())); err != nil {
		return checkin.OrderID{}, err
	}

	if err = uow.CheckinOrderGateway().Create(ctx, order); err != nil {
		return checkin.OrderID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return checkin.OrderID{}, err
	}

	return order.ID(), nil
}
