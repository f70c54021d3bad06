package commands

import (
	"context"

	"frosty/internal/core/domain/model/kernel"
	"frosty/internal/core/domain/model/product"
)

// CreateProductCommandHandler registers a new product.
//
// Example:
//
//	name := "Frozen peas"
//	price := decimal.RequireFromString("2.49")
//	cmd, _ := NewCreateProductCommand(product.Attributes{Name: &name, Price: &price, Active: true})
//
//	productID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err // *validation.NotificationError lists every violated rule
//	}
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	supplier   kernel.Supplier
}

// NewCreateProductCommandHandler creates a handler that takes ids and timestamps
// from supplier.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory, supplier kernel.Supplier) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
		supplier:   supplier,
	}
}

// Handle validates and stores the new product and returns its id.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (product.ID, error) {
	if err := cmd.Validate(); err != nil {
		return product.ID{}, err
	}

	p, err := product.NewProduct(h.supplier, cmd.Attributes())
	if err != nil {
		return product.ID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return product.ID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductGateway().Create(ctx, p); err != nil {
		return product.ID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return product.ID{}, err
	}

	return p.ID(), nil
}
