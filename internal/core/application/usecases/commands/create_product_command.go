package commands

import (
	"errors"

	"frosty/internal/core/domain/model/product"
	"frosty/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to add a product to the catalog.
//
// Example:
//
//	name, price := "Frozen peas", decimal.RequireFromString("2.49")
//	cmd, _ := NewCreateProductCommand(product.Attributes{Name: &name, Price: &price, Active: true})
//
//	handler := NewCreateProductCommandHandler(uowFactory, supplier)
//	productID, err := handler.Handle(ctx, cmd)
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	attributes product.Attributes

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(attributes product.Attributes) (CreateProductCommand, error) {
	return CreateProductCommand{
		attributes: attributes,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) Attributes() product.Attributes {
	return c.attributes
}
