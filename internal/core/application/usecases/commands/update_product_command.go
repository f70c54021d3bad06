package commands

import (
	"errors"

	"frosty/internal/core/domain/model/product"
	"frosty/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand replaces the attributes of a product. A nil stock keeps the stored one.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID  product.ID
	attributes product.Attributes

	guard guard.ConstructorGuard
}

func NewUpdateProductCommand(productID string, attributes product.Attributes) (UpdateProductCommand, error) {
	id, err := product.IDFrom(productID)
	if err != nil {
		return UpdateProductCommand{}, err
	}

	return UpdateProductCommand{
		productID:  id,
		attributes: attributes,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) ProductID() product.ID {
	return c.productID
}

func (c UpdateProductCommand) Attributes() product.Attributes {
	return c.attributes
}
