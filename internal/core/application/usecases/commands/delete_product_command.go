package commands

import (
	"errors"

	"frosty/internal/core/domain/model/product"
	"frosty/internal/pkg/guard"
)

var ErrDeleteProductCommandIsNotConstructed = errors.New(
	"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
)

type DeleteProductCommand struct { //nolint:recvcheck //using for validation
	productID product.ID

	guard guard.ConstructorGuard
}

func NewDeleteProductCommand(productID string) (DeleteProductCommand, error) {
	id, err := product.IDFrom(productID)
	if err != nil {
		return DeleteProductCommand{}, err
	}

	return DeleteProductCommand{
		productID: id,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

func (c DeleteProductCommand) ProductID() product.ID {
	return c.productID
}
