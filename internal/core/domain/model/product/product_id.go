package product

import "frosty/internal/core/domain/model/kernel"

// AggregateName names products in not-found errors and logs.
const AggregateName = "Product"

type productKind struct{}

// ID identifies a product.
type ID = kernel.Identifier[productKind]

func NewID(ids kernel.IDGenerator) ID {
	return kernel.NewIdentifier[productKind](ids)
}

func IDFrom(value string) (ID, error) {
	return kernel.IdentifierFrom[productKind](value)
}

func IDsFrom(values []string) ([]ID, error) {
	return kernel.IdentifiersFrom[productKind](values)
}
