package checkout

import "frosty/internal/core/domain/model/kernel"

// AggregateName names checkout orders in not-found errors and logs.
const AggregateName = "CheckoutOrder"

type orderKind struct{}

// OrderID identifies a checkout order. It cannot be compared with a check-in OrderID.
type OrderID = kernel.Identifier[orderKind]

func NewOrderID(ids kernel.IDGenerator) OrderID {
	return kernel.NewIdentifier[orderKind](ids)
}

func OrderIDFrom(value string) (OrderID, error) {
	return kernel.IdentifierFrom[orderKind](value)
}

func OrderIDsFrom(values []string) ([]OrderID, error) {
	return kernel.IdentifiersFrom[orderKind](values)
}
