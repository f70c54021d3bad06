package checkin

import "frosty/internal/core/domain/model/kernel"

// AggregateName names check-in orders in not-found errors and logs.
const AggregateName = "CheckinOrder"

type orderKind struct{}

// OrderID identifies a check-in order.
type OrderID = kernel.Identifier[orderKind]

// NewOrderID generates a fresh identifier.
func NewOrderID(ids kernel.IDGenerator) OrderID {
	return kernel.NewIdentifier[orderKind](ids)
}

// OrderIDFrom wraps an existing identifier value.
func OrderIDFrom(value string) (OrderID, error) {
	return kernel.IdentifierFrom[orderKind](value)
}

// OrderIDsFrom wraps several identifier values.
func OrderIDsFrom(values []string) ([]OrderID, error) {
	return kernel.IdentifiersFrom[orderKind](values)
}
