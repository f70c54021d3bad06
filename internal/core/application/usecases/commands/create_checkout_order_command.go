package commands

import (
	"errors"
	"slices"

	"frosty/internal/core/domain/model/checkout"
	"frosty/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateCheckoutOrderCommandIsNotConstructed = errors.New(
	"CreateCheckoutOrderCommand must be created via NewCreateCheckoutOrderCommand constructor",
)

// CreateCheckoutOrderCommand represents goods leaving the warehouse for a customer.
//
// Example:
//
//	amount := decimal.RequireFromString("21.50")
//	customer := "Jane Doe"
//	cmd, err := NewCreateCheckoutOrderCommand(&amount, items, true, "PENDING", &customer)
//	if err != nil {
//	    return err // status is not a known name
//	}
type CreateCheckoutOrderCommand struct { //nolint:recvcheck //using for validation
	amount       *decimal.Decimal
	items        []CheckoutItem
	open         bool
	status       checkout.Status
	customerName *string

	guard guard.ConstructorGuard
}

// NewCreateCheckoutOrderCommand parses status. An empty status is passed on as
// checkout.Unknown and rejected by the order validation.
func NewCreateCheckoutOrderCommand(
	amount *decimal.Decimal,
	items []CheckoutItem,
	open bool,
	status string,
	customerName *string,
) (CreateCheckoutOrderCommand, error) {
	parsed, err := parseStatus(status)
	if err != nil {
		return CreateCheckoutOrderCommand{}, err
	}

	return CreateCheckoutOrderCommand{
		amount:       amount,
		items:        slices.Clone(items),
		open:         open,
		status:       parsed,
		customerName: customerName,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateCheckoutOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateCheckoutOrderCommandIsNotConstructed)
}

func (c CreateCheckoutOrderCommand) Amount() *decimal.Decimal {
	return c.amount
}

func (c CreateCheckoutOrderCommand) Items() []CheckoutItem {
	return slices.Clone(c.items)
}

func (c CreateCheckoutOrderCommand) IsOpen() bool {
	return c.open
}

func (c CreateCheckoutOrderCommand) Status() checkout.Status {
	return c.status
}

func (c CreateCheckoutOrderCommand) CustomerName() *string {
	return c.customerName
}
