package commands

import (
	"errors"
	"slices"

	"frosty/internal/pkg/guard"
)

var ErrCreateCheckinOrderCommandIsNotConstructed = errors.New(
	"CreateCheckinOrderCommand must be created via NewCreateCheckinOrderCommand constructor",
)

// CreateCheckinOrderCommand represents a request to register goods arriving at the warehouse.
// Item rules are not checked here; the order reports every violation at once when it is built.
//
// Example:
//
//	cmd, _ := NewCreateCheckinOrderCommand([]CheckinItem{
//	    {Name: "Ice cream", Price: decimal.RequireFromString("3.50"), Quantity: 3, ProductID: productID},
//	}, false)
//
//	handler := NewCreateCheckinOrderCommandHandler(uowFactory, supplier)
//	orderID, err := handler.Handle(ctx, cmd)
type CreateCheckinOrderCommand struct { //nolint:recvcheck //using for validation
	items    []CheckinItem
	canceled bool

	guard guard.ConstructorGuard
}

// NewCreateCheckinOrderCommand creates the command. A nil items slice is kept as nil
// so the missing list can be reported by the order validation.
func NewCreateCheckinOrderCommand(items []CheckinItem, canceled bool) (CreateCheckinOrderCommand, error) {
	return CreateCheckinOrderCommand{
		items:    slices.Clone(items),
		canceled: canceled,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate returns ErrCreateCheckinOrderCommandIsNotConstructed for a zero command.
func (c CreateCheckinOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateCheckinOrderCommandIsNotConstructed)
}

func (c CreateCheckinOrderCommand) Items() []CheckinItem {
	return slices.Clone(c.items)
}

func (c CreateCheckinOrderCommand) IsCanceled() bool {
	return c.canceled
}
