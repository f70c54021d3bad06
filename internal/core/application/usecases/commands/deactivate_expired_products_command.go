package commands

import (
	"errors"

	"frosty/internal/pkg/errs"
	"frosty/internal/pkg/guard"
)

const MaxExpirationBatchSize = 1000

var ErrDeactivateExpiredProductsCommandIsNotConstructed = errors.New(
	"DeactivateExpiredProductsCommand must be created via NewDeactivateExpiredProductsCommand constructor",
)

// DeactivateExpiredProductsCommand deactivates at most BatchSize active products
// whose expiration date has passed.
type DeactivateExpiredProductsCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

func NewDeactivateExpiredProductsCommand(batchSize int) (DeactivateExpiredProductsCommand, error) {
	if batchSize <= 0 || batchSize > MaxExpirationBatchSize {
		return DeactivateExpiredProductsCommand{}, errs.NewValueIsOutOfRangeError(
			"batchSize", batchSize, 1, MaxExpirationBatchSize,
		)
	}

	return DeactivateExpiredProductsCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeactivateExpiredProductsCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateExpiredProductsCommandIsNotConstructed)
}

func (c DeactivateExpiredProductsCommand) BatchSize() int {
	return c.batchSize
}
