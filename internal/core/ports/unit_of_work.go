package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for every command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Gateways obtained after Begin
// run inside the transaction; before Begin they use the plain connection.
type UnitOfWork interface {
	// Begin starts a transaction. Calling it twice keeps the first transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback discards the current transaction. It fails when none is active.
	Rollback(ctx context.Context) error

	CheckinOrderGateway() CheckinOrderGateway
	CheckoutOrderGateway() CheckoutOrderGateway
	ProductGateway() ProductGateway
}
