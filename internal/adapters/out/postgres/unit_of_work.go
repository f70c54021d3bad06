// Package postgres provides the GORM-based Unit of Work that binds the check-in,
// checkout and product gateways to one database transaction.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx) // no-op error once committed
//	}()
//
//	if err := uow.ProductGateway().Create(ctx, p); err != nil {
//	    return err
//	}
//	if err := uow.CheckinOrderGateway().Create(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance owns at most one transaction and must not be shared
// between goroutines. Gateways obtained before Begin use the plain connection.
package postgres

import (
	"context"

	"frosty/internal/adapters/out/postgres/checkinrepo"
	"frosty/internal/adapters/out/postgres/checkoutrepo"
	"frosty/internal/adapters/out/postgres/productrepo"
	"frosty/internal/core/ports"

	"gorm.io/gorm"
)

// TrackedAggregate is an aggregate written through a unit of work.
type TrackedAggregate struct {
	ID        string
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work with no transaction and no tracked aggregates.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.CreateGorm()
}

// CreateGorm is Create with the concrete type, for callers that inspect tracked aggregates.
func (f *GormUnitOfWorkFactory) CreateGorm() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]TrackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one transaction and records every aggregate the
// gateways write, in write order.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []TrackedAggregate
}

// Begin starts a transaction. A second call while one is active does nothing.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit commits the active transaction. Returns gorm.ErrInvalidTransaction without one.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the active transaction and forgets the aggregates tracked in it.
// Returns gorm.ErrInvalidTransaction without one.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) CheckinOrderGateway() ports.CheckinOrderGateway {
	return checkinrepo.NewGormCheckinOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) CheckoutOrderGateway() ports.CheckoutOrderGateway {
	return checkoutrepo.NewGormCheckoutOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ProductGateway() ports.ProductGateway {
	return productrepo.NewGormProductRepository(uow.conn(), uow)
}

// TrackAggregate records an aggregate written by one of the gateways.
func (uow *GormUnitOfWork) TrackAggregate(id string, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, TrackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregates returns a copy of the aggregates written so far.
func (uow *GormUnitOfWork) TrackedAggregates() []TrackedAggregate {
	out := make([]TrackedAggregate, len(uow.trackedAggregates))
	copy(out, uow.trackedAggregates)
	return out
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
