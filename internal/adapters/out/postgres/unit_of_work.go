// Package postgres implements the unit of work over GORM. Repositories taken
// from a unit of work after Begin share its transaction; repositories taken
// before Begin run each statement on its own against committed state, which
// is what the query side relies on.
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().UpdateIfStatus(ctx, o, expected); err != nil {
//	    return err
//	}
//	if err := uow.CourierRepository().Claim(ctx, courierID); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit is a no-op that returns
// gorm.ErrInvalidTransaction, so the deferred call is always safe.
package postgres

import (
	"context"

	"courierhub/internal/adapters/out/postgres/courierrepo"
	"courierhub/internal/adapters/out/postgres/ledgerrepo"
	"courierhub/internal/adapters/out/postgres/orderrepo"
	"courierhub/internal/adapters/out/postgres/pgerrs"
	"courierhub/internal/adapters/out/postgres/settingsrepo"
	"courierhub/internal/core/domain/model/settings"
	"courierhub/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates a fresh unit of work per business operation.
type GormUnitOfWorkFactory struct {
	db       *gorm.DB
	defaults settings.DispatchWeights
}

// NewGormUnitOfWorkFactory wires the factory. defaults are written as the
// first dispatch weights version when none is stored.
func NewGormUnitOfWorkFactory(db *gorm.DB, defaults settings.DispatchWeights) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, defaults: defaults}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db, defaults: f.defaults}
}

// GormUnitOfWork is a single database transaction. It is not safe for
// concurrent use; every goroutine creates its own.
type GormUnitOfWork struct {
	db       *gorm.DB
	tx       *gorm.DB
	defaults settings.DispatchWeights
}

// Begin opens the transaction. Calling it twice keeps the first one.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return pgerrs.Wrap("begin transaction", tx.Error)
	}
	uow.tx = tx
	return nil
}

func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return pgerrs.Wrap("commit transaction", err)
}

func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) CourierRepository() ports.CourierRepository {
	return courierrepo.NewGormCourierRepository(uow.conn())
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

func (uow *GormUnitOfWork) SettingsRepository() ports.SettingsRepository {
	return settingsrepo.NewGormSettingsRepository(uow.conn(), uow.defaults)
}

func (uow *GormUnitOfWork) LedgerRepository() ports.LedgerRepository {
	return ledgerrepo.NewGormLedgerRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
