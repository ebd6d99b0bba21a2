package memory

import (
	"context"
	"errors"

	"courierhub/internal/core/ports"
)

var ErrInvalidTransaction = errors.New("no active transaction")

type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork. Each instance must be used by one
// goroutine at a time.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

type UnitOfWork struct {
	store  *Store
	active bool
	backup *state
}

// Begin waits until no other unit of work holds the store. Calling Begin on an
// active unit of work is a no-op.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.active {
		return nil
	}
	if err := u.store.acquire(ctx); err != nil {
		return err
	}
	u.backup = u.store.data.clone()
	u.active = true
	return nil
}

func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.active {
		return ErrInvalidTransaction
	}
	u.finish()
	return nil
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return ErrInvalidTransaction
	}
	u.store.data = u.backup
	u.finish()
	return nil
}

func (u *UnitOfWork) finish() {
	u.backup = nil
	u.active = false
	u.store.release()
}

func (u *UnitOfWork) CourierRepository() ports.CourierRepository {
	return &CourierRepository{uow: u}
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: u}
}

func (u *UnitOfWork) SettingsRepository() ports.SettingsRepository {
	return &SettingsRepository{uow: u}
}

func (u *UnitOfWork) LedgerRepository() ports.LedgerRepository {
	return &LedgerRepository{uow: u}
}

// do runs fn against the current state, inside the active transaction or as
// a single-call transaction of its own. A failed single call leaves no trace.
func (u *UnitOfWork) do(ctx context.Context, fn func(*state) error) error {
	if u.active {
		return fn(u.store.data)
	}
	if err := u.store.acquire(ctx); err != nil {
		return err
	}
	defer u.store.release()

	work := u.store.data.clone()
	if err := fn(work); err != nil {
		return err
	}
	u.store.data = work
	return nil
}
