package ports

import (
	"context"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never deleted and never blindly overwritten: every change goes
// through UpdateIfStatus.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its full GPS trace.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateIfStatus stores the aggregate only if the persisted status still
	// equals expected, and appends the aggregate's unsaved trace points.
	// When the precondition no longer holds it returns a stale
	// order.InvalidTransitionError and writes nothing.
	UpdateIfStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// GetAllInStatus returns up to limit orders in status, oldest first.
	GetAllInStatus(ctx context.Context, status order.Status, limit int) ([]*order.Order, error)

	// GetUncompleted returns every order that has not reached a terminal status.
	GetUncompleted(ctx context.Context) ([]*order.Order, error)
}
