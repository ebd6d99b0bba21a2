package ports

import (
	"context"
	"time"

	"courierhub/internal/core/domain/model/courier"
	"courierhub/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
//
// Courier rows are shared by three writers, so there is no whole-aggregate
// Update. Each mutation method touches only the columns its writer owns and
// runs as a single atomic statement:
//   - UpdateLocation: location and location timestamp
//   - SetAvailability, Claim, Release: status, workload and delivered count
//   - AdjustBalance: balance
type CourierRepository interface {
	// Add persists a newly registered courier.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier by id or returns errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAll returns every courier ordered by name.
	GetAll(ctx context.Context) ([]*courier.Courier, error)

	// GetAllOnShift returns ONLINE and BUSY couriers with a known location.
	GetAllOnShift(ctx context.Context) ([]*courier.Courier, error)

	// GetAllLive returns ONLINE couriers with a known location.
	GetAllLive(ctx context.Context) ([]*courier.Courier, error)

	// UpdateLocation overwrites the position if at is not older than the
	// stored timestamp. It reports whether the ping was applied.
	UpdateLocation(ctx context.Context, id kernel.UUID, point kernel.GeoPoint, at time.Time) (bool, error)

	// SetAvailability starts or ends the courier's shift.
	SetAvailability(ctx context.Context, id kernel.UUID, online bool) error

	// Claim increments the workload and marks the courier BUSY unless the
	// courier is OFFLINE, in which case courier.ErrCourierUnavailable is returned.
	Claim(ctx context.Context, id kernel.UUID) error

	// Release decrements the workload (never below zero), bumps the delivered
	// count when delivered is set and returns a BUSY courier with no open
	// orders to ONLINE.
	Release(ctx context.Context, id kernel.UUID, delivered bool) error

	// AdjustBalance adds delta to the balance in place.
	AdjustBalance(ctx context.Context, id kernel.UUID, delta int64) error

	// MarkStaleOffline moves ONLINE couriers whose last ping is older than
	// before (or who never pinged) to OFFLINE and returns their ids.
	MarkStaleOffline(ctx context.Context, before time.Time) ([]kernel.UUID, error)
}
