package courier

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

const (
	RatingMin = 0.0
	RatingMax = 5.0
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier constructor")
	// ErrCourierUnavailable is returned when an OFFLINE courier is asked to take an order.
	ErrCourierUnavailable = errors.New("courier is unavailable")
)

// Courier is the dispatch-relevant view of a courier account.
//
// Three independent actors mutate a courier and each owns a disjoint subset of
// its fields:
//   - location pings own location and locationAt (UpdateLocation)
//   - assignment and lifecycle own status and workload (Claim, Release, SetAvailability)
//   - the payout ledger owns balance (AdjustBalance)
//
// Repositories persist each subset with its own atomic statement so that one
// actor never overwrites another actor's fields.
//
// Example usage:
//
//	c, err := courier.NewCourier(kernel.NewUUID(), "Alice", 4.8, 45)
//	if err != nil {
//	    // Handle construction error
//	}
//	_ = c.SetAvailability(true)
type Courier struct {
	id   kernel.UUID
	name string

	location   *kernel.GeoPoint
	locationAt *time.Time

	status   Status
	workload int

	rating             float64
	avgResponseSeconds float64

	balance        int64
	deliveredCount int

	guard guard.ConstructorGuard
}

// NewCourier registers a courier. New couriers start OFFLINE with no location,
// no open orders and a zero balance.
//
// Parameters:
//   - id: unique identifier (must be valid)
//   - name: display name (must be non-empty)
//   - rating: rolling rating in [0, 5]
//   - avgResponseSeconds: average time to accept an offer, non-negative
func NewCourier(id kernel.UUID, name string, rating float64, avgResponseSeconds float64) (*Courier, error) {
	c := &Courier{
		status: Offline,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setRating(rating),
		c.setAvgResponseSeconds(avgResponseSeconds),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Snapshot is the persisted state of a courier.
type Snapshot struct {
	ID                 kernel.UUID
	Name               string
	Location           *kernel.GeoPoint
	LocationAt         *time.Time
	Status             Status
	Workload           int
	Rating             float64
	AvgResponseSeconds float64
	Balance            int64
	DeliveredCount     int
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage.
// Unlike NewCourier it keeps the stored shift state, workload and balance.
func RestoreCourier(s Snapshot) (*Courier, error) {
	c := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(s.ID),
		c.setName(s.Name),
		c.setRating(s.Rating),
		c.setAvgResponseSeconds(s.AvgResponseSeconds),
		s.Status.Validate(),
		validateCount("workload", s.Workload),
		validateCount("deliveredCount", s.DeliveredCount),
	); err != nil {
		return nil, err
	}
	if s.Location != nil {
		if err := s.Location.Validate(); err != nil {
			return nil, err
		}
		loc := *s.Location
		c.location = &loc
	}
	if s.LocationAt != nil {
		at := *s.LocationAt
		c.locationAt = &at
	}

	c.status = s.Status
	c.workload = s.Workload
	c.balance = s.Balance
	c.deliveredCount = s.DeliveredCount
	return c, nil
}

// Snapshot captures the courier's state for storage.
func (c *Courier) Snapshot() Snapshot {
	return Snapshot{
		ID:                 c.id,
		Name:               c.name,
		Location:           c.Location(),
		LocationAt:         c.LocationAt(),
		Status:             c.status,
		Workload:           c.workload,
		Rating:             c.rating,
		AvgResponseSeconds: c.avgResponseSeconds,
		Balance:            c.balance,
		DeliveredCount:     c.deliveredCount,
	}
}

// IsEqual compares two couriers by identifier.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// Validate checks that the Courier was built by NewCourier or RestoreCourier.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

func (c *Courier) ID() kernel.UUID {
	return c.id
}

func (c *Courier) Name() string {
	return c.name
}

// Location returns the last reported position, or nil when the courier has
// never reported one.
func (c *Courier) Location() *kernel.GeoPoint {
	if c.location == nil {
		return nil
	}
	loc := *c.location
	return &loc
}

func (c *Courier) LocationAt() *time.Time {
	if c.locationAt == nil {
		return nil
	}
	at := *c.locationAt
	return &at
}

func (c *Courier) Status() Status {
	return c.status
}

// Workload is the number of open orders the courier carries.
func (c *Courier) Workload() int {
	return c.workload
}

func (c *Courier) Rating() float64 {
	return c.rating
}

func (c *Courier) AvgResponseSeconds() float64 {
	return c.avgResponseSeconds
}

// Balance is the courier's account balance in minor currency units. It may be
// negative when payouts exceed earnings.
func (c *Courier) Balance() int64 {
	return c.balance
}

func (c *Courier) DeliveredCount() int {
	return c.deliveredCount
}

// IsLive reports whether the courier is idle on shift with a known position.
func (c *Courier) IsLive() bool {
	return c.status == Online && c.location != nil
}

// IsDispatchCandidate reports whether the courier may be offered an order:
// on shift and with a known position.
func (c *Courier) IsDispatchCandidate() bool {
	return c.status.OnShift() && c.location != nil
}

// UpdateLocation overwrites the current position (last write wins). A ping
// older than the stored one is ignored and reported as not applied.
//
// Returns:
//   - bool: true when the position was replaced
//   - error: validation error for an invalid point or timestamp
func (c *Courier) UpdateLocation(point kernel.GeoPoint, at time.Time) (bool, error) {
	if err := point.Validate(); err != nil {
		return false, err
	}
	if at.IsZero() {
		return false, errs.NewValueIsRequiredError("timestamp")
	}
	if c.locationAt != nil && at.Before(*c.locationAt) {
		return false, nil
	}

	c.location = &point
	c.locationAt = &at
	return true, nil
}

// SetAvailability starts or ends a shift. Going online with open orders
// yields BUSY. Going offline keeps the open orders; the courier still
// finishes them but receives no new ones.
func (c *Courier) SetAvailability(online bool) {
	switch {
	case !online:
		c.status = Offline
	case c.workload > 0:
		c.status = Busy
	default:
		c.status = Online
	}
}

// Claim takes one more order: workload +1 and status BUSY. OFFLINE couriers
// cannot be claimed.
func (c *Courier) Claim() error {
	if !c.status.OnShift() {
		return ErrCourierUnavailable
	}
	c.workload++
	c.status = Busy
	return nil
}

// Release gives back one order slot. When delivered is set the lifetime
// delivery count grows. A BUSY courier whose workload reaches zero becomes
// ONLINE; an OFFLINE courier stays OFFLINE.
func (c *Courier) Release(delivered bool) {
	if c.workload > 0 {
		c.workload--
	}
	if delivered {
		c.deliveredCount++
	}
	if c.workload == 0 && c.status == Busy {
		c.status = Online
	}
}

// AdjustBalance adds delta (negative for payouts) to the balance.
func (c *Courier) AdjustBalance(delta int64) error {
	if (delta > 0 && c.balance > math.MaxInt64-delta) || (delta < 0 && c.balance < math.MinInt64-delta) {
		return errs.NewValueIsOutOfRangeError("balance", c.balance, int64(math.MinInt64), int64(math.MaxInt64))
	}
	c.balance += delta
	return nil
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Courier) setRating(rating float64) error {
	if math.IsNaN(rating) || rating < RatingMin || rating > RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, RatingMin, RatingMax)
	}
	c.rating = rating
	return nil
}

func (c *Courier) setAvgResponseSeconds(seconds float64) error {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return errs.NewValueIsInvalidErrorWithCause("avgResponseSeconds", fmt.Errorf("%v is negative or not finite", seconds))
	}
	c.avgResponseSeconds = seconds
	return nil
}

func validateCount(name string, v int) error {
	if v < 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%d is negative", v))
	}
	return nil
}
