package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrScanTokenNotActive is returned when a presented scan token is not the
	// one currently attached to the order (never issued, already redeemed, or
	// superseded by a newer token).
	ErrScanTokenNotActive = errors.New("scan token is not active for this order")
)

// Order is the aggregate root of the delivery lifecycle. Every mutation goes
// through the transition table in status.go; a rejected transition leaves the
// order exactly as it was.
//
// Invariants:
//   - courier is set iff the status is ASSIGNED, PICKED_UP, DELIVERING or COMPLETED
//   - the GPS trace only grows
//   - finishedAt is set iff the status is COMPLETED
type Order struct {
	id          kernel.UUID
	customerID  kernel.UUID
	pickup      kernel.GeoPoint
	destination kernel.GeoPoint
	address     string
	deliveryFee int64

	status       Status
	courierID    *kernel.UUID
	trace        []TrackPoint
	savedTrace   int
	scanToken    *string
	cancelReason string

	createdAt   time.Time
	finishedAt  *time.Time
	cancelledAt *time.Time

	guard guard.ConstructorGuard
}

// NewOrder registers an order placed by the storefront. It starts in CREATED
// without a courier.
//
//	o, err := order.NewOrder(id, customerID, pickup, destination, "Tverskaya 1", 15000, time.Now())
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	pickup kernel.GeoPoint,
	destination kernel.GeoPoint,
	address string,
	deliveryFee int64,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{status: Created, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setPickup(pickup),
		o.setDestination(destination),
		o.setAddress(address),
		o.setDeliveryFee(deliveryFee),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Snapshot is the persisted state of an order, used to rebuild the aggregate.
type Snapshot struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	Pickup       kernel.GeoPoint
	Destination  kernel.GeoPoint
	Address      string
	DeliveryFee  int64
	Status       Status
	CourierID    *kernel.UUID
	Trace        []TrackPoint
	ScanToken    *string
	CancelReason string
	CreatedAt    time.Time
	FinishedAt   *time.Time
	CancelledAt  *time.Time
}

// RestoreOrder rebuilds an order from storage, re-checking every invariant.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		o.setID(s.ID),
		o.setCustomerID(s.CustomerID),
		o.setPickup(s.Pickup),
		o.setDestination(s.Destination),
		o.setAddress(s.Address),
		o.setDeliveryFee(s.DeliveryFee),
		o.setCreatedAt(s.CreatedAt),
		s.Status.Validate(),
		s.Status.ValidateCanHaveCourier(s.CourierID != nil),
	); err != nil {
		return nil, err
	}
	if (s.Status == Completed) != (s.FinishedAt != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause("finishedAt",
			fmt.Errorf("finishedAt must be set exactly when status is %s", Completed))
	}
	for i, tp := range s.Trace {
		if err := tp.Validate(); err != nil {
			return nil, fmt.Errorf("trace point %d: %w", i, err)
		}
	}

	o.status = s.Status
	if s.CourierID != nil {
		id := *s.CourierID
		o.courierID = &id
	}
	o.trace = append([]TrackPoint(nil), s.Trace...)
	o.savedTrace = len(o.trace)
	if s.ScanToken != nil {
		tok := *s.ScanToken
		o.scanToken = &tok
	}
	o.cancelReason = s.CancelReason
	o.finishedAt = copyTime(s.FinishedAt)
	o.cancelledAt = copyTime(s.CancelledAt)

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// Snapshot captures the order's full state, trace included, for storage.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:           o.id,
		CustomerID:   o.customerID,
		Pickup:       o.pickup,
		Destination:  o.destination,
		Address:      o.address,
		DeliveryFee:  o.deliveryFee,
		Status:       o.status,
		CourierID:    o.Courier(),
		Trace:        o.Trace(),
		ScanToken:    o.ScanToken(),
		CancelReason: o.cancelReason,
		CreatedAt:    o.createdAt,
		FinishedAt:   copyTime(o.finishedAt),
		CancelledAt:  copyTime(o.cancelledAt),
	}
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID              { return o.id }
func (o *Order) CustomerID() kernel.UUID      { return o.customerID }
func (o *Order) Pickup() kernel.GeoPoint      { return o.pickup }
func (o *Order) Destination() kernel.GeoPoint { return o.destination }
func (o *Order) Address() string              { return o.address }
func (o *Order) DeliveryFee() int64           { return o.deliveryFee }
func (o *Order) Status() Status               { return o.status }
func (o *Order) CancelReason() string         { return o.cancelReason }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }
func (o *Order) FinishedAt() *time.Time       { return copyTime(o.finishedAt) }
func (o *Order) CancelledAt() *time.Time      { return copyTime(o.cancelledAt) }
func (o *Order) Trace() []TrackPoint          { return append([]TrackPoint(nil), o.trace...) }
func (o *Order) UnsavedTrackPoints() []TrackPoint {
	return append([]TrackPoint(nil), o.trace[o.savedTrace:]...)
}

// SavedTraceLen is the number of trace points already persisted; the sequence
// number of the first unsaved point.
func (o *Order) SavedTraceLen() int {
	return o.savedTrace
}

// Courier returns the assigned courier, or nil.
func (o *Order) Courier() *kernel.UUID {
	if o.courierID == nil {
		return nil
	}
	id := *o.courierID
	return &id
}

// ScanToken returns the currently attached scan token, or nil.
func (o *Order) ScanToken() *string {
	if o.scanToken == nil {
		return nil
	}
	tok := *o.scanToken
	return &tok
}

// MarkPending records that payment cleared: CREATED -> PENDING.
func (o *Order) MarkPending() error {
	return o.moveTo(Pending)
}

// StartProcessing records that the seller is preparing the parcel: PENDING -> PROCESSING.
func (o *Order) StartProcessing() error {
	return o.moveTo(Processing)
}

// Assign binds a courier: CREATED/PENDING/PROCESSING -> ASSIGNED. The courier's
// position at assignment time opens the GPS trace.
func (o *Order) Assign(courierID kernel.UUID, courierAt kernel.GeoPoint, at time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if !o.status.IsDispatchable() {
		return NewInvalidTransitionError(o.status, Assigned)
	}
	tp, err := NewTrackPoint(Assigned, courierAt, at)
	if err != nil {
		return err
	}

	if err = o.moveTo(Assigned); err != nil {
		return err
	}
	o.courierID = &courierID
	o.trace = append(o.trace, tp)
	return nil
}

// PickUp records the pickup scan: ASSIGNED -> PICKED_UP.
func (o *Order) PickUp(point kernel.GeoPoint, at time.Time) error {
	return o.moveToWithTrace(PickedUp, point, at)
}

// StartDelivery records the courier leaving for the customer: PICKED_UP -> DELIVERING.
func (o *Order) StartDelivery(point kernel.GeoPoint, at time.Time) error {
	return o.moveToWithTrace(Delivering, point, at)
}

// Complete records the handoff: DELIVERING -> COMPLETED and stamps finishedAt.
// The courier stays attached for audit and payout.
func (o *Order) Complete(point kernel.GeoPoint, at time.Time) error {
	if err := o.moveToWithTrace(Completed, point, at); err != nil {
		return err
	}
	finished := at
	o.finishedAt = &finished
	o.scanToken = nil
	return nil
}

// Cancel moves any non-terminal order to CANCELLED. It returns the courier that
// was released, if any, so the caller can give the slot back.
func (o *Order) Cancel(reason string, at time.Time) (*kernel.UUID, error) {
	if err := validateTime(at); err != nil {
		return nil, err
	}
	if err := o.moveTo(Cancelled); err != nil {
		return nil, err
	}
	released := o.courierID
	o.courierID = nil
	o.scanToken = nil
	o.cancelReason = strings.TrimSpace(reason)
	cancelled := at
	o.cancelledAt = &cancelled
	return released, nil
}

// AttachScanToken stores the token a courier must present at the next scan.
// A newer token replaces the previous one.
func (o *Order) AttachScanToken(token string) error {
	if token == "" {
		return errs.NewValueIsRequiredError("scan token")
	}
	if o.status.IsTerminal() {
		return NewInvalidTransitionError(o.status, o.status)
	}
	o.scanToken = &token
	return nil
}

// RedeemScanToken consumes the attached token and advances the order to the
// step the scan stands for: ASSIGNED -> PICKED_UP (pickup) or
// DELIVERING -> COMPLETED (handoff). A token that is not the attached one
// fails with ErrScanTokenNotActive whatever the order status.
func (o *Order) RedeemScanToken(token string, point kernel.GeoPoint, at time.Time) error {
	if o.scanToken == nil || *o.scanToken != token {
		return ErrScanTokenNotActive
	}

	var advance func(kernel.GeoPoint, time.Time) error
	switch o.status { //nolint:exhaustive // every other status is rejected below
	case Assigned:
		advance = o.PickUp
	case Delivering:
		advance = o.Complete
	default:
		target := PickedUp
		if o.status > Assigned {
			target = Completed
		}
		return NewInvalidTransitionError(o.status, target)
	}

	if err := advance(point, at); err != nil {
		return err
	}

	o.scanToken = nil
	return nil
}

func (o *Order) moveTo(target Status) error {
	next, err := o.status.Transition(target)
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

func (o *Order) moveToWithTrace(target Status, point kernel.GeoPoint, at time.Time) error {
	if !o.status.CanTransitionTo(target) {
		return NewInvalidTransitionError(o.status, target)
	}
	tp, err := NewTrackPoint(target, point, at)
	if err != nil {
		return err
	}
	o.status = target
	o.trace = append(o.trace, tp)
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setPickup(p kernel.GeoPoint) error {
	if err := p.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pickup", err)
	}
	o.pickup = p
	return nil
}

func (o *Order) setDestination(p kernel.GeoPoint) error {
	if err := p.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("destination", err)
	}
	o.destination = p
	return nil
}

func (o *Order) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

func (o *Order) setDeliveryFee(fee int64) error {
	if fee < 0 {
		return errs.NewValueIsInvalidErrorWithCause("deliveryFee", fmt.Errorf("%d is negative", fee))
	}
	o.deliveryFee = fee
	return nil
}

func (o *Order) setCreatedAt(at time.Time) error {
	if err := validateTime(at); err != nil {
		return err
	}
	o.createdAt = at
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
