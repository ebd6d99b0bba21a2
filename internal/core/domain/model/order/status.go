package order

import (
	"errors"
	"fmt"
	"strings"

	"courierhub/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel for every rejected status change.
var ErrInvalidTransition = errors.New("invalid transition")

// InvalidTransitionError describes a rejected status change. The order it was
// attempted on is left untouched.
type InvalidTransitionError struct {
	From Status
	To   Status
	// Stale is set when the stored status no longer matched the status the
	// change was computed from (a concurrent transition won).
	Stale bool
}

func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func NewStaleTransitionError(expected, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: expected, To: to, Stale: true}
}

func (e *InvalidTransitionError) Error() string {
	if e.Stale {
		return fmt.Sprintf("%s: order is no longer %s, cannot move to %s", ErrInvalidTransition, e.From, e.To)
	}
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Status is a step of the delivery lifecycle.
//
//	CREATED ─> PENDING ─> PROCESSING ─┐
//	   │          │                   v
//	   └──────────┴────────────────> ASSIGNED ─> PICKED_UP ─> DELIVERING ─> COMPLETED
//
//	every non-terminal status ─> CANCELLED
//
// COMPLETED and CANCELLED are terminal.
type Status int

const (
	Unknown Status = iota
	Created
	Pending
	Processing
	Assigned
	PickedUp
	Delivering
	Completed
	Cancelled
)

var statusNames = map[Status]string{
	Unknown:    "UNKNOWN",
	Created:    "CREATED",
	Pending:    "PENDING",
	Processing: "PROCESSING",
	Assigned:   "ASSIGNED",
	PickedUp:   "PICKED_UP",
	Delivering: "DELIVERING",
	Completed:  "COMPLETED",
	Cancelled:  "CANCELLED",
}

// transitions is the complete edge list of the lifecycle. Cancellation is
// handled separately because it is reachable from every non-terminal status.
var transitions = map[Status][]Status{
	Created:    {Pending, Assigned},
	Pending:    {Processing, Assigned},
	Processing: {Assigned},
	Assigned:   {PickedUp},
	PickedUp:   {Delivering},
	Delivering: {Completed},
}

// ParseStatus maps the wire name (e.g. "PICKED_UP") back to a Status.
func ParseStatus(s string) (Status, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for st, name := range statusNames {
		if st != Unknown && name == upper {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[Unknown]
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// IsActive reports whether a courier is currently working the order. Live
// courier coordinates are only exposed for active orders.
func (s Status) IsActive() bool {
	return s == Assigned || s == PickedUp || s == Delivering
}

// IsDispatchable reports whether a courier may be assigned from this status.
func (s Status) IsDispatchable() bool {
	return s == Created || s == Pending || s == Processing
}

// CanTransitionTo reports whether target is a legal next status.
func (s Status) CanTransitionTo(target Status) bool {
	if s.Validate() != nil || s.IsTerminal() {
		return false
	}
	if target == Cancelled {
		return true
	}
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Transition returns target when the edge exists, otherwise an
// InvalidTransitionError.
func (s Status) Transition(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return s, NewInvalidTransitionError(s, target)
	}
	return target, nil
}

// ValidateCanHaveCourier checks the courier invariant: an order carries a
// courier exactly while ASSIGNED, PICKED_UP, DELIVERING or COMPLETED.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	needsCourier := s.IsActive() || s == Completed
	if courier && !needsCourier {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s),
		)
	}
	if !courier && needsCourier {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s),
		)
	}
	return nil
}
