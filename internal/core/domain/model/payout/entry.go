// Package payout models courier ledger entries: delivery credits and manual
// payout debits.
package payout

import (
	"errors"
	"fmt"
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var (
	ErrEntryIsNotConstructed = errors.New("Entry must be created via NewCredit, NewDebit or RestoreEntry")
	// ErrAlreadyCredited is returned when an order's delivery fee was already credited.
	ErrAlreadyCredited = errors.New("delivery already credited")
)

type Kind string

const (
	Credit Kind = "CREDIT"
	Debit  Kind = "DEBIT"
)

func (k Kind) Validate() error {
	if k != Credit && k != Debit {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not CREDIT or DEBIT", string(k)))
	}
	return nil
}

// Entry is one immutable line of a courier's ledger. Amount is always
// positive; Kind decides the sign applied to the balance.
type Entry struct {
	id        kernel.UUID
	courierID kernel.UUID
	orderID   *kernel.UUID
	kind      Kind
	amount    int64
	createdAt time.Time
	guard     guard.ConstructorGuard
}

// NewCredit books the delivery fee of a completed order.
func NewCredit(courierID, orderID kernel.UUID, amount int64, at time.Time) (*Entry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	return RestoreEntry(kernel.NewUUID(), courierID, &orderID, Credit, amount, at)
}

// NewDebit books a manual payout.
func NewDebit(courierID kernel.UUID, amount int64, at time.Time) (*Entry, error) {
	return RestoreEntry(kernel.NewUUID(), courierID, nil, Debit, amount, at)
}

func RestoreEntry(id, courierID kernel.UUID, orderID *kernel.UUID, kind Kind, amount int64, at time.Time) (*Entry, error) {
	var amountErr, atErr error
	if amount <= 0 {
		amountErr = errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%d is not greater than 0", amount))
	}
	if at.IsZero() {
		atErr = errs.NewValueIsRequiredError("createdAt")
	}
	if err := errors.Join(id.Validate(), courierID.Validate(), kind.Validate(), amountErr, atErr); err != nil {
		return nil, err
	}

	e := &Entry{
		id:        id,
		courierID: courierID,
		kind:      kind,
		amount:    amount,
		createdAt: at,
		guard:     guard.NewConstructorGuard(),
	}
	if orderID != nil {
		oid := *orderID
		e.orderID = &oid
	}
	return e, nil
}

func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

func (e *Entry) ID() kernel.UUID        { return e.id }
func (e *Entry) CourierID() kernel.UUID { return e.courierID }
func (e *Entry) Kind() Kind             { return e.kind }
func (e *Entry) Amount() int64          { return e.amount }
func (e *Entry) CreatedAt() time.Time   { return e.createdAt }

func (e *Entry) OrderID() *kernel.UUID {
	if e.orderID == nil {
		return nil
	}
	id := *e.orderID
	return &id
}

// BalanceDelta is the signed change the entry applies to the balance.
func (e *Entry) BalanceDelta() int64 {
	if e.kind == Debit {
		return -e.amount
	}
	return e.amount
}
