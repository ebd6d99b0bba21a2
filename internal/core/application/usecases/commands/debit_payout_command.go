package commands

import (
	"errors"
	"fmt"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var ErrDebitPayoutCommandIsNotConstructed = errors.New(
	"DebitPayoutCommand must be created via NewDebitPayoutCommand constructor",
)

// DebitPayoutCommand records money paid out to a courier, in minor units.
type DebitPayoutCommand struct {
	courierID kernel.UUID
	amount    int64

	guard guard.ConstructorGuard
}

func NewDebitPayoutCommand(courierID kernel.UUID, amount int64) (DebitPayoutCommand, error) {
	var amountErr error
	if amount <= 0 {
		amountErr = errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%d is not positive", amount))
	}
	if err := errors.Join(courierID.Validate(), amountErr); err != nil {
		return DebitPayoutCommand{}, err
	}

	return DebitPayoutCommand{
		courierID: courierID,
		amount:    amount,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DebitPayoutCommand) Validate() error {
	return c.guard.Validate(ErrDebitPayoutCommandIsNotConstructed)
}

func (c DebitPayoutCommand) CourierID() kernel.UUID { return c.courierID }
func (c DebitPayoutCommand) Amount() int64          { return c.amount }
