package commands

import (
	"errors"
	"fmt"
	"time"

	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var ErrMarkStaleCouriersOfflineCommandIsNotConstructed = errors.New(
	"MarkStaleCouriersOfflineCommand must be created via NewMarkStaleCouriersOfflineCommand constructor",
)

// MarkStaleCouriersOfflineCommand ends the shift of ONLINE couriers whose
// last ping is older than StaleAfter.
type MarkStaleCouriersOfflineCommand struct {
	staleAfter time.Duration

	guard guard.ConstructorGuard
}

func NewMarkStaleCouriersOfflineCommand(staleAfter time.Duration) (MarkStaleCouriersOfflineCommand, error) {
	if staleAfter <= 0 {
		return MarkStaleCouriersOfflineCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"staleAfter", fmt.Errorf("%s is not positive", staleAfter))
	}

	return MarkStaleCouriersOfflineCommand{
		staleAfter: staleAfter,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c MarkStaleCouriersOfflineCommand) Validate() error {
	return c.guard.Validate(ErrMarkStaleCouriersOfflineCommandIsNotConstructed)
}

func (c MarkStaleCouriersOfflineCommand) StaleAfter() time.Duration {
	return c.staleAfter
}
