package commands

import (
	"errors"
	"fmt"

	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

const DefaultDispatchBatch = 50

var ErrDispatchPendingOrdersCommandIsNotConstructed = errors.New(
	"DispatchPendingOrdersCommand must be created via NewDispatchPendingOrdersCommand constructor",
)

// DispatchPendingOrdersCommand sweeps PROCESSING orders and dispatches up to
// Limit of them, oldest first.
type DispatchPendingOrdersCommand struct {
	limit int

	guard guard.ConstructorGuard
}

func NewDispatchPendingOrdersCommand(limit int) (DispatchPendingOrdersCommand, error) {
	if limit <= 0 {
		return DispatchPendingOrdersCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"limit", fmt.Errorf("%d is not positive", limit))
	}

	return DispatchPendingOrdersCommand{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c DispatchPendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrDispatchPendingOrdersCommandIsNotConstructed)
}

func (c DispatchPendingOrdersCommand) Limit() int {
	return c.limit
}
