package commands

import (
	"errors"
	"fmt"

	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var ErrUpdateDispatchWeightsCommandIsNotConstructed = errors.New(
	"UpdateDispatchWeightsCommand must be created via NewUpdateDispatchWeightsCommand constructor",
)

// UpdateDispatchWeightsCommand replaces the dispatch weights wholesale.
// ExpectedVersion, when non-zero, is the version the caller read; the update
// fails if another update got there first.
type UpdateDispatchWeightsCommand struct {
	distance        float64
	rating          float64
	workload        float64
	response        float64
	expectedVersion int

	guard guard.ConstructorGuard
}

// NewUpdateDispatchWeightsCommand only checks the arguments' shape. Range and
// sum rules are enforced by the settings model so a rejected update reports
// settings.ErrWeightsOutOfTolerance.
func NewUpdateDispatchWeightsCommand(
	distance, rating, workload, response float64,
	expectedVersion int,
) (UpdateDispatchWeightsCommand, error) {
	if expectedVersion < 0 {
		return UpdateDispatchWeightsCommand{}, errs.NewVersionIsInvalidErrorWithCause(
			"expectedVersion", fmt.Errorf("%d is negative", expectedVersion))
	}

	return UpdateDispatchWeightsCommand{
		distance:        distance,
		rating:          rating,
		workload:        workload,
		response:        response,
		expectedVersion: expectedVersion,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateDispatchWeightsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDispatchWeightsCommandIsNotConstructed)
}

func (c UpdateDispatchWeightsCommand) Distance() float64    { return c.distance }
func (c UpdateDispatchWeightsCommand) Rating() float64      { return c.rating }
func (c UpdateDispatchWeightsCommand) Workload() float64    { return c.workload }
func (c UpdateDispatchWeightsCommand) Response() float64    { return c.response }
func (c UpdateDispatchWeightsCommand) ExpectedVersion() int { return c.expectedVersion }
