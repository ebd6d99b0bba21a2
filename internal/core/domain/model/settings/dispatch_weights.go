// Package settings holds the tunable dispatch weights.
package settings

import (
	"errors"
	"fmt"
	"math"

	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

const (
	// WeightSumTolerance is how far the weight sum may drift from 1.0.
	WeightSumTolerance = 0.01
	// InitialVersion is the version of the record created on first use.
	InitialVersion = 1

	// sumEpsilon absorbs float rounding so both tolerance bounds are inclusive.
	sumEpsilon = 1e-9
)

var (
	ErrWeightsOutOfTolerance         = errors.New("weights out of tolerance")
	ErrDispatchWeightsNotConstructed = errors.New("DispatchWeights must be created via NewDispatchWeights")
)

// DispatchWeights are the four coefficients of the composite dispatch score.
// They are replaced wholesale and never normalised: a tuple that does not sum
// to 1.0 within WeightSumTolerance is rejected.
type DispatchWeights struct {
	distance float64
	rating   float64
	workload float64
	response float64
	version  int
	guard    guard.ConstructorGuard
}

func NewDispatchWeights(distance, rating, workload, response float64) (DispatchWeights, error) {
	return RestoreDispatchWeights(distance, rating, workload, response, InitialVersion)
}

func RestoreDispatchWeights(distance, rating, workload, response float64, version int) (DispatchWeights, error) {
	if version < InitialVersion {
		return DispatchWeights{}, errs.NewVersionIsInvalidErrorWithCause("version",
			fmt.Errorf("%d is lower than %d", version, InitialVersion))
	}
	w := DispatchWeights{
		distance: distance,
		rating:   rating,
		workload: workload,
		response: response,
		version:  version,
		guard:    guard.NewConstructorGuard(),
	}
	if err := w.check(); err != nil {
		return DispatchWeights{}, err
	}
	return w, nil
}

// Default returns the built-in weights {0.4, 0.25, 0.2, 0.15}.
func Default() DispatchWeights {
	w, _ := NewDispatchWeights(0.4, 0.25, 0.2, 0.15)
	return w
}

func (w DispatchWeights) Validate() error {
	return w.guard.Validate(ErrDispatchWeightsNotConstructed)
}

func (w DispatchWeights) Distance() float64 { return w.distance }
func (w DispatchWeights) Rating() float64   { return w.rating }
func (w DispatchWeights) Workload() float64 { return w.workload }
func (w DispatchWeights) Response() float64 { return w.response }
func (w DispatchWeights) Version() int      { return w.version }

func (w DispatchWeights) Sum() float64 {
	return w.distance + w.rating + w.workload + w.response
}

// Next returns the replacement record that supersedes w.
func (w DispatchWeights) Next(distance, rating, workload, response float64) (DispatchWeights, error) {
	return RestoreDispatchWeights(distance, rating, workload, response, w.version+1)
}

func (w DispatchWeights) String() string {
	return fmt.Sprintf("DispatchWeights(v%d distance=%.3f rating=%.3f workload=%.3f response=%.3f)",
		w.version, w.distance, w.rating, w.workload, w.response)
}

func (w DispatchWeights) check() error {
	named := []struct {
		name  string
		value float64
	}{
		{"distance", w.distance},
		{"rating", w.rating},
		{"workload", w.workload},
		{"response", w.response},
	}

	var problems []error
	for _, n := range named {
		if math.IsNaN(n.value) || math.IsInf(n.value, 0) || n.value < 0 {
			problems = append(problems, fmt.Errorf("%s weight %v must be a non-negative number", n.name, n.value))
		}
	}
	if len(problems) == 0 {
		if sum := w.Sum(); math.Abs(sum-1.0) > WeightSumTolerance+sumEpsilon {
			problems = append(problems, fmt.Errorf("sum %.4f is outside 1.0 ± %.2f", sum, WeightSumTolerance))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %w", ErrWeightsOutOfTolerance, errors.Join(problems...))
	}
	return nil
}
