package services

import (
	"cmp"
	"errors"
	"slices"

	"courierhub/internal/core/domain/model/courier"
	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/core/domain/model/settings"
)

// ErrNoCandidate is returned when no on-shift courier with a known location
// and a positive score exists for the order.
var ErrNoCandidate = errors.New("no candidate courier")

// Candidate is a scored courier.
type Candidate struct {
	Courier *courier.Courier
	Score   float64
}

// OrderDispatcher ranks couriers for an order.
//
// Ranking rules:
//   - only ONLINE and BUSY couriers with a known location are considered
//   - couriers scoring 0 are excluded
//   - highest composite score first
//   - exact ties prefer the lower workload, then the lower courier id
//
// Ranking is deterministic: identical inputs always yield the same order.
// Binding the winner to the order is left to the caller so that the courier
// claim and the order transition can be committed together.
//
// Example usage:
//
//	dispatcher := services.NewOrderDispatcher(services.NewDispatchScorer())
//	ranked, err := dispatcher.Rank(o, couriers, weights)
//	if errors.Is(err, services.ErrNoCandidate) {
//	    // report to the caller, do not retry
//	}
type OrderDispatcher struct {
	scorer DispatchScorer
}

func NewOrderDispatcher(scorer DispatchScorer) OrderDispatcher {
	return OrderDispatcher{scorer: scorer}
}

// Rank returns the eligible couriers, best first.
func (d OrderDispatcher) Rank(
	o *order.Order,
	couriers []*courier.Courier,
	weights settings.DispatchWeights,
) ([]Candidate, error) {
	if err := errors.Join(o.Validate(), weights.Validate()); err != nil {
		return nil, err
	}
	if !o.Status().IsDispatchable() {
		return nil, order.NewInvalidTransitionError(o.Status(), order.Assigned)
	}

	candidates := make([]Candidate, 0, len(couriers))
	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if !c.IsDispatchCandidate() {
			continue
		}
		score := d.scorer.Score(o.Pickup(), c, weights)
		if score <= 0 {
			continue
		}
		candidates = append(candidates, Candidate{Courier: c, Score: score})
	}

	if len(candidates) == 0 {
		return nil, ErrNoCandidate
	}

	slices.SortFunc(candidates, compareCandidates)
	return candidates, nil
}

func compareCandidates(a, b Candidate) int {
	if a.Score != b.Score {
		return cmp.Compare(b.Score, a.Score)
	}
	if a.Courier.Workload() != b.Courier.Workload() {
		return cmp.Compare(a.Courier.Workload(), b.Courier.Workload())
	}
	return a.Courier.ID().Compare(b.Courier.ID())
}
