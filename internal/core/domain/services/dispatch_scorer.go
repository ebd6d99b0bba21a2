package services

import (
	"math"

	"courierhub/internal/core/domain/model/courier"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/settings"
)

// DispatchScorer computes the composite score of a courier for an order
// location. It is pure and safe for concurrent use.
//
// The composite is the weighted sum of four factors, each in [0, 1]:
//   - distance: 1 / (1 + planar distance between order and courier)
//   - rating: rating / 5
//   - workload: 1 / (1 + open orders)
//   - response: 1 / (1 + average response seconds / 60)
//
// A courier without a known location scores 0.
type DispatchScorer struct{}

func NewDispatchScorer() DispatchScorer {
	return DispatchScorer{}
}

// Score returns the composite score in [0, 1].
func (DispatchScorer) Score(orderAt kernel.GeoPoint, c *courier.Courier, w settings.DispatchWeights) float64 {
	if c == nil || c.Location() == nil {
		return 0
	}
	distance, err := orderAt.Distance(*c.Location())
	if err != nil {
		return 0
	}

	distanceScore := 1 / (1 + distance)
	ratingScore := c.Rating() / courier.RatingMax
	workloadScore := 1 / (1 + float64(c.Workload()))
	responseScore := 1 / (1 + c.AvgResponseSeconds()/60)

	composite := w.Distance()*distanceScore +
		w.Rating()*ratingScore +
		w.Workload()*workloadScore +
		w.Response()*responseScore

	return clamp01(composite)
}

// A weight tuple may sum to 1.01, which can push a perfect courier just above 1.
func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
