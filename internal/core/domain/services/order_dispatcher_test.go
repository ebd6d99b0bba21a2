package services_test

import (
	"testing"
	"time"

	"courierhub/internal/core/domain/model/courier"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/core/domain/model/settings"
	"courierhub/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDispatchableOrder(t *testing.T, at kernel.GeoPoint) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), at, kernel.MustGeoPoint(1, 1), "Main st 1", 500, time.Now())
	require.NoError(t, err)
	return o
}

func TestOrderDispatcher_Rank(t *testing.T) {
	dispatcher := services.NewOrderDispatcher(services.NewDispatchScorer())
	w := settings.Default()
	orderAt := kernel.MustGeoPoint(10, 10)

	t.Run("should pick the nearer of two otherwise identical couriers", func(t *testing.T) {
		a := newCourier(t, courierSpec{at: point(10, 10.1), rating: 5, response: 30})
		b := newCourier(t, courierSpec{at: point(10, 15), rating: 5, response: 30})

		ranked, err := dispatcher.Rank(newDispatchableOrder(t, orderAt), []*courier.Courier{b, a}, w)

		require.NoError(t, err)
		require.Len(t, ranked, 2)
		assert.True(t, ranked[0].Courier.IsEqual(a))
		assert.Greater(t, ranked[0].Score, ranked[1].Score)
	})

	t.Run("should break exact ties by workload then id", func(t *testing.T) {
		low, err := kernel.UUIDFromString("00000000-0000-4000-8000-000000000001")
		require.NoError(t, err)
		high, err := kernel.UUIDFromString("00000000-0000-4000-8000-000000000002")
		require.NoError(t, err)

		// distance-only weights make workload irrelevant to the score itself
		distanceOnly, err := settings.NewDispatchWeights(1, 0, 0, 0)
		require.NoError(t, err)

		busy := newCourier(t, courierSpec{id: low, at: point(10, 11), status: courier.Busy, workload: 2})
		idleHigh := newCourier(t, courierSpec{id: high, at: point(10, 11)})
		lowest, err := kernel.UUIDFromString("00000000-0000-4000-8000-000000000000")
		require.NoError(t, err)
		idleLow := newCourier(t, courierSpec{id: lowest, at: point(10, 9)})

		ranked, err := dispatcher.Rank(newDispatchableOrder(t, orderAt), []*courier.Courier{busy, idleHigh, idleLow}, distanceOnly)

		require.NoError(t, err)
		require.Len(t, ranked, 3)
		assert.True(t, ranked[0].Courier.IsEqual(idleLow))
		assert.True(t, ranked[1].Courier.IsEqual(idleHigh))
		assert.True(t, ranked[2].Courier.IsEqual(busy))
	})

	t.Run("should be deterministic regardless of input order", func(t *testing.T) {
		couriers := []*courier.Courier{
			newCourier(t, courierSpec{at: point(10, 11), rating: 3}),
			newCourier(t, courierSpec{at: point(10, 11), rating: 3}),
			newCourier(t, courierSpec{at: point(11, 11), rating: 4, workload: 1, status: courier.Busy}),
		}
		reversed := []*courier.Courier{couriers[2], couriers[1], couriers[0]}
		o := newDispatchableOrder(t, orderAt)

		first, err := dispatcher.Rank(o, couriers, w)
		require.NoError(t, err)
		second, err := dispatcher.Rank(o, reversed, w)
		require.NoError(t, err)

		for i := range first {
			assert.True(t, first[i].Courier.IsEqual(second[i].Courier))
		}
	})

	t.Run("should skip offline couriers and couriers without location", func(t *testing.T) {
		offline := newCourier(t, courierSpec{at: point(10, 10), rating: 5, status: courier.Offline})
		unknown := newCourier(t, courierSpec{rating: 5})

		_, err := dispatcher.Rank(newDispatchableOrder(t, orderAt), []*courier.Courier{offline, unknown}, w)

		require.ErrorIs(t, err, services.ErrNoCandidate)
	})

	t.Run("should report no candidate for an empty roster", func(t *testing.T) {
		_, err := dispatcher.Rank(newDispatchableOrder(t, orderAt), nil, w)

		require.ErrorIs(t, err, services.ErrNoCandidate)
	})

	t.Run("should exclude couriers scoring 0", func(t *testing.T) {
		ratingOnly, err := settings.NewDispatchWeights(0, 1, 0, 0)
		require.NoError(t, err)
		unrated := newCourier(t, courierSpec{at: point(10, 10), rating: 0})

		_, err = dispatcher.Rank(newDispatchableOrder(t, orderAt), []*courier.Courier{unrated}, ratingOnly)

		require.ErrorIs(t, err, services.ErrNoCandidate)
	})

	t.Run("should refuse orders that are not dispatchable", func(t *testing.T) {
		o := newDispatchableOrder(t, orderAt)
		_, err := o.Cancel("", time.Now())
		require.NoError(t, err)

		_, err = dispatcher.Rank(o, []*courier.Courier{newCourier(t, courierSpec{at: point(10, 10), rating: 5})}, w)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("should reject unconstructed weights", func(t *testing.T) {
		_, err := dispatcher.Rank(newDispatchableOrder(t, orderAt), nil, settings.DispatchWeights{})

		require.ErrorIs(t, err, settings.ErrDispatchWeightsNotConstructed)
	})
}
