package courier_test

import (
	"math"
	"testing"
	"time"

	"courierhub/internal/core/domain/model/courier"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createValidCourier(t *testing.T) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), "Test Courier", 4.5, 30)
	require.NoError(t, err)
	require.NotNil(t, c)
	return c
}

func TestNewCourier(t *testing.T) {
	t.Run("should create offline courier without location", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := courier.NewCourier(id, " Alice ", 4.8, 45)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "Alice", c.Name())
		assert.Equal(t, courier.Offline, c.Status())
		assert.InDelta(t, 4.8, c.Rating(), 1e-9)
		assert.InDelta(t, 45.0, c.AvgResponseSeconds(), 1e-9)
		assert.Nil(t, c.Location())
		assert.Nil(t, c.LocationAt())
		assert.Zero(t, c.Workload())
		assert.Zero(t, c.Balance())
		assert.Zero(t, c.DeliveredCount())
		assert.False(t, c.IsDispatchCandidate())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		c, err := courier.NewCourier(kernel.NewUUID(), "  ", 4, 30)

		require.ErrorIs(t, err, courier.ErrNameIsRequired)
		assert.Nil(t, c)
	})

	t.Run("should reject rating out of range", func(t *testing.T) {
		for _, rating := range []float64{-0.1, 5.1, math.NaN()} {
			_, err := courier.NewCourier(kernel.NewUUID(), "Bob", rating, 30)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should reject negative response time", func(t *testing.T) {
		_, err := courier.NewCourier(kernel.NewUUID(), "Bob", 4, -1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should join all errors", func(t *testing.T) {
		_, err := courier.NewCourier(kernel.UUID{}, "", 9, -1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "rating")
		assert.Contains(t, err.Error(), "avgResponseSeconds")
	})
}

func TestCourier_Validate(t *testing.T) {
	var nilCourier *courier.Courier
	require.ErrorIs(t, nilCourier.Validate(), courier.ErrCourierIsNotConstructed)
	require.ErrorIs(t, (&courier.Courier{}).Validate(), courier.ErrCourierIsNotConstructed)
	require.NoError(t, createValidCourier(t).Validate())
}

func TestCourier_IsEqual(t *testing.T) {
	c := createValidCourier(t)
	restored, err := courier.RestoreCourier(courier.Snapshot{
		ID: c.ID(), Name: "Other name", Status: courier.Online, Rating: 1,
	})
	require.NoError(t, err)

	assert.True(t, c.IsEqual(restored))
	assert.False(t, c.IsEqual(createValidCourier(t)))
	assert.False(t, c.IsEqual(nil))
}

func TestCourier_UpdateLocation(t *testing.T) {
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	first := kernel.MustGeoPoint(55.75, 37.61)
	second := kernel.MustGeoPoint(55.76, 37.62)

	t.Run("should keep the latest ping", func(t *testing.T) {
		c := createValidCourier(t)

		applied, err := c.UpdateLocation(first, base)
		require.NoError(t, err)
		assert.True(t, applied)

		applied, err = c.UpdateLocation(second, base.Add(time.Second))
		require.NoError(t, err)
		assert.True(t, applied)

		require.NotNil(t, c.Location())
		assert.True(t, c.Location().IsEqual(second))
		assert.Equal(t, base.Add(time.Second), *c.LocationAt())
	})

	t.Run("should ignore an older ping", func(t *testing.T) {
		c := createValidCourier(t)
		_, err := c.UpdateLocation(second, base.Add(time.Minute))
		require.NoError(t, err)

		applied, err := c.UpdateLocation(first, base)

		require.NoError(t, err)
		assert.False(t, applied)
		assert.True(t, c.Location().IsEqual(second))
	})

	t.Run("should reject invalid input", func(t *testing.T) {
		c := createValidCourier(t)

		_, err := c.UpdateLocation(kernel.GeoPoint{}, base)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = c.UpdateLocation(first, time.Time{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, c.Location())
	})
}

func TestCourier_Availability(t *testing.T) {
	c := createValidCourier(t)
	_, err := c.UpdateLocation(kernel.MustGeoPoint(1, 1), time.Now())
	require.NoError(t, err)

	c.SetAvailability(true)
	assert.Equal(t, courier.Online, c.Status())
	assert.True(t, c.IsLive())
	assert.True(t, c.IsDispatchCandidate())

	require.NoError(t, c.Claim())
	assert.Equal(t, courier.Busy, c.Status())
	assert.False(t, c.IsLive())
	assert.True(t, c.IsDispatchCandidate())

	c.SetAvailability(false)
	assert.Equal(t, courier.Offline, c.Status())
	assert.Equal(t, 1, c.Workload())
	assert.False(t, c.IsDispatchCandidate())

	c.SetAvailability(true)
	assert.Equal(t, courier.Busy, c.Status(), "open orders keep the courier busy")
}

func TestCourier_ClaimAndRelease(t *testing.T) {
	t.Run("offline courier cannot be claimed", func(t *testing.T) {
		c := createValidCourier(t)

		err := c.Claim()

		require.ErrorIs(t, err, courier.ErrCourierUnavailable)
		assert.Zero(t, c.Workload())
	})

	t.Run("busy courier can take another order", func(t *testing.T) {
		c := createValidCourier(t)
		c.SetAvailability(true)

		require.NoError(t, c.Claim())
		require.NoError(t, c.Claim())

		assert.Equal(t, 2, c.Workload())
		assert.Equal(t, courier.Busy, c.Status())
	})

	t.Run("release returns to online when workload reaches zero", func(t *testing.T) {
		c := createValidCourier(t)
		c.SetAvailability(true)
		require.NoError(t, c.Claim())
		require.NoError(t, c.Claim())

		c.Release(true)
		assert.Equal(t, 1, c.Workload())
		assert.Equal(t, courier.Busy, c.Status())

		c.Release(false)
		assert.Zero(t, c.Workload())
		assert.Equal(t, courier.Online, c.Status())
		assert.Equal(t, 1, c.DeliveredCount())
	})

	t.Run("release never drives workload negative", func(t *testing.T) {
		c := createValidCourier(t)

		c.Release(false)

		assert.Zero(t, c.Workload())
		assert.Equal(t, courier.Offline, c.Status())
	})
}

func TestCourier_AdjustBalance(t *testing.T) {
	c := createValidCourier(t)

	require.NoError(t, c.AdjustBalance(15000))
	require.NoError(t, c.AdjustBalance(-20000))
	assert.Equal(t, int64(-5000), c.Balance(), "balance may go negative")

	restored, err := courier.RestoreCourier(courier.Snapshot{
		ID: kernel.NewUUID(), Name: "Rich", Status: courier.Online, Balance: math.MaxInt64,
	})
	require.NoError(t, err)
	require.ErrorIs(t, restored.AdjustBalance(1), errs.ErrValueIsOutOfRange)
	assert.Equal(t, int64(math.MaxInt64), restored.Balance())
}

func TestRestoreCourier(t *testing.T) {
	loc := kernel.MustGeoPoint(10, 20)
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("should restore every field", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := courier.RestoreCourier(courier.Snapshot{
			ID:                 id,
			Name:               "Carol",
			Location:           &loc,
			LocationAt:         &at,
			Status:             courier.Busy,
			Workload:           2,
			Rating:             3.5,
			AvgResponseSeconds: 90,
			Balance:            -300,
			DeliveredCount:     17,
		})

		require.NoError(t, err)
		assert.True(t, c.ID().IsEqual(id))
		assert.True(t, c.Location().IsEqual(loc))
		assert.Equal(t, at, *c.LocationAt())
		assert.Equal(t, courier.Busy, c.Status())
		assert.Equal(t, 2, c.Workload())
		assert.Equal(t, int64(-300), c.Balance())
		assert.Equal(t, 17, c.DeliveredCount())
	})

	t.Run("should reject invalid state", func(t *testing.T) {
		_, err := courier.RestoreCourier(courier.Snapshot{
			ID: kernel.NewUUID(), Name: "Dan", Status: courier.StatusUnknown, Workload: -1,
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "workload")
	})
}

func TestParseStatus(t *testing.T) {
	for _, s := range []courier.Status{courier.Offline, courier.Online, courier.Busy} {
		parsed, err := courier.ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := courier.ParseStatus("ON_BREAK")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, "UNKNOWN", courier.Status(10).String())
}
