package errs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"courierhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("row locked")

	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "order not found",
			err:      errs.NewObjectNotFoundError("orderId", "7d1e"),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: 7d1e",
		},
		{
			name:     "courier not found with cause",
			err:      errs.NewObjectNotFoundErrorWithCause("courierId", "c-1", cause),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: param is: courierId, ID is: c-1 (cause: row locked)",
		},
		{
			name:     "invalid fee",
			err:      errs.NewValueIsInvalidError("deliveryFee"),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: deliveryFee",
		},
		{
			name:     "invalid ttl with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("ttl", errors.New("-1m is not positive")),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: ttl (cause: -1m is not positive)",
		},
		{
			name:     "rating out of range",
			err:      errs.NewValueIsOutOfRangeError("rating", 7.5, 0, 5),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: 7.5 is rating, min value is 0, max value is 5",
		},
		{
			name:     "latitude out of range with cause",
			err:      errs.NewValueIsOutOfRangeErrorWithCause("lat", 91, -90, 90, cause),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: 91 is lat, min value is -90, max value is 90 (cause: row locked)",
		},
		{
			name:     "missing address",
			err:      errs.NewValueIsRequiredError("address"),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: address",
		},
		{
			name:     "missing secret with cause",
			err:      errs.NewValueIsRequiredErrorWithCause("secret", cause),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: secret (cause: row locked)",
		},
		{
			name:     "stale weights version",
			err:      errs.NewVersionIsInvalidError("dispatch weights"),
			sentinel: errs.ErrVersionIsInvalid,
			message:  "version is invalid: dispatch weights",
		},
		{
			name:     "stale order version with cause",
			err:      errs.NewVersionIsInvalidErrorWithCause("order", errors.New("status changed")),
			sentinel: errs.ErrVersionIsInvalid,
			message:  "version is invalid: order (cause: status changed)",
		},
		{
			name:     "storage outage",
			err:      errs.NewStorageError("orders.get", nil),
			sentinel: errs.ErrStorageUnavailable,
			message:  "storage is unavailable: orders.get",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.err.Error())
			require.ErrorIs(t, tt.err, tt.sentinel)
			require.ErrorIs(t, fmt.Errorf("handler: %w", tt.err), tt.sentinel)
		})
	}
}

func TestObjectNotFoundError_SanitizesID(t *testing.T) {
	err := errs.NewObjectNotFoundError("orderId", "abc\r\nINFO forged entry")

	assert.Equal(t, "object not found: abc INFO forged entry", err.Error())
	assert.Equal(t, "abc\r\nINFO forged entry", err.ID, "the raw id is kept for callers")
}

func TestObjectNotFoundError_NonStringID(t *testing.T) {
	err := errs.NewObjectNotFoundError("courierId", 42)

	assert.Equal(t, "object not found: %!s(int=42)", err.Error())
}

func TestStorageError(t *testing.T) {
	t.Run("keeps its cause reachable", func(t *testing.T) {
		err := errs.NewStorageError("ledger.append", context.DeadlineExceeded)

		require.ErrorIs(t, err, errs.ErrStorageUnavailable)
		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, "storage is unavailable: ledger.append (cause: context deadline exceeded)", err.Error())
	})

	t.Run("only storage errors are retryable", func(t *testing.T) {
		assert.True(t, errs.IsRetryable(fmt.Errorf("dispatch: %w", errs.NewStorageError("couriers.list", nil))))
		assert.False(t, errs.IsRetryable(errs.NewValueIsInvalidError("amount")))
		assert.False(t, errs.IsRetryable(errs.NewObjectNotFoundError("orderId", "x")))
		assert.False(t, errs.IsRetryable(nil))
	})

	t.Run("domain sentinels stay distinct", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("amount", -1, 1, 100)

		assert.NotErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.NotErrorIs(t, err, errs.ErrStorageUnavailable)
	})
}
