package settings_test

import (
	"math"
	"testing"

	"courierhub/internal/core/domain/model/settings"
	"courierhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	w := settings.Default()

	require.NoError(t, w.Validate())
	assert.InDelta(t, 0.4, w.Distance(), 1e-9)
	assert.InDelta(t, 0.25, w.Rating(), 1e-9)
	assert.InDelta(t, 0.2, w.Workload(), 1e-9)
	assert.InDelta(t, 0.15, w.Response(), 1e-9)
	assert.Equal(t, settings.InitialVersion, w.Version())
	assert.InDelta(t, 1.0, w.Sum(), 1e-9)
}

func TestNewDispatchWeights(t *testing.T) {
	tests := []struct {
		name                                 string
		distance, rating, workload, response float64
		wantErr                              bool
	}{
		{"exact sum", 0.25, 0.25, 0.25, 0.25, false},
		{"within upper tolerance", 0.4, 0.25, 0.2, 0.155, false},
		{"within lower tolerance", 0.4, 0.25, 0.2, 0.145, false},
		{"single weight", 1, 0, 0, 0, false},
		{"upper bound 1.01", 0.4, 0.25, 0.2, 0.16, false},
		{"upper bound 1.01 other tuple", 0.3, 0.3, 0.2, 0.21, false},
		{"lower bound 0.99", 0.4, 0.25, 0.2, 0.14, false},
		{"lower bound 0.99 other tuple", 0.3, 0.3, 0.2, 0.19, false},
		{"just above upper bound", 0.4, 0.25, 0.2, 0.1601, true},
		{"just below lower bound", 0.4, 0.25, 0.2, 0.1399, true},
		{"sum 0.9", 0.4, 0.25, 0.15, 0.1, true},
		{"sum 1.1", 0.5, 0.25, 0.2, 0.15, true},
		{"negative weight", 0.6, 0.5, -0.1, 0, true},
		{"NaN weight", math.NaN(), 0.5, 0.5, 0, true},
		{"infinite weight", math.Inf(1), 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := settings.NewDispatchWeights(tt.distance, tt.rating, tt.workload, tt.response)

			if tt.wantErr {
				require.ErrorIs(t, err, settings.ErrWeightsOutOfTolerance)
				require.ErrorIs(t, w.Validate(), settings.ErrDispatchWeightsNotConstructed)
				return
			}
			require.NoError(t, err)
			require.NoError(t, w.Validate())
		})
	}
}

func TestDispatchWeights_Next(t *testing.T) {
	current := settings.Default()

	next, err := current.Next(0.5, 0.2, 0.2, 0.1)

	require.NoError(t, err)
	assert.Equal(t, current.Version()+1, next.Version())
	assert.InDelta(t, 0.5, next.Distance(), 1e-9)

	_, err = next.Next(0.4, 0.25, 0.15, 0.1)
	require.ErrorIs(t, err, settings.ErrWeightsOutOfTolerance)
}

func TestRestoreDispatchWeights_RejectsVersionZero(t *testing.T) {
	_, err := settings.RestoreDispatchWeights(0.4, 0.25, 0.2, 0.15, 0)

	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
}

func TestDispatchWeights_String(t *testing.T) {
	assert.Equal(t,
		"DispatchWeights(v1 distance=0.400 rating=0.250 workload=0.200 response=0.150)",
		settings.Default().String())
}
