package commands_test

import (
	"errors"
	"testing"
	"time"

	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportCourierLocationCommandHandler_Handle(t *testing.T) {
	courierID := kernel.NewUUID()
	point := kernel.MustGeoPoint(55.75, 37.61)
	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		applied  bool
		cacheErr error
	}{
		{name: "applied ping is mirrored to the cache", applied: true},
		{name: "older ping leaves the cache alone", applied: false},
		{name: "cache failure does not fail the ping", applied: true, cacheErr: errors.New("redis down")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			ctx := t.Context()
			cmd, err := commands.NewReportCourierLocationCommand(courierID, point, at)
			require.NoError(t, err)

			repo := new(MockCourierRepository)
			uow := new(MockUoW)
			factory := new(MockCourierUoWFactory)
			cache := new(MockPositionCache)

			factory.On("Create").Return(uow).Once()
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("CourierRepository").Return(repo).Once()
			repo.On("UpdateLocation", ctx, courierID, point, at).Return(tc.applied, nil).Once()
			uow.On("Commit", ctx).Return(nil).Once()
			uow.On("Rollback", ctx).Return(nil).Once()
			if tc.applied {
				cache.On("Set", ctx, courierID, point).Return(tc.cacheErr).Once()
			}

			handler := commands.NewReportCourierLocationCommandHandler(factory, cache, nil)

			// Act
			applied, err := handler.Handle(ctx, cmd)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tc.applied, applied)
			cache.AssertExpectations(t)
			if !tc.applied {
				cache.AssertNotCalled(t, "Set")
			}
		})
	}
}

func TestReportCourierLocationCommandHandler_Handle_WithoutCache(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	cmd, err := commands.NewReportCourierLocationCommand(courierID, kernel.MustGeoPoint(1, 1), time.Now())
	require.NoError(t, err)

	repo := new(MockCourierRepository)
	uow := new(MockUoW)
	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CourierRepository").Return(repo).Once()
	repo.On("UpdateLocation", ctx, courierID, cmd.Point(), cmd.At()).Return(true, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewReportCourierLocationCommandHandler(factory, nil, nil)

	applied, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, applied)
}
