package commands_test

import (
	"log/slog"
	"testing"
	"time"

	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/domain/model/courier"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/core/domain/model/settings"
	"courierhub/internal/core/domain/services"
	"courierhub/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func onShiftCourier(t *testing.T, name string, at kernel.GeoPoint, rating float64) *courier.Courier {
	t.Helper()
	seen := time.Now().UTC()
	c, err := courier.RestoreCourier(courier.Snapshot{
		ID:                 kernel.NewUUID(),
		Name:               name,
		Location:           &at,
		LocationAt:         &seen,
		Status:             courier.Online,
		Rating:             rating,
		AvgResponseSeconds: 30,
	})
	require.NoError(t, err)
	return c
}

func createdOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
		kernel.MustGeoPoint(10, 10), kernel.MustGeoPoint(12, 12), "Lenina 5", 500, time.Now().UTC())
	require.NoError(t, err)
	return o
}

func newDispatchHandler(factory commands.UoWFactory, notifier ports.Notifier, publisher ports.OrderEventPublisher) *commands.DispatchOrderCommandHandler {
	return commands.NewDispatchOrderCommandHandler(
		factory,
		services.NewOrderDispatcher(services.NewDispatchScorer()),
		commands.NewEffects(notifier, publisher, slog.Default()),
	)
}

func TestDispatchOrderCommandHandler_Handle_NoCandidateRollsBack(t *testing.T) {
	// Arrange
	ctx := t.Context()
	o := createdOrder(t)
	cmd, err := commands.NewDispatchOrderCommand(o.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	settingsRepo := new(MockSettingsRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("OrderRepository").Return(orderRepo)
	mockUoW.On("SettingsRepository").Return(settingsRepo)
	mockUoW.On("CourierRepository").Return(courierRepo)
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	settingsRepo.On("GetCurrent", ctx).Return(settings.Default(), nil).Once()
	courierRepo.On("GetAllOnShift", ctx).Return([]*courier.Courier{}, nil).Once()

	handler := newDispatchHandler(mockFactory, nil, nil)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, services.ErrNoCandidate)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
	orderRepo.AssertNotCalled(t, "UpdateIfStatus", mock.Anything, mock.Anything, mock.Anything)
	courierRepo.AssertNotCalled(t, "Claim", mock.Anything, mock.Anything)
	mockUoW.AssertExpectations(t)
}

func TestDispatchOrderCommandHandler_Handle_SkipsCourierThatWentOffline(t *testing.T) {
	// Arrange
	ctx := t.Context()
	o := createdOrder(t)
	cmd, err := commands.NewDispatchOrderCommand(o.ID())
	require.NoError(t, err)

	best := onShiftCourier(t, "Best", kernel.MustGeoPoint(10, 10), 5)
	second := onShiftCourier(t, "Second", kernel.MustGeoPoint(11, 11), 4)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	settingsRepo := new(MockSettingsRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)
	notifier := new(MockNotifier)
	publisher := new(MockPublisher)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("OrderRepository").Return(orderRepo)
	mockUoW.On("SettingsRepository").Return(settingsRepo)
	mockUoW.On("CourierRepository").Return(courierRepo)
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	settingsRepo.On("GetCurrent", ctx).Return(settings.Default(), nil).Once()
	courierRepo.On("GetAllOnShift", ctx).Return([]*courier.Courier{second, best}, nil).Once()
	mock.InOrder(
		courierRepo.On("Claim", ctx, best.ID()).Return(courier.ErrCourierUnavailable).Once(),
		courierRepo.On("Claim", ctx, second.ID()).Return(nil).Once(),
		orderRepo.On("UpdateIfStatus", ctx, o, order.Created).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	notifier.On("Send", ctx, ports.NotificationTarget{Recipient: ports.RecipientCourier, ID: second.ID()}, mock.Anything).
		Return(nil).Once()
	notifier.On("Send", ctx, ports.NotificationTarget{Recipient: ports.RecipientCustomer, ID: o.CustomerID()}, mock.Anything).
		Return(nil).Once()
	publisher.On("Publish", ctx, mock.MatchedBy(func(evt order.StatusChanged) bool {
		return evt.Status == order.Assigned && evt.CourierID != nil && evt.CourierID.IsEqual(second.ID())
	})).Return(nil).Once()

	handler := newDispatchHandler(mockFactory, notifier, publisher)

	// Act
	result, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.True(t, result.CourierID.IsEqual(second.ID()))
	assert.Equal(t, "Second", result.CourierName)
	assert.Equal(t, order.Assigned, o.Status())
	require.NotNil(t, o.Courier())
	assert.True(t, o.Courier().IsEqual(second.ID()))
	mockUoW.AssertExpectations(t)
	courierRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestDispatchOrderCommandHandler_Handle_AssignedOrderIsRejected(t *testing.T) {
	// Arrange
	ctx := t.Context()
	c := onShiftCourier(t, "Any", kernel.MustGeoPoint(1, 1), 4)
	o := createdOrder(t)
	require.NoError(t, o.Assign(c.ID(), kernel.MustGeoPoint(1, 1), time.Now()))
	cmd, err := commands.NewDispatchOrderCommand(o.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	settingsRepo := new(MockSettingsRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("OrderRepository").Return(orderRepo)
	mockUoW.On("SettingsRepository").Return(settingsRepo)
	mockUoW.On("CourierRepository").Return(courierRepo)
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	settingsRepo.On("GetCurrent", ctx).Return(settings.Default(), nil).Once()
	courierRepo.On("GetAllOnShift", ctx).Return([]*courier.Courier{c}, nil).Once()

	handler := newDispatchHandler(mockFactory, nil, nil)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, order.ErrInvalidTransition)
	courierRepo.AssertNotCalled(t, "Claim", mock.Anything, mock.Anything)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
}
