package commands_test

import (
	"context"
	"time"

	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/domain/model/courier"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/core/domain/model/payout"
	"courierhub/internal/core/domain/model/settings"
	"courierhub/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations for testing.
type MockCourierRepository struct {
	mock.Mock
}

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*courier.Courier)
	return c, args.Error(1)
}

func (m *MockCourierRepository) GetAll(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]*courier.Courier)
	return cs, args.Error(1)
}

func (m *MockCourierRepository) GetAllOnShift(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]*courier.Courier)
	return cs, args.Error(1)
}

func (m *MockCourierRepository) GetAllLive(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]*courier.Courier)
	return cs, args.Error(1)
}

func (m *MockCourierRepository) UpdateLocation(
	ctx context.Context, id kernel.UUID, point kernel.GeoPoint, at time.Time,
) (bool, error) {
	args := m.Called(ctx, id, point, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockCourierRepository) SetAvailability(ctx context.Context, id kernel.UUID, online bool) error {
	return m.Called(ctx, id, online).Error(0)
}

func (m *MockCourierRepository) Claim(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCourierRepository) Release(ctx context.Context, id kernel.UUID, delivered bool) error {
	return m.Called(ctx, id, delivered).Error(0)
}

func (m *MockCourierRepository) AdjustBalance(ctx context.Context, id kernel.UUID, delta int64) error {
	return m.Called(ctx, id, delta).Error(0)
}

func (m *MockCourierRepository) MarkStaleOffline(ctx context.Context, before time.Time) ([]kernel.UUID, error) {
	args := m.Called(ctx, before)
	ids, _ := args.Get(0).([]kernel.UUID)
	return ids, args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) UpdateIfStatus(ctx context.Context, o *order.Order, expected order.Status) error {
	return m.Called(ctx, o, expected).Error(0)
}

func (m *MockOrderRepository) GetAllInStatus(ctx context.Context, status order.Status, limit int) ([]*order.Order, error) {
	args := m.Called(ctx, status, limit)
	os, _ := args.Get(0).([]*order.Order)
	return os, args.Error(1)
}

func (m *MockOrderRepository) GetUncompleted(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	os, _ := args.Get(0).([]*order.Order)
	return os, args.Error(1)
}

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetCurrent(ctx context.Context) (settings.DispatchWeights, error) {
	args := m.Called(ctx)
	return args.Get(0).(settings.DispatchWeights), args.Error(1)
}

func (m *MockSettingsRepository) Save(ctx context.Context, w settings.DispatchWeights) error {
	return m.Called(ctx, w).Error(0)
}

type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) Append(ctx context.Context, e *payout.Entry) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockLedgerRepository) ListByCourier(ctx context.Context, id kernel.UUID, limit int) ([]*payout.Entry, error) {
	args := m.Called(ctx, id, limit)
	es, _ := args.Get(0).([]*payout.Entry)
	return es, args.Error(1)
}

// MockUoW satisfies every unit of work interface of the package.
type MockUoW struct {
	mock.Mock
}

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	return m.Called().Get(0).(ports.CourierRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) SettingsRepository() ports.SettingsRepository {
	return m.Called().Get(0).(ports.SettingsRepository)
}

func (m *MockUoW) LedgerRepository() ports.LedgerRepository {
	return m.Called().Get(0).(ports.LedgerRepository)
}

type MockCourierUoWFactory struct {
	mock.Mock
}

func (m *MockCourierUoWFactory) Create() commands.CourierUoW {
	return m.Called().Get(0).(commands.CourierUoW)
}

type MockOrderUoWFactory struct {
	mock.Mock
}

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockSettingsUoWFactory struct {
	mock.Mock
}

func (m *MockSettingsUoWFactory) Create() commands.SettingsUoW {
	return m.Called().Get(0).(commands.SettingsUoW)
}

type MockUoWFactory struct {
	mock.Mock
}

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockPositionCache struct {
	mock.Mock
}

func (m *MockPositionCache) Set(ctx context.Context, id kernel.UUID, p kernel.GeoPoint) error {
	return m.Called(ctx, id, p).Error(0)
}

func (m *MockPositionCache) Get(ctx context.Context, id kernel.UUID) (*kernel.GeoPoint, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*kernel.GeoPoint)
	return p, args.Error(1)
}

func (m *MockPositionCache) Remove(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, target ports.NotificationTarget, message string) error {
	return m.Called(ctx, target, message).Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, evt order.StatusChanged) error {
	return m.Called(ctx, evt).Error(0)
}
