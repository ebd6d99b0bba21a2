package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"courierhub/internal/adapters/out/postgres/orderrepo"
	"courierhub/internal/adapters/out/postgres/pgtest"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg   *pgtest.Database
	repo *orderrepo.GormOrderRepository
	ctx  context.Context
	t0   time.Time
}

func TestOrderRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
	suite.repo = orderrepo.NewGormOrderRepository(suite.pg.DB)
	suite.ctx = context.Background()
	suite.t0 = time.Date(2026, 4, 2, 12, 0, 0, 0, time.UTC)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(createdAt time.Time) *order.Order {
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		kernel.MustGeoPoint(55.75, 37.61), kernel.MustGeoPoint(55.76, 37.64),
		"Tverskaya 1", 15000, createdAt,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(suite.ctx, o))
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTrips() {
	o := suite.newOrder(suite.t0)

	got, err := suite.repo.Get(suite.ctx, o.ID())

	suite.Require().NoError(err)
	suite.True(got.IsEqual(o))
	suite.Equal(order.Created, got.Status())
	suite.True(got.CustomerID().IsEqual(o.CustomerID()))
	suite.True(got.Pickup().IsEqual(o.Pickup()))
	suite.True(got.Destination().IsEqual(o.Destination()))
	suite.Equal("Tverskaya 1", got.Address())
	suite.Equal(int64(15000), got.DeliveryFee())
	suite.Equal(suite.t0, got.CreatedAt())
	suite.Nil(got.Courier())
	suite.Empty(got.Trace())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_Unknown_ReturnsNotFound() {
	_, err := suite.repo.Get(suite.ctx, kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateIfStatus_AppendsTraceInOrder() {
	o := suite.newOrder(suite.t0)
	courierID := kernel.NewUUID()
	courierAt := kernel.MustGeoPoint(55.74, 37.60)

	suite.Require().NoError(o.Assign(courierID, courierAt, suite.t0.Add(time.Minute)))
	suite.Require().NoError(suite.repo.UpdateIfStatus(suite.ctx, o, order.Created))

	loaded, err := suite.repo.Get(suite.ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.PickUp(loaded.Pickup(), suite.t0.Add(10*time.Minute)))
	suite.Require().NoError(suite.repo.UpdateIfStatus(suite.ctx, loaded, order.Assigned))

	got, err := suite.repo.Get(suite.ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.PickedUp, got.Status())
	suite.Require().NotNil(got.Courier())
	suite.True(got.Courier().IsEqual(courierID))
	trace := got.Trace()
	suite.Require().Len(trace, 2)
	suite.Equal(order.Assigned, trace[0].Status())
	suite.True(trace[0].Point().IsEqual(courierAt))
	suite.Equal(order.PickedUp, trace[1].Status())
	suite.Equal(suite.t0.Add(10*time.Minute), trace[1].At())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateIfStatus_StaleStatusWritesNothing() {
	o := suite.newOrder(suite.t0)
	first, err := suite.repo.Get(suite.ctx, o.ID())
	suite.Require().NoError(err)
	second, err := suite.repo.Get(suite.ctx, o.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.Assign(kernel.NewUUID(), kernel.MustGeoPoint(1, 1), suite.t0.Add(time.Minute)))
	suite.Require().NoError(suite.repo.UpdateIfStatus(suite.ctx, first, order.Created))

	suite.Require().NoError(second.Assign(kernel.NewUUID(), kernel.MustGeoPoint(2, 2), suite.t0.Add(time.Minute)))
	err = suite.repo.UpdateIfStatus(suite.ctx, second, order.Created)

	suite.Require().ErrorIs(err, order.ErrInvalidTransition)
	got, err := suite.repo.Get(suite.ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(got.Courier().IsEqual(*first.Courier()))
	suite.Len(got.Trace(), 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateIfStatus_Unknown_ReturnsNotFound() {
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
		kernel.MustGeoPoint(1, 1), kernel.MustGeoPoint(2, 2), "x", 0, suite.t0)
	suite.Require().NoError(err)

	err = suite.repo.UpdateIfStatus(suite.ctx, o, order.Created)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateIfStatus_CancelClearsCourierAndToken() {
	o := suite.newOrder(suite.t0)
	suite.Require().NoError(o.Assign(kernel.NewUUID(), kernel.MustGeoPoint(1, 1), suite.t0))
	suite.Require().NoError(o.AttachScanToken("token"))
	suite.Require().NoError(suite.repo.UpdateIfStatus(suite.ctx, o, order.Created))

	loaded, err := suite.repo.Get(suite.ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(loaded.ScanToken())
	suite.Equal("token", *loaded.ScanToken())
	_, err = loaded.Cancel("  customer left  ", suite.t0.Add(time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.UpdateIfStatus(suite.ctx, loaded, order.Assigned))

	got, err := suite.repo.Get(suite.ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, got.Status())
	suite.Nil(got.Courier())
	suite.Nil(got.ScanToken())
	suite.Equal("customer left", got.CancelReason())
	suite.Require().NotNil(got.CancelledAt())
	suite.Equal(suite.t0.Add(time.Hour), *got.CancelledAt())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestListings_OrderedByCreation() {
	second := suite.newOrder(suite.t0.Add(time.Minute))
	first := suite.newOrder(suite.t0)
	third := suite.newOrder(suite.t0.Add(2 * time.Minute))
	suite.Require().NoError(third.MarkPending())
	suite.Require().NoError(suite.repo.UpdateIfStatus(suite.ctx, third, order.Created))
	done := suite.newOrder(suite.t0.Add(3 * time.Minute))
	_, err := done.Cancel("", suite.t0.Add(4*time.Minute))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.UpdateIfStatus(suite.ctx, done, order.Created))

	created, err := suite.repo.GetAllInStatus(suite.ctx, order.Created, 10)
	suite.Require().NoError(err)
	suite.Require().Len(created, 2)
	suite.True(created[0].IsEqual(first))
	suite.True(created[1].IsEqual(second))

	limited, err := suite.repo.GetAllInStatus(suite.ctx, order.Created, 1)
	suite.Require().NoError(err)
	suite.Require().Len(limited, 1)
	suite.True(limited[0].IsEqual(first))

	open, err := suite.repo.GetUncompleted(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(open, 3)
}
