package courierrepo_test

import (
	"context"
	"math"
	"testing"
	"time"

	"courierhub/internal/adapters/out/postgres/courierrepo"
	"courierhub/internal/adapters/out/postgres/pgtest"
	"courierhub/internal/core/domain/model/courier"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// CourierRepositoryIntegrationTestSuite runs the courier repository against
// a real PostgreSQL container.
type CourierRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg   *pgtest.Database
	repo *courierrepo.GormCourierRepository
	ctx  context.Context
	t0   time.Time
}

func TestCourierRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(CourierRepositoryIntegrationTestSuite))
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
	suite.repo = courierrepo.NewGormCourierRepository(suite.pg.DB)
	suite.ctx = context.Background()
	suite.t0 = time.Date(2026, 4, 2, 12, 0, 0, 0, time.UTC)
}

func (suite *CourierRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *CourierRepositoryIntegrationTestSuite) newCourier(name string) *courier.Courier {
	c, err := courier.NewCourier(kernel.NewUUID(), name, 4.2, 45)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(suite.ctx, c))
	return c
}

func (suite *CourierRepositoryIntegrationTestSuite) onShift(name string, lat, lng float64) *courier.Courier {
	c := suite.newCourier(name)
	suite.Require().NoError(suite.repo.SetAvailability(suite.ctx, c.ID(), true))
	applied, err := suite.repo.UpdateLocation(suite.ctx, c.ID(), kernel.MustGeoPoint(lat, lng), suite.t0)
	suite.Require().NoError(err)
	suite.Require().True(applied)
	return c
}

func (suite *CourierRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTrips() {
	c := suite.newCourier("Anna")

	got, err := suite.repo.Get(suite.ctx, c.ID())

	suite.Require().NoError(err)
	suite.True(got.IsEqual(c))
	suite.Equal("Anna", got.Name())
	suite.Equal(courier.Offline, got.Status())
	suite.InDelta(4.2, got.Rating(), 1e-9)
	suite.InDelta(45.0, got.AvgResponseSeconds(), 1e-9)
	suite.Nil(got.Location())
	suite.Nil(got.LocationAt())
	suite.Zero(got.Workload())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestAdd_DuplicateID_IsInvalid() {
	c := suite.newCourier("Anna")

	err := suite.repo.Add(suite.ctx, c)

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGet_Unknown_ReturnsNotFound() {
	_, err := suite.repo.Get(suite.ctx, kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestUpdateLocation_IgnoresOlderPings() {
	c := suite.onShift("Anna", 55.70, 37.60)

	applied, err := suite.repo.UpdateLocation(suite.ctx, c.ID(), kernel.MustGeoPoint(55.80, 37.70), suite.t0.Add(-time.Minute))
	suite.Require().NoError(err)
	suite.False(applied)

	applied, err = suite.repo.UpdateLocation(suite.ctx, c.ID(), kernel.MustGeoPoint(55.71, 37.61), suite.t0.Add(time.Minute))
	suite.Require().NoError(err)
	suite.True(applied)

	got, err := suite.repo.Get(suite.ctx, c.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(got.Location())
	suite.True(got.Location().IsEqual(kernel.MustGeoPoint(55.71, 37.61)))
	suite.Equal(suite.t0.Add(time.Minute), *got.LocationAt())

	_, err = suite.repo.UpdateLocation(suite.ctx, kernel.NewUUID(), kernel.MustGeoPoint(1, 1), suite.t0)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestClaimAndRelease_TrackWorkload() {
	c := suite.onShift("Anna", 55.70, 37.60)

	suite.Require().NoError(suite.repo.Claim(suite.ctx, c.ID()))
	suite.Require().NoError(suite.repo.Claim(suite.ctx, c.ID()))
	got, err := suite.repo.Get(suite.ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(courier.Busy, got.Status())
	suite.Equal(2, got.Workload())

	suite.Require().NoError(suite.repo.Release(suite.ctx, c.ID(), true))
	got, err = suite.repo.Get(suite.ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(courier.Busy, got.Status())
	suite.Equal(1, got.Workload())
	suite.Equal(1, got.DeliveredCount())

	suite.Require().NoError(suite.repo.Release(suite.ctx, c.ID(), false))
	suite.Require().NoError(suite.repo.Release(suite.ctx, c.ID(), false))
	got, err = suite.repo.Get(suite.ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(courier.Online, got.Status())
	suite.Zero(got.Workload(), "workload never drops below zero")
	suite.Equal(1, got.DeliveredCount())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestClaim_OfflineCourier_IsUnavailable() {
	c := suite.newCourier("Anna")

	err := suite.repo.Claim(suite.ctx, c.ID())

	suite.Require().ErrorIs(err, courier.ErrCourierUnavailable)
	suite.Require().ErrorIs(suite.repo.Claim(suite.ctx, kernel.NewUUID()), errs.ErrObjectNotFound)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestSetAvailability_KeepsBusyWithOpenOrders() {
	c := suite.onShift("Anna", 55.70, 37.60)
	suite.Require().NoError(suite.repo.Claim(suite.ctx, c.ID()))

	suite.Require().NoError(suite.repo.SetAvailability(suite.ctx, c.ID(), false))
	got, err := suite.repo.Get(suite.ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(courier.Offline, got.Status())
	suite.Equal(1, got.Workload())

	suite.Require().NoError(suite.repo.SetAvailability(suite.ctx, c.ID(), true))
	got, err = suite.repo.Get(suite.ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(courier.Busy, got.Status())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestAdjustBalance_MayGoNegative() {
	c := suite.newCourier("Anna")

	suite.Require().NoError(suite.repo.AdjustBalance(suite.ctx, c.ID(), 15000))
	suite.Require().NoError(suite.repo.AdjustBalance(suite.ctx, c.ID(), -20000))

	got, err := suite.repo.Get(suite.ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(-5000), got.Balance())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestAdjustBalance_OverflowIsOutOfRange() {
	c := suite.newCourier("Anna")
	suite.Require().NoError(suite.repo.AdjustBalance(suite.ctx, c.ID(), math.MaxInt64))

	err := suite.repo.AdjustBalance(suite.ctx, c.ID(), 1)

	suite.Require().ErrorIs(err, errs.ErrValueIsOutOfRange)
	suite.False(errs.IsRetryable(err))

	suite.Require().NoError(suite.repo.AdjustBalance(suite.ctx, c.ID(), math.MinInt64))
	suite.Require().ErrorIs(suite.repo.AdjustBalance(suite.ctx, c.ID(), math.MinInt64), errs.ErrValueIsOutOfRange)
	suite.Require().ErrorIs(suite.repo.AdjustBalance(suite.ctx, kernel.NewUUID(), 1), errs.ErrObjectNotFound)

	got, err := suite.repo.Get(suite.ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(-1), got.Balance())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestListings_FilterByShiftAndLocation() {
	anna := suite.onShift("Anna", 55.70, 37.60)
	boris := suite.onShift("Boris", 55.71, 37.61)
	suite.Require().NoError(suite.repo.Claim(suite.ctx, boris.ID()))
	suite.newCourier("Vera")
	noPing := suite.newCourier("Gleb")
	suite.Require().NoError(suite.repo.SetAvailability(suite.ctx, noPing.ID(), true))

	all, err := suite.repo.GetAll(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(all, 4)
	suite.Equal("Anna", all[0].Name())

	onShift, err := suite.repo.GetAllOnShift(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(onShift, 2)
	suite.True(onShift[0].IsEqual(anna))
	suite.True(onShift[1].IsEqual(boris))

	live, err := suite.repo.GetAllLive(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(live, 1)
	suite.True(live[0].IsEqual(anna))
}

func (suite *CourierRepositoryIntegrationTestSuite) TestMarkStaleOffline_OnlyIdleStaleCouriers() {
	stale := suite.onShift("Anna", 55.70, 37.60)
	fresh := suite.onShift("Boris", 55.71, 37.61)
	_, err := suite.repo.UpdateLocation(suite.ctx, fresh.ID(), kernel.MustGeoPoint(55.72, 37.62), suite.t0.Add(10*time.Minute))
	suite.Require().NoError(err)
	busy := suite.onShift("Vera", 55.73, 37.63)
	suite.Require().NoError(suite.repo.Claim(suite.ctx, busy.ID()))

	ids, err := suite.repo.MarkStaleOffline(suite.ctx, suite.t0.Add(5*time.Minute))

	suite.Require().NoError(err)
	suite.Require().Len(ids, 1)
	suite.True(ids[0].IsEqual(stale.ID()))
	got, err := suite.repo.Get(suite.ctx, stale.ID())
	suite.Require().NoError(err)
	suite.Equal(courier.Offline, got.Status())
	got, err = suite.repo.Get(suite.ctx, busy.ID())
	suite.Require().NoError(err)
	suite.Equal(courier.Busy, got.Status())
}
