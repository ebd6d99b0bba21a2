package courierrepo

import (
	"context"
	"math"
	"time"

	"courierhub/internal/adapters/out/postgres/pgerrs"
	"courierhub/internal/core/domain/model/courier"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCourierRepository implements ports.CourierRepository. Every mutation is
// a single UPDATE touching only the columns its writer owns, so location
// pings, assignment and payouts never overwrite each other.
type GormCourierRepository struct {
	db *gorm.DB
}

func NewGormCourierRepository(db *gorm.DB) *GormCourierRepository {
	return &GormCourierRepository{db: db}
}

func (r *GormCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerrs.IsDuplicate(err) {
			return errs.NewValueIsInvalidErrorWithCause("courier", err)
		}
		return pgerrs.Wrap("add courier", err)
	}
	return nil
}

func (r *GormCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if pgerrs.IsNotFound(err) {
			return nil, errs.NewObjectNotFoundError("courier", id.String())
		}
		return nil, pgerrs.Wrap("get courier", err)
	}

	return toDomain(dto)
}

func (r *GormCourierRepository) GetAll(ctx context.Context) ([]*courier.Courier, error) {
	return r.find("list couriers", r.db.WithContext(ctx))
}

func (r *GormCourierRepository) GetAllOnShift(ctx context.Context) ([]*courier.Courier, error) {
	q := r.db.WithContext(ctx).
		Where("status IN ?", []int{int(courier.Online), int(courier.Busy)}).
		Where("location_lat IS NOT NULL AND location_lng IS NOT NULL")
	return r.find("list on-shift couriers", q)
}

func (r *GormCourierRepository) GetAllLive(ctx context.Context) ([]*courier.Courier, error) {
	q := r.db.WithContext(ctx).
		Where("status = ?", int(courier.Online)).
		Where("location_lat IS NOT NULL AND location_lng IS NOT NULL AND location_at IS NOT NULL")
	return r.find("list live couriers", q)
}

// UpdateLocation applies a ping unless a newer one is already stored.
func (r *GormCourierRepository) UpdateLocation(
	ctx context.Context,
	id kernel.UUID,
	point kernel.GeoPoint,
	at time.Time,
) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}
	if err := point.Validate(); err != nil {
		return false, err
	}
	if at.IsZero() {
		return false, errs.NewValueIsRequiredError("timestamp")
	}

	res := r.db.WithContext(ctx).Model(&CourierDTO{}).
		Where("id = ? AND (location_at IS NULL OR location_at <= ?)", id.Bytes(), at).
		Updates(map[string]any{
			"location_lat": point.Lat(),
			"location_lng": point.Lng(),
			"location_at":  at.UTC(),
		})
	if res.Error != nil {
		return false, pgerrs.Wrap("update courier location", res.Error)
	}
	if res.RowsAffected > 0 {
		return true, nil
	}
	return false, r.mustExist(ctx, id)
}

func (r *GormCourierRepository) SetAvailability(ctx context.Context, id kernel.UUID, online bool) error {
	status := gorm.Expr("?", int(courier.Offline))
	if online {
		status = gorm.Expr("CASE WHEN workload > 0 THEN ? ELSE ? END", int(courier.Busy), int(courier.Online))
	}
	return r.update(ctx, "set courier availability", id, map[string]any{"status": status})
}

// Claim takes an order slot in one conditional UPDATE; OFFLINE couriers are
// left untouched and reported as unavailable.
func (r *GormCourierRepository) Claim(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	res := r.db.WithContext(ctx).Model(&CourierDTO{}).
		Where("id = ? AND status IN ?", id.Bytes(), []int{int(courier.Online), int(courier.Busy)}).
		Updates(map[string]any{
			"workload": gorm.Expr("workload + 1"),
			"status":   int(courier.Busy),
		})
	if res.Error != nil {
		return pgerrs.Wrap("claim courier", res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}
	if err := r.mustExist(ctx, id); err != nil {
		return err
	}
	return courier.ErrCourierUnavailable
}

func (r *GormCourierRepository) Release(ctx context.Context, id kernel.UUID, delivered bool) error {
	bump := 0
	if delivered {
		bump = 1
	}
	return r.update(ctx, "release courier", id, map[string]any{
		"workload":        gorm.Expr("GREATEST(workload - 1, 0)"),
		"delivered_count": gorm.Expr("delivered_count + ?", bump),
		"status": gorm.Expr("CASE WHEN status = ? AND workload <= 1 THEN ? ELSE status END",
			int(courier.Busy), int(courier.Online)),
	})
}

// AdjustBalance adds delta in one statement. The range condition keeps bigint
// overflow a domain error, as in courier.Courier.AdjustBalance.
func (r *GormCourierRepository) AdjustBalance(ctx context.Context, id kernel.UUID, delta int64) error {
	if err := id.Validate(); err != nil {
		return err
	}

	query := r.db.WithContext(ctx).Model(&CourierDTO{}).Where("id = ?", id.Bytes())
	switch {
	case delta > 0:
		query = query.Where("balance <= ?", int64(math.MaxInt64)-delta)
	case delta < 0:
		query = query.Where("balance >= ?", int64(math.MinInt64)-delta)
	}

	res := query.Update("balance", gorm.Expr("balance + ?", delta))
	if res.Error != nil {
		return pgerrs.Wrap("adjust courier balance", res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}
	if err := r.mustExist(ctx, id); err != nil {
		return err
	}
	return errs.NewValueIsOutOfRangeError("balance", delta, int64(math.MinInt64), int64(math.MaxInt64))
}

func (r *GormCourierRepository) MarkStaleOffline(ctx context.Context, before time.Time) ([]kernel.UUID, error) {
	var raw []uuid.UUID
	err := r.db.WithContext(ctx).Raw(
		`UPDATE couriers SET status = ?
		 WHERE status = ? AND (location_at IS NULL OR location_at < ?)
		 RETURNING id`,
		int(courier.Offline), int(courier.Online), before,
	).Scan(&raw).Error
	if err != nil {
		return nil, pgerrs.Wrap("mark stale couriers offline", err)
	}

	ids := make([]kernel.UUID, 0, len(raw))
	for _, b := range raw {
		id, idErr := kernel.UUIDFromBytes(b[:])
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *GormCourierRepository) update(ctx context.Context, op string, id kernel.UUID, columns map[string]any) error {
	if err := id.Validate(); err != nil {
		return err
	}

	res := r.db.WithContext(ctx).Model(&CourierDTO{}).Where("id = ?", id.Bytes()).Updates(columns)
	if res.Error != nil {
		return pgerrs.Wrap(op, res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("courier", id.String())
	}
	return nil
}

func (r *GormCourierRepository) mustExist(ctx context.Context, id kernel.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&CourierDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return pgerrs.Wrap("get courier", err)
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("courier", id.String())
	}
	return nil
}

func (r *GormCourierRepository) find(op string, q *gorm.DB) ([]*courier.Courier, error) {
	var dtos []CourierDTO
	if err := q.Order("name").Order("id").Find(&dtos).Error; err != nil {
		return nil, pgerrs.Wrap(op, err)
	}
	return toDomainList(dtos)
}
