package orderrepo

import (
	"context"

	"courierhub/internal/adapters/out/postgres/pgerrs"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts the order together with any trace points it already has.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerrs.IsDuplicate(err) {
			return errs.NewValueIsInvalidErrorWithCause("order", err)
		}
		return pgerrs.Wrap("add order", err)
	}
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withTrace(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if pgerrs.IsNotFound(err) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, pgerrs.Wrap("get order", err)
	}

	return toDomain(dto)
}

// UpdateIfStatus is a compare-and-set on the status column followed by an
// append of the new trace points. Losing either race yields a stale
// transition error; the caller's unit of work rolls back the rest.
func (r *GormOrderRepository) UpdateIfStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	res := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expected)).
		Updates(stateColumns(dto))
	if res.Error != nil {
		return pgerrs.Wrap("update order", res.Error)
	}
	if res.RowsAffected == 0 {
		if _, err := r.Get(ctx, aggregate.ID()); err != nil {
			return err
		}
		return order.NewStaleTransitionError(expected, aggregate.Status())
	}

	unsaved := trackPointsFromDomain(aggregate.ID(), aggregate.SavedTraceLen(), aggregate.UnsavedTrackPoints())
	if len(unsaved) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&unsaved).Error; err != nil {
		if pgerrs.IsDuplicate(err) {
			return order.NewStaleTransitionError(expected, aggregate.Status())
		}
		return pgerrs.Wrap("append order trace", err)
	}
	return nil
}

func (r *GormOrderRepository) GetAllInStatus(ctx context.Context, status order.Status, limit int) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	q := r.withTrace(ctx).Where("status = ?", int(status))
	if limit > 0 {
		q = q.Limit(limit)
	}
	return r.find("list orders by status", q)
}

func (r *GormOrderRepository) GetUncompleted(ctx context.Context) ([]*order.Order, error) {
	q := r.withTrace(ctx).Where("status NOT IN ?", []int{int(order.Completed), int(order.Cancelled)})
	return r.find("list uncompleted orders", q)
}

func (r *GormOrderRepository) withTrace(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("TrackPoints", func(db *gorm.DB) *gorm.DB {
		return db.Order("seq")
	})
}

func (r *GormOrderRepository) find(op string, q *gorm.DB) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := q.Order("created_at").Order("id").Find(&dtos).Error; err != nil {
		return nil, pgerrs.Wrap(op, err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
