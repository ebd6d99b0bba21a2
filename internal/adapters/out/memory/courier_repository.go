package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"courierhub/internal/core/domain/model/courier"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
)

type CourierRepository struct {
	uow *UnitOfWork
}

func (r *CourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.do(ctx, func(s *state) error {
		if _, exists := s.couriers[aggregate.ID()]; exists {
			return errs.NewValueIsInvalidErrorWithCause("courier", fmt.Errorf("id %s already exists", aggregate.ID()))
		}
		s.couriers[aggregate.ID()] = aggregate.Snapshot()
		return nil
	})
}

func (r *CourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	var found *courier.Courier
	err := r.uow.do(ctx, func(s *state) error {
		snap, ok := s.couriers[id]
		if !ok {
			return errs.NewObjectNotFoundError("courier", id.String())
		}
		c, err := courier.RestoreCourier(snap)
		found = c
		return err
	})
	return found, err
}

func (r *CourierRepository) GetAll(ctx context.Context) ([]*courier.Courier, error) {
	return r.list(ctx, func(*courier.Courier) bool { return true })
}

func (r *CourierRepository) GetAllOnShift(ctx context.Context) ([]*courier.Courier, error) {
	return r.list(ctx, (*courier.Courier).IsDispatchCandidate)
}

func (r *CourierRepository) GetAllLive(ctx context.Context) ([]*courier.Courier, error) {
	return r.list(ctx, (*courier.Courier).IsLive)
}

func (r *CourierRepository) UpdateLocation(
	ctx context.Context,
	id kernel.UUID,
	point kernel.GeoPoint,
	at time.Time,
) (bool, error) {
	var applied bool
	err := r.mutate(ctx, id, func(c *courier.Courier) error {
		var err error
		applied, err = c.UpdateLocation(point, at)
		return err
	})
	return applied, err
}

func (r *CourierRepository) SetAvailability(ctx context.Context, id kernel.UUID, online bool) error {
	return r.mutate(ctx, id, func(c *courier.Courier) error {
		c.SetAvailability(online)
		return nil
	})
}

func (r *CourierRepository) Claim(ctx context.Context, id kernel.UUID) error {
	return r.mutate(ctx, id, (*courier.Courier).Claim)
}

func (r *CourierRepository) Release(ctx context.Context, id kernel.UUID, delivered bool) error {
	return r.mutate(ctx, id, func(c *courier.Courier) error {
		c.Release(delivered)
		return nil
	})
}

func (r *CourierRepository) AdjustBalance(ctx context.Context, id kernel.UUID, delta int64) error {
	return r.mutate(ctx, id, func(c *courier.Courier) error {
		return c.AdjustBalance(delta)
	})
}

func (r *CourierRepository) MarkStaleOffline(ctx context.Context, before time.Time) ([]kernel.UUID, error) {
	var stale []kernel.UUID
	err := r.uow.do(ctx, func(s *state) error {
		for id, snap := range s.couriers {
			if snap.Status != courier.Online {
				continue
			}
			if snap.LocationAt != nil && !snap.LocationAt.Before(before) {
				continue
			}
			snap.Status = courier.Offline
			s.couriers[id] = snap
			stale = append(stale, id)
		}
		return nil
	})
	slices.SortFunc(stale, kernel.UUID.Compare)
	return stale, err
}

func (r *CourierRepository) mutate(ctx context.Context, id kernel.UUID, fn func(*courier.Courier) error) error {
	if err := id.Validate(); err != nil {
		return err
	}
	return r.uow.do(ctx, func(s *state) error {
		snap, ok := s.couriers[id]
		if !ok {
			return errs.NewObjectNotFoundError("courier", id.String())
		}
		c, err := courier.RestoreCourier(snap)
		if err != nil {
			return err
		}
		if err = fn(c); err != nil {
			return err
		}
		s.couriers[id] = c.Snapshot()
		return nil
	})
}

func (r *CourierRepository) list(ctx context.Context, keep func(*courier.Courier) bool) ([]*courier.Courier, error) {
	var out []*courier.Courier
	err := r.uow.do(ctx, func(s *state) error {
		out = make([]*courier.Courier, 0, len(s.couriers))
		for _, snap := range s.couriers {
			c, err := courier.RestoreCourier(snap)
			if err != nil {
				return err
			}
			if keep(c) {
				out = append(out, c)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(out, func(a, b *courier.Courier) int {
		return cmp.Or(cmp.Compare(a.Name(), b.Name()), a.ID().Compare(b.ID()))
	})
	return out, nil
}
