package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/pkg/errs"
)

type OrderRepository struct {
	uow *UnitOfWork
}

func (r *OrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.do(ctx, func(s *state) error {
		if _, exists := s.orders[aggregate.ID()]; exists {
			return errs.NewValueIsInvalidErrorWithCause("order", fmt.Errorf("id %s already exists", aggregate.ID()))
		}
		s.orders[aggregate.ID()] = aggregate.Snapshot()
		return nil
	})
}

func (r *OrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	var found *order.Order
	err := r.uow.do(ctx, func(s *state) error {
		snap, ok := s.orders[id]
		if !ok {
			return errs.NewObjectNotFoundError("order", id.String())
		}
		o, err := order.RestoreOrder(snap)
		found = o
		return err
	})
	return found, err
}

func (r *OrderRepository) UpdateIfStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.do(ctx, func(s *state) error {
		stored, ok := s.orders[aggregate.ID()]
		if !ok {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		if stored.Status != expected {
			return order.NewStaleTransitionError(expected, aggregate.Status())
		}
		if len(stored.Trace) != aggregate.SavedTraceLen() {
			return order.NewStaleTransitionError(expected, aggregate.Status())
		}
		s.orders[aggregate.ID()] = aggregate.Snapshot()
		return nil
	})
}

func (r *OrderRepository) GetAllInStatus(ctx context.Context, status order.Status, limit int) ([]*order.Order, error) {
	found, err := r.list(ctx, func(s order.Snapshot) bool { return s.Status == status })
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(found) > limit {
		found = found[:limit]
	}
	return found, nil
}

func (r *OrderRepository) GetUncompleted(ctx context.Context) ([]*order.Order, error) {
	return r.list(ctx, func(s order.Snapshot) bool { return !s.Status.IsTerminal() })
}

// list returns matching orders, oldest first.
func (r *OrderRepository) list(ctx context.Context, keep func(order.Snapshot) bool) ([]*order.Order, error) {
	var snaps []order.Snapshot
	err := r.uow.do(ctx, func(s *state) error {
		for _, snap := range s.orders {
			if keep(snap) {
				snaps = append(snaps, snap)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(snaps, func(a, b order.Snapshot) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), a.ID.Compare(b.ID))
	})
	out := make([]*order.Order, 0, len(snaps))
	for _, snap := range snaps {
		o, err := order.RestoreOrder(snap)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}
