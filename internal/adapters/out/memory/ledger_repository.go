package memory

import (
	"context"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/payout"
)

type LedgerRepository struct {
	uow *UnitOfWork
}

func (r *LedgerRepository) Append(ctx context.Context, entry *payout.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	return r.uow.do(ctx, func(s *state) error {
		if entry.Kind() == payout.Credit {
			for _, e := range s.ledger {
				if e.Kind() == payout.Credit && e.OrderID().IsEqual(*entry.OrderID()) {
					return payout.ErrAlreadyCredited
				}
			}
		}
		s.ledger = append(s.ledger, entry)
		return nil
	})
}

// ListByCourier returns the newest entries first.
func (r *LedgerRepository) ListByCourier(ctx context.Context, courierID kernel.UUID, limit int) ([]*payout.Entry, error) {
	var out []*payout.Entry
	err := r.uow.do(ctx, func(s *state) error {
		for i := len(s.ledger) - 1; i >= 0; i-- {
			if limit > 0 && len(out) == limit {
				break
			}
			if s.ledger[i].CourierID().IsEqual(courierID) {
				out = append(out, s.ledger[i])
			}
		}
		return nil
	})
	return out, err
}
