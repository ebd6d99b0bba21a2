package ports

import (
	"context"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/payout"
)

// LedgerRepository is the append-only courier ledger.
type LedgerRepository interface {
	// Append stores an entry. A second credit for the same order fails with
	// payout.ErrAlreadyCredited.
	Append(ctx context.Context, entry *payout.Entry) error

	// ListByCourier returns the newest entries first, at most limit of them.
	ListByCourier(ctx context.Context, courierID kernel.UUID, limit int) ([]*payout.Entry, error)
}
