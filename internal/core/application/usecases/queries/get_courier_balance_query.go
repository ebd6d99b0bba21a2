package queries

import (
	"errors"
	"fmt"
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/payout"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

const (
	DefaultLedgerPageSize = 20
	MaxLedgerPageSize     = 200
)

var ErrGetCourierBalanceQueryIsNotConstructed = errors.New(
	"GetCourierBalanceQuery must be created via NewGetCourierBalanceQuery constructor",
)

type GetCourierBalanceQuery struct {
	courierID kernel.UUID
	limit     int

	guard guard.ConstructorGuard
}

// NewGetCourierBalanceQuery builds the query. A zero limit means
// DefaultLedgerPageSize.
func NewGetCourierBalanceQuery(courierID kernel.UUID, limit int) (GetCourierBalanceQuery, error) {
	if limit == 0 {
		limit = DefaultLedgerPageSize
	}
	var limitErr error
	if limit < 0 || limit > MaxLedgerPageSize {
		limitErr = errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxLedgerPageSize)
	}
	if err := errors.Join(courierID.Validate(), limitErr); err != nil {
		return GetCourierBalanceQuery{}, err
	}
	return GetCourierBalanceQuery{courierID: courierID, limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCourierBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierBalanceQueryIsNotConstructed)
}

func (q GetCourierBalanceQuery) CourierID() kernel.UUID { return q.courierID }
func (q GetCourierBalanceQuery) Limit() int             { return q.limit }

type LedgerEntryResponse struct {
	ID        kernel.UUID
	Kind      payout.Kind
	Amount    int64
	OrderID   *kernel.UUID
	CreatedAt time.Time
}

type GetCourierBalanceQueryResponse struct {
	CourierID      kernel.UUID
	Balance        int64
	DeliveredCount int
	Entries        []LedgerEntryResponse
}

func (r GetCourierBalanceQueryResponse) String() string {
	return fmt.Sprintf("courier %s balance %d (%d entries)", r.CourierID, r.Balance, len(r.Entries))
}
