package queries

import (
	"context"
)

type GetCourierBalanceQueryHandler struct {
	couriers CourierReader
	ledger   LedgerReader
}

func NewGetCourierBalanceQueryHandler(couriers CourierReader, ledger LedgerReader) GetCourierBalanceQueryHandler {
	return GetCourierBalanceQueryHandler{couriers: couriers, ledger: ledger}
}

func (h GetCourierBalanceQueryHandler) Handle(
	ctx context.Context,
	query GetCourierBalanceQuery,
) (GetCourierBalanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCourierBalanceQueryResponse{}, err
	}

	c, err := h.couriers.Get(ctx, query.CourierID())
	if err != nil {
		return GetCourierBalanceQueryResponse{}, err
	}
	entries, err := h.ledger.ListByCourier(ctx, query.CourierID(), query.Limit())
	if err != nil {
		return GetCourierBalanceQueryResponse{}, err
	}

	resp := GetCourierBalanceQueryResponse{
		CourierID:      c.ID(),
		Balance:        c.Balance(),
		DeliveredCount: c.DeliveredCount(),
		Entries:        make([]LedgerEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, LedgerEntryResponse{
			ID:        e.ID(),
			Kind:      e.Kind(),
			Amount:    e.Amount(),
			OrderID:   e.OrderID(),
			CreatedAt: e.CreatedAt(),
		})
	}

	return resp, nil
}
