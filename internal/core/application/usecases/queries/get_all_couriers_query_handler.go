package queries

import (
	"context"
)

// GetAllCouriersQueryHandler reads the roster.
//
// Example:
//
//	handler := NewGetAllCouriersQueryHandler(courierRepo)
//	couriers, err := handler.Handle(ctx, NewGetAllCouriersQuery())
type GetAllCouriersQueryHandler struct {
	couriers CourierReader
}

func NewGetAllCouriersQueryHandler(couriers CourierReader) GetAllCouriersQueryHandler {
	return GetAllCouriersQueryHandler{couriers: couriers}
}

// Handle returns every courier sorted by name.
func (h GetAllCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCouriersQuery,
) ([]GetAllCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.couriers.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	couriers := make([]GetAllCouriersQueryResponse, 0, len(all))
	for _, c := range all {
		couriers = append(couriers, GetAllCouriersQueryResponse{
			ID:                 c.ID(),
			Name:               c.Name(),
			Status:             c.Status(),
			Location:           c.Location(),
			Workload:           c.Workload(),
			Rating:             c.Rating(),
			AvgResponseSeconds: c.AvgResponseSeconds(),
			Balance:            c.Balance(),
			DeliveredCount:     c.DeliveredCount(),
		})
	}

	return couriers, nil
}
