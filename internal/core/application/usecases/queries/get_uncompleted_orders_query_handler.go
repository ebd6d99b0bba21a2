package queries

import (
	"context"
)

// GetUncompletedOrdersQueryHandler lists the orders still in flight.
type GetUncompletedOrdersQueryHandler struct {
	orders OrderReader
}

func NewGetUncompletedOrdersQueryHandler(orders OrderReader) GetUncompletedOrdersQueryHandler {
	return GetUncompletedOrdersQueryHandler{orders: orders}
}

func (h GetUncompletedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUncompletedOrdersQuery,
) ([]GetUncompletedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	active, err := h.orders.GetUncompleted(ctx)
	if err != nil {
		return nil, err
	}

	orders := make([]GetUncompletedOrdersQueryResponse, 0, len(active))
	for _, o := range active {
		orders = append(orders, GetUncompletedOrdersQueryResponse{
			ID:          o.ID(),
			Status:      o.Status(),
			CourierID:   o.Courier(),
			Pickup:      o.Pickup(),
			Destination: o.Destination(),
			Address:     o.Address(),
			DeliveryFee: o.DeliveryFee(),
			CreatedAt:   o.CreatedAt(),
		})
	}

	return orders, nil
}
