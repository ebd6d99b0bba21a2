package queries

import (
	"context"
)

type GetLiveCouriersQueryHandler struct {
	couriers CourierReader
}

func NewGetLiveCouriersQueryHandler(couriers CourierReader) GetLiveCouriersQueryHandler {
	return GetLiveCouriersQueryHandler{couriers: couriers}
}

func (h GetLiveCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetLiveCouriersQuery,
) ([]GetLiveCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	live, err := h.couriers.GetAllLive(ctx)
	if err != nil {
		return nil, err
	}

	couriers := make([]GetLiveCouriersQueryResponse, 0, len(live))
	for _, c := range live {
		loc, at := c.Location(), c.LocationAt()
		if loc == nil || at == nil {
			continue
		}
		couriers = append(couriers, GetLiveCouriersQueryResponse{
			ID:         c.ID(),
			Name:       c.Name(),
			Location:   *loc,
			LocationAt: *at,
		})
	}

	return couriers, nil
}
