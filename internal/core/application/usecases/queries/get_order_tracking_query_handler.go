package queries

import (
	"context"
	"log/slog"

	"courierhub/internal/core/domain/model/kernel"
)

// GetOrderTrackingQueryHandler builds the customer's view of an order. The
// courier's position comes from the live position cache when one is wired
// and falls back to the courier record.
type GetOrderTrackingQueryHandler struct {
	orders    OrderReader
	couriers  CourierReader
	positions PositionReader
	logger    *slog.Logger
}

func NewGetOrderTrackingQueryHandler(
	orders OrderReader,
	couriers CourierReader,
	positions PositionReader,
	logger *slog.Logger,
) GetOrderTrackingQueryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return GetOrderTrackingQueryHandler{
		orders:    orders,
		couriers:  couriers,
		positions: positions,
		logger:    logger.With("component", "order-tracking"),
	}
}

func (h GetOrderTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTrackingQuery,
) (GetOrderTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	resp := GetOrderTrackingQueryResponse{
		OrderID:     o.ID(),
		Status:      o.Status(),
		Destination: o.Destination(),
		Address:     o.Address(),
		CreatedAt:   o.CreatedAt(),
		FinishedAt:  o.FinishedAt(),
		CancelledAt: o.CancelledAt(),
	}
	if !o.Status().IsActive() {
		return resp, nil
	}

	for _, tp := range o.Trace() {
		resp.Trace = append(resp.Trace, TrackingPoint{Status: tp.Status(), Point: tp.Point(), At: tp.At()})
	}
	if id := o.Courier(); id != nil {
		resp.CourierLocation, err = h.courierLocation(ctx, *id)
		if err != nil {
			return GetOrderTrackingQueryResponse{}, err
		}
	}

	return resp, nil
}

func (h GetOrderTrackingQueryHandler) courierLocation(ctx context.Context, courierID kernel.UUID) (*kernel.GeoPoint, error) {
	if h.positions != nil {
		p, err := h.positions.Get(ctx, courierID)
		if err == nil && p != nil {
			return p, nil
		}
		if err != nil {
			h.logger.WarnContext(ctx, "position cache read failed", "courier_id", courierID.String(), "error", err)
		}
	}

	c, err := h.couriers.Get(ctx, courierID)
	if err != nil {
		return nil, err
	}
	return c.Location(), nil
}
