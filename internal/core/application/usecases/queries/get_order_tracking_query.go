package queries

import (
	"errors"
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/pkg/guard"
)

var ErrGetOrderTrackingQueryIsNotConstructed = errors.New(
	"GetOrderTrackingQuery must be created via NewGetOrderTrackingQuery constructor",
)

// GetOrderTrackingQuery is what a customer sees on the tracking page.
type GetOrderTrackingQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderTrackingQuery(orderID kernel.UUID) (GetOrderTrackingQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderTrackingQuery{}, err
	}
	return GetOrderTrackingQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTrackingQueryIsNotConstructed)
}

func (q GetOrderTrackingQuery) OrderID() kernel.UUID {
	return q.orderID
}

type TrackingPoint struct {
	Status order.Status
	Point  kernel.GeoPoint
	At     time.Time
}

// GetOrderTrackingQueryResponse carries the trace and the courier's live
// position only while the order is ASSIGNED, PICKED_UP or DELIVERING.
// Terminal orders get the reduced payload: status, destination and the
// finish or cancel time.
type GetOrderTrackingQueryResponse struct {
	OrderID         kernel.UUID
	Status          order.Status
	Destination     kernel.GeoPoint
	Address         string
	CreatedAt       time.Time
	FinishedAt      *time.Time
	CancelledAt     *time.Time
	CourierLocation *kernel.GeoPoint
	Trace           []TrackingPoint
}
