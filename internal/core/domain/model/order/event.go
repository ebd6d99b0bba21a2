package order

import (
	"time"

	"courierhub/internal/core/domain/model/kernel"
)

// StatusChanged is emitted after a committed status change.
type StatusChanged struct {
	OrderID    kernel.UUID
	CustomerID kernel.UUID
	CourierID  *kernel.UUID
	Status     Status
	Point      *kernel.GeoPoint
	OccurredAt time.Time
}

// StatusChangedEvent describes the order's current state. The point is the
// newest trace point recorded for the current status, if any.
func (o *Order) StatusChangedEvent(at time.Time) StatusChanged {
	evt := StatusChanged{
		OrderID:    o.id,
		CustomerID: o.customerID,
		CourierID:  o.Courier(),
		Status:     o.status,
		OccurredAt: at,
	}
	if n := len(o.trace); n > 0 && o.trace[n-1].status == o.status {
		p := o.trace[n-1].point
		evt.Point = &p
	}
	return evt
}
