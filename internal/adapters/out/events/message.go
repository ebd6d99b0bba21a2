// Package events holds the wire form of order status events and a fan-out
// publisher that hands one event to several transports.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/core/ports"
)

// OrderStatusMessage is the JSON body published for every committed status
// change. Coordinates are left out once the order is terminal.
type OrderStatusMessage struct {
	OrderID    string    `json:"orderId"`
	CustomerID string    `json:"customerId"`
	CourierID  *string   `json:"courierId,omitempty"`
	Status     string    `json:"status"`
	Lat        *float64  `json:"lat,omitempty"`
	Lng        *float64  `json:"lng,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

func NewOrderStatusMessage(evt order.StatusChanged) OrderStatusMessage {
	msg := OrderStatusMessage{
		OrderID:    evt.OrderID.String(),
		CustomerID: evt.CustomerID.String(),
		Status:     evt.Status.String(),
		OccurredAt: evt.OccurredAt.UTC(),
	}
	if evt.CourierID != nil {
		id := evt.CourierID.String()
		msg.CourierID = &id
	}
	if evt.Point != nil && !evt.Status.IsTerminal() {
		lat, lng := evt.Point.Lat(), evt.Point.Lng()
		msg.Lat, msg.Lng = &lat, &lng
	}
	return msg
}

func Marshal(evt order.StatusChanged) ([]byte, error) {
	return json.Marshal(NewOrderStatusMessage(evt))
}

// Fanout publishes to every wrapped publisher and joins their errors. A
// failing transport does not stop the others.
type Fanout []ports.OrderEventPublisher

func (f Fanout) Publish(ctx context.Context, evt order.StatusChanged) error {
	var errList []error
	for _, p := range f {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, evt); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}
