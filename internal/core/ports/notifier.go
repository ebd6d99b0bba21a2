package ports

import (
	"context"
	"fmt"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/order"
)

type Recipient string

const (
	RecipientCourier  Recipient = "courier"
	RecipientCustomer Recipient = "customer"
)

// NotificationTarget addresses one person; the transport decides whether
// that means push, SMS or a chat bot.
type NotificationTarget struct {
	Recipient Recipient
	ID        kernel.UUID
}

func (t NotificationTarget) String() string {
	return fmt.Sprintf("%s:%s", t.Recipient, t.ID)
}

// Notifier delivers a human-readable message to a target.
type Notifier interface {
	Send(ctx context.Context, target NotificationTarget, message string) error
}

// OrderEventPublisher broadcasts committed order status changes.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event order.StatusChanged) error
}

// PositionCache mirrors the latest courier positions for fast live reads.
// It is never the source of truth.
type PositionCache interface {
	Set(ctx context.Context, courierID kernel.UUID, point kernel.GeoPoint) error
	Get(ctx context.Context, courierID kernel.UUID) (*kernel.GeoPoint, error)
	Remove(ctx context.Context, courierID kernel.UUID) error
}
