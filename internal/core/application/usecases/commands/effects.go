package commands

import (
	"context"
	"log/slog"
	"time"

	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/core/ports"
)

// Effects runs the post-commit side effects of a command. They are best
// effort: the state change is already durable, so a failed notification or
// event is logged and never reported to the caller.
type Effects struct {
	notifier  ports.Notifier
	publisher ports.OrderEventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

func NewEffects(notifier ports.Notifier, publisher ports.OrderEventPublisher, logger *slog.Logger) Effects {
	if logger == nil {
		logger = slog.Default()
	}
	return Effects{
		notifier:  notifier,
		publisher: publisher,
		logger:    logger.With("component", "command-effects"),
		now:       time.Now,
	}
}

type notification struct {
	target  ports.NotificationTarget
	message string
}

func (e Effects) orderChanged(ctx context.Context, o *order.Order, notes ...notification) {
	for _, n := range notes {
		e.notify(ctx, n)
	}
	if e.publisher == nil {
		return
	}
	evt := o.StatusChangedEvent(e.now())
	if err := e.publisher.Publish(ctx, evt); err != nil {
		e.logger.WarnContext(ctx, "order event not published",
			"order_id", o.ID().String(), "status", o.Status().String(), "error", err)
	}
}

func (e Effects) notify(ctx context.Context, n notification) {
	if e.notifier == nil {
		return
	}
	if err := e.notifier.Send(ctx, n.target, n.message); err != nil {
		e.logger.WarnContext(ctx, "notification not sent", "target", n.target.String(), "error", err)
	}
}

func customerNote(o *order.Order, message string) notification {
	return notification{
		target:  ports.NotificationTarget{Recipient: ports.RecipientCustomer, ID: o.CustomerID()},
		message: message,
	}
}

func courierNote(o *order.Order, message string) []notification {
	id := o.Courier()
	if id == nil {
		return nil
	}
	return []notification{{
		target:  ports.NotificationTarget{Recipient: ports.RecipientCourier, ID: *id},
		message: message,
	}}
}
