// Package rabbitmq delivers courier and customer notifications through a
// durable topic exchange. Routing keys are notify.<recipient>, so push, SMS
// and chat workers bind only to the audience they serve.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"courierhub/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const DefaultExchange = "notifications"

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type notificationMessage struct {
	Recipient string    `json:"recipient"`
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	SentAt    time.Time `json:"sentAt"`
}

type Notifier struct {
	conn     *amqp.Connection
	mu       sync.Mutex
	ch       channel
	exchange string
	now      func() time.Time
}

// Dial connects, declares the exchange and returns a ready notifier.
func Dial(url, exchange string) (*Notifier, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	err = ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	n := newNotifier(ch, exchange)
	n.conn = conn
	return n, nil
}

func newNotifier(ch channel, exchange string) *Notifier {
	return &Notifier{ch: ch, exchange: exchange, now: time.Now}
}

func (n *Notifier) Send(ctx context.Context, target ports.NotificationTarget, message string) error {
	body, err := json.Marshal(notificationMessage{
		Recipient: string(target.Recipient),
		ID:        target.ID.String(),
		Message:   message,
		SentAt:    n.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	err = n.ch.PublishWithContext(ctx,
		n.exchange,
		RoutingKey(target.Recipient),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    n.now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish notification for %s: %w", target, err)
	}
	return nil
}

func (n *Notifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	var err error
	if n.ch != nil {
		err = n.ch.Close()
	}
	if n.conn != nil {
		if cErr := n.conn.Close(); err == nil {
			err = cErr
		}
	}
	return err
}

func RoutingKey(r ports.Recipient) string {
	return "notify." + string(r)
}
