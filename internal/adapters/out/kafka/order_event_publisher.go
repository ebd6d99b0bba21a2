// Package kafka publishes committed order status changes to a Kafka topic,
// keyed by order id so that one order's events stay in partition order.
package kafka

import (
	"context"
	"fmt"
	"strings"
	"time"

	"courierhub/internal/adapters/out/events"
	"courierhub/internal/core/domain/model/order"

	kafkago "github.com/segmentio/kafka-go"
)

const defaultWriteTimeout = 2 * time.Second

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

type OrderEventPublisher struct {
	writer  messageWriter
	timeout time.Duration
}

// NewOrderEventPublisher connects to a comma separated broker list.
func NewOrderEventPublisher(brokers, topic string) (*OrderEventPublisher, error) {
	if strings.TrimSpace(brokers) == "" || topic == "" {
		return nil, fmt.Errorf("kafka brokers and topic are required")
	}
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(strings.Split(brokers, ",")...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireOne,
		AllowAutoTopicCreation: true,
	}
	return newOrderEventPublisher(w), nil
}

func newOrderEventPublisher(w messageWriter) *OrderEventPublisher {
	return &OrderEventPublisher{writer: w, timeout: defaultWriteTimeout}
}

func (p *OrderEventPublisher) Publish(ctx context.Context, evt order.StatusChanged) error {
	body, err := events.Marshal(evt)
	if err != nil {
		return fmt.Errorf("encode order event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	msg := kafkago.Message{
		Key:   []byte(evt.OrderID.String()),
		Value: body,
		Time:  evt.OccurredAt,
		Headers: []kafkago.Header{
			{Key: "status", Value: []byte(evt.Status.String())},
		},
	}
	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish order %s: %w", evt.OrderID, err)
	}
	return nil
}

func (p *OrderEventPublisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
