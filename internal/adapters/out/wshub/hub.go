// Package wshub fans committed order status changes out to live tracking
// subscribers. The HTTP layer owns the websocket connections; the hub only
// keeps per-order subscriptions.
package wshub

import (
	"context"
	"sync"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/order"
)

const subscriptionBuffer = 16

type subscription struct {
	ch chan order.StatusChanged
}

// Hub implements ports.OrderEventPublisher. A subscriber that falls
// subscriptionBuffer events behind misses events rather than stalling
// the publisher. Subscriptions close after a terminal status.
type Hub struct {
	mu   sync.Mutex
	subs map[kernel.UUID]map[*subscription]struct{}
}

func New() *Hub {
	return &Hub{subs: make(map[kernel.UUID]map[*subscription]struct{})}
}

// Subscribe registers interest in one order. The returned cancel func is
// idempotent and must be called when the reader goes away.
func (h *Hub) Subscribe(orderID kernel.UUID) (<-chan order.StatusChanged, func()) {
	s := &subscription{ch: make(chan order.StatusChanged, subscriptionBuffer)}

	h.mu.Lock()
	if h.subs[orderID] == nil {
		h.subs[orderID] = make(map[*subscription]struct{})
	}
	h.subs[orderID][s] = struct{}{}
	h.mu.Unlock()

	return s.ch, func() { h.unsubscribe(orderID, s) }
}

func (h *Hub) Publish(_ context.Context, evt order.StatusChanged) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs := h.subs[evt.OrderID]
	for s := range subs {
		select {
		case s.ch <- evt:
		default:
		}
	}
	if evt.Status.IsTerminal() {
		for s := range subs {
			close(s.ch)
		}
		delete(h.subs, evt.OrderID)
	}
	return nil
}

// Subscribers reports the number of open subscriptions for an order.
func (h *Hub) Subscribers(orderID kernel.UUID) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[orderID])
}

func (h *Hub) unsubscribe(orderID kernel.UUID, s *subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.subs[orderID]
	if !ok {
		return
	}
	if _, ok = subs[s]; !ok {
		return
	}
	delete(subs, s)
	close(s.ch)
	if len(subs) == 0 {
		delete(h.subs, orderID)
	}
}
