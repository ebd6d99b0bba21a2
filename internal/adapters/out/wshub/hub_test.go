package wshub_test

import (
	"context"
	"testing"

	"courierhub/internal/adapters/out/wshub"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_DeliversToOrderSubscribersOnly(t *testing.T) {
	hub := wshub.New()
	mine, other := kernel.NewUUID(), kernel.NewUUID()
	events, cancel := hub.Subscribe(mine)
	defer cancel()
	otherEvents, cancelOther := hub.Subscribe(other)
	defer cancelOther()

	require.NoError(t, hub.Publish(context.Background(), order.StatusChanged{OrderID: mine, Status: order.PickedUp}))

	got := <-events
	assert.Equal(t, order.PickedUp, got.Status)
	assert.Empty(t, otherEvents)
}

func TestHub_TerminalStatusClosesSubscriptions(t *testing.T) {
	hub := wshub.New()
	id := kernel.NewUUID()
	events, cancel := hub.Subscribe(id)

	require.NoError(t, hub.Publish(context.Background(), order.StatusChanged{OrderID: id, Status: order.Completed}))

	got, ok := <-events
	require.True(t, ok)
	assert.Equal(t, order.Completed, got.Status)
	_, ok = <-events
	assert.False(t, ok)
	assert.Zero(t, hub.Subscribers(id))
	assert.NotPanics(t, cancel, "cancel after close is a no-op")
}

func TestHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	hub := wshub.New()
	id := kernel.NewUUID()
	_, cancel := hub.Subscribe(id)
	defer cancel()

	for range 100 {
		require.NoError(t, hub.Publish(context.Background(), order.StatusChanged{OrderID: id, Status: order.Delivering}))
	}
	assert.Equal(t, 1, hub.Subscribers(id))

	cancel()
	cancel()
	assert.Zero(t, hub.Subscribers(id))
}
