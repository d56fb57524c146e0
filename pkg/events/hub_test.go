package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// No NotifyListener is attached in these tests; the hub treats LISTEN as
// someone else's problem and still fans out local Broadcast calls.

func TestHub_SubscribeAndBroadcast(t *testing.T) {
	hub := NewHub()
	channel := TaskChannel("task-1")

	sub, err := hub.Subscribe(t.Context(), channel)
	require.NoError(t, err)
	assert.Equal(t, 1, hub.SubscriberCount(channel))

	hub.Broadcast(channel, []byte(`{"step_index":0,"kind":"trace_started"}`))

	select {
	case payload := <-sub.Events():
		assert.JSONEq(t, `{"step_index":0,"kind":"trace_started"}`, string(payload))
	case <-time.After(time.Second):
		t.Fatal("expected payload was not delivered")
	}
}

func TestHub_BroadcastToUnknownChannelIsNoop(t *testing.T) {
	hub := NewHub()
	// Must not panic or block.
	hub.Broadcast(TaskChannel("nobody-home"), []byte(`{}`))
}

func TestHub_MultipleSubscribersEachReceive(t *testing.T) {
	hub := NewHub()
	channel := TaskChannel("task-2")

	first, err := hub.Subscribe(t.Context(), channel)
	require.NoError(t, err)
	second, err := hub.Subscribe(t.Context(), channel)
	require.NoError(t, err)
	require.Equal(t, 2, hub.SubscriberCount(channel))

	hub.Broadcast(channel, []byte(`{"step_index":1}`))

	for _, sub := range []*Subscriber{first, second} {
		select {
		case payload := <-sub.Events():
			assert.JSONEq(t, `{"step_index":1}`, string(payload))
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive the broadcast")
		}
	}
}

func TestHub_UnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()
	channel := TaskChannel("task-3")

	sub, err := hub.Subscribe(t.Context(), channel)
	require.NoError(t, err)

	hub.Unsubscribe(sub)
	assert.Equal(t, 0, hub.SubscriberCount(channel))

	_, open := <-sub.Events()
	assert.False(t, open, "unsubscribed channel should be closed")

	// Double unsubscribe must be a no-op, not a double close.
	hub.Unsubscribe(sub)
}

func TestHub_SlowSubscriberIsDropped(t *testing.T) {
	hub := NewHub()
	channel := TaskChannel("task-4")

	slow, err := hub.Subscribe(t.Context(), channel)
	require.NoError(t, err)
	healthy, err := hub.Subscribe(t.Context(), channel)
	require.NoError(t, err)

	// Fill the slow subscriber's buffer without draining it, then push one
	// more: that broadcast must evict the laggard.
	for i := 0; i <= subscriberBuffer; i++ {
		hub.Broadcast(channel, []byte(`{"step_index":0}`))
		// Keep the healthy subscriber drained so only one falls behind.
		for len(healthy.Events()) > 0 {
			<-healthy.Events()
		}
	}

	assert.Equal(t, 1, hub.SubscriberCount(channel), "the slow subscriber should be gone")

	// Drain what was buffered; after that the channel must be closed.
	for range slow.Events() {
	}
}
