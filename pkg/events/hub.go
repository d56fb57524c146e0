package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// subscriberBuffer is the per-subscriber channel capacity. A subscriber
// that falls this far behind is dropped; the replay path recovers it.
const subscriberBuffer = 64

// listenTimeout bounds how long a LISTEN command may block when
// subscribing to a new PG channel. Without this, a stalled connection
// would block the subscribing request indefinitely.
const listenTimeout = 10 * time.Second

// Subscriber is one consumer of a task's live event stream, typically an
// SSE response in flight. Its channel is closed when it is unsubscribed
// or dropped for falling behind.
type Subscriber struct {
	id      string
	channel string
	ch      chan []byte
}

// Events returns the subscriber's delivery channel. A closed channel
// means the hub has let go of this subscriber — the consumer should end
// its response and let the client reconnect through replay.
func (s *Subscriber) Events() <-chan []byte {
	return s.ch
}

// Hub fans NOTIFY payloads out to in-process subscribers. Each Go
// process has one Hub; the NotifyListener feeds it everything arriving
// on the channels it LISTENs to.
type Hub struct {
	mu       sync.Mutex
	channels map[string]map[*Subscriber]bool

	// NotifyListener for dynamic LISTEN/UNLISTEN (set after construction)
	listener   *NotifyListener
	listenerMu sync.RWMutex
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		channels: make(map[string]map[*Subscriber]bool),
	}
}

// SetListener sets the NotifyListener for dynamic LISTEN/UNLISTEN.
// Called once during startup after both Hub and NotifyListener exist.
func (h *Hub) SetListener(l *NotifyListener) {
	h.listenerMu.Lock()
	defer h.listenerMu.Unlock()
	h.listener = l
}

// Subscribe registers a new subscriber for a channel and starts LISTEN
// if it is the first one. LISTEN completes before Subscribe returns, so
// a caller that replays the journal afterwards cannot miss frames
// published in between: anything after the replay point arrives live.
func (h *Hub) Subscribe(ctx context.Context, channel string) (*Subscriber, error) {
	sub := &Subscriber{
		id:      uuid.New().String(),
		channel: channel,
		ch:      make(chan []byte, subscriberBuffer),
	}

	h.mu.Lock()
	needsListen := false
	set, exists := h.channels[channel]
	if !exists {
		set = make(map[*Subscriber]bool)
		h.channels[channel] = set
		needsListen = true
	}
	set[sub] = true
	h.mu.Unlock()

	if needsListen {
		h.listenerMu.RLock()
		l := h.listener
		h.listenerMu.RUnlock()
		if l != nil {
			listenCtx, cancel := context.WithTimeout(ctx, listenTimeout)
			defer cancel()
			if err := l.Subscribe(listenCtx, channel); err != nil {
				slog.Error("Failed to LISTEN on channel", "channel", channel, "error", err)
				// Anyone who raced in while we held no lock believed the
				// channel was live; close them all out so they re-subscribe.
				h.dropChannel(channel)
				return nil, fmt.Errorf("LISTEN on channel %s: %w", channel, err)
			}
		}
	}

	return sub, nil
}

// Unsubscribe removes a subscriber, closes its channel, and stops LISTEN
// if it was the last one on its PG channel.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	set, exists := h.channels[sub.channel]
	if !exists || !set[sub] {
		h.mu.Unlock()
		return
	}
	delete(set, sub)
	close(sub.ch)
	lastOut := len(set) == 0
	if lastOut {
		delete(h.channels, sub.channel)
	}
	h.mu.Unlock()

	if lastOut {
		h.unlistenIfIdle(sub.channel)
	}
}

// Broadcast delivers a payload to every subscriber of a channel. Sends
// are non-blocking: a subscriber with a full buffer is dropped rather
// than allowed to stall the stream for everyone else.
func (h *Hub) Broadcast(channel string, payload []byte) {
	var slow []*Subscriber

	h.mu.Lock()
	for sub := range h.channels[channel] {
		select {
		case sub.ch <- payload:
		default:
			slow = append(slow, sub)
		}
	}
	h.mu.Unlock()

	for _, sub := range slow {
		slog.Warn("Dropping slow event subscriber",
			"channel", channel, "subscriber_id", sub.id)
		h.Unsubscribe(sub)
	}
}

// SubscriberCount returns the number of subscribers for a channel.
func (h *Hub) SubscriberCount(channel string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.channels[channel])
}

// dropChannel closes out every subscriber of a channel after a LISTEN
// failure. Their closed channels tell them the stream is gone; clients
// recover by reconnecting, which replays from the journal.
func (h *Hub) dropChannel(channel string) {
	h.mu.Lock()
	set := h.channels[channel]
	delete(h.channels, channel)
	for sub := range set {
		close(sub.ch)
	}
	h.mu.Unlock()
}

// unlistenIfIdle stops LISTEN for a channel unless someone re-subscribed
// in the meantime. The re-check prevents a rapid unsubscribe/resubscribe
// cycle (e.g. a client reconnect) from dropping an active LISTEN:
//
//	subscribe   → LISTEN active
//	unsubscribe → UNLISTEN queued
//	resubscribe → channel re-added
//	queued UNLISTEN → sees the channel is live again → skips
func (h *Hub) unlistenIfIdle(channel string) {
	h.listenerMu.RLock()
	l := h.listener
	h.listenerMu.RUnlock()
	if l == nil {
		return
	}

	go func() {
		h.mu.Lock()
		_, resubscribed := h.channels[channel]
		h.mu.Unlock()
		if resubscribed {
			return
		}
		if err := l.Unsubscribe(context.Background(), channel); err != nil {
			slog.Error("Failed to UNLISTEN channel", "channel", channel, "error", err)
		}
	}()
}
