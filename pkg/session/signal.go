// Package session holds the in-memory state of one live investigation:
// the abort signal, the approval broker, the todo board and the mutable
// kubecontext. Sessions are created when an investigation starts and
// removed right after its done frame; nothing in here survives a restart.
package session

import (
	"context"
	"sync"
)

// Signal is a one-shot, idempotent abort flag. Firing closes the Done
// channel and invokes every bound cancel function, so both select-based
// waiters and context-based ones observe the abort.
type Signal struct {
	mu      sync.Mutex
	fired   bool
	ch      chan struct{}
	cancels []context.CancelFunc
}

// NewSignal creates an unfired signal.
func NewSignal() *Signal {
	return &Signal{ch: make(chan struct{})}
}

// Fire triggers the signal. Safe to call concurrently and repeatedly;
// only the first call has any effect.
func (s *Signal) Fire() {
	s.mu.Lock()
	if s.fired {
		s.mu.Unlock()
		return
	}
	s.fired = true
	close(s.ch)
	cancels := s.cancels
	s.cancels = nil
	s.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
}

// Fired reports whether the signal has been triggered.
func (s *Signal) Fired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fired
}

// Done returns a channel closed when the signal fires, for use in select.
func (s *Signal) Done() <-chan struct{} {
	return s.ch
}

// BindCancel ties a context's cancel function to the signal. If the
// signal already fired the cancel runs immediately, so late binders
// cannot miss the abort.
func (s *Signal) BindCancel(cancel context.CancelFunc) {
	s.mu.Lock()
	if s.fired {
		s.mu.Unlock()
		cancel()
		return
	}
	s.cancels = append(s.cancels, cancel)
	s.mu.Unlock()
}
