// Package approval implements the human-in-the-loop gate for destructive
// tool calls. A broker instance lives for the duration of one investigation:
// the agent runtime registers a pending decision per gated call and blocks on
// it, while the HTTP layer resolves it when the operator answers.
package approval

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrUnknownCall is returned when resolving a call_id that is not
	// awaiting a decision (never requested, already decided, or the run ended).
	ErrUnknownCall = errors.New("no pending approval for call")
	// ErrAlreadyResolved is returned when a second decision arrives for a
	// call whose first decision has not been consumed yet.
	ErrAlreadyResolved = errors.New("approval already resolved")
	// ErrAlreadyPending is returned when the same call_id is registered twice.
	ErrAlreadyPending = errors.New("approval already pending for call")
)

// Resolution is the operator's answer to a single approval request.
type Resolution struct {
	Approved   bool   // false means rejected
	ForSession bool   // approve this tool for the rest of the investigation
	Note       string // optional free-text note, echoed into the event stream
}

// pendingCall is one outstanding decision slot. The channel is buffered so
// Resolve never blocks on a runtime that has not reached Await yet.
type pendingCall struct {
	toolName string
	ch       chan Resolution
}

// Broker tracks pending approval requests and session-wide approvals for a
// single investigation. All methods are safe for concurrent use.
type Broker struct {
	mu              sync.Mutex
	pending         map[string]*pendingCall
	sessionApproved map[string]bool // tool name → approved for the rest of the run
}

// NewBroker creates an empty broker for one investigation.
func NewBroker() *Broker {
	return &Broker{
		pending:         make(map[string]*pendingCall),
		sessionApproved: make(map[string]bool),
	}
}

// Register creates the decision slot for a call. It must be called before the
// approval request is announced on the event stream, so an operator answering
// immediately cannot race the runtime into ErrUnknownCall.
func (b *Broker) Register(callID, toolName string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.pending[callID]; exists {
		return ErrAlreadyPending
	}
	b.pending[callID] = &pendingCall{
		toolName: toolName,
		ch:       make(chan Resolution, 1),
	}
	return nil
}

// Await blocks until the call is resolved or the context ends. The slot is
// removed on return either way, so a late Resolve gets ErrUnknownCall rather
// than feeding a decision to nobody.
func (b *Broker) Await(ctx context.Context, callID string) (Resolution, error) {
	b.mu.Lock()
	call, ok := b.pending[callID]
	b.mu.Unlock()
	if !ok {
		return Resolution{}, ErrUnknownCall
	}

	defer func() {
		b.mu.Lock()
		delete(b.pending, callID)
		b.mu.Unlock()
	}()

	select {
	case res := <-call.ch:
		return res, nil
	case <-ctx.Done():
		return Resolution{}, ctx.Err()
	}
}

// Resolve delivers the operator's decision for a pending call. A session-wide
// approval widens the allow set immediately, before the runtime consumes the
// decision, so a parallel request for the same tool does not re-ask.
func (b *Broker) Resolve(callID string, res Resolution) error {
	b.mu.Lock()
	call, ok := b.pending[callID]
	if !ok {
		b.mu.Unlock()
		return ErrUnknownCall
	}
	if res.Approved && res.ForSession {
		b.sessionApproved[call.toolName] = true
	}
	b.mu.Unlock()

	select {
	case call.ch <- res:
		return nil
	default:
		return ErrAlreadyResolved
	}
}

// SessionApproved reports whether the tool was approved for the rest of the
// investigation by an earlier approve_for_session decision.
func (b *Broker) SessionApproved(toolName string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sessionApproved[toolName]
}

// PendingCount returns the number of calls currently awaiting a decision.
func (b *Broker) PendingCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}
