package approval

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroker_ApproveFlow(t *testing.T) {
	b := NewBroker()

	require.NoError(t, b.Register("call-1", "run_shell"))
	assert.Equal(t, 1, b.PendingCount())

	done := make(chan Resolution, 1)
	go func() {
		res, err := b.Await(context.Background(), "call-1")
		require.NoError(t, err)
		done <- res
	}()

	// Give Await a moment to block, then resolve.
	require.Eventually(t, func() bool {
		return b.Resolve("call-1", Resolution{Approved: true, Note: "looks safe"}) == nil
	}, time.Second, 5*time.Millisecond)

	select {
	case res := <-done:
		assert.True(t, res.Approved)
		assert.Equal(t, "looks safe", res.Note)
	case <-time.After(time.Second):
		t.Fatal("Await did not return after Resolve")
	}

	assert.Equal(t, 0, b.PendingCount())
}

func TestBroker_RejectFlow(t *testing.T) {
	b := NewBroker()
	require.NoError(t, b.Register("call-1", "run_shell"))

	// Resolve before Await: the buffered slot holds the decision.
	require.NoError(t, b.Resolve("call-1", Resolution{Approved: false, Note: "not on prod"}))

	res, err := b.Await(context.Background(), "call-1")
	require.NoError(t, err)
	assert.False(t, res.Approved)
	assert.Equal(t, "not on prod", res.Note)
}

func TestBroker_ApproveForSessionWidensAllowSet(t *testing.T) {
	b := NewBroker()
	require.NoError(t, b.Register("call-1", "run_shell"))

	assert.False(t, b.SessionApproved("run_shell"))

	require.NoError(t, b.Resolve("call-1", Resolution{Approved: true, ForSession: true}))

	// Widened immediately, before Await consumes the decision.
	assert.True(t, b.SessionApproved("run_shell"))
	assert.False(t, b.SessionApproved("set_kubecontext"), "other tools stay gated")

	res, err := b.Await(context.Background(), "call-1")
	require.NoError(t, err)
	assert.True(t, res.Approved)
}

func TestBroker_RejectionDoesNotWidenAllowSet(t *testing.T) {
	b := NewBroker()
	require.NoError(t, b.Register("call-1", "run_shell"))

	// ForSession only matters on approvals.
	require.NoError(t, b.Resolve("call-1", Resolution{Approved: false, ForSession: true}))
	assert.False(t, b.SessionApproved("run_shell"))
}

func TestBroker_ResolveUnknownCall(t *testing.T) {
	b := NewBroker()
	err := b.Resolve("no-such-call", Resolution{Approved: true})
	assert.ErrorIs(t, err, ErrUnknownCall)
}

func TestBroker_DoubleResolve(t *testing.T) {
	b := NewBroker()
	require.NoError(t, b.Register("call-1", "run_shell"))

	require.NoError(t, b.Resolve("call-1", Resolution{Approved: true}))
	err := b.Resolve("call-1", Resolution{Approved: false})
	assert.ErrorIs(t, err, ErrAlreadyResolved)

	// The first decision wins.
	res, err := b.Await(context.Background(), "call-1")
	require.NoError(t, err)
	assert.True(t, res.Approved)
}

func TestBroker_DuplicateRegister(t *testing.T) {
	b := NewBroker()
	require.NoError(t, b.Register("call-1", "run_shell"))
	assert.ErrorIs(t, b.Register("call-1", "run_shell"), ErrAlreadyPending)
}

func TestBroker_AwaitCancelledContext(t *testing.T) {
	b := NewBroker()
	require.NoError(t, b.Register("call-1", "run_shell"))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := b.Await(ctx, "call-1")
	assert.ErrorIs(t, err, context.Canceled)

	// The slot is gone; a late operator answer is rejected.
	assert.ErrorIs(t, b.Resolve("call-1", Resolution{Approved: true}), ErrUnknownCall)
	assert.Equal(t, 0, b.PendingCount())
}

func TestBroker_AwaitUnregisteredCall(t *testing.T) {
	b := NewBroker()
	_, err := b.Await(context.Background(), "never-registered")
	assert.ErrorIs(t, err, ErrUnknownCall)
}
