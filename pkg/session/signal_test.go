package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignal_FireIsIdempotent(t *testing.T) {
	sig := NewSignal()
	assert.False(t, sig.Fired())

	sig.Fire()
	sig.Fire() // second fire must not panic on the closed channel
	assert.True(t, sig.Fired())

	select {
	case <-sig.Done():
	default:
		t.Fatal("Done channel should be closed after Fire")
	}
}

func TestSignal_DoneUnblocksWaiters(t *testing.T) {
	sig := NewSignal()
	unblocked := make(chan struct{})

	go func() {
		<-sig.Done()
		close(unblocked)
	}()

	sig.Fire()

	select {
	case <-unblocked:
	case <-time.After(2 * time.Second):
		t.Fatal("waiter was not unblocked by Fire")
	}
}

func TestSignal_BindCancelBeforeFire(t *testing.T) {
	sig := NewSignal()
	ctx, cancel := context.WithCancel(context.Background())
	sig.BindCancel(cancel)

	require.NoError(t, ctx.Err())
	sig.Fire()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestSignal_BindCancelAfterFire(t *testing.T) {
	sig := NewSignal()
	sig.Fire()

	ctx, cancel := context.WithCancel(context.Background())
	sig.BindCancel(cancel)
	assert.ErrorIs(t, ctx.Err(), context.Canceled,
		"late binders must observe an already-fired abort")
}

func TestSignal_MultipleCancels(t *testing.T) {
	sig := NewSignal()
	ctx1, cancel1 := context.WithCancel(context.Background())
	ctx2, cancel2 := context.WithCancel(context.Background())
	sig.BindCancel(cancel1)
	sig.BindCancel(cancel2)

	sig.Fire()
	assert.ErrorIs(t, ctx1.Err(), context.Canceled)
	assert.ErrorIs(t, ctx2.Err(), context.Canceled)
}
