package cancel_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomizedcoder/go-interval/internal/cancel"
)

func TestContextCanceler(t *testing.T) {
	c := cancel.NewContext(context.Background())

	assert.False(t, c.Done(), "expected Done() = false before Cancel()")

	c.Cancel()
	assert.True(t, c.Done(), "expected Done() = true after Cancel()")

	// Verify idempotent
	c.Cancel()
	assert.True(t, c.Done(), "expected Done() = true after second Cancel()")
}

func TestContextCanceler_Parent(t *testing.T) {
	parent, cancelParent := context.WithCancel(context.Background())
	c := cancel.NewContext(parent)

	require.False(t, c.Done())
	cancelParent()
	assert.True(t, c.Done(), "expected parent cancellation to propagate")
}

func TestContextCanceler_Context(t *testing.T) {
	c := cancel.NewContext(context.Background())

	ctx := c.Context()
	require.NotNil(t, ctx)

	select {
	case <-ctx.Done():
		t.Fatal("expected context to not be done")
	default:
	}

	c.Cancel()

	select {
	case <-ctx.Done():
	default:
		t.Error("expected context to be done after Cancel()")
	}
}

func TestAtomicCanceler(t *testing.T) {
	c := cancel.NewAtomic()

	assert.False(t, c.Done(), "expected Done() = false before Cancel()")

	c.Cancel()
	assert.True(t, c.Done(), "expected Done() = true after Cancel()")

	c.Cancel()
	assert.True(t, c.Done(), "expected Done() = true after second Cancel()")
}

func TestAtomicCanceler_Reset(t *testing.T) {
	c := cancel.NewAtomic()

	c.Cancel()
	require.True(t, c.Done())

	c.Reset()
	assert.False(t, c.Done(), "expected Done() = false after Reset()")
}

func TestAtomicCanceler_Take(t *testing.T) {
	c := cancel.NewAtomic()

	assert.False(t, c.Take())

	c.Cancel()
	assert.True(t, c.Take(), "expected Take() to observe Cancel()")
	assert.False(t, c.Take(), "expected Take() to clear the flag")
	assert.False(t, c.Done())
}

func TestContextPoll(t *testing.T) {
	ctx, cancelCtx := context.WithCancel(context.Background())
	poll := cancel.Context(ctx)

	assert.False(t, poll())
	cancelCtx()
	assert.True(t, poll())
}

func TestAny(t *testing.T) {
	calls := 0
	counting := func() bool {
		calls++
		return false
	}

	assert.False(t, cancel.Any()())
	assert.False(t, cancel.Any(nil, counting, cancel.Never)())
	assert.Equal(t, 1, calls)

	assert.True(t, cancel.Any(cancel.Always, counting)())
	assert.Equal(t, 1, calls, "expected evaluation to stop at the first true")
}

func TestEvery(t *testing.T) {
	calls := 0
	poll := cancel.Every(3, func() bool {
		calls++
		return true
	})

	got := []bool{poll(), poll(), poll(), poll(), poll(), poll()}
	assert.Equal(t, []bool{false, false, true, false, false, true}, got)
	assert.Equal(t, 2, calls)
}

func TestEvery_MinimumN(t *testing.T) {
	poll := cancel.Every(0, cancel.Always)
	assert.True(t, poll())
	assert.True(t, poll())
}

func TestAfter(t *testing.T) {
	poll := cancel.After(2)
	assert.False(t, poll())
	assert.False(t, poll())
	assert.True(t, poll())
	assert.True(t, poll())

	assert.True(t, cancel.After(0)())
}

// Test that both implementations satisfy the interface
func TestCancelerInterface(t *testing.T) {
	testCases := []struct {
		name string
		c    cancel.Canceler
	}{
		{"Context", cancel.NewContext(context.Background())},
		{"Atomic", cancel.NewAtomic()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			poll := cancel.Poll(tc.c)
			assert.False(t, poll(), "expected Done() = false initially")

			tc.c.Cancel()
			assert.True(t, poll(), "expected Done() = true after Cancel()")
		})
	}
}
