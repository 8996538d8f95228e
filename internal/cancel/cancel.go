// Package cancel provides the poll conditions that cut a cooperative wait short.
//
// A busy-wait loop checks its poll condition once per iteration, before it
// yields. This package offers the sources of that condition:
//   - AtomicCanceler: flag set from another goroutine or an interrupt handler
//   - ContextCanceler: cancellation carried by a context.Context
//   - Any, Every, After: combinators over plain poll functions
//
// The atomic approach is significantly cheaper in polling hot-loops where
// Done() is called millions of times per second.
package cancel

// Canceler provides cancellation signaling to a polling loop.
//
// Implementations must be safe for concurrent use:
//   - Multiple goroutines may call Done() concurrently
//   - Cancel() may be called concurrently with Done()
type Canceler interface {
	// Done returns true if cancellation has been triggered.
	Done() bool

	// Cancel triggers cancellation. Safe to call multiple times.
	Cancel()
}

// PollFunc reports whether a wait should stop now.
type PollFunc = func() bool

// Poll adapts a Canceler to a PollFunc.
func Poll(c Canceler) PollFunc {
	return c.Done
}
