package cancel

import "sync/atomic"

// AtomicCanceler uses an atomic.Bool for cancellation signaling.
//
// Each call to Done() performs a single atomic load, which is much faster
// than a channel select. It is the natural fit for a flag raised by an
// interrupt handler or a button-watching goroutine.
type AtomicCanceler struct {
	done atomic.Bool
}

// NewAtomic creates a new AtomicCanceler.
func NewAtomic() *AtomicCanceler {
	return &AtomicCanceler{}
}

// Done returns true if cancellation has been triggered.
func (a *AtomicCanceler) Done() bool {
	return a.done.Load()
}

// Cancel triggers cancellation.
//
// Safe to call multiple times; subsequent calls are no-ops.
func (a *AtomicCanceler) Cancel() {
	a.done.Store(true)
}

// Take reports whether cancellation was triggered and clears the flag in the
// same atomic step. Use it when each Cancel should abort exactly one wait.
func (a *AtomicCanceler) Take() bool {
	return a.done.Swap(false)
}

// Reset clears the cancellation flag.
//
// Useful for reusing the canceler without reallocation.
// Not safe to call concurrently with Done() or Cancel().
func (a *AtomicCanceler) Reset() {
	a.done.Store(false)
}
