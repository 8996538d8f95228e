package cancel

import "context"

// ContextCanceler is a Canceler that owns a cancelable context, for callers
// that need both a poll and a context to hand to blocking code.
type ContextCanceler struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// NewContext creates a ContextCanceler from a parent context.
func NewContext(parent context.Context) *ContextCanceler {
	ctx, cancel := context.WithCancel(parent)
	return &ContextCanceler{
		ctx:    ctx,
		cancel: cancel,
	}
}

// Done returns true if the context has been cancelled.
func (c *ContextCanceler) Done() bool {
	return Context(c.ctx)()
}

// Cancel triggers cancellation of the context.
func (c *ContextCanceler) Cancel() {
	c.cancel()
}

// Context returns the owned context.
func (c *ContextCanceler) Context() context.Context {
	return c.ctx
}

// Context returns a PollFunc that reports whether ctx is done. The poll never
// blocks, so it fits the poll role of a paced wait.
func Context(ctx context.Context) PollFunc {
	done := ctx.Done()
	return func() bool {
		select {
		case <-done:
			return true
		default:
			return false
		}
	}
}
