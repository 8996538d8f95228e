// Package interval implements a periodic-execution controller over a raw,
// wrapping tick counter.
//
// A cycle starts with Arm and ends with Wait. Wait measures how long the
// caller's work took (the delta since Arm), records it in bounded-memory
// statistics, and then busy-waits with cooperative yields until the period
// has elapsed. The wait can be cut short by a poll function, and is skipped
// entirely when the work already overran the period.
//
//	c := interval.New[uint32](tick.NewMillis(), interval.WithPeriod[uint32](500))
//	for {
//		c.Arm()
//		doWork()
//		switch c.Wait(buttonPressed) {
//		case interval.Overflow:
//			log.Warnf("cycle overran %d ms", c.Period())
//		}
//	}
//
// A Controller is owned by one goroutine. It has no internal locking; use one
// controller per periodic task.
//
// Build with -tags nointervalstats to compile the statistics out.
package interval

import (
	"context"

	"github.com/randomizedcoder/go-interval/internal/cancel"
	"github.com/randomizedcoder/go-interval/internal/tick"
)

// DefaultPeriod is the period of a controller built without WithPeriod.
const DefaultPeriod = tick.DefaultPeriod

// Controller drives one repeating period over a tick source of width T.
type Controller[T tick.Unsigned] struct {
	src   tick.Source[T]
	yield tick.Yield

	period T
	mark   T
	armed  bool

	stats recorder[T]
}

// Option configures a Controller.
type Option[T tick.Unsigned] func(*Controller[T])

// WithPeriod sets the initial period in ticks.
func WithPeriod[T tick.Unsigned](period T) Option[T] {
	return func(c *Controller[T]) {
		c.period = period
	}
}

// WithYield sets the hook called once per busy-wait iteration.
// A nil hook selects tick.NoYield.
func WithYield[T tick.Unsigned](y tick.Yield) Option[T] {
	return func(c *Controller[T]) {
		if y == nil {
			y = tick.NoYield
		}
		c.yield = y
	}
}

// New creates an unarmed Controller reading src.
//
// The default period is DefaultPeriod ticks and the default yield is
// tick.Gosched. New panics if src is nil.
func New[T tick.Unsigned](src tick.Source[T], opts ...Option[T]) *Controller[T] {
	if src == nil {
		panic("interval: nil tick source")
	}
	c := &Controller[T]{
		src:    src,
		yield:  tick.Gosched,
		period: DefaultPeriod,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.stats.reset()
	return c
}

// NewWithPeriod is shorthand for New(src, WithPeriod(period)).
func NewWithPeriod[T tick.Unsigned](src tick.Source[T], period T) *Controller[T] {
	return New(src, WithPeriod(period))
}

// SetPeriod replaces the period. It takes effect on the next IsElapsed or
// Wait and leaves the current cycle's start untouched.
func (c *Controller[T]) SetPeriod(period T) {
	c.period = period
}

// Period returns the configured period.
func (c *Controller[T]) Period() T {
	return c.period
}

// Arm starts a new cycle at the current tick. Re-arming abandons any cycle in
// progress.
func (c *Controller[T]) Arm() {
	c.mark = c.src.Now()
	c.armed = true
}

// Armed reports whether Arm has been called.
func (c *Controller[T]) Armed() bool {
	return c.armed
}

// Elapsed returns the ticks since the current cycle started. ok is false if
// the controller was never armed.
func (c *Controller[T]) Elapsed() (elapsed T, ok bool) {
	if !c.armed {
		return 0, false
	}
	return c.src.Now() - c.mark, true
}

// IsElapsed reports whether the current period is over. An unarmed
// controller is always elapsed, so polling loops fail open instead of hanging.
func (c *Controller[T]) IsElapsed() bool {
	if !c.armed {
		return true
	}
	return c.src.Now()-c.mark >= c.period
}

// Wait ends the current cycle.
//
// It records the work time since Arm, then blocks until the period is over.
// Each iteration of the wait calls poll (if non-nil) and then the yield hook;
// a true poll ends the wait with Abort. If the work time already reached the
// period, Wait returns Overflow without blocking. Every outcome except
// Failure starts the next cycle at the current tick.
func (c *Controller[T]) Wait(poll cancel.PollFunc) Result {
	if !c.armed {
		return Failure
	}

	delta := c.src.Now() - c.mark
	c.stats.observe(delta)

	result := Success
	if delta < c.period {
		for c.src.Now()-c.mark < c.period {
			if poll != nil && poll() {
				result = Abort
				break
			}
			c.yield()
		}
	} else {
		result = Overflow
	}

	c.mark = c.src.Now()
	return result
}

// WaitContext is Wait with ctx cancellation in the poll role.
func (c *Controller[T]) WaitContext(ctx context.Context) Result {
	return c.Wait(cancel.Context(ctx))
}
