// Package tick provides monotonic tick sources and cooperative yield hooks.
//
// A tick source is a wrapping, fixed-width unsigned counter of elapsed time.
// Consumers compute elapsed time as now-mark in the counter's own width, so a
// counter that wraps past zero still yields the correct interval:
//   - Millis: 32-bit millisecond counter (the classic firmware millis())
//   - Micros: 32-bit microsecond counter
//   - Nanos: 64-bit nanosecond counter
//   - TSC: raw CPU timestamp counter (x86 only)
//   - Manual: caller-driven counter for tests and simulation
//   - Batch: amortises reads of another source across N calls
//
// The hardware-backed sources read runtime.nanotime directly and avoid
// constructing a time.Time on every read.
package tick

import (
	"runtime"
	"time"
)

// Unsigned is the set of counter widths a Source may use.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Source returns the current value of a monotonic, wrapping tick counter.
//
// Now must not have side effects that matter to the caller's timing logic.
type Source[T Unsigned] interface {
	Now() T
}

// SourceFunc adapts a plain function to a Source.
type SourceFunc[T Unsigned] func() T

// Now calls f.
func (f SourceFunc[T]) Now() T { return f() }

// Elapsed returns now-mark computed in T, which is correct across a single
// wraparound of the counter.
func Elapsed[T Unsigned](now, mark T) T {
	return now - mark
}

// Max returns the largest value representable in T.
func Max[T Unsigned]() T {
	var zero T
	return ^zero
}

// Yield is a cooperative scheduling point. It is called from busy-wait loops
// so other cooperative work can run before the loop re-checks its condition.
type Yield func()

// Gosched yields the processor to other goroutines.
func Gosched() { runtime.Gosched() }

// NoYield does nothing. Use it where there is nothing else to schedule.
func NoYield() {}

// Sleep returns a Yield that blocks for d. It trades wake latency for CPU
// time on targets with real threads.
func Sleep(d time.Duration) Yield {
	return func() { time.Sleep(d) }
}

// Chain returns a Yield that calls each non-nil hook in order.
func Chain(hooks ...Yield) Yield {
	return func() {
		for _, h := range hooks {
			if h != nil {
				h()
			}
		}
	}
}

// DefaultPeriod is the period, in ticks, used when none is configured.
const DefaultPeriod = 100
