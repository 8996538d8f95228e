package interval

import (
	"fmt"
	"math"

	"go.uber.org/zap/zapcore"

	"github.com/randomizedcoder/go-interval/internal/tick"
)

// Accumulator keeps min, max and a running mean of observed deltas in fixed
// memory. The running sum has the width of T; when the next delta would
// overflow it, the sum is rebased onto the current mean (see Observe).
//
// The zero value is not ready for use; call NewAccumulator or Reset.
type Accumulator[T tick.Unsigned] struct {
	min   T
	max   T
	sum   T
	count uint64

	rebases uint64
}

// NewAccumulator returns an empty Accumulator.
func NewAccumulator[T tick.Unsigned]() Accumulator[T] {
	var a Accumulator[T]
	a.Reset()
	return a
}

// Reset returns the accumulator to its empty state: min at the largest value
// of T so the first observation always replaces it, everything else zero.
func (a *Accumulator[T]) Reset() {
	*a = Accumulator[T]{min: tick.Max[T]()}
}

// Observe records one delta.
//
// min and max are plain comparisons. For the mean, if sum+delta would exceed
// the width of T the sum restarts as mean+delta over a count of 2, trading
// long-run precision for an average that never wraps. In the corner where
// mean+delta itself does not fit, the pair is averaged directly and the
// count restarts at 1.
func (a *Accumulator[T]) Observe(delta T) {
	a.min = min(a.min, delta)
	a.max = max(a.max, delta)

	limit := tick.Max[T]()
	if a.sum <= limit-delta && a.count < math.MaxUint64 {
		a.sum += delta
		a.count++
		return
	}

	a.rebases++
	mean := a.Avg()
	if mean <= limit-delta {
		a.sum = mean + delta
		a.count = 2
		return
	}
	a.sum = mean/2 + delta/2 + (mean&1+delta&1)/2
	a.count = 1
}

// Min returns the smallest delta observed, or the largest value of T if none.
func (a *Accumulator[T]) Min() T {
	return a.min
}

// Max returns the largest delta observed, or 0 if none.
func (a *Accumulator[T]) Max() T {
	return a.max
}

// Mean returns sum/count. ok is false when nothing has been observed.
func (a *Accumulator[T]) Mean() (mean T, ok bool) {
	if a.count == 0 {
		return 0, false
	}
	return T(uint64(a.sum) / a.count), true
}

// Avg returns the mean, or 0 when nothing has been observed.
func (a *Accumulator[T]) Avg() T {
	mean, _ := a.Mean()
	return mean
}

// Sum returns the running sum backing the mean.
func (a *Accumulator[T]) Sum() T {
	return a.sum
}

// Count returns the number of observations backing the mean. It restarts
// at 2 (or 1) whenever the sum is rebased.
func (a *Accumulator[T]) Count() uint64 {
	return a.count
}

// Rebases returns how many times the sum was rebased to avoid overflow.
func (a *Accumulator[T]) Rebases() uint64 {
	return a.rebases
}

// Snapshot returns a read-only copy of the current values.
func (a *Accumulator[T]) Snapshot() Snapshot[T] {
	return Snapshot[T]{
		Min:     a.min,
		Max:     a.max,
		Avg:     a.Avg(),
		Count:   a.count,
		Rebases: a.rebases,
	}
}

// Snapshot is a copy of a controller's statistics, suitable for logging.
type Snapshot[T tick.Unsigned] struct {
	Period  T
	Min     T
	Max     T
	Avg     T
	Count   uint64
	Rebases uint64
}

func (s Snapshot[T]) String() string {
	return fmt.Sprintf("Period: %d  Min: %d  Max: %d  Average: %d", s.Period, s.Min, s.Max, s.Avg)
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (s Snapshot[T]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddUint64("period", uint64(s.Period))
	enc.AddUint64("min", uint64(s.Min))
	enc.AddUint64("max", uint64(s.Max))
	enc.AddUint64("avg", uint64(s.Avg))
	enc.AddUint64("count", s.Count)
	if s.Rebases > 0 {
		enc.AddUint64("rebases", s.Rebases)
	}
	return nil
}
