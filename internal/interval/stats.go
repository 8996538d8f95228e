//go:build !nointervalstats

package interval

import "github.com/randomizedcoder/go-interval/internal/tick"

// StatisticsEnabled reports whether controllers carry an accumulator.
const StatisticsEnabled = true

type recorder[T tick.Unsigned] struct {
	acc Accumulator[T]
}

func (r *recorder[T]) observe(delta T) { r.acc.Observe(delta) }
func (r *recorder[T]) reset()          { r.acc.Reset() }

// MinPeriod returns the shortest work time observed by Wait.
func (c *Controller[T]) MinPeriod() T {
	return c.stats.acc.Min()
}

// MaxPeriod returns the longest work time observed by Wait.
func (c *Controller[T]) MaxPeriod() T {
	return c.stats.acc.Max()
}

// AvgPeriod returns the mean work time observed by Wait, or 0 before the
// first observation.
func (c *Controller[T]) AvgPeriod() T {
	return c.stats.acc.Avg()
}

// ResetStatistics clears min, max and mean.
func (c *Controller[T]) ResetStatistics() {
	c.stats.reset()
}

// Statistics returns a snapshot of the statistics and the current period.
func (c *Controller[T]) Statistics() Snapshot[T] {
	s := c.stats.acc.Snapshot()
	s.Period = c.period
	return s
}
