//go:build nointervalstats

package interval

import "github.com/randomizedcoder/go-interval/internal/tick"

// StatisticsEnabled reports whether controllers carry an accumulator.
const StatisticsEnabled = false

type recorder[T tick.Unsigned] struct{}

func (recorder[T]) observe(T) {}
func (recorder[T]) reset()    {}
