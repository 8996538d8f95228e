//go:build !nointervalstats

package main

import (
	"github.com/randomizedcoder/go-interval/internal/debuglog"
	"github.com/randomizedcoder/go-interval/internal/interval"
	"github.com/randomizedcoder/go-interval/internal/tick"
)

func reportStatistics[T tick.Unsigned](log *debuglog.Logger, name string, c *interval.Controller[T]) {
	log.Stats(name, c.Statistics())
}
