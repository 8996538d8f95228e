package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/randomizedcoder/go-interval/internal/cancel"
	"github.com/randomizedcoder/go-interval/internal/config"
	"github.com/randomizedcoder/go-interval/internal/debuglog"
	"github.com/randomizedcoder/go-interval/internal/interval"
	"github.com/randomizedcoder/go-interval/internal/tick"
)

// consolePeriod paces the goroutine that drains the log ring.
const consolePeriod = 10 * time.Millisecond

// run starts every configured task and returns when all have finished their
// cycles or ctx is done.
func run(ctx context.Context, cfg config.Config, out io.Writer) error {
	tasks := cfg.TaskList()
	opts := cfg.LoggerOptions()

	// Without a ring every task shares one logger, and so one output lock.
	var ring *debuglog.Ring
	shared := debuglog.New(out, opts)
	if cfg.Log.Ring > 0 {
		var err error
		if ring, err = debuglog.NewRing(cfg.Log.Ring, uint64(len(tasks))+1); err != nil {
			return err
		}
	}
	newLogger := func(producer int) *debuglog.Logger {
		if ring == nil {
			return shared
		}
		return debuglog.New(ring.Writer(uint64(producer)), opts)
	}

	mainLog := newLogger(len(tasks))
	mainLog.PrintBuild()
	mainLog.Infof("%d task(s), unit %s, %d cycle(s)", len(tasks), cfg.Unit, cfg.Cycles)

	consoleCtx, stopConsole := context.WithCancel(context.Background())
	consoleDone := make(chan struct{})
	if ring != nil {
		go func() {
			defer close(consoleDone)
			drainConsole(consoleCtx, ring, out)
		}()
	} else {
		close(consoleDone)
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, task := range tasks {
		log := newLogger(i).With(zap.String("task", task.Name))
		g.Go(func() error {
			return runTask(gctx, cfg, task, log)
		})
	}
	err := g.Wait()

	mainLog.Infof("finished")
	stopConsole()
	<-consoleDone
	return err
}

// drainConsole copies the ring to out until ctx is done, then flushes what is
// left. It is paced by its own controller whose yield drains the ring.
func drainConsole(ctx context.Context, ring *debuglog.Ring, out io.Writer) {
	c := interval.New[uint32](tick.NewMicros(),
		interval.WithPeriod[uint32](uint32(consolePeriod/time.Microsecond)),
		interval.WithYield[uint32](tick.Chain(ring.Yield(out), tick.Sleep(100*time.Microsecond))),
	)
	c.Arm()
	for ctx.Err() == nil && c.WaitContext(ctx) != interval.Abort {
	}
	_, _ = ring.Drain(out)
}

func runTask(ctx context.Context, cfg config.Config, task config.Task, log *debuglog.Logger) error {
	switch cfg.Unit {
	case config.Milliseconds:
		return paced[uint32](ctx, tick.NewMillis(), task, cfg.Cycles, log)
	case config.Microseconds:
		return paced[uint32](ctx, tick.NewMicros(), task, cfg.Cycles, log)
	case config.Nanoseconds:
		return paced[uint64](ctx, tick.NewNanos(), task, cfg.Cycles, log)
	default:
		return fmt.Errorf("unit %q: %w", cfg.Unit, config.ErrInvalid)
	}
}

// paced runs task for cycles periods (forever if zero). Each cycle simulates
// task.Work ticks of busy work and then waits out the rest of the period.
func paced[T tick.Unsigned](ctx context.Context, src tick.Source[T], task config.Task, cycles int, log *debuglog.Logger) error {
	c := interval.New[T](src, interval.WithPeriod[T](T(task.Period)))
	work := T(task.Work)

	log.Debugf("period %d, work %d", task.Period, task.Work)

	// Wait skips the poll on Overflow, so cancellation is also checked once
	// per cycle and during the simulated work.
	done := cancel.Context(ctx)
	stopped := func(i int) error {
		log.Infof("stopped after %d cycle(s)", i)
		reportStatistics(log, task.Name, c)
		return nil
	}

	overflows := 0
	c.Arm()
	for i := 0; cycles == 0 || i < cycles; i++ {
		if done() {
			return stopped(i)
		}

		start := src.Now()
		for tick.Elapsed(src.Now(), start) < work {
			if done() {
				return stopped(i)
			}
		}

		switch res := c.Wait(done); res {
		case interval.Success:
			log.Verbosef("cycle %d", i)
		case interval.Overflow:
			overflows++
			log.Warnf("cycle %d overran its period", i)
		case interval.Abort:
			return stopped(i)
		default:
			return res.Err()
		}
	}

	if overflows > 0 {
		log.Warnf("%d of %d cycle(s) overran", overflows, cycles)
	}
	reportStatistics(log, task.Name, c)
	return nil
}
