// Command ticksource measures the cost of reading each tick source and of
// the poll callbacks an interval wait consults on every iteration.
//
// Usage:
//
//	go run ./cmd/ticksource -n 10000000
package main

import (
	"context"
	"flag"
	"fmt"
	"runtime"
	"time"

	"github.com/randomizedcoder/go-interval/internal/cancel"
	"github.com/randomizedcoder/go-interval/internal/interval"
	"github.com/randomizedcoder/go-interval/internal/tick"
)

type sourceInfo struct {
	name   string
	create func() tick.Source[uint32]
}

type pollInfo struct {
	name   string
	create func() cancel.PollFunc
}

var sink uint32

func main() {
	iterations := flag.Int("n", 10_000_000, "number of iterations")
	flag.Parse()

	fmt.Printf("Benchmarking tick source reads (%d iterations)\n", *iterations)
	fmt.Printf("Architecture: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Println("─────────────────────────────────────────────────")

	sources := []sourceInfo{
		{"time.Now", func() tick.Source[uint32] {
			start := time.Now()
			return tick.SourceFunc[uint32](func() uint32 { return uint32(time.Since(start).Microseconds()) })
		}},
		{"Micros", func() tick.Source[uint32] { return tick.NewMicros() }},
		{"Millis", func() tick.Source[uint32] { return tick.NewMillis() }},
		{"Batch(Micros, 1000)", func() tick.Source[uint32] { return tick.NewBatch[uint32](tick.NewMicros(), 1000) }},
	}
	sources = append(sources, tscSources()...)

	results := make([]time.Duration, len(sources))
	for i, info := range sources {
		src := info.create()
		start := time.Now()
		for j := 0; j < *iterations; j++ {
			sink = src.Now()
		}
		results[i] = time.Since(start)
	}
	printResults(*iterations, names(sources), results)

	fmt.Printf("\nBenchmarking IsElapsed + poll (%d iterations)\n", *iterations)
	fmt.Println("─────────────────────────────────────────────────")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	polls := []pollInfo{
		{"Context", func() cancel.PollFunc { return cancel.Context(ctx) }},
		{"Atomic", func() cancel.PollFunc { return cancel.Poll(cancel.NewAtomic()) }},
		{"Every(1000, Context)", func() cancel.PollFunc { return cancel.Every(1000, cancel.Context(ctx)) }},
		{"Any(Atomic, Context)", func() cancel.PollFunc {
			return cancel.Any(cancel.Poll(cancel.NewAtomic()), cancel.Context(ctx))
		}},
	}

	pollResults := make([]time.Duration, len(polls))
	pollNames := make([]string, len(polls))
	for i, info := range polls {
		pollNames[i] = info.name
		poll := info.create()
		c := interval.New[uint32](tick.NewMicros(), interval.WithPeriod[uint32](uint32(time.Hour/time.Microsecond)))
		c.Arm()

		start := time.Now()
		for j := 0; j < *iterations; j++ {
			if poll() || c.IsElapsed() {
				break
			}
		}
		pollResults[i] = time.Since(start)
	}
	printResults(*iterations, pollNames, pollResults)

	fmt.Printf("\nNote: Batch only reads its clock every N calls, so overhead is amortized.\n")
}

func names(sources []sourceInfo) []string {
	out := make([]string, len(sources))
	for i, s := range sources {
		out[i] = s.name
	}
	return out
}

func printResults(iterations int, names []string, results []time.Duration) {
	fmt.Printf("\nResults:\n")
	baseline := float64(results[0].Nanoseconds()) / float64(iterations)

	for i, name := range names {
		perOp := float64(results[i].Nanoseconds()) / float64(iterations)
		speedup := baseline / perOp
		throughput := 1000 / perOp // M ops/sec

		fmt.Printf("  %-22s %12v  %8.2f ns/op  %6.2fx  %8.2f M/s\n",
			name, results[i], perOp, speedup, throughput)
	}
}
