// Command interval runs one or more periodic tasks, each paced by its own
// interval controller, and prints their period statistics.
//
// Usage:
//
//	go run ./cmd/interval -period 500 -cycles 20
//	go run ./cmd/interval -config interval.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/randomizedcoder/go-interval/internal/config"
	"github.com/randomizedcoder/go-interval/internal/debuglog"
)

func main() {
	cfgPath := flag.String("config", "", "YAML configuration file")
	period := flag.Uint64("period", 0, "task period in ticks (overrides config)")
	unit := flag.String("unit", "", "tick unit: ms, us or ns (overrides config)")
	cycles := flag.Int("cycles", -1, "periods per task, 0 runs until interrupted (overrides config)")
	work := flag.Uint64("work", 0, "simulated work per cycle in ticks (overrides config)")
	level := flag.String("level", "", "log level: none, error, warning, info, debug, verbose")
	noColors := flag.Bool("no-colors", false, "disable ANSI colors")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.LoadFile(*cfgPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	// Flags override the file only when given.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "period":
			cfg.Period = *period
		case "unit":
			cfg.Unit = config.Unit(*unit)
		case "cycles":
			cfg.Cycles = *cycles
		case "work":
			cfg.Work = *work
		case "no-colors":
			cfg.Log.Colors = !*noColors
		}
	})
	if *level != "" {
		l, err := debuglog.ParseLevel(*level)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		cfg.Log.Level = l
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
