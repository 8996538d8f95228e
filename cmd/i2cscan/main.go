// Command i2cscan lists the devices that answer on an I2C bus.
//
// On a host it scans a simulated bus populated from the configuration; built
// with TinyGo it scans the board's first I2C controller.
//
// Usage:
//
//	go run ./cmd/i2cscan -devices 0x3c,0x68
//	tinygo flash -target pico ./cmd/i2cscan
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/randomizedcoder/go-interval/internal/config"
	"github.com/randomizedcoder/go-interval/internal/debuglog"
	"github.com/randomizedcoder/go-interval/internal/i2cscan"
	"github.com/randomizedcoder/go-interval/internal/tick"
)

func main() {
	cfgPath := flag.String("config", "", "YAML configuration file")
	devices := flag.String("devices", "", "comma separated addresses answered by the simulated bus")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.LoadFile(*cfgPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	if *devices != "" {
		addrs, err := parseAddrs(*devices)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		cfg.I2C.Devices = addrs
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	log := debuglog.New(os.Stdout, cfg.LoggerOptions())
	log.PrintBuild()

	bus, err := newBus(cfg)
	if err != nil {
		log.Errorf("bus: %v", err)
		os.Exit(1)
	}

	res, err := i2cscan.Scan(context.Background(), bus, i2cscan.Options{
		First: cfg.I2C.First,
		Last:  cfg.I2C.Last,
		Log:   log,
		Yield: tick.Gosched,
	})
	if err != nil {
		log.Errorf("scan: %v", err)
		os.Exit(1)
	}
	if len(res.Faults) > 0 {
		os.Exit(1)
	}
}

func parseAddrs(s string) ([]uint16, error) {
	var out []uint16
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseUint(f, 0, 16)
		if err != nil {
			return nil, fmt.Errorf("address %q: %w", f, err)
		}
		out = append(out, uint16(v))
	}
	return out, nil
}
