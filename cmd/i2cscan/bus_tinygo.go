//go:build tinygo

package main

import (
	"machine"
	"time"

	"github.com/randomizedcoder/go-interval/internal/config"
	"github.com/randomizedcoder/go-interval/internal/i2cscan"
)

func newBus(config.Config) (i2cscan.Bus, error) {
	// Give a serial monitor time to attach before the first line.
	time.Sleep(2 * time.Second)

	bus := machine.I2C0
	if err := bus.Configure(machine.I2CConfig{}); err != nil {
		return nil, err
	}
	return bus, nil
}
