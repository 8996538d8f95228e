//go:build !tinygo

package main

import (
	"github.com/randomizedcoder/go-interval/internal/config"
	"github.com/randomizedcoder/go-interval/internal/i2cscan"
)

func newBus(cfg config.Config) (i2cscan.Bus, error) {
	return i2cscan.NewSimBus(cfg.I2C.Devices...), nil
}
