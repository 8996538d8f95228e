package i2cscan

import "tinygo.org/x/drivers"

var (
	_ Bus = drivers.I2C(nil)
	_ Bus = (*SimBus)(nil)
)
