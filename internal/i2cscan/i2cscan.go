// Package i2cscan probes every 7-bit address on an I2C bus and reports which
// ones acknowledge.
package i2cscan

import (
	"context"
	"errors"
	"strings"

	"github.com/randomizedcoder/go-interval/internal/debuglog"
	"github.com/randomizedcoder/go-interval/internal/tick"
)

// The usable 7-bit address range; 0x00 is the general call address and 0x7F
// is reserved.
const (
	FirstAddress uint16 = 0x01
	LastAddress  uint16 = 0x7E
)

// ErrNoAck is returned by a Bus when no device acknowledged the address.
var ErrNoAck = errors.New("i2c: no ack")

// Bus is the transfer half of an I2C controller. It is satisfied by
// tinygo.org/x/drivers.I2C and by TinyGo's *machine.I2C.
type Bus interface {
	Tx(addr uint16, w, r []byte) error
}

// Options controls a scan. The zero value scans the full range, logs nothing
// and classifies errors with IsNoAck.
type Options struct {
	// First and Last bound the scanned addresses, inclusive. Zero selects
	// FirstAddress and LastAddress.
	First, Last uint16
	// Log receives the progress lines. Nil discards them.
	Log *debuglog.Logger
	// Yield runs after every probe.
	Yield tick.Yield
	// NoAck reports whether a Tx error means "nobody there" rather than a bus
	// fault.
	NoAck func(error) bool
}

// Result lists what a scan found, in ascending address order.
type Result struct {
	Devices []uint16
	Faults  []uint16
	Probed  int
}

// Count returns the number of devices found.
func (r Result) Count() int {
	return len(r.Devices)
}

// Found reports whether addr acknowledged.
func (r Result) Found(addr uint16) bool {
	for _, a := range r.Devices {
		if a == addr {
			return true
		}
	}
	return false
}

// IsNoAck is the default classifier. Besides ErrNoAck it recognizes the NACK
// errors of the TinyGo machine package by their text.
func IsNoAck(err error) bool {
	if errors.Is(err, ErrNoAck) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "nack") || strings.Contains(msg, "no ack")
}

// Scan probes each address in range with an empty write. An acknowledged
// probe is a device; a NACK is an empty address; any other error is logged as
// a fault and the scan moves on.
//
// Scan stops early when ctx is done, returning what it found so far along
// with ctx.Err().
func Scan(ctx context.Context, bus Bus, opts Options) (Result, error) {
	opts = opts.withDefaults()
	log := opts.Log

	log.Infof("Scanning...")

	var res Result
	for addr := opts.First; addr <= opts.Last; addr++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		res.Probed++
		switch err := bus.Tx(addr, nil, nil); {
		case err == nil:
			log.Infof("I2C device 0x%x", addr)
			res.Devices = append(res.Devices, addr)
		case opts.NoAck(err):
		default:
			log.Warnf("I2C error 0x%x", addr)
			res.Faults = append(res.Faults, addr)
		}

		if opts.Yield != nil {
			opts.Yield()
		}
	}

	if res.Count() == 0 {
		log.Warnf("No I2C devices found")
	} else {
		log.Infof("done")
	}
	return res, nil
}

func (o Options) withDefaults() Options {
	if o.First == 0 {
		o.First = FirstAddress
	}
	if o.Last == 0 {
		o.Last = LastAddress
	}
	if o.Last > 0x7F {
		o.Last = 0x7F
	}
	if o.Log == nil {
		o.Log = debuglog.Nop()
	}
	if o.NoAck == nil {
		o.NoAck = IsNoAck
	}
	return o
}
