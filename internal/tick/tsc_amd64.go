//go:build amd64

package tick

import (
	"time"
)

// HasTSC reports whether the TSC source is available on this architecture.
const HasTSC = true

// rdtsc reads the CPU's Time Stamp Counter.
// Implemented in tsc_amd64.s
func rdtsc() uint64

// CalibrateTSC returns the counter's cycles per nanosecond, measured against
// the monotonic clock over 10ms. It blocks for that long.
func CalibrateTSC() float64 {
	c0, n0 := rdtsc(), nanotime()
	time.Sleep(10 * time.Millisecond)
	c1, n1 := rdtsc(), nanotime()

	return float64(c1-c0) / float64(n1-n0)
}

// TSC is the raw 64-bit timestamp counter as a tick source. One tick is one
// reference cycle.
type TSC struct{}

// Now returns the current counter value.
func (TSC) Now() uint64 {
	return rdtsc()
}

// TSCMicros scales the timestamp counter to a 32-bit microsecond counter.
//
// The conversion uses a fixed cycles-per-nanosecond ratio, so the result
// drifts with CPU frequency changes. Use NewTSCMicrosCalibrated for automatic
// calibration, or NewTSCMicros if you've pre-measured the ratio.
type TSCMicros struct {
	cyclesPerUs float64
	base        uint64
}

// NewTSCMicros creates a TSCMicros reading 0 now.
//
// Parameters:
//   - cyclesPerNs: CPU cycles per nanosecond (e.g., 3.0 for a 3GHz CPU)
func NewTSCMicros(cyclesPerNs float64) *TSCMicros {
	return &TSCMicros{
		cyclesPerUs: cyclesPerNs * 1000,
		base:        rdtsc(),
	}
}

// NewTSCMicrosCalibrated creates a TSCMicros with automatic calibration.
//
// This blocks for ~10ms while calibrating.
func NewTSCMicrosCalibrated() *TSCMicros {
	return NewTSCMicros(CalibrateTSC())
}

// Now returns elapsed microseconds, wrapping at 32 bits.
func (t *TSCMicros) Now() uint32 {
	return uint32(uint64(float64(rdtsc()-t.base) / t.cyclesPerUs))
}

// CyclesPerNs returns the cycles-per-nanosecond ratio in use.
func (t *TSCMicros) CyclesPerNs() float64 {
	return t.cyclesPerUs / 1000
}
