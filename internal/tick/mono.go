package tick

import (
	"time"
	_ "unsafe" // Required for go:linkname
)

// nanotime returns the current monotonic time in nanoseconds.
// This is faster than time.Now() because it returns a single int64
// and avoids constructing a time.Time struct.
//
// Note: This uses go:linkname to access an internal runtime function.
// It may break in future Go versions, though it has been stable.
//
//go:linkname nanotime runtime.nanotime
func nanotime() int64

// Millis is a 32-bit millisecond counter. It wraps after about 49.7 days.
type Millis struct {
	base int64
}

// NewMillis returns a Millis counter that reads 0 now.
func NewMillis() Millis {
	return NewMillisAt(0)
}

// NewMillisAt returns a Millis counter that reads start now.
// Starting close to the maximum exercises wraparound without waiting weeks.
func NewMillisAt(start uint32) Millis {
	return Millis{base: nanotime() - int64(start)*int64(time.Millisecond)}
}

// Now returns elapsed milliseconds, truncated to 32 bits.
func (m Millis) Now() uint32 {
	return uint32((nanotime() - m.base) / int64(time.Millisecond))
}

// Micros is a 32-bit microsecond counter. It wraps after about 71.6 minutes.
type Micros struct {
	base int64
}

// NewMicros returns a Micros counter that reads 0 now.
func NewMicros() Micros {
	return NewMicrosAt(0)
}

// NewMicrosAt returns a Micros counter that reads start now.
func NewMicrosAt(start uint32) Micros {
	return Micros{base: nanotime() - int64(start)*int64(time.Microsecond)}
}

// Now returns elapsed microseconds, truncated to 32 bits.
func (m Micros) Now() uint32 {
	return uint32((nanotime() - m.base) / int64(time.Microsecond))
}

// Nanos is a 64-bit nanosecond counter.
type Nanos struct {
	base int64
}

// NewNanos returns a Nanos counter that reads 0 now.
func NewNanos() Nanos {
	return Nanos{base: nanotime()}
}

// Now returns elapsed nanoseconds.
func (n Nanos) Now() uint64 {
	return uint64(nanotime() - n.base)
}
