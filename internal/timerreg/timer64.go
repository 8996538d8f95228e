package timerreg

import "github.com/randomizedcoder/go-interval/internal/tick"

// Timer64 is a free-running 64-bit counter exposed as two 32-bit registers,
// such as the RP2040 microsecond timer.
type Timer64 struct {
	High Register[uint32]
	Low  Register[uint32]
}

// Read returns the full count. High is read before and after Low; if it
// changed, Low rolled over in between and the read is retried.
func (t Timer64) Read() uint64 {
	for {
		hi := t.High.Get()
		lo := t.Low.Get()
		if hi == t.High.Get() {
			return uint64(hi)<<32 | uint64(lo)
		}
	}
}

// Source returns the low word as a wrapping 32-bit tick source.
func (t Timer64) Source() tick.Source[uint32] {
	return tick.SourceFunc[uint32](t.Low.Get)
}

// Source64 returns the full count as a tick source.
func (t Timer64) Source64() tick.Source[uint64] {
	return tick.SourceFunc[uint64](t.Read)
}
