//go:build tinygo && (rp2040 || rp2350)

package timerreg

import (
	"runtime/volatile"
	"unsafe"
)

const (
	rpTimerBase = 0x40054000
	rpTimerRAWH = rpTimerBase + 0x24
	rpTimerRAWL = rpTimerBase + 0x28
)

// RPTimer is the RP2040 1 MHz system timer, read through the raw registers
// so reads have no latching side effects.
var RPTimer = Timer64{
	High: (*volatile.Register32)(unsafe.Pointer(uintptr(rpTimerRAWH))),
	Low:  (*volatile.Register32)(unsafe.Pointer(uintptr(rpTimerRAWL))),
}
