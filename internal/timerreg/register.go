// Package timerreg gives typed access to microcontroller timer registers.
//
// Registers are reached through the Register interface, which matches the
// method set of TinyGo's runtime/volatile registers, so the same helpers
// drive real hardware on TinyGo targets and Mem registers on a host.
package timerreg

import "sync/atomic"

// Width is the set of register sizes.
type Width interface {
	~uint8 | ~uint16 | ~uint32
}

// Register is a memory-mapped register.
type Register[T Width] interface {
	Get() T
	Set(v T)
	SetBits(v T)
	ClearBits(v T)
	HasBits(v T) bool
}

// Mem is a Register backed by ordinary memory. Accesses are atomic, so a test
// or simulator goroutine may play the peripheral side.
type Mem[T Width] struct {
	v atomic.Uint32
}

func (m *Mem[T]) Get() T {
	return T(m.v.Load())
}

func (m *Mem[T]) Set(v T) {
	m.v.Store(uint32(v))
}

func (m *Mem[T]) SetBits(v T) {
	m.v.Or(uint32(v))
}

func (m *Mem[T]) ClearBits(v T) {
	m.v.And(^uint32(v))
}

func (m *Mem[T]) HasBits(v T) bool {
	return T(m.v.Load())&v != 0
}

var (
	_ Register[uint8]  = (*Mem[uint8])(nil)
	_ Register[uint16] = (*Mem[uint16])(nil)
	_ Register[uint32] = (*Mem[uint32])(nil)
)
