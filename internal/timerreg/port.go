package timerreg

import "fmt"

const (
	PinsPerGroup = 32

	PINCFGPMUXEN = 1 << 0
)

// PortGroup is one SAMD PORT group.
type PortGroup struct {
	PINCFG [PinsPerGroup]Register[uint8]
	// PMUX holds two pins per register: even pins in the low nibble, odd pins
	// in the high nibble.
	PMUX [PinsPerGroup / 2]Register[uint8]
}

// NewMemPortGroup returns a PortGroup backed by Mem registers.
func NewMemPortGroup() *PortGroup {
	g := &PortGroup{}
	for i := range g.PINCFG {
		g.PINCFG[i] = new(Mem[uint8])
	}
	for i := range g.PMUX {
		g.PMUX[i] = new(Mem[uint8])
	}
	return g
}

// SetPinFunction routes pin to peripheral function fn (0 for A, 1 for B,
// and so on) through the port multiplexer.
func (g *PortGroup) SetPinFunction(pin uint8, fn uint8) error {
	if pin >= PinsPerGroup {
		return fmt.Errorf("timerreg: pin %d out of range", pin)
	}
	if fn > 0x0F {
		return fmt.Errorf("timerreg: pin function %d out of range", fn)
	}

	g.PINCFG[pin].SetBits(PINCFGPMUXEN)

	pmux := g.PMUX[pin>>1]
	if pin&1 == 0 {
		pmux.ClearBits(0x0F)
		pmux.SetBits(fn)
	} else {
		pmux.ClearBits(0xF0)
		pmux.SetBits(fn << 4)
	}
	return nil
}
