package i2cscan

import (
	"fmt"
	"sync"
)

// SimBus is an in-memory I2C bus. Attached devices acknowledge their address
// and answer reads from a byte slice; faulted addresses return their error.
type SimBus struct {
	mu      sync.Mutex
	devices map[uint16][]byte
	faults  map[uint16]error
	probes  int
}

// NewSimBus creates a bus with empty devices at addrs.
func NewSimBus(addrs ...uint16) *SimBus {
	b := &SimBus{
		devices: make(map[uint16][]byte),
		faults:  make(map[uint16]error),
	}
	for _, a := range addrs {
		b.Attach(a, nil)
	}
	return b
}

// Attach places a device at addr whose reads return data, repeated as needed.
func (b *SimBus) Attach(addr uint16, data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.devices[addr] = data
}

// Fault makes every transfer to addr fail with err.
func (b *SimBus) Fault(addr uint16, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.faults[addr] = err
}

// Tx implements Bus.
func (b *SimBus) Tx(addr uint16, w, r []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.probes++
	if err, ok := b.faults[addr]; ok {
		return fmt.Errorf("i2c 0x%02x: %w", addr, err)
	}
	data, ok := b.devices[addr]
	if !ok {
		return ErrNoAck
	}
	for i := range r {
		if len(data) == 0 {
			r[i] = 0xFF
			continue
		}
		r[i] = data[i%len(data)]
	}
	return nil
}

// Probes returns how many transfers the bus has seen.
func (b *SimBus) Probes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.probes
}
