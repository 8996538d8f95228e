package timerreg

import (
	"errors"
	"fmt"

	"github.com/randomizedcoder/go-interval/internal/tick"
)

// SAMD21 TCC register bits.
const (
	CTRLAEnable = 1 << 1

	// CTRLA.PRESCALER, bits 8..10.
	PrescalerDiv1    = 0 << 8
	PrescalerDiv2    = 1 << 8
	PrescalerDiv4    = 2 << 8
	PrescalerDiv8    = 3 << 8
	PrescalerDiv16   = 4 << 8
	PrescalerDiv64   = 5 << 8
	PrescalerDiv256  = 6 << 8
	PrescalerDiv1024 = 7 << 8

	CTRLBSETOneShot       = 1 << 4
	CTRLBSETCmdRetrigger  = 1 << 5
	CTRLBSETCmdStop       = 2 << 5
	CTRLBSETCmdUpdate     = 3 << 5
	CTRLBSETCmdReadSync   = 4 << 5
	CTRLBSETCmdDMAOneShot = 5 << 5

	SyncBusySWRST  = 1 << 0
	SyncBusyEnable = 1 << 1
	SyncBusyCTRLB  = 1 << 2
	SyncBusyStatus = 1 << 3
	SyncBusyCount  = 1 << 4
	SyncBusyPatt   = 1 << 5
	SyncBusyWave   = 1 << 6
	SyncBusyPer    = 1 << 7
	SyncBusyCC0    = 1 << 8

	StatusStop = 1 << 0

	// WAVE.WAVEGEN, bits 0..2.
	WaveNFRQ  = 0
	WaveMFRQ  = 1
	WaveNPWM  = 2
	WaveDSBOT = 5
)

// Channels is the number of compare/capture channels of the largest TCC.
const Channels = 4

// ErrChannel is returned for a compare/capture channel the block lacks.
var ErrChannel = errors.New("timerreg: no such channel")

// TCC is a SAMD Timer/Counter for Control applications.
//
// Every write to a synchronized register waits until the matching SYNCBUSY
// bit clears, calling Yield between reads of SYNCBUSY.
type TCC struct {
	CTRLA    Register[uint32]
	CTRLBSET Register[uint8]
	SYNCBUSY Register[uint32]
	WAVE     Register[uint32]
	PER      Register[uint32]
	CC       [Channels]Register[uint32]
	DRVCTRL  Register[uint32]
	STATUS   Register[uint32]

	Yield tick.Yield
}

// NewMemTCC returns a TCC backed by Mem registers.
func NewMemTCC() *TCC {
	t := &TCC{
		CTRLA:    new(Mem[uint32]),
		CTRLBSET: new(Mem[uint8]),
		SYNCBUSY: new(Mem[uint32]),
		WAVE:     new(Mem[uint32]),
		PER:      new(Mem[uint32]),
		DRVCTRL:  new(Mem[uint32]),
		STATUS:   new(Mem[uint32]),
	}
	for i := range t.CC {
		t.CC[i] = new(Mem[uint32])
	}
	return t
}

func (t *TCC) sync(mask uint32) {
	for t.SYNCBUSY.HasBits(mask) {
		if t.Yield != nil {
			t.Yield()
		}
	}
}

// SetCC writes a compare/capture channel.
func (t *TCC) SetCC(channel int, v uint32) error {
	if channel < 0 || channel >= Channels || t.CC[channel] == nil {
		return fmt.Errorf("%w: %d", ErrChannel, channel)
	}
	t.CC[channel].Set(v)
	t.sync(SyncBusyCC0 << channel)
	return nil
}

// SetWaveGen selects the waveform and sets the counter to wrap after
// overflow counts.
func (t *TCC) SetWaveGen(wave, overflow uint32) error {
	if overflow == 0 {
		return errors.New("timerreg: overflow must be positive")
	}
	t.WAVE.SetBits(wave)
	t.sync(SyncBusyWave)

	t.PER.Set(overflow - 1)
	t.sync(SyncBusyPer)
	return nil
}

// SetOneShot switches the counter to one-shot operation. nre selects the
// outputs driven to their inactive level while the counter is stopped.
func (t *TCC) SetOneShot(nre uint32) {
	t.CTRLBSET.Set(CTRLBSETOneShot)
	t.sync(SyncBusyCTRLB)

	t.DRVCTRL.SetBits(nre)
}

// Enable applies the prescaler and starts the counter.
func (t *TCC) Enable(prescaler uint32) {
	t.CTRLA.SetBits(prescaler)
	t.CTRLA.SetBits(CTRLAEnable)
	t.sync(SyncBusyEnable)
}

// Retrigger restarts a one-shot pulse if the previous one has finished, and
// reports whether it did.
func (t *TCC) Retrigger() bool {
	if !t.STATUS.HasBits(StatusStop) {
		return false
	}
	t.CTRLBSET.Set(CTRLBSETCmdRetrigger)
	t.sync(SyncBusyCTRLB)
	return true
}
