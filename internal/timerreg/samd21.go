//go:build tinygo && atsamd21

package timerreg

import "device/sam"

// TCC0 returns the first TCC block of a SAMD21.
func TCC0() *TCC {
	return tccFrom(sam.TCC0)
}

// TCC1 returns the second TCC block of a SAMD21. It has two channels.
func TCC1() *TCC {
	t := tccFrom(sam.TCC1)
	t.CC[2], t.CC[3] = nil, nil
	return t
}

func tccFrom(r *sam.TCC_Type) *TCC {
	return &TCC{
		CTRLA:    &r.CTRLA,
		CTRLBSET: &r.CTRLBSET,
		SYNCBUSY: &r.SYNCBUSY,
		WAVE:     &r.WAVE,
		PER:      &r.PER,
		CC:       [Channels]Register[uint32]{&r.CC0, &r.CC1, &r.CC2, &r.CC3},
		DRVCTRL:  &r.DRVCTRL,
		STATUS:   &r.STATUS,
	}
}
