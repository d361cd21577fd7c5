//go:build tinygo

package irkbd

import (
	. "machine"
	"time"
)

// PinSource is a demodulating IR receiver wired to a GPIO pin.
type PinSource struct {
	pin Pin
	*TimeStopwatch
}

// NewPinSource configures pin as an input and times pulses with the given
// tick period.
// The most common receivers idle high and pull the line low while they see
// carrier and have a pull up builtin; use pullup for bare modules without one.
func NewPinSource(pin Pin, period time.Duration, pullup bool) *PinSource {
	mode := PinInput
	if pullup {
		mode = PinInputPullup
	}
	pin.Configure(PinConfig{Mode: mode})
	return &PinSource{
		pin:           pin,
		TimeStopwatch: NewStopwatch(period),
	}
}

// Asserted implements Source. The receiver output is active low.
func (ps *PinSource) Asserted() bool {
	return !ps.pin.Get()
}
