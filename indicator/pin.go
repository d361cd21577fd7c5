//go:build tinygo

package indicator

import "machine"

// Pin is a plain LED on a GPIO.
type Pin struct {
	pin machine.Pin
	// ActiveLow LEDs are wired from the supply to the pin.
	ActiveLow bool
}

func NewPin(pin machine.Pin, activeLow bool) *Pin {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p := &Pin{pin: pin, ActiveLow: activeLow}
	p.Set(false)
	return p
}

func (p *Pin) Set(on bool) {
	p.pin.Set(on != p.ActiveLow)
}
