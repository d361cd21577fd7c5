//go:build tinygo && !avr

package indicator

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ws2812"
)

// Pixel is a single WS2812 on boards that have one instead of a plain LED.
type Pixel struct {
	dev   ws2812.Device
	Color color.RGBA
	buf   [1]color.RGBA
}

func NewPixel(pin machine.Pin, c color.RGBA) *Pixel {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p := &Pixel{dev: ws2812.New(pin), Color: c}
	p.Set(false)
	return p
}

func (p *Pixel) Set(on bool) {
	p.buf[0] = color.RGBA{}
	if on {
		p.buf[0] = p.Color
	}
	p.dev.WriteColors(p.buf[:])
}
