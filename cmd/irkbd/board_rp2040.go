//go:build rp2040

package main

import (
	"image/color"
	"io"
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"github.com/sparques/irkbd/indicator"
)

var (
	irPin     = machine.GP15
	irPullup  = false
	buttonPin = machine.GP14
	pixelPin  = machine.GP16
)

// console is UART0 on GP0/GP1 so the USB port stays a plain keyboard.
func console() io.Writer {
	u := uartx.UART0
	_ = u.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	return u
}

func led() indicator.Indicator {
	return indicator.NewPixel(pixelPin, color.RGBA{G: 0x40, A: 0xFF})
}
