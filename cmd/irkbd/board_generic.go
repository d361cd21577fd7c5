//go:build tinygo && !avr && !rp2040

package main

import (
	"io"
	"machine"

	"github.com/sparques/irkbd/indicator"
)

var (
	irPin     = machine.D2
	irPullup  = true
	buttonPin = machine.D3
)

func console() io.Writer { return machine.Serial }

func led() indicator.Indicator {
	return indicator.NewPin(machine.LED, false)
}
