//go:build tinygo && !avr

// irkbd is the receiver firmware: an IR demodulator on one pin, a push button
// on another, and a status LED, enumerating as a USB keyboard.
package main

import (
	"context"
	"machine"

	"tinygo.org/x/tinyfs"

	"github.com/sparques/irkbd"
	"github.com/sparques/irkbd/firmware"
	"github.com/sparques/irkbd/hid"
	"github.com/sparques/irkbd/keymap"
	"github.com/sparques/irkbd/nvstore"
	"github.com/sparques/irkbd/usbhid"
)

type button struct{ pin machine.Pin }

func (b button) Pressed() bool { return !b.pin.Get() }

func main() {
	cfg := firmware.DefaultConfig()
	cfg.Console = console()

	store, err := nvstore.Open(machine.Flash, len(keymap.Programmable))
	if err != nil {
		// no room for the table; run with a RAM copy that is lost at reset
		println("[irkbd] flash store:", err.Error())
		store, err = nvstore.Open(tinyfs.NewMemoryDevice(256, 4096, 1), len(keymap.Programmable))
		if err != nil {
			println("[irkbd] ram store:", err.Error())
			return
		}
		if err := store.Factory(); err != nil {
			println("[irkbd] ram store:", err.Error())
			return
		}
	}

	src := irkbd.NewPinSource(irPin, cfg.Profile.TickPeriod, irPullup)
	timer := irkbd.NewStopwatch(cfg.Profile.CoarsePeriod)

	dev := firmware.New[hid.Default](cfg, src, timer, store, nil)
	dev.Host = usbhid.New(hid.Default{}, dev.Reports)

	buttonPin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	dev.Button = button{buttonPin}
	dev.LED = led()

	if err := dev.Boot(); err != nil {
		println("[irkbd] programming:", err.Error())
	}
	dev.Run(context.Background())
}
