//go:build tinygo

// irblast cycles through the built-in keymap on an IR LED, for exercising a
// receiver on the bench. Each code is sent once, followed by two repeat
// frames, then the line stays dark long enough for the receiver to release.
package main

import (
	"machine"
	"time"

	"github.com/sparques/irkbd"
	"github.com/sparques/irkbd/keymap"
	"github.com/sparques/irkbd/nec"
)

const (
	// frameGap and repeatGap pad each frame out to the 108ms NEC period.
	frameGap  = 40 * time.Millisecond
	repeatGap = 86 * time.Millisecond
	repeats   = 2
	pause     = time.Second
)

func main() {
	tx, err := irkbd.NewTxDevice(machine.LED)
	if err != nil {
		println("[irblast]", err.Error())
		return
	}

	for {
		for _, e := range keymap.Builtin {
			println("[irblast]", e.Desc)
			tx.SendFrame(nec.Frame(e.Code), frameGap)
			for i := 0; i < repeats; i++ {
				tx.SendFrame(nec.RepeatFrame{}, repeatGap)
			}
			time.Sleep(pause)
		}
	}
}
