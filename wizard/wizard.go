// Package wizard implements programming mode: the user is prompted for each
// user slot in turn and the next code received is stored there.
package wizard

import (
	"io"

	"github.com/sparques/irkbd"
	"github.com/sparques/irkbd/keymap"
	"github.com/sparques/irkbd/nec"
)

// Placeholder is stored in a slot that timed out while blank, so the slots
// after it are still scanned.
const Placeholder uint32 = 0x00000001

type Sampler interface {
	Sample() (nec.Result, uint32)
}

type Wizard struct {
	Dec     Sampler
	Slots   keymap.Slots
	Prompts []keymap.Prompt

	// Timer is the coarse timer; a slot gives up after Timeout of its
	// overflows without any activity on the line.
	Timer   irkbd.Stopwatch
	Timeout int

	Svc     irkbd.Servicer
	Console io.Writer
	// Verbose echoes each stored code.
	Verbose bool
	// Flash, if set, blinks the indicator n times. A slot timeout flashes
	// once.
	Flash   func(n int)
}

func (w *Wizard) print(s string) {
	if w.Console != nil {
		io.WriteString(w.Console, s)
	}
}

// Len is the number of slots that can be programmed.
func (w *Wizard) Len() int {
	n := w.Slots.Len()
	if n > len(w.Prompts) {
		n = len(w.Prompts)
	}
	return n
}

// Run prompts for every slot and returns once the last one is done. Slots
// that time out keep what they had.
func (w *Wizard) Run() error {
	w.print("\nWelcome to IR Keyboard Programming Mode\n")
	for i := 0; i < w.Len(); i++ {
		if err := w.Program(i); err != nil && err != irkbd.ErrTimeout {
			return err
		}
	}
	w.print("All Done!\n")
	return nil
}

// Program teaches slot i. It returns irkbd.ErrTimeout if nothing arrived.
func (w *Wizard) Program(i int) error {
	w.print("Press \"" + w.Prompts[i].Desc + "\"")

	w.Timer.Reset()
	ovf := 0
	for {
		w.Svc.Service()

		res, code := w.Dec.Sample()
		if res != nec.Nothing {
			ovf = 0
		}
		if w.Timer.Overflowed() {
			ovf++
		}

		// a sentinel would end the table scan at this slot
		if res == nec.NewKey && !keymap.Blank(code) {
			if err := w.Slots.SetSlot(i, code); err != nil {
				return err
			}
			if w.Verbose {
				w.print(" [Read 0x" + hex32(code) + "]")
			}
			w.print(" OK!\n")
			return nil
		}

		if ovf >= w.Timeout {
			if keymap.Blank(w.Slots.Slot(i)) {
				if err := w.Slots.SetSlot(i, Placeholder); err != nil {
					return err
				}
			}
			w.print(", nevermind\n")
			if w.Flash != nil {
				w.Flash(1)
			}
			return irkbd.ErrTimeout
		}
	}
}

func hex32(v uint32) string {
	const digits = "0123456789ABCDEF"
	var b [8]byte
	for i := 7; i >= 0; i-- {
		b[i] = digits[v&0xF]
		v >>= 4
	}
	return string(b[:])
}
