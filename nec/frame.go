package nec

import (
	"time"

	"github.com/sparques/irkbd"
)

var (
	LeadPair   = irkbd.TimePair{9 * time.Millisecond, 4500 * time.Microsecond}
	RepeatPair = irkbd.TimePair{9 * time.Millisecond, 2250 * time.Microsecond}
	ZeroPair   = irkbd.TimePair{560 * time.Microsecond, 560 * time.Microsecond}
	OnePair    = irkbd.TimePair{560 * time.Microsecond, 1690 * time.Microsecond}
	// StopMark closes a frame; its space is whatever silence follows.
	StopMark = 560 * time.Microsecond
)

// Frame is one 32-bit NEC code as the decoder accumulates it: bit 0 is
// the first bit on the wire.
type Frame uint32

// Split returns the address (low 16 bits) and command (high 16 bits).
// Plain NEC carries the complement of each byte in the upper half of each.
func (f Frame) Split() (addr, cmd uint16) {
	return uint16(f), uint16(f >> 16)
}

// Join builds a frame from an extended address and a command byte with its
// complement.
func Join(addr uint16, cmd uint8) Frame {
	return Frame(uint32(addr) | uint32(cmd)<<16 | uint32(^cmd)<<24)
}

// MarshalFrame implements irkbd.FrameMarshaller. The final pair is the stop
// mark followed by a space long enough to end the frame.
func (f Frame) MarshalFrame() []irkbd.TimePair {
	out := make([]irkbd.TimePair, 0, codeBits+2)
	out = append(out, LeadPair)
	for bit := 0; bit < codeBits; bit++ {
		if (f>>bit)&1 == 1 {
			out = append(out, OnePair)
		} else {
			out = append(out, ZeroPair)
		}
	}
	return append(out, irkbd.TimePair{StopMark, 10 * time.Millisecond})
}

// RepeatFrame is what a remote sends while a button stays held.
type RepeatFrame struct{}

func (RepeatFrame) MarshalFrame() []irkbd.TimePair {
	return []irkbd.TimePair{RepeatPair, {StopMark, 10 * time.Millisecond}}
}
