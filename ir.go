// Package irkbd turns an NEC remote control into a USB keyboard.
//
// The root package holds the primitives every other package shares: tick
// counters, the pulse source the decoder polls, the service hook that keeps
// the host link alive while the decoder busy-waits, and the time pairs used
// to describe (and transmit) whole frames.
//
// There is exactly one thread of control. Anything that waits must call
// Servicer.Service on every iteration of its wait loop; the host transport
// needs attention at least once every 10ms.
package irkbd

import "time"

const (
	// Freq38Khz is the most commonly used frequency for IR remotes
	Freq38Khz = 38000
)

// TimePair encodes two durations: how long the line is asserted (mark)
// followed by how long it is released (space).
type TimePair [2]time.Duration

// FrameMarshaller defines an interface for marshalling data to slice of TimePairs
type FrameMarshaller interface {
	MarshalFrame() []TimePair
}

// Tick is a duration in hardware timer units.
type Tick uint16

// MaxTick is what an overflowed measurement reads as. The reference timers
// are 8 bits wide.
const MaxTick Tick = 255

// Stopwatch is a free-running tick counter.
type Stopwatch interface {
	// Reset zeroes the counter and clears any pending overflow.
	Reset()
	// Ticks returns the counter value since the last Reset. It wraps.
	Ticks() Tick
	// Overflowed reports whether the counter wrapped since the flag was
	// last read, and clears the flag.
	Overflowed() bool
}

// Source is the IR receiver line together with the stopwatch used to time
// its marks and spaces.
type Source interface {
	// Asserted reports whether the receiver currently sees carrier.
	Asserted() bool
	Stopwatch
}

// Servicer is called from inside every wait loop.
type Servicer interface {
	Service()
}

// ServiceFunc adapts a func to Servicer.
type ServiceFunc func()

func (f ServiceFunc) Service() {
	if f != nil {
		f()
	}
}
