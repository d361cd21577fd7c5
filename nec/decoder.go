/*
Package nec decodes the NEC (and NEC extended) remote control protocol by
polling an IR receiver line.

## Protocol

Every transmission opens with a lead: a 9ms mark. A 4.5ms space after it
announces 32 data bits; a 2.25ms space announces a repeat, which is what the
remote sends roughly every 108ms while a button is held.

Data bits are a 560us mark followed by a space: 560us for a zero, 1690us for
a one, least significant bit first. A final stop mark closes the frame. There
is no checksum we can rely on (extended remotes use all 16 address bits), so
the windows below are strict and a space is only trusted after a mark that
fit its window.

	| interval          | ProfileA ticks | accepted as            |
	|^^^^^^^^^^^^^^^^^^^|^^^^^^^^^^^^^^^^|^^^^^^^^^^^^^^^^^^^^^^^^|
	| lead mark         | 100..123       | start of transmission  |
	| data mark         | 3..12          | bit, stop or repeat    |
	| data space        | < 35           | 0 below 13, else 1     |
	| repeat space      | 23..35         | after a lead mark      |
	| lead space        | 47..59         | after a lead mark      |
	| end space         | >= 35          | frame or repeat done   |

## Usage

	dec := nec.NewDecoder(nec.Default, src, svc)
	for {
		svc.Service()
		switch res, code := dec.Sample(); res {
		case nec.NewKey:
			fmt.Printf("%08X\r\n", code)
		}
	}
*/
package nec

import "github.com/sparques/irkbd"

// Result classifies one Sample call.
type Result uint8

const (
	// Nothing means the line was idle.
	Nothing Result = iota
	// Busy means a pulse was consumed but no code is complete yet.
	Busy
	// NewKey means a full code was received.
	NewKey
	// RepeatKey means a repeat preamble was received.
	RepeatKey
	// Error means the pulse just measured fit no window.
	Error
)

func (r Result) String() string {
	switch r {
	case Nothing:
		return "nothing"
	case Busy:
		return "busy"
	case NewKey:
		return "newkey"
	case RepeatKey:
		return "repeat"
	case Error:
		return "error"
	}
	return "unknown"
}

// Phase is the decoder's position within a transmission. Values 0..32 are
// Bit(n): n data bits have been marked, 32 being the stop mark.
type Phase int8

const (
	PhaseError         Phase = -10
	PhaseAwaitingLead  Phase = -6
	PhaseRepeatPending Phase = -5 // lead mark + repeat space seen
	PhaseRepeatMark    Phase = -4 // repeat mark seen, waiting for its space
	PhaseRepeatDone    Phase = -3
	PhaseLead          Phase = -2 // lead mark seen, space not yet classified
	PhaseGap           Phase = -1 // lead space seen, first data mark next
)

// Bit returns the phase after the mark of data bit n.
func Bit(n int) Phase { return Phase(n) }

const codeBits = 32

type Decoder struct {
	p   Profile
	src irkbd.Source
	svc irkbd.Servicer

	// Trace, if set, is called with every measured mark/space pair.
	Trace func(mark, space irkbd.Tick)

	phase Phase
	code  uint32
	fault error
}

func NewDecoder(p Profile, src irkbd.Source, svc irkbd.Servicer) *Decoder {
	return &Decoder{
		p:     p,
		src:   src,
		svc:   svc,
		phase: PhaseAwaitingLead,
	}
}

func (d *Decoder) Phase() Phase { return d.phase }

// Reset drops any partial transmission.
func (d *Decoder) Reset() {
	d.phase = PhaseAwaitingLead
	d.code = 0
}

// LastFault returns the most recent framing fault, if any.
func (d *Decoder) LastFault() error { return d.fault }

func (d *Decoder) reject(op string, mark, space irkbd.Tick) {
	d.phase = PhaseError
	d.fault = &irkbd.FaultError{F: irkbd.ErrFraming, Op: op, Mark: mark, Space: space}
}

// measure reads the stopwatch, treating a wrap as the longest interval.
func (d *Decoder) measure(overflowed bool) irkbd.Tick {
	t := d.src.Ticks()
	if overflowed || d.src.Overflowed() {
		return irkbd.MaxTick
	}
	return t
}

// Sample measures one mark and the space that follows it. It returns
// Nothing without blocking if the line is idle. The code is only meaningful
// with NewKey; it is returned with RepeatKey too but is then whatever the
// last frame left behind.
func (d *Decoder) Sample() (Result, uint32) {
	if !d.src.Asserted() {
		return Nothing, d.code
	}

	d.src.Reset()
	for d.src.Asserted() {
		d.svc.Service()
	}
	mark := d.measure(false)
	d.src.Reset()

	switch {
	case mark >= d.p.LeadMark && mark <= d.p.LeadMarkMax():
		d.phase = PhaseLead
		d.code = 0
	case mark >= d.p.DataMarkMin && mark <= d.p.DataMarkMax:
		switch {
		case d.phase == PhaseGap, d.phase == PhaseRepeatPending:
			d.phase++
		case d.phase >= 0 && d.phase < codeBits:
			d.phase++
		default:
			d.reject("unexpected data mark", mark, 0)
		}
	default:
		d.reject("mark out of range", mark, 0)
	}

	// Measure the space even after a bad mark so the next call starts on
	// a mark edge.
	overflowed := false
	for !overflowed && !d.src.Asserted() && d.src.Ticks() < d.p.SpaceLimit() {
		d.svc.Service()
		overflowed = d.src.Overflowed()
	}
	space := d.measure(overflowed)

	if d.Trace != nil {
		d.Trace(mark, space)
	}

	if d.phase == PhaseError {
		return Error, d.code
	}

	switch {
	case d.phase >= 0 && space < d.p.Space3ms:
		if d.phase >= codeBits {
			d.reject("data space after stop mark", mark, space)
			return Error, d.code
		}
		if space < d.p.BitThreshold {
			d.code &^= 1 << uint(d.phase)
		} else {
			d.code |= 1 << uint(d.phase)
		}
		return Busy, d.code
	case d.phase > 0 && space >= d.p.Space3ms:
		d.phase = PhaseAwaitingLead
		return NewKey, d.code
	case d.phase == PhaseLead && space >= d.p.Space2ms && space <= d.p.Space3ms:
		d.phase = PhaseRepeatPending
		return Busy, d.code
	case d.phase == PhaseRepeatMark && space >= d.p.Space3ms:
		d.phase = PhaseRepeatDone
		return RepeatKey, d.code
	case d.phase == PhaseLead && space >= d.p.Space4ms && space <= d.p.Space5ms:
		d.phase = PhaseGap
		return Busy, d.code
	}

	d.reject("space out of range", mark, space)
	return Error, d.code
}
