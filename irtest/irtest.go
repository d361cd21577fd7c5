// Package irtest provides a simulated IR receiver for tests.
//
// Simulated time only moves when something calls Service, which is exactly
// what the decoder does inside its wait loops and what the main loop does
// once per iteration. A scripted Timeline therefore produces the same tick
// measurements on every run.
package irtest

import (
	"time"

	"github.com/sparques/irkbd"
)

// Clock counts fine ticks.
type Clock struct {
	now uint64
}

func (c *Clock) Now() uint64 { return c.now }

// Advance moves the clock forward n ticks.
func (c *Clock) Advance(n uint64) { c.now += n }

// Stopwatch is an 8-bit counter driven by a Clock, advancing once every Div
// clock ticks.
type Stopwatch struct {
	clk   *Clock
	div   uint64
	start uint64
	wraps uint64
}

func NewStopwatch(clk *Clock, div uint64) *Stopwatch {
	if div == 0 {
		div = 1
	}
	sw := &Stopwatch{clk: clk, div: div}
	sw.Reset()
	return sw
}

func (sw *Stopwatch) count() uint64 { return (sw.clk.now - sw.start) / sw.div }

func (sw *Stopwatch) Reset() {
	sw.start = sw.clk.now
	sw.wraps = 0
}

func (sw *Stopwatch) Ticks() irkbd.Tick {
	return irkbd.Tick(sw.count() & uint64(irkbd.MaxTick))
}

func (sw *Stopwatch) Overflowed() bool {
	w := sw.count() >> 8
	if w > sw.wraps {
		sw.wraps = w
		return true
	}
	return false
}

type segment struct {
	end      uint64
	asserted bool
}

// Timeline is a scripted receiver line. Segments are appended back to back
// starting at the clock's current time; after the last one the line stays
// released.
type Timeline struct {
	*Clock
	*Stopwatch

	// OnService runs after the clock advances on every Service call.
	OnService func()

	segs []segment
	tail uint64
	cur  int
}

func NewTimeline() *Timeline {
	clk := &Clock{}
	return &Timeline{
		Clock:     clk,
		Stopwatch: NewStopwatch(clk, 1),
	}
}

func (tl *Timeline) add(n uint64, asserted bool) *Timeline {
	if tl.tail < tl.now {
		tl.tail = tl.now
	}
	tl.tail += n
	tl.segs = append(tl.segs, segment{end: tl.tail, asserted: asserted})
	return tl
}

// Mark asserts the line for n ticks.
func (tl *Timeline) Mark(n irkbd.Tick) *Timeline { return tl.add(uint64(n), true) }

// Space releases the line for n ticks.
func (tl *Timeline) Space(n irkbd.Tick) *Timeline { return tl.add(uint64(n), false) }

// Idle releases the line for n ticks; n may exceed the range of a Tick.
func (tl *Timeline) Idle(n uint64) *Timeline { return tl.add(n, false) }

// Pair appends one mark/space pair.
func (tl *Timeline) Pair(mark, space irkbd.Tick) *Timeline {
	return tl.Mark(mark).Space(space)
}

// Play appends pairs converted to ticks of the given period, rounded to
// the nearest tick.
func (tl *Timeline) Play(period time.Duration, pairs ...irkbd.TimePair) *Timeline {
	for _, p := range pairs {
		tl.Pair(ToTicks(p[0], period), ToTicks(p[1], period))
	}
	return tl
}

// Done reports whether the script has been played out.
func (tl *Timeline) Done() bool { return tl.now >= tl.tail }

// Asserted implements irkbd.Source.
func (tl *Timeline) Asserted() bool {
	for tl.cur < len(tl.segs) && tl.segs[tl.cur].end <= tl.now {
		tl.cur++
	}
	if tl.cur >= len(tl.segs) {
		return false
	}
	return tl.segs[tl.cur].asserted
}

// Service implements irkbd.Servicer by advancing the clock one tick.
func (tl *Timeline) Service() {
	tl.Advance(1)
	if tl.OnService != nil {
		tl.OnService()
	}
}

// ToTicks converts d to whole ticks of period, rounding to nearest.
func ToTicks(d, period time.Duration) irkbd.Tick {
	if period <= 0 {
		return 0
	}
	return irkbd.Tick((d + period/2) / period)
}
