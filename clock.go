package irkbd

import "time"

// TimeStopwatch implements Stopwatch on top of a monotonic clock, emulating
// an 8-bit hardware counter that advances once per Period.
type TimeStopwatch struct {
	Period time.Duration
	// Now defaults to time.Now.
	Now func() time.Time

	start time.Time
	wraps int64
}

func NewStopwatch(period time.Duration) *TimeStopwatch {
	sw := &TimeStopwatch{Period: period}
	sw.Reset()
	return sw
}

func (sw *TimeStopwatch) now() time.Time {
	if sw.Now != nil {
		return sw.Now()
	}
	return time.Now()
}

func (sw *TimeStopwatch) count() int64 {
	if sw.Period <= 0 {
		return 0
	}
	return int64(sw.now().Sub(sw.start) / sw.Period)
}

func (sw *TimeStopwatch) Reset() {
	sw.start = sw.now()
	sw.wraps = 0
}

func (sw *TimeStopwatch) Ticks() Tick {
	return Tick(sw.count() & int64(MaxTick))
}

func (sw *TimeStopwatch) Overflowed() bool {
	w := sw.count() >> 8
	if w > sw.wraps {
		sw.wraps = w
		return true
	}
	return false
}
