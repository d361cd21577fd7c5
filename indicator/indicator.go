// Package indicator drives the status LED.
package indicator

import "time"

type Indicator interface {
	Set(on bool)
}

// Flash blinks ind n times, on and off for period each. wait must keep the
// host serviced while it waits.
func Flash(ind Indicator, n int, period time.Duration, wait func(time.Duration)) {
	for i := 0; i < n; i++ {
		ind.Set(true)
		wait(period)
		ind.Set(false)
		wait(period)
	}
}

// Func adapts a func to Indicator.
type Func func(on bool)

func (f Func) Set(on bool) { f(on) }

// None is an indicator that shows nothing.
var None = Func(func(bool) {})
