package nec

import (
	"time"

	"github.com/sparques/irkbd"
)

// Profile is every timing threshold for one timer tick rate. The numbers are
// tuned per clock and do not scale to other rates; derive a new profile from
// the 9ms/4.5ms/2.25ms/0.56ms windows instead of computing one.
type Profile struct {
	Name string

	// TickPeriod is one pulse-timer tick (CPU clock / 1024).
	TickPeriod time.Duration
	// CoarsePeriod is one watchdog-timer tick (CPU clock / 16384).
	CoarsePeriod time.Duration

	// LeadMark is the shortest 9ms lead mark. Lead marks are accepted up to
	// LeadMark+Space2ms.
	LeadMark irkbd.Tick
	// DataMarkMin and DataMarkMax bound a 560us data or repeat mark.
	// DataMarkMax is LeadMark/8.
	DataMarkMin irkbd.Tick
	DataMarkMax irkbd.Tick
	// BitThreshold splits a short (0) from a long (1) data space.
	BitThreshold irkbd.Tick

	Space2ms irkbd.Tick
	Space3ms irkbd.Tick
	Space4ms irkbd.Tick
	Space5ms irkbd.Tick

	// Release is the silence window, in coarse ticks, after which a held
	// key is released (120ms).
	Release irkbd.Tick
	// SlotTimeout is how many coarse-timer overflows a programming slot
	// waits before giving up (about 5s).
	SlotTimeout int
}

// SpaceLimit is how long a space is measured before it is cut short.
func (p Profile) SpaceLimit() irkbd.Tick { return p.Space5ms + p.Space2ms }

// LeadMarkMax is the longest lead mark accepted.
func (p Profile) LeadMarkMax() irkbd.Tick { return p.LeadMark + p.Space2ms }

var (
	// ProfileA is a 12MHz part.
	ProfileA = Profile{
		Name:         "12MHz",
		TickPeriod:   1024 * time.Second / 12000000,
		CoarsePeriod: 16384 * time.Second / 12000000,
		LeadMark:     100,
		DataMarkMin:  3,
		DataMarkMax:  100 / 8,
		BitThreshold: 13,
		Space2ms:     23,
		Space3ms:     35,
		Space4ms:     47,
		Space5ms:     59,
		Release:      90,
		SlotTimeout:  15,
	}

	// ProfileB is a 16.5MHz part (ATtiny85 running V-USB off its PLL).
	ProfileB = Profile{
		Name:         "16.5MHz",
		TickPeriod:   1024 * time.Second / 16500000,
		CoarsePeriod: 16384 * time.Second / 16500000,
		LeadMark:     137,
		DataMarkMin:  4,
		DataMarkMax:  137 / 8,
		BitThreshold: 18,
		Space2ms:     32,
		Space3ms:     48,
		Space4ms:     65,
		Space5ms:     81,
		Release:      120,
		SlotTimeout:  20,
	}
)
