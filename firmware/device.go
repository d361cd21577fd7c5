// Package firmware is the receiver's main loop: decode, resolve, report, and
// the startup and button handling around it.
package firmware

import (
	"context"
	"io"
	"time"

	"github.com/sparques/irkbd"
	"github.com/sparques/irkbd/hid"
	"github.com/sparques/irkbd/indicator"
	"github.com/sparques/irkbd/keymap"
	"github.com/sparques/irkbd/nec"
	"github.com/sparques/irkbd/report"
	"github.com/sparques/irkbd/wizard"
)

const debug = false

// Host is the USB side. Service must run at least every 10ms.
type Host interface {
	report.Transmitter
	Service()
}

type Button interface {
	Pressed() bool
}

// Store is the persisted user table and translate flag.
type Store interface {
	keymap.Slots
	Translating() bool
	ToggleTranslate() (bool, error)
}

type Config struct {
	Profile nec.Profile

	// ProgramHold is how long the button must be held at power up to
	// enter programming mode.
	ProgramHold time.Duration
	// ToggleHold is how long the button must be held while running to
	// toggle translate mode.
	ToggleHold time.Duration
	// PowerOnBlink is how long the LED lights at power up.
	PowerOnBlink time.Duration
	// FlashPeriod is the on and off time of one status flash.
	FlashPeriod time.Duration

	// Console receives programming mode prompts. May be nil.
	Console io.Writer
	// Verbose echoes the codes stored in programming mode.
	Verbose bool

	// Now defaults to time.Now.
	Now func() time.Time
}

func DefaultConfig() Config {
	return Config{
		Profile:      nec.Default,
		ProgramHold:  2 * time.Second,
		ToggleHold:   time.Second,
		PowerOnBlink: 250 * time.Millisecond,
		FlashPeriod:  200 * time.Millisecond,
	}
}

type Device[F hid.FeatureSet] struct {
	cfg Config

	Host   Host
	Button Button
	LED    indicator.Indicator
	Store  Store

	Decoder  *nec.Decoder
	Resolver *keymap.Resolver
	Reports  *report.Manager[F]

	timer irkbd.Stopwatch
	lit   bool

	holding bool
	since   time.Time
}

// New wires a device. src is the IR receiver, timer the coarse timer shared
// by the release watchdog and programming mode.
func New[F hid.FeatureSet](cfg Config, src irkbd.Source, timer irkbd.Stopwatch, store Store, host Host) *Device[F] {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	d := &Device[F]{
		cfg:    cfg,
		Host:   host,
		Button: released{},
		LED:    indicator.None,
		Store:  store,
		timer:  timer,
	}
	d.Decoder = nec.NewDecoder(cfg.Profile, src, irkbd.ServiceFunc(d.Service))
	d.Resolver = keymap.NewResolver(store, store)
	d.Reports = report.New[F](timer, cfg.Profile.Release)
	return d
}

type released struct{}

func (released) Pressed() bool { return false }

// Service delivers a pending report and services the host. Everything that
// waits calls it.
func (d *Device[F]) Service() {
	d.Reports.Poll(d.Host)
	d.Host.Service()
}

// Wait busy-waits for dur, servicing the host.
func (d *Device[F]) Wait(dur time.Duration) {
	start := d.cfg.Now()
	for d.cfg.Now().Sub(start) < dur {
		d.Service()
	}
}

func (d *Device[F]) setLED(on bool) {
	if on != d.lit {
		d.lit = on
		d.LED.Set(on)
	}
}

func (d *Device[F]) flash(n int) {
	indicator.Flash(d.LED, n, d.cfg.FlashPeriod, d.Wait)
	d.lit = false
}

// Boot runs the power-up sequence. If the button is held for ProgramHold it
// runs programming mode before returning.
func (d *Device[F]) Boot() error {
	try := d.Button.Pressed()

	d.setLED(true)
	d.Wait(d.cfg.PowerOnBlink)
	try = try && d.Button.Pressed()
	d.setLED(false)

	if d.Store.Translating() {
		d.flash(1)
		try = try && d.Button.Pressed()
	}

	if !try || !d.hold(d.cfg.ProgramHold) {
		return nil
	}

	d.setLED(true)
	for d.Button.Pressed() {
		d.Service()
	}
	d.setLED(false)
	return d.Program()
}

// hold reports whether the button stays down for dur.
func (d *Device[F]) hold(dur time.Duration) bool {
	start := d.cfg.Now()
	for d.Button.Pressed() {
		if d.cfg.Now().Sub(start) >= dur {
			return true
		}
		d.Service()
	}
	return false
}

// Program runs programming mode over every user slot.
func (d *Device[F]) Program() error {
	w := &wizard.Wizard{
		Dec:     d.Decoder,
		Slots:   d.Store,
		Prompts: keymap.Programmable,
		Timer:   d.timer,
		Timeout: d.cfg.Profile.SlotTimeout,
		Svc:     irkbd.ServiceFunc(d.Service),
		Console: d.cfg.Console,
		Verbose: d.cfg.Verbose,
		Flash:   d.flash,
	}
	d.Decoder.Reset()
	return w.Run()
}

// Step is one main loop iteration.
func (d *Device[F]) Step() {
	d.Service()

	res, code := d.Decoder.Sample()
	var a hid.Action
	if res == nec.NewKey {
		a = d.Resolver.Resolve(code)
		if debug {
			println("[irkbd] code", code, "action", uint32(a))
		}
	}
	if res == nec.Busy && d.Decoder.Phase() == nec.PhaseGap {
		d.Reports.Forget()
	}
	d.Reports.Observe(res, a)

	switch {
	case res == nec.NewKey && a != hid.None:
		d.setLED(true)
	case d.Reports.State() == report.ReleaseSent:
		d.setLED(false)
	}

	d.checkToggle()
}

func (d *Device[F]) checkToggle() {
	if !d.Button.Pressed() {
		d.holding = false
		return
	}
	if !d.holding {
		d.holding = true
		d.since = d.cfg.Now()
		return
	}
	if d.cfg.Now().Sub(d.since) < d.cfg.ToggleHold {
		return
	}

	on, err := d.Store.ToggleTranslate()
	if err != nil && debug {
		println("[irkbd] toggle translate:", err.Error())
	}
	d.setLED(false)
	if on {
		d.flash(2)
	} else {
		d.flash(1)
	}
	for d.Button.Pressed() {
		d.Service()
	}
	d.holding = false
}

// Run steps the main loop until ctx is done.
func (d *Device[F]) Run(ctx context.Context) error {
	for ctx.Err() == nil {
		d.Step()
	}
	return ctx.Err()
}
