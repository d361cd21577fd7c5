// Package report turns decoder results into the press/release report
// stream the host sees.
//
// A Manager owns one report buffer and a small state machine. Presses and
// repeats arm the buffer, silence or garbage on the line arms a single
// all-keys-up report, and the transport drains whatever is armed whenever
// it is ready. The host never sees two presses without a release between
// them, and never sees a release for a press it did not get.
package report

import (
	"github.com/sparques/irkbd"
	"github.com/sparques/irkbd/hid"
	"github.com/sparques/irkbd/nec"
)

type State int8

const (
	Idle State = iota
	ArmedOnce
	ArmedRepeat
	ArmedReleaseOnce
	ReleaseSent
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case ArmedOnce:
		return "armed"
	case ArmedRepeat:
		return "armed repeat"
	case ArmedReleaseOnce:
		return "armed release"
	case ReleaseSent:
		return "release sent"
	}
	return "invalid"
}

// Transmitter is the interrupt IN endpoint.
type Transmitter interface {
	Ready() bool
	Send(report []byte)
}

// NoRepeat reports whether a is kept from auto-repeating while its button
// is held.
func NoRepeat(a hid.Action) bool {
	return a == hid.Mute || a == hid.PlayPause
}

// Manager sequences reports for the feature set F. F must be a concrete
// type; its zero value is used.
type Manager[F hid.FeatureSet] struct {
	features F

	buf   hid.Report
	out   hid.Report
	state State

	last hid.Action
	// down is set while the host holds a delivered press.
	down bool
	// next is a press waiting for the release of the one before it.
	next hid.Action

	watchdog irkbd.Stopwatch
	window   irkbd.Tick
	expired  bool
}

// New returns a Manager whose release watchdog fires after window ticks of
// watchdog without a decoder result.
func New[F hid.FeatureSet](watchdog irkbd.Stopwatch, window irkbd.Tick) *Manager[F] {
	m := &Manager[F]{
		buf:      hid.NewReport(),
		state:    ReleaseSent,
		watchdog: watchdog,
		window:   window,
	}
	watchdog.Reset()
	return m
}

func (m *Manager[F]) State() State { return m.state }

// Last returns the action a repeat would resend.
func (m *Manager[F]) Last() hid.Action { return m.last }

// Pressed reports whether the host currently sees a key down.
func (m *Manager[F]) Pressed() bool { return m.down }

// Forget drops the action a repeat would resend. Call it when a new frame's
// lead gap arrives, so a repeat preamble after an unfinished frame does not
// resend the previous key.
func (m *Manager[F]) Forget() { m.last = hid.None }

func (m *Manager[F]) supported(a hid.Action) hid.Action {
	if a == hid.None || !m.features.Supports(a.ID()) {
		return hid.None
	}
	return a
}

// Observe feeds one decoder result. a is the resolved action for NewKey
// and ignored otherwise. The silence watchdog is checked on every call.
func (m *Manager[F]) Observe(res nec.Result, a hid.Action) {
	if res != nec.Nothing {
		m.watchdog.Reset()
		m.expired = false
	}

	switch res {
	case nec.NewKey:
		a = m.supported(a)
		m.last = a
		if a != hid.None {
			m.press(a, ArmedOnce)
		}
	case nec.RepeatKey:
		if m.last != hid.None && !NoRepeat(m.last) {
			m.press(m.last, ArmedRepeat)
		}
	case nec.Error:
		m.last = hid.None
		m.release()
	}

	if !m.expired && (m.watchdog.Ticks() >= m.window || m.watchdog.Overflowed()) {
		m.expired = true
	}
	if m.expired {
		m.last = hid.None
		m.release()
	}
}

func (m *Manager[F]) press(a hid.Action, st State) {
	if m.next != hid.None {
		// already waiting on a release; a newer press replaces the queued
		// one, repeats are dropped
		if st == ArmedOnce {
			m.next = a
		}
		return
	}
	if st == ArmedOnce && m.down {
		m.next = a
		m.armRelease()
		return
	}
	m.buf.Write(a)
	m.state = st
}

func (m *Manager[F]) release() {
	m.next = hid.None
	if !m.down {
		// the host never saw the press
		if m.state != ReleaseSent {
			m.buf.Reset()
			m.state = ReleaseSent
		}
		return
	}
	m.armRelease()
}

func (m *Manager[F]) armRelease() {
	if m.state == ArmedReleaseOnce {
		return
	}
	m.buf.Reset()
	m.state = ArmedReleaseOnce
}

func (m *Manager[F]) armed() bool {
	return m.state != Idle && m.state != ReleaseSent
}

// delivered snapshots the buffer into out and advances the state machine
// as if the host just received it.
func (m *Manager[F]) delivered() {
	m.out = m.buf
	switch m.state {
	case ArmedReleaseOnce:
		m.down = false
		m.state = ReleaseSent
		if m.next != hid.None {
			m.buf.Write(m.next)
			m.next = hid.None
			m.state = ArmedOnce
		}
	case ArmedOnce, ArmedRepeat:
		m.down = true
		m.state = Idle
	}
}

// Poll sends the armed report if tx can take it. It returns whether a
// report was sent.
func (m *Manager[F]) Poll(tx Transmitter) bool {
	if !m.armed() || !tx.Ready() {
		return false
	}
	m.delivered()
	tx.Send(m.out.Bytes())
	return true
}

// GetReport answers a GET_REPORT control request. Reading the armed report
// this way counts as delivering it. Other report ids read as released.
func (m *Manager[F]) GetReport(id hid.ReportID) []byte {
	if m.buf.ID() != id {
		m.out = hid.Report{byte(id)}
		return m.out.Bytes()
	}
	if m.armed() {
		m.delivered()
	} else {
		m.out = m.buf
	}
	return m.out.Bytes()
}
