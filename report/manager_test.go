package report

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/sparques/irkbd/hid"
	"github.com/sparques/irkbd/irtest"
	"github.com/sparques/irkbd/nec"
)

type fakeTx struct {
	busy bool
	sent [][]byte
}

func (f *fakeTx) Ready() bool { return !f.busy }

func (f *fakeTx) Send(b []byte) {
	f.sent = append(f.sent, append([]byte(nil), b...))
}

func released(b []byte) bool {
	for _, c := range b[1:] {
		if c != 0 {
			return false
		}
	}
	return true
}

func pressOf(a hid.Action) []byte {
	r := hid.NewReport()
	r.Write(a)
	return append([]byte(nil), r.Bytes()...)
}

// coarse ticks are 16 clock ticks, as on the reference parts
func newManager() (*Manager[hid.Full], *irtest.Clock, *fakeTx) {
	clk := &irtest.Clock{}
	m := New[hid.Full](irtest.NewStopwatch(clk, 16), nec.ProfileA.Release)
	return m, clk, &fakeTx{}
}

const window = uint64(90 * 16)

func TestStartsReleased(t *testing.T) {
	m, clk, tx := newManager()
	clk.Advance(window * 10)
	m.Observe(nec.Nothing, 0)
	if m.Poll(tx) || len(tx.sent) != 0 {
		t.Fatalf("sent %v from a fresh manager", tx.sent)
	}
	if m.State() != ReleaseSent {
		t.Fatalf("state = %v", m.State())
	}
}

func TestPressThenSilenceReleasesOnce(t *testing.T) {
	m, clk, tx := newManager()
	m.Observe(nec.NewKey, hid.VolUp)
	if m.State() != ArmedOnce {
		t.Fatalf("state = %v, want armed", m.State())
	}
	m.Poll(tx)
	if m.State() != Idle || !m.Pressed() {
		t.Fatalf("after delivery state = %v pressed = %v", m.State(), m.Pressed())
	}

	clk.Advance(window - 16)
	m.Observe(nec.Nothing, 0)
	m.Poll(tx)
	if len(tx.sent) != 1 {
		t.Fatalf("released before the window elapsed")
	}

	clk.Advance(16)
	m.Observe(nec.Nothing, 0)
	m.Poll(tx)
	// a long stretch of silence, long enough to wrap the coarse timer a
	// few times
	for i := 0; i < 5000; i++ {
		clk.Advance(16)
		m.Observe(nec.Nothing, 0)
		m.Poll(tx)
	}

	want := [][]byte{{2, 0xE9, 0}, {2, 0, 0}}
	if len(tx.sent) != len(want) {
		t.Fatalf("sent %v, want %v", tx.sent, want)
	}
	for i := range want {
		if !bytes.Equal(tx.sent[i], want[i]) {
			t.Fatalf("report %d = % X, want % X", i, tx.sent[i], want[i])
		}
	}
	if m.State() != ReleaseSent || m.Last() != hid.None || m.Pressed() {
		t.Fatalf("state = %v last = %08X", m.State(), m.Last())
	}
}

func TestRepeatResendsLast(t *testing.T) {
	m, _, tx := newManager()
	m.Observe(nec.NewKey, hid.KeyArrowUp)
	m.Poll(tx)
	m.Observe(nec.RepeatKey, 0xDEAD)
	if m.State() != ArmedRepeat {
		t.Fatalf("state = %v", m.State())
	}
	m.Poll(tx)
	if len(tx.sent) != 2 || !bytes.Equal(tx.sent[1], pressOf(hid.KeyArrowUp)) {
		t.Fatalf("sent %v", tx.sent)
	}
}

func TestNoRepeatKeys(t *testing.T) {
	for _, a := range []hid.Action{hid.Mute, hid.PlayPause} {
		m, _, tx := newManager()
		m.Observe(nec.NewKey, a)
		m.Poll(tx)
		m.Observe(nec.RepeatKey, 0)
		m.Poll(tx)
		if len(tx.sent) != 1 {
			t.Fatalf("%s repeated: %v", hid.Name(a), tx.sent)
		}
	}
}

func TestRepeatWithoutPress(t *testing.T) {
	m, _, tx := newManager()
	m.Observe(nec.RepeatKey, 0)
	m.Poll(tx)
	if len(tx.sent) != 0 {
		t.Fatalf("sent %v", tx.sent)
	}
}

func TestNewPressWaitsForRelease(t *testing.T) {
	m, _, tx := newManager()
	m.Observe(nec.NewKey, hid.KeyArrowUp)
	m.Poll(tx)
	m.Observe(nec.NewKey, hid.VolDown)
	// a repeat while the release is pending is dropped
	m.Observe(nec.RepeatKey, 0)
	for m.Poll(tx) {
	}
	want := [][]byte{
		pressOf(hid.KeyArrowUp),
		{1, 0, 0, 0, 0, 0, 0, 0},
		pressOf(hid.VolDown),
	}
	if len(tx.sent) != len(want) {
		t.Fatalf("sent %v, want %v", tx.sent, want)
	}
	for i := range want {
		if !bytes.Equal(tx.sent[i], want[i]) {
			t.Fatalf("report %d = % X, want % X", i, tx.sent[i], want[i])
		}
	}
}

func TestUndeliveredPressIsReplaced(t *testing.T) {
	m, _, tx := newManager()
	tx.busy = true
	m.Observe(nec.NewKey, hid.KeyArrowUp)
	m.Poll(tx)
	m.Observe(nec.NewKey, hid.KeyArrowDown)
	tx.busy = false
	for m.Poll(tx) {
	}
	if len(tx.sent) != 1 || !bytes.Equal(tx.sent[0], pressOf(hid.KeyArrowDown)) {
		t.Fatalf("sent %v", tx.sent)
	}
}

func TestErrorForcesRelease(t *testing.T) {
	m, _, tx := newManager()
	m.Observe(nec.NewKey, hid.KeyArrowLeft)
	m.Poll(tx)
	m.Observe(nec.Error, 0)
	m.Observe(nec.Error, 0)
	for m.Poll(tx) {
	}
	if len(tx.sent) != 2 || !released(tx.sent[1]) {
		t.Fatalf("sent %v", tx.sent)
	}
	if m.Last() != hid.None {
		t.Fatalf("last survived an error")
	}
	m.Observe(nec.RepeatKey, 0)
	if m.Poll(tx) {
		t.Fatalf("repeat after error was sent")
	}
}

func TestErrorBeforeDeliveryDropsPress(t *testing.T) {
	m, _, tx := newManager()
	tx.busy = true
	m.Observe(nec.NewKey, hid.KeyArrowLeft)
	m.Observe(nec.Error, 0)
	tx.busy = false
	if m.Poll(tx) {
		t.Fatalf("sent %v", tx.sent)
	}
}

func TestUnsupportedReportIsNoAction(t *testing.T) {
	clk := &irtest.Clock{}
	m := New[hid.KeyboardOnly](irtest.NewStopwatch(clk, 16), nec.ProfileA.Release)
	tx := &fakeTx{}
	m.Observe(nec.NewKey, hid.VolUp)
	m.Observe(nec.RepeatKey, 0)
	if m.Poll(tx) || m.Last() != hid.None {
		t.Fatalf("consumer report sent by a keyboard only build")
	}
	m.Observe(nec.NewKey, hid.KeyArrowUp)
	if !m.Poll(tx) {
		t.Fatalf("keyboard report not sent")
	}
}

func TestGetReportCountsAsDelivery(t *testing.T) {
	m, _, tx := newManager()
	m.Observe(nec.NewKey, hid.KeyArrowUp)
	if got := m.GetReport(hid.Keyboard); !bytes.Equal(got, pressOf(hid.KeyArrowUp)) {
		t.Fatalf("GET_REPORT = % X", got)
	}
	if m.Poll(tx) {
		t.Fatalf("report delivered twice")
	}
	if got := m.GetReport(hid.ConsumerCtl); !bytes.Equal(got, []byte{2, 0, 0}) {
		t.Fatalf("GET_REPORT consumer = % X", got)
	}
	// the returned bytes are a snapshot
	m.Observe(nec.Error, 0)
	got := m.GetReport(hid.Keyboard)
	m.Observe(nec.NewKey, hid.KeyArrowDown)
	if !released(got) {
		t.Fatalf("snapshot changed under the caller: % X", got)
	}
}

// Whatever the line does, the host sees press, release, press, release...
// and every release matches the report id of its press.
func TestReportStreamAlternates(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	results := []nec.Result{nec.Nothing, nec.Nothing, nec.Busy, nec.NewKey, nec.RepeatKey, nec.Error}
	actions := []hid.Action{hid.None, hid.KeyArrowUp, hid.KeyArrowDown, hid.VolUp, hid.Mute, hid.PlayPause, hid.Power}

	m, clk, tx := newManager()
	for i := 0; i < 20000; i++ {
		clk.Advance(uint64(rng.Intn(200)))
		m.Observe(results[rng.Intn(len(results))], actions[rng.Intn(len(actions))])
		tx.busy = rng.Intn(3) == 0
		m.Poll(tx)
	}
	if len(tx.sent) < 100 {
		t.Fatalf("only %d reports sent", len(tx.sent))
	}

	var pressed []byte
	for i, b := range tx.sent {
		switch {
		case released(b) && pressed == nil:
			t.Fatalf("report %d: release without a press", i)
		case released(b):
			if b[0] != pressed[0] {
				t.Fatalf("report %d: release id %d for press id %d", i, b[0], pressed[0])
			}
			pressed = nil
		case pressed != nil && !bytes.Equal(b, pressed):
			t.Fatalf("report %d: % X pressed while % X is down", i, b, pressed)
		default:
			pressed = b
		}
	}
}
