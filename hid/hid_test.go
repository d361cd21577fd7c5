package hid

import (
	"bytes"
	"testing"
)

func TestReportResetKeepsID(t *testing.T) {
	r := NewReport()
	r.Write(VolUp)
	if r.ID() != ConsumerCtl {
		t.Fatalf("id = %d", r.ID())
	}
	if got := r.Bytes(); !bytes.Equal(got, []byte{0x02, 0xE9, 0x00}) {
		t.Fatalf("bytes = % X", got)
	}
	r.Reset()
	if got := r.Bytes(); !bytes.Equal(got, []byte{0x02, 0x00, 0x00}) {
		t.Fatalf("after reset = % X", got)
	}
	if !r.Released() {
		t.Fatalf("reset report should be released")
	}
}

func TestKeyboardLayout(t *testing.T) {
	r := NewReport()
	r.Write(Key(ModShiftLeft, KeyA))
	want := []byte{0x01, 0x02, 0x00, 0x04, 0, 0, 0, 0}
	if !bytes.Equal(r.Bytes(), want) {
		t.Fatalf("bytes = % X, want % X", r.Bytes(), want)
	}
}

func TestWriteClearsTail(t *testing.T) {
	r := Report{1, 0, 0, 0, 9, 9, 9, 9}
	r.Write(KeyArrowUp)
	if r[4] != 0 || r[7] != 0 {
		t.Fatalf("tail not cleared: % X", r[:])
	}
}

func TestSizes(t *testing.T) {
	for id, want := range map[ReportID]int{Keyboard: 8, ConsumerCtl: 3, SystemCtl: 2, MouseReport: 4, 0: 8, 9: 8} {
		if got := Size(id); got != want {
			t.Errorf("Size(%d) = %d, want %d", id, got, want)
		}
	}
}

func TestMouseAction(t *testing.T) {
	r := NewReport()
	r.Write(Mouse(MouseLeft, -1, 5))
	if got := r.Bytes(); !bytes.Equal(got, []byte{0x04, 0x01, 0xFF, 0x05}) {
		t.Fatalf("bytes = % X", got)
	}
}

func TestActionNames(t *testing.T) {
	a, err := ParseAction("volup")
	if err != nil || a != VolUp {
		t.Fatalf("ParseAction = %08X, %v", a, err)
	}
	if Name(PlayPause) != "playpause" {
		t.Fatalf("Name = %q", Name(PlayPause))
	}
	if _, err := ParseAction("bogus"); err != ErrUnknownAction {
		t.Fatalf("err = %v", err)
	}
}

func TestFeatureSets(t *testing.T) {
	if !(Full{}).Supports(MouseReport) || (Full{}).Supports(5) {
		t.Fatalf("Full")
	}
	if (KeyboardOnly{}).Supports(ConsumerCtl) || !(KeyboardOnly{}).Supports(Keyboard) {
		t.Fatalf("KeyboardOnly")
	}
	if (Media{}).Supports(MouseReport) || !(Media{}).Supports(SystemCtl) {
		t.Fatalf("Media")
	}
}

func TestDescriptorHasOnlySupportedIDs(t *testing.T) {
	kb := Descriptor(KeyboardOnly{})
	full := Descriptor(Full{})
	if !bytes.Equal(kb, keyboardDescriptor) {
		t.Fatalf("keyboard-only descriptor differs from the keyboard collection")
	}
	for id := byte(1); id <= 4; id++ {
		if !bytes.Contains(full, []byte{0x85, id}) {
			t.Errorf("full descriptor lacks report id %d", id)
		}
	}
	if bytes.Contains(kb, []byte{0x85, 0x02}) {
		t.Errorf("keyboard-only descriptor has report id 2")
	}
	want := len(keyboardDescriptor) + len(consumerDescriptor) + len(systemDescriptor) + len(mouseDescriptor)
	if len(full) != want {
		t.Fatalf("len = %d, want %d", len(full), want)
	}
}

type fakeReports struct {
	asked ReportID
}

func (f *fakeReports) GetReport(id ReportID) []byte {
	f.asked = id
	return make([]byte, Size(id))
}

func TestControlRequests(t *testing.T) {
	rep := &fakeReports{}
	c := NewControl(rep)

	class := byte(0xA1)
	if got, _ := c.HandleSetup(Setup{RequestType: class, Request: GetIdle}); len(got) != 1 || got[0] != 125 {
		t.Fatalf("default idle = %v", got)
	}
	c.HandleSetup(Setup{RequestType: 0x21, Request: SetIdle, Value: 0x2000})
	if c.Idle() != 0x20 {
		t.Fatalf("idle = %d", c.Idle())
	}
	c.HandleSetup(Setup{RequestType: 0x21, Request: SetProtocol, Value: 0x0100})
	if got, _ := c.HandleSetup(Setup{RequestType: class, Request: GetProtocol}); got[0] != 1 {
		t.Fatalf("protocol = %v", got)
	}

	for id, n := range map[uint16]int{1: 8, 2: 3, 3: 2, 4: 4} {
		got, _ := c.HandleSetup(Setup{RequestType: class, Request: GetReport, Value: 0x0100 | id})
		if len(got) != n || rep.asked != ReportID(id) {
			t.Fatalf("GET_REPORT %d: len %d asked %d", id, len(got), rep.asked)
		}
	}

	if _, want := c.HandleSetup(Setup{RequestType: 0x21, Request: SetReport, Length: 1}); !want {
		t.Fatalf("SET_REPORT with one byte should request data")
	}
	if _, want := c.HandleSetup(Setup{RequestType: 0x21, Request: SetReport, Length: 0}); want {
		t.Fatalf("SET_REPORT without data should be ignored")
	}
	c.HandleWrite([]byte{0x02})
	if !c.CapsLock() {
		t.Fatalf("caps lock bit not picked up")
	}

	// Standard requests are not ours.
	if got, want := c.HandleSetup(Setup{RequestType: 0x80, Request: 0x06}); got != nil || want {
		t.Fatalf("standard request answered")
	}
}

func TestParseSetup(t *testing.T) {
	rq := ParseSetup([8]byte{0xA1, 0x01, 0x02, 0x01, 0x00, 0x00, 0x03, 0x00})
	if rq.Request != GetReport || rq.Value != 0x0102 || rq.Length != 3 {
		t.Fatalf("%+v", rq)
	}
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		in   []byte
		want string
	}{
		{[]byte{1, 0, 0, 0x52, 0, 0, 0, 0}, "report 1: up"},
		{[]byte{2, 0xE9, 0}, "report 2: volup"},
		{[]byte{2, 0, 0}, "report 2: release"},
		{[]byte{3, 2}, "report 3: power"},
		{[]byte{1, 0, 0}, "malformed 01 00 00"},
	}
	for _, tc := range cases {
		if got := Describe(tc.in); got != tc.want {
			t.Errorf("Describe(% X) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
