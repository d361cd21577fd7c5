// Package hid models the reports the receiver sends to the host: a boot
// protocol keyboard report plus optional consumer, system control and mouse
// reports, each tagged with a report id.
package hid

// ReportID is the first byte of every report.
type ReportID byte

const (
	Keyboard      ReportID = 1
	ConsumerCtl   ReportID = 2
	SystemCtl     ReportID = 3
	MouseReport   ReportID = 4
	maxReportSize          = 8
)

// Size returns the length of the report with the given id, id byte
// included. Unknown ids are sized as keyboard reports.
func Size(id ReportID) int {
	switch id {
	case ConsumerCtl:
		return 3
	case SystemCtl:
		return 2
	case MouseReport:
		return 4
	}
	return 8
}

// Report is an outgoing report buffer. It is overwritten in place.
//
// Keyboard layout: id, modifier, reserved, keycode[5].
type Report [maxReportSize]byte

func NewReport() Report {
	return Report{byte(Keyboard)}
}

func (r *Report) ID() ReportID { return ReportID(r[0]) }

// Reset clears every payload byte and keeps the report id, turning the
// buffer into the all-keys-up report for its type.
func (r *Report) Reset() {
	for i := 1; i < len(r); i++ {
		r[i] = 0
	}
}

// Write loads a into the buffer. Bytes the action does not cover are
// cleared.
func (r *Report) Write(a Action) {
	r[0] = byte(a)
	r[1] = byte(a >> 8)
	r[2] = byte(a >> 16)
	r[3] = byte(a >> 24)
	for i := 4; i < len(r); i++ {
		r[i] = 0
	}
}

// Bytes returns the report sized for its id.
func (r *Report) Bytes() []byte {
	return r[:Size(r.ID())]
}

// Released reports whether the buffer holds no pressed key.
func (r *Report) Released() bool {
	for _, b := range r[1:] {
		if b != 0 {
			return false
		}
	}
	return true
}
