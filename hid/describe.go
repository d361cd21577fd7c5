package hid

import "fmt"

// Decode turns a received report back into the action that produced it.
// A released report decodes to an action with no payload.
func Decode(b []byte) (Action, bool) {
	if len(b) == 0 {
		return None, false
	}
	id := ReportID(b[0])
	if len(b) < Size(id) {
		return None, false
	}
	var a Action
	switch id {
	case Keyboard:
		a = Action(b[0]) | Action(b[1])<<8 | Action(b[3])<<24
	case ConsumerCtl:
		a = Action(b[0]) | Action(b[1])<<8 | Action(b[2])<<16
	case SystemCtl:
		a = Action(b[0]) | Action(b[1])<<8
	case MouseReport:
		a = Action(b[0]) | Action(b[1])<<8 | Action(b[2])<<16 | Action(b[3])<<24
	default:
		return None, false
	}
	return a, true
}

// Describe renders a report for humans.
func Describe(b []byte) string {
	a, ok := Decode(b)
	if !ok {
		return fmt.Sprintf("malformed % X", b)
	}
	if a>>8 == 0 {
		return fmt.Sprintf("report %d: release", a.ID())
	}
	if n := Name(a); n != "" {
		return fmt.Sprintf("report %d: %s", a.ID(), n)
	}
	return fmt.Sprintf("report %d: %08X", a.ID(), uint32(a))
}
