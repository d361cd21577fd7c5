// Package keymap resolves decoded IR codes to HID actions.
//
// A code is looked up in the user table first, then the built-in table, then
// run through the Apple remote decoder. Whatever comes out may be remapped to
// media keys when translate mode is on.
package keymap

//go:generate go run ../cmd/irkeymap -o builtin.go builtin.yaml

import "github.com/sparques/irkbd/hid"

// Both sentinel codes end a table scan. Erased is what blank flash or EEPROM
// reads back.
const (
	Empty  uint32 = 0x00000000
	Erased uint32 = 0xFFFFFFFF
)

// Blank reports whether code is one of the sentinels.
func Blank(code uint32) bool {
	return code == Empty || code == Erased
}

type Entry struct {
	Code   uint32
	Action hid.Action
	Desc   string
}

// Table is scanned in order; the first match wins and a sentinel code
// terminates the scan.
type Table []Entry

func (t Table) Lookup(code uint32) hid.Action {
	for _, e := range t {
		if Blank(e.Code) {
			break
		}
		if e.Code == code {
			return e.Action
		}
	}
	return hid.None
}

// Slots is the user programmable table.
type Slots interface {
	Len() int
	Slot(i int) uint32
	SetSlot(i int, code uint32) error
}

// Mode reports whether translate mode is enabled.
type Mode interface {
	Translating() bool
}

// ModeFunc adapts a func to Mode.
type ModeFunc func() bool

func (f ModeFunc) Translating() bool { return f() }
