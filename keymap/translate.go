package keymap

import "github.com/sparques/irkbd/hid"

var (
	keyEqual = hid.Key(hid.ModNone, hid.KeyEqual)
	keyMinus = hid.Key(hid.ModNone, hid.KeyMinus)
	keyX     = hid.Key(hid.ModNone, hid.KeyX)
	keySpace = hid.Key(hid.ModNone, hid.KeySpace)
	keyEsc   = hid.Key(hid.ModNone, hid.KeyEsc)
)

// Translate swaps keyboard navigation keys for their media key
// counterparts. Anything else passes through. Translate(Translate(a)) ==
// Translate(a) for every a.
func Translate(a hid.Action) hid.Action {
	switch a {
	case keyEqual, hid.KeyArrowUp:
		return hid.VolUp
	case keyMinus, hid.KeyArrowDown:
		return hid.VolDown
	case hid.KeyArrowRight:
		return hid.NextTrack
	case hid.KeyArrowLeft:
		return hid.PrevTrack
	case keyX:
		return hid.Stop
	case keySpace:
		return hid.PlayPause
	case keyEsc:
		return hid.Menu
	}
	return a
}
