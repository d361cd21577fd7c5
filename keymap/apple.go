package keymap

import "github.com/sparques/irkbd/hid"

// AppleID is the low 16 bits every Apple remote code carries.
const AppleID = 0x87EE

// Apple decodes Apple aluminium/white remote codes. Codes from other remotes
// and unknown Apple buttons yield hid.None.
func Apple(code uint32) hid.Action {
	if code&0xFFFF != AppleID {
		return hid.None
	}

	switch byte(code >> 16) {
	case 0x0A:
		return hid.KeyArrowUp
	case 0x0C:
		return hid.KeyArrowDown
	case 0x09:
		return hid.KeyArrowLeft
	case 0x06:
		return hid.KeyArrowRight
	case 0x5F:
		// play/pause
		return hid.Key(hid.ModNone, hid.KeySpace)
	case 0x03:
		// menu
		return hid.Key(hid.ModNone, hid.KeyEsc)
	case 0x5C:
		// select (center)
		return hid.Key(hid.ModNone, hid.KeyEnter)
	}
	return hid.None
}
