package hid

import "errors"

// Action is what a remote button does, packed as the first four bytes of
// the report it produces: report id, then up to three payload bytes, least
// significant byte first. Zero is "no action".
type Action uint32

const None Action = 0

// ID returns the report the action is sent in.
func (a Action) ID() ReportID { return ReportID(a) }

type Modifier byte

const (
	ModNone       Modifier = 0x0
	ModCtrlLeft   Modifier = 1 << 0
	ModShiftLeft  Modifier = 1 << 1
	ModAltLeft    Modifier = 1 << 2
	ModGuiLeft    Modifier = 1 << 3
	ModCtrlRight  Modifier = 1 << 4
	ModShiftRight Modifier = 1 << 5
	ModAltRight   Modifier = 1 << 6
	ModGuiRight   Modifier = 1 << 7
)

// Keyboard usage ids (HID usage tables, page 0x07).
const (
	KeyA           byte = 0x04
	KeyF           byte = 0x09
	KeyL           byte = 0x0F
	KeyR           byte = 0x15
	KeyS           byte = 0x16
	KeyX           byte = 0x1B
	KeyZ           byte = 0x1D
	Key1           byte = 0x1E
	Key0           byte = 0x27
	KeyEnter       byte = 0x28
	KeyEsc         byte = 0x29
	KeyBackspace   byte = 0x2A
	KeyTab         byte = 0x2B
	KeySpace       byte = 0x2C
	KeyMinus       byte = 0x2D
	KeyEqual       byte = 0x2E
	KeyF1          byte = 0x3A
	KeyF2          byte = 0x3B
	KeyPrintScreen byte = 0x46
	KeyPageUp      byte = 0x4B
	KeyPageDown    byte = 0x4E
	KeyRight       byte = 0x4F
	KeyLeft        byte = 0x50
	KeyDown        byte = 0x51
	KeyUp          byte = 0x52
	KeyApplication byte = 0x65
)

// Consumer usage ids (page 0x0C).
const (
	UsageMenu      uint16 = 0x0040
	UsageFastFwd   uint16 = 0x00B3
	UsageRewind    uint16 = 0x00B4
	UsageNextTrack uint16 = 0x00B5
	UsagePrevTrack uint16 = 0x00B6
	UsageStop      uint16 = 0x00B7
	UsagePlayPause uint16 = 0x00CD
	UsageMute      uint16 = 0x00E2
	UsageVolUp     uint16 = 0x00E9
	UsageVolDown   uint16 = 0x00EA
)

// System control values, as declared in the descriptor (logical 1..3).
const (
	SysSleep  byte = 1
	SysPower  byte = 2
	SysWakeup byte = 3
)

// Mouse buttons.
const (
	MouseLeft   byte = 0x01
	MouseRight  byte = 0x02
	MouseMiddle byte = 0x04
)

// Key is a keyboard report with one key and a modifier mask.
func Key(mod Modifier, code byte) Action {
	return Action(Keyboard) | Action(mod)<<8 | Action(code)<<24
}

// Consumer is a consumer control report.
func Consumer(usage uint16) Action {
	return Action(ConsumerCtl) | Action(usage)<<8
}

// System is a system control report.
func System(ctl byte) Action {
	return Action(SystemCtl) | Action(ctl)<<8
}

// Mouse is a relative mouse report.
func Mouse(buttons byte, dx, dy int8) Action {
	return Action(MouseReport) | Action(buttons)<<8 | Action(uint8(dx))<<16 | Action(uint8(dy))<<24
}

var (
	KeyArrowUp    = Key(ModNone, KeyUp)
	KeyArrowDown  = Key(ModNone, KeyDown)
	KeyArrowLeft  = Key(ModNone, KeyLeft)
	KeyArrowRight = Key(ModNone, KeyRight)

	Mute      = Consumer(UsageMute)
	PlayPause = Consumer(UsagePlayPause)
	VolUp     = Consumer(UsageVolUp)
	VolDown   = Consumer(UsageVolDown)
	NextTrack = Consumer(UsageNextTrack)
	PrevTrack = Consumer(UsagePrevTrack)
	Stop      = Consumer(UsageStop)
	Menu      = Consumer(UsageMenu)

	Power = System(SysPower)
	Sleep = System(SysSleep)
)

var ErrUnknownAction = errors.New("unknown action name")

var names = []struct {
	name string
	a    Action
}{
	{"none", None},
	{"up", KeyArrowUp},
	{"down", KeyArrowDown},
	{"left", KeyArrowLeft},
	{"right", KeyArrowRight},
	{"enter", Key(ModNone, KeyEnter)},
	{"escape", Key(ModNone, KeyEsc)},
	{"space", Key(ModNone, KeySpace)},
	{"backspace", Key(ModNone, KeyBackspace)},
	{"tab", Key(ModNone, KeyTab)},
	{"minus", Key(ModNone, KeyMinus)},
	{"equal", Key(ModNone, KeyEqual)},
	{"pageup", Key(ModNone, KeyPageUp)},
	{"pagedown", Key(ModNone, KeyPageDown)},
	{"printscreen", Key(ModNone, KeyPrintScreen)},
	{"application", Key(ModNone, KeyApplication)},
	{"f1", Key(ModNone, KeyF1)},
	{"f2", Key(ModNone, KeyF2)},
	{"f", Key(ModNone, KeyF)},
	{"l", Key(ModNone, KeyL)},
	{"r", Key(ModNone, KeyR)},
	{"s", Key(ModNone, KeyS)},
	{"x", Key(ModNone, KeyX)},
	{"z", Key(ModNone, KeyZ)},
	{"mute", Mute},
	{"playpause", PlayPause},
	{"volup", VolUp},
	{"voldown", VolDown},
	{"next", NextTrack},
	{"prev", PrevTrack},
	{"stop", Stop},
	{"menu", Menu},
	{"fastforward", Consumer(UsageFastFwd)},
	{"rewind", Consumer(UsageRewind)},
	{"power", Power},
	{"sleep", Sleep},
	{"wakeup", System(SysWakeup)},
	{"click", Mouse(MouseLeft, 0, 0)},
	{"rightclick", Mouse(MouseRight, 0, 0)},
}

// ParseAction looks up a named action.
func ParseAction(name string) (Action, error) {
	for _, n := range names {
		if n.name == name {
			return n.a, nil
		}
	}
	return None, ErrUnknownAction
}

// Name returns the name of a, or "" if it has none.
func Name(a Action) string {
	for _, n := range names {
		if n.a == a {
			return n.name
		}
	}
	return ""
}
