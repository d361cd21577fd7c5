package hid

// HID class requests (HID1_11.pdf sect 7.2).
const (
	GetReport   byte = 0x01
	GetIdle     byte = 0x02
	GetProtocol byte = 0x03
	SetReport   byte = 0x09
	SetIdle     byte = 0x0A
	SetProtocol byte = 0x0B

	requestTypeMask  byte = 0x60
	requestTypeClass byte = 0x20
)

// Setup is the 8 byte setup packet of a control request.
type Setup struct {
	RequestType byte
	Request     byte
	Value       uint16
	Index       uint16
	Length      uint16
}

// ParseSetup decodes a raw setup packet.
func ParseSetup(b [8]byte) Setup {
	return Setup{
		RequestType: b[0],
		Request:     b[1],
		Value:       uint16(b[2]) | uint16(b[3])<<8,
		Index:       uint16(b[4]) | uint16(b[5])<<8,
		Length:      uint16(b[6]) | uint16(b[7])<<8,
	}
}

// ReportReader answers GET_REPORT.
type ReportReader interface {
	GetReport(id ReportID) []byte
}

// Control holds the state the host can read and write through class
// requests. Idle rate and protocol are informational only.
type Control struct {
	Reports ReportReader

	idle     byte
	protocol byte
	leds     byte
	scratch  [1]byte
}

func NewControl(reports ReportReader) *Control {
	return &Control{
		Reports: reports,
		idle:    500 / 4, // see HID1_11.pdf sect 7.2.4
	}
}

// HandleSetup answers a control request. It returns the data to send back
// (nil for none) and whether a data stage from the host should follow and be
// passed to HandleWrite.
func (c *Control) HandleSetup(rq Setup) (reply []byte, wantData bool) {
	if rq.RequestType&requestTypeMask != requestTypeClass {
		return nil, false
	}
	switch rq.Request {
	case GetIdle:
		c.scratch[0] = c.idle
		return c.scratch[:], false
	case SetIdle:
		c.idle = byte(rq.Value >> 8)
	case GetProtocol:
		c.scratch[0] = c.protocol
		return c.scratch[:], false
	case SetProtocol:
		c.protocol = byte(rq.Value >> 8)
	case GetReport:
		if c.Reports == nil {
			return nil, false
		}
		id := ReportID(rq.Value)
		if id == 0 {
			id = Keyboard
		}
		return c.Reports.GetReport(id), false
	case SetReport:
		// The only output report is the LED byte.
		return nil, rq.Length == 1
	}
	return nil, false
}

// HandleWrite takes the data stage of SET_REPORT.
func (c *Control) HandleWrite(data []byte) int {
	if len(data) == 0 {
		return 0
	}
	c.leds = data[len(data)-1]
	return 1
}

func (c *Control) Idle() byte     { return c.idle }
func (c *Control) Protocol() byte { return c.protocol }
func (c *Control) LEDs() byte     { return c.leds }

// CapsLock reports the host's caps lock LED.
func (c *Control) CapsLock() bool { return c.leds&(1<<1) != 0 }
