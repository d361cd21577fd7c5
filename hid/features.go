package hid

// FeatureSet is the set of reports a build exposes. Variants are chosen at
// build time; the keyboard report is always present.
type FeatureSet interface {
	Supports(id ReportID) bool
}

// Full exposes every report.
type Full struct{}

func (Full) Supports(id ReportID) bool {
	return id >= Keyboard && id <= MouseReport
}

// KeyboardOnly exposes the boot keyboard report and nothing else.
type KeyboardOnly struct{}

func (KeyboardOnly) Supports(id ReportID) bool { return id == Keyboard }

// Media exposes keyboard, consumer and system control reports.
type Media struct{}

func (Media) Supports(id ReportID) bool {
	return id >= Keyboard && id <= SystemCtl
}

// Descriptor returns the HID report descriptor for fs.
func Descriptor(fs FeatureSet) []byte {
	d := append([]byte(nil), keyboardDescriptor...)
	if fs.Supports(ConsumerCtl) {
		d = append(d, consumerDescriptor...)
	}
	if fs.Supports(SystemCtl) {
		d = append(d, systemDescriptor...)
	}
	if fs.Supports(MouseReport) {
		d = append(d, mouseDescriptor...)
	}
	return d
}

// See HID1_11.pdf appendix B section 1.
var keyboardDescriptor = []byte{
	0x05, 0x01, // USAGE_PAGE (Generic Desktop)
	0x09, 0x06, // USAGE (Keyboard)
	0xA1, 0x01, // COLLECTION (Application)
	0x85, 0x01, //   REPORT_ID (1)
	0x75, 0x01, //   REPORT_SIZE (1)
	0x95, 0x08, //   REPORT_COUNT (8)
	0x05, 0x07, //   USAGE_PAGE (Keyboard)
	0x19, 0xE0, //   USAGE_MINIMUM (Left Control)
	0x29, 0xE7, //   USAGE_MAXIMUM (Right GUI)
	0x15, 0x00, //   LOGICAL_MINIMUM (0)
	0x25, 0x01, //   LOGICAL_MAXIMUM (1)
	0x81, 0x02, //   INPUT (Data,Var,Abs) modifiers
	0x95, 0x01, //   REPORT_COUNT (1)
	0x75, 0x08, //   REPORT_SIZE (8)
	0x81, 0x03, //   INPUT (Cnst,Var,Abs) reserved
	0x95, 0x05, //   REPORT_COUNT (5)
	0x75, 0x01, //   REPORT_SIZE (1)
	0x05, 0x08, //   USAGE_PAGE (LEDs)
	0x19, 0x01, //   USAGE_MINIMUM (Num Lock)
	0x29, 0x05, //   USAGE_MAXIMUM (Kana)
	0x91, 0x02, //   OUTPUT (Data,Var,Abs) LEDs
	0x95, 0x01, //   REPORT_COUNT (1)
	0x75, 0x03, //   REPORT_SIZE (3)
	0x91, 0x03, //   OUTPUT (Cnst,Var,Abs) padding
	0x95, 0x05, //   REPORT_COUNT (5)
	0x75, 0x08, //   REPORT_SIZE (8)
	0x15, 0x00, //   LOGICAL_MINIMUM (0)
	0x26, 0xA4, 0x00, // LOGICAL_MAXIMUM (164)
	0x05, 0x07, //   USAGE_PAGE (Keyboard)
	0x19, 0x00, //   USAGE_MINIMUM (0)
	0x2A, 0xA4, 0x00, // USAGE_MAXIMUM (164)
	0x81, 0x00, //   INPUT (Data,Ary,Abs) keycodes
	0xC0, // END_COLLECTION
}

var consumerDescriptor = []byte{
	0x05, 0x0C, // USAGE_PAGE (Consumer Devices)
	0x09, 0x01, // USAGE (Consumer Control)
	0xA1, 0x01, // COLLECTION (Application)
	0x85, 0x02, //   REPORT_ID (2)
	0x19, 0x00, //   USAGE_MINIMUM (Unassigned)
	0x2A, 0x3C, 0x02, // USAGE_MAXIMUM
	0x15, 0x00, //   LOGICAL_MINIMUM (0)
	0x26, 0x3C, 0x02, // LOGICAL_MAXIMUM
	0x95, 0x01, //   REPORT_COUNT (1)
	0x75, 0x10, //   REPORT_SIZE (16)
	0x81, 0x00, //   INPUT (Data,Ary,Abs)
	0xC0, // END_COLLECTION
}

var systemDescriptor = []byte{
	0x05, 0x01, // USAGE_PAGE (Generic Desktop)
	0x09, 0x80, // USAGE (System Control)
	0xA1, 0x01, // COLLECTION (Application)
	0x85, 0x03, //   REPORT_ID (3)
	0x95, 0x01, //   REPORT_COUNT (1)
	0x75, 0x02, //   REPORT_SIZE (2)
	0x15, 0x01, //   LOGICAL_MINIMUM (1)
	0x25, 0x03, //   LOGICAL_MAXIMUM (3)
	0x09, 0x82, //   USAGE (System Sleep)
	0x09, 0x81, //   USAGE (System Power)
	0x09, 0x83, //   USAGE (System Wakeup)
	0x81, 0x60, //   INPUT
	0x75, 0x06, //   REPORT_SIZE (6)
	0x81, 0x03, //   INPUT (Cnst,Var,Abs)
	0xC0, // END_COLLECTION
}

var mouseDescriptor = []byte{
	0x05, 0x01, // USAGE_PAGE (Generic Desktop)
	0x09, 0x02, // USAGE (Mouse)
	0xA1, 0x01, // COLLECTION (Application)
	0x09, 0x01, //   USAGE (Pointer)
	0xA1, 0x00, //   COLLECTION (Physical)
	0x85, 0x04, //     REPORT_ID (4)
	0x05, 0x09, //     USAGE_PAGE (Button)
	0x19, 0x01, //     USAGE_MINIMUM
	0x29, 0x03, //     USAGE_MAXIMUM
	0x15, 0x00, //     LOGICAL_MINIMUM (0)
	0x25, 0x01, //     LOGICAL_MAXIMUM (1)
	0x95, 0x03, //     REPORT_COUNT (3)
	0x75, 0x01, //     REPORT_SIZE (1)
	0x81, 0x02, //     INPUT (Data,Var,Abs)
	0x95, 0x01, //     REPORT_COUNT (1)
	0x75, 0x05, //     REPORT_SIZE (5)
	0x81, 0x03, //     INPUT (Cnst,Var,Abs)
	0x05, 0x01, //     USAGE_PAGE (Generic Desktop)
	0x09, 0x30, //     USAGE (X)
	0x09, 0x31, //     USAGE (Y)
	0x15, 0x81, //     LOGICAL_MINIMUM (-127)
	0x25, 0x7F, //     LOGICAL_MAXIMUM (127)
	0x75, 0x08, //     REPORT_SIZE (8)
	0x95, 0x02, //     REPORT_COUNT (2)
	0x81, 0x06, //     INPUT (Data,Var,Rel)
	0xC0, //   END_COLLECTION
	0xC0, // END_COLLECTION
}
