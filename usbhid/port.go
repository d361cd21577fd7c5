//go:build tinygo && !avr

// Package usbhid connects the firmware to TinyGo's USB HID stack.
//
// The stock TinyGo HID descriptor numbers its reports differently, so Port
// installs a CDC+HID descriptor carrying hid.Descriptor and takes over the
// HID interface's class requests.
package usbhid

import (
	"machine"
	"machine/usb"
	"machine/usb/descriptor"
	tinyhid "machine/usb/hid"

	"github.com/sparques/irkbd/hid"
)

type Port struct {
	control *hid.Control
	busy    bool
}

// New registers a Port with the USB stack. reports answers GET_REPORT.
func New(fs hid.FeatureSet, reports hid.ReportReader) *Port {
	p := &Port{control: hid.NewControl(reports)}
	tinyhid.SetHandler(p)
	machine.ConfigureUSBEndpoint(usbDescriptor(hid.Descriptor(fs)), nil, []usb.SetupConfig{
		{Index: usb.HID_INTERFACE, Handler: p.setup},
	})
	return p
}

func usbDescriptor(report []byte) descriptor.Descriptor {
	classHID := descriptor.ClassHID.Bytes()
	classHID[7] = byte(len(report))
	classHID[8] = byte(len(report) >> 8)

	return descriptor.Descriptor{
		Device: descriptor.DeviceCDC.Bytes(),
		Configuration: descriptor.Append([][]byte{
			descriptor.ConfigurationCDCHID.Bytes(),
			descriptor.InterfaceAssociationCDC.Bytes(),
			descriptor.InterfaceCDCControl.Bytes(),
			descriptor.ClassSpecificCDCHeader.Bytes(),
			descriptor.ClassSpecificCDCACM.Bytes(),
			descriptor.ClassSpecificCDCUnion.Bytes(),
			descriptor.ClassSpecificCDCCallManagement.Bytes(),
			descriptor.EndpointEP1IN.Bytes(),
			descriptor.InterfaceCDCData.Bytes(),
			descriptor.EndpointEP2OUT.Bytes(),
			descriptor.EndpointEP3IN.Bytes(),
			descriptor.InterfaceHID.Bytes(),
			classHID,
			descriptor.EndpointEP4IN.Bytes(),
			descriptor.EndpointEP5OUT.Bytes(),
		}),
		HID: map[uint16][]byte{
			usb.HID_INTERFACE: report,
		},
	}
}

// Control exposes the idle, protocol and LED state the host has set.
func (p *Port) Control() *hid.Control { return p.control }

// Ready implements report.Transmitter.
func (p *Port) Ready() bool {
	return machine.USBDev.InitEndpointComplete && !p.busy
}

// Send implements report.Transmitter.
func (p *Port) Send(b []byte) {
	p.busy = true
	tinyhid.SendUSBPacket(b)
}

// Service is a no-op; the USB peripheral is interrupt driven on this port.
func (p *Port) Service() {}

// TxHandler runs when the IN endpoint has been drained.
func (p *Port) TxHandler() bool {
	p.busy = false
	return false
}

// RxHandler gets output reports from the OUT endpoint: the LED byte.
func (p *Port) RxHandler(b []byte) bool {
	p.control.HandleWrite(b)
	return true
}

func (p *Port) setup(s usb.Setup) bool {
	rq := hid.Setup{
		RequestType: s.BmRequestType,
		Request:     s.BRequest,
		Value:       uint16(s.WValueL) | uint16(s.WValueH)<<8,
		Index:       s.WIndex,
		Length:      s.WLength,
	}
	reply, wantData := p.control.HandleSetup(rq)
	switch {
	case reply != nil:
		machine.SendUSBInPacket(0, reply)
	case wantData:
		b, err := machine.ReceiveUSBControlPacket()
		if err != nil {
			return false
		}
		p.control.HandleWrite(b[:1])
		machine.SendZlp()
	default:
		if rq.RequestType&0x60 != 0x20 {
			return false
		}
		machine.SendZlp()
	}
	return true
}
