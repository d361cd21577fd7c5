//go:build tinygo

package irkbd

import (
	. "machine"
	"time"

	"github.com/sparques/pwm"
)

// TxDevice drives an IR LED with a 38kHz PWM carrier.
type TxDevice struct {
	pin    Pin
	pgroup pwm.Group
	ch     uint8
	duty   uint32
}

func NewTxDevice(pin Pin) (*TxDevice, error) {
	pin.Configure(PinConfig{Mode: PinPWM})
	pgroup := pwm.Get(pin)
	pgroup.Configure(PWMConfig{Period: uint64(1e9) / uint64(Freq38Khz)})
	ch, err := pgroup.Channel(pin)
	if err != nil {
		return nil, err
	}
	pgroup.Set(ch, 0)
	return &TxDevice{
		pin:    pin,
		pgroup: pgroup,
		ch:     ch,
		duty:   pgroup.Top() / 2,
	}, nil
}

// SendPair emits carrier for the mark, then stays dark for the space.
func (tx *TxDevice) SendPair(pair TimePair) {
	tx.pgroup.Set(tx.ch, tx.duty)
	time.Sleep(pair[0])
	tx.pgroup.Set(tx.ch, 0)
	time.Sleep(pair[1])
}

// SendFrame transmits fm and then waits gap, so consecutive frames keep the
// receiver's framing intact.
func (tx *TxDevice) SendFrame(fm FrameMarshaller, gap time.Duration) {
	for _, p := range fm.MarshalFrame() {
		tx.SendPair(p)
	}
	time.Sleep(gap)
}
