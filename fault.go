package irkbd

// Fault is a stable error identifier. None of them is fatal: a fault only
// ever resets the decoder and/or forces a key release.
type Fault string

func (f Fault) Error() string { return string(f) }

const (
	// ErrFraming is a mark or space outside every valid window.
	ErrFraming Fault = "framing"
	// ErrTimeout is the release watchdog or a programming slot running out.
	ErrTimeout Fault = "timeout"
	// ErrOverflow is a tick counter wrapping during a measurement. The
	// measurement is read as MaxTick.
	ErrOverflow Fault = "overflow"
)

// FaultError carries a Fault with the context it was raised in.
type FaultError struct {
	F     Fault
	Op    string
	Mark  Tick
	Space Tick
}

func (e *FaultError) Error() string {
	if e.Op != "" {
		return string(e.F) + ": " + e.Op
	}
	return string(e.F)
}

func (e *FaultError) Unwrap() error { return e.F }

// FaultOf extracts the Fault from err. A nil error has no fault.
func FaultOf(err error) (Fault, bool) {
	switch x := err.(type) {
	case nil:
		return "", false
	case Fault:
		return x, true
	case *FaultError:
		return x.F, true
	}
	return "", false
}
