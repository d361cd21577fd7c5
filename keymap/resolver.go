package keymap

import "github.com/sparques/irkbd/hid"

// Resolver maps IR codes to actions. Any of its sources may be left nil.
type Resolver struct {
	// User holds codes taught by the wizard; slot i produces Prompts[i].
	User    Slots
	Prompts []Prompt

	Builtin Table
	Vendor  func(code uint32) hid.Action

	// Mode enables Translate on the result.
	Mode Mode
}

// NewResolver returns a Resolver with the stock tables and the Apple decoder.
func NewResolver(user Slots, mode Mode) *Resolver {
	return &Resolver{
		User:    user,
		Prompts: Programmable,
		Builtin: Builtin,
		Vendor:  Apple,
		Mode:    mode,
	}
}

func (r *Resolver) Resolve(code uint32) hid.Action {
	a := r.user(code)
	if a == hid.None {
		a = r.Builtin.Lookup(code)
	}
	if a == hid.None && r.Vendor != nil {
		a = r.Vendor(code)
	}
	if r.Mode != nil && r.Mode.Translating() {
		a = Translate(a)
	}
	return a
}

func (r *Resolver) user(code uint32) hid.Action {
	if r.User == nil {
		return hid.None
	}
	n := r.User.Len()
	if n > len(r.Prompts) {
		n = len(r.Prompts)
	}
	for i := 0; i < n; i++ {
		c := r.User.Slot(i)
		if Blank(c) {
			break
		}
		if c == code {
			return r.Prompts[i].Action
		}
	}
	return hid.None
}
