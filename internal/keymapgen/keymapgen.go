// Package keymapgen turns a YAML keymap into a Go source file holding a
// keymap.Table.
package keymapgen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/sparques/irkbd/hid"
)

var (
	ErrNoEntries    = errors.New("keymap has no entries")
	ErrSentinelCode = errors.New("code is a table sentinel")
	ErrDuplicate    = errors.New("duplicate code")
)

type File struct {
	Package string  `yaml:"package"`
	Var     string  `yaml:"var"`
	Entries []Entry `yaml:"entries"`
}

type Entry struct {
	Code   uint32 `yaml:"code"`
	Action string `yaml:"action"`
	Desc   string `yaml:"desc"`
}

// Parse reads and validates a keymap. Package and Var default to keymap and
// Builtin, Desc defaults to the action name.
func Parse(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode keymap: %w", err)
	}
	if f.Package == "" {
		f.Package = "keymap"
	}
	if f.Var == "" {
		f.Var = "Builtin"
	}
	if len(f.Entries) == 0 {
		return nil, ErrNoEntries
	}

	seen := make(map[uint32]int, len(f.Entries))
	for i := range f.Entries {
		e := &f.Entries[i]
		if e.Code == 0 || e.Code == 0xFFFFFFFF {
			return nil, fmt.Errorf("entry %d: %08X: %w", i, e.Code, ErrSentinelCode)
		}
		if j, dup := seen[e.Code]; dup {
			return nil, fmt.Errorf("entry %d: %08X also at entry %d: %w", i, e.Code, j, ErrDuplicate)
		}
		seen[e.Code] = i
		if _, err := hid.ParseAction(e.Action); err != nil {
			return nil, fmt.Errorf("entry %d: %q: %w", i, e.Action, err)
		}
		if e.Desc == "" {
			e.Desc = e.Action
		}
	}
	return &f, nil
}

// Generate writes f as gofmt'd Go source. source names the YAML file in the
// generated header.
func Generate(w io.Writer, f *File, source string) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by irkeymap from %s; DO NOT EDIT.\n\n", source)
	fmt.Fprintf(&buf, "package %s\n\n", f.Package)
	fmt.Fprintf(&buf, "var %s = Table{\n", f.Var)
	for _, e := range f.Entries {
		a, err := hid.ParseAction(e.Action)
		if err != nil {
			return fmt.Errorf("%q: %w", e.Action, err)
		}
		fmt.Fprintf(&buf, "\t{Code: 0x%08X, Action: 0x%08X, Desc: %q},\n", e.Code, uint32(a), e.Desc)
	}
	buf.WriteString("}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format generated table: %w", err)
	}
	_, err = w.Write(src)
	return err
}
