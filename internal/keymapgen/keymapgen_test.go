package keymapgen

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/sparques/irkbd/hid"
)

const sample = `
entries:
  - code: 0x12345678
    action: up
    desc: test pattern
  - code: 0xBC43FF00
    action: playpause
`

func TestParseDefaults(t *testing.T) {
	f, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	if f.Package != "keymap" || f.Var != "Builtin" {
		t.Fatalf("defaults = %q %q", f.Package, f.Var)
	}
	if len(f.Entries) != 2 || f.Entries[0].Code != 0x12345678 {
		t.Fatalf("entries = %+v", f.Entries)
	}
	if f.Entries[1].Desc != "playpause" {
		t.Fatalf("desc default = %q", f.Entries[1].Desc)
	}
}

func TestParseRejects(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"empty", "package: keymap\n", ErrNoEntries},
		{"zero", "entries:\n  - {code: 0, action: up}\n", ErrSentinelCode},
		{"erased", "entries:\n  - {code: 0xFFFFFFFF, action: up}\n", ErrSentinelCode},
		{"dup", "entries:\n  - {code: 5, action: up}\n  - {code: 5, action: down}\n", ErrDuplicate},
		{"action", "entries:\n  - {code: 5, action: warp}\n", hid.ErrUnknownAction},
	}
	for _, tc := range cases {
		_, err := Parse(strings.NewReader(tc.src))
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestParseUnknownField(t *testing.T) {
	if _, err := Parse(strings.NewReader("entries:\n  - {code: 5, action: up, key: 3}\n")); err == nil {
		t.Fatal("unknown field accepted")
	}
}

func TestGenerate(t *testing.T) {
	f, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := Generate(&out, f, "test.yaml"); err != nil {
		t.Fatal(err)
	}
	src := out.String()
	for _, want := range []string{
		"// Code generated by irkeymap from test.yaml; DO NOT EDIT.",
		"package keymap",
		"var Builtin = Table{",
		`{Code: 0x12345678, Action: 0x52000001, Desc: "test pattern"},`,
		`{Code: 0xBC43FF00, Action: 0x0000CD02, Desc: "playpause"},`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source lacks %q:\n%s", want, src)
		}
	}
}

// The checked in table must match its YAML source.
func TestBuiltinUpToDate(t *testing.T) {
	in, err := os.Open("../../keymap/builtin.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()
	f, err := Parse(in)
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := Generate(&out, f, "builtin.yaml"); err != nil {
		t.Fatal(err)
	}
	have, err := os.ReadFile("../../keymap/builtin.go")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(have, out.Bytes()) {
		t.Fatalf("keymap/builtin.go is stale, run go generate ./keymap")
	}
}
