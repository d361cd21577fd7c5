// irkeymap generates a Go keymap table from a YAML keymap.
//
// Usage:
//
//	irkeymap [-o out.go] keymap.yaml
//
// Without -o the source is written to stdout.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sparques/irkbd/internal/keymapgen"
)

func main() {
	out := flag.String("o", "", "output file (default stdout)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: irkeymap [-o out.go] <keymap.yaml>")
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *out); err != nil {
		slog.Error("irkeymap failed", "err", err)
		os.Exit(1)
	}
}

func run(in, out string) error {
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()

	km, err := keymapgen.Parse(f)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	w := os.Stdout
	if out != "" {
		w, err = os.Create(out)
		if err != nil {
			return err
		}
	}
	if err := keymapgen.Generate(w, km, filepath.Base(in)); err != nil {
		if out != "" {
			w.Close()
		}
		return err
	}
	if out != "" {
		if err := w.Close(); err != nil {
			return err
		}
		slog.Info("wrote keymap", "file", out, "entries", len(km.Entries))
	}
	return nil
}
