//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package source

import (
	"os"

	"golang.org/x/term"
)

func newDefault(opts Options) (Source, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return NewTTY(os.Stdin, opts)
	}
	// Stdin is redirected; fall back to the controlling terminal so an
	// interactive program still sees the keyboard.
	if f, err := os.Open("/dev/tty"); err == nil {
		t, err := newTTY(f, opts, true)
		if err == nil {
			return t, nil
		}
		f.Close() //nolint:errcheck // already failing
	}
	return NewPipeWithOptions(opts.Parser), nil
}
