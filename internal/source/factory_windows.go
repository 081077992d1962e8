//go:build windows

package source

import (
	"os"

	"golang.org/x/term"
)

func newDefault(opts Options) (Source, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		if c, err := NewConsole(opts); err == nil {
			return c, nil
		}
	}
	return NewPipeWithOptions(opts.Parser), nil
}
