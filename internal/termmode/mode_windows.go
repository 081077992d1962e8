//go:build windows

package termmode

import (
	"sync"

	"golang.org/x/sys/windows"
)

// windowsContext restores one console-mode snapshot on one handle.
type windowsContext struct {
	handle windows.Handle
	saved  uint32

	once       sync.Once
	restoreErr error
}

// rawDisable holds the console input bits cleared by raw mode: echo,
// line buffering, and processed input (so Ctrl+C arrives as a key event
// instead of a console signal).
const rawDisable = windows.ENABLE_ECHO_INPUT | windows.ENABLE_LINE_INPUT | windows.ENABLE_PROCESSED_INPUT

func newRaw(fd int) Context {
	h := windows.Handle(fd)
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		// Not a console: raw mode is a harmless no-op.
		return noopContext{}
	}

	raw := mode &^ uint32(rawDisable)
	// Prefer virtual-terminal input so the console emits the same
	// escape sequences the parser reads on POSIX; older consoles
	// reject the bit, in which case legacy record translation is used.
	if err := windows.SetConsoleMode(h, raw|windows.ENABLE_VIRTUAL_TERMINAL_INPUT); err != nil {
		if err := windows.SetConsoleMode(h, raw); err != nil {
			return noopContext{}
		}
	}
	return &windowsContext{handle: h, saved: mode}
}

func newCooked(fd int) Context {
	h := windows.Handle(fd)
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return noopContext{}
	}

	cooked := mode | uint32(rawDisable)
	if err := windows.SetConsoleMode(h, cooked); err != nil {
		return noopContext{}
	}
	return &windowsContext{handle: h, saved: mode}
}

func (c *windowsContext) Valid() bool {
	return true
}

func (c *windowsContext) Restore() error {
	c.once.Do(func() {
		c.restoreErr = windows.SetConsoleMode(c.handle, c.saved)
	})
	return c.restoreErr
}
