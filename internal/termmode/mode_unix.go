//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package termmode

import (
	"sync"

	"golang.org/x/sys/unix"
)

// unixContext restores one termios snapshot on one file descriptor.
type unixContext struct {
	fd    int
	saved unix.Termios

	once       sync.Once
	restoreErr error
}

func newRaw(fd int) Context {
	saved, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		// Not a terminal: raw mode is a harmless no-op.
		return noopContext{}
	}

	raw := *saved
	raw.Iflag &^= unix.IXON | unix.ICRNL | unix.BRKINT | unix.INPCK | unix.ISTRIP
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cflag |= unix.CS8
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return noopContext{}
	}
	return &unixContext{fd: fd, saved: *saved}
}

func newCooked(fd int) Context {
	saved, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return noopContext{}
	}

	cooked := *saved
	cooked.Iflag |= unix.ICRNL | unix.IXON
	cooked.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN

	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &cooked); err != nil {
		return noopContext{}
	}
	return &unixContext{fd: fd, saved: *saved}
}

func (c *unixContext) Valid() bool {
	return true
}

func (c *unixContext) Restore() error {
	c.once.Do(func() {
		c.restoreErr = unix.IoctlSetTermios(c.fd, ioctlWriteTermios, &c.saved)
	})
	return c.restoreErr
}
