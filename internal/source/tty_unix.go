//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/muesli/cancelreader"
	"golang.org/x/sys/unix"

	"github.com/willibrandon/termkey/internal/key"
	"github.com/willibrandon/termkey/internal/termmode"
	"github.com/willibrandon/termkey/internal/vt100"
)

// TTY reads from a terminal device on POSIX systems. The file is
// wrapped in a cancelable reader so Close can unblock a read that is
// already in flight on the descriptor.
type TTY struct {
	file     *os.File
	reader   cancelreader.CancelReader
	ownsFile bool

	parser  *vt100.Parser
	buf     []byte
	pending []key.Press

	closed    atomic.Bool
	callbacks callbackStack
}

// NewTTY wraps an open terminal device. The caller keeps ownership of
// f; Close does not close it.
func NewTTY(f *os.File, opts Options) (*TTY, error) {
	return newTTY(f, opts, false)
}

func newTTY(f *os.File, opts Options, owns bool) (*TTY, error) {
	cr, err := cancelreader.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("input reader for %s: %w", f.Name(), err)
	}
	return &TTY{
		file:     f,
		reader:   cr,
		ownsFile: owns,
		parser:   vt100.NewWithOptions(opts.Parser),
		buf:      make([]byte, opts.chunkSize()),
	}, nil
}

// ReadKeys polls the descriptor and, when data is ready, performs one
// read and parses it. It never blocks: with nothing ready it returns
// whatever was already pending, usually an empty slice.
func (t *TTY) ReadKeys() ([]key.Press, error) {
	if t.closed.Load() {
		return nil, ErrClosed
	}

	ready, err := t.poll(0)
	if err != nil || !ready {
		return t.drain(), nil
	}

	n, err := t.reader.Read(t.buf)
	if n > 0 {
		t.pending = append(t.pending, t.parser.Feed(string(t.buf[:n]))...)
	}
	if err != nil {
		// A canceled read means Close ran concurrently; hand back what
		// was parsed before the cancellation, then fail on later calls.
		if errors.Is(err, cancelreader.ErrCanceled) || errors.Is(err, io.EOF) {
			return t.drain(), nil
		}
		return t.drain(), fmt.Errorf("read %s: %w", t.file.Name(), err)
	}
	return t.drain(), nil
}

// FlushKeys force-resolves any partial escape sequence and drains the
// pending queue.
func (t *TTY) FlushKeys() ([]key.Press, error) {
	if t.closed.Load() {
		return nil, ErrClosed
	}
	t.pending = append(t.pending, t.parser.Flush()...)
	return t.drain(), nil
}

func (t *TTY) drain() []key.Press {
	out := t.pending
	t.pending = nil
	return out
}

// Wait blocks until input is ready, the timeout elapses, or the source
// is closed. It reports whether input is ready. A negative timeout
// waits indefinitely.
func (t *TTY) Wait(timeout time.Duration) bool {
	if t.closed.Load() {
		return false
	}
	ms := -1
	if timeout >= 0 {
		ms = int(timeout.Milliseconds())
	}
	ready, err := t.poll(ms)
	return err == nil && ready
}

// poll waits up to timeoutMs for POLLIN on the descriptor, retrying
// when a signal interrupts the wait.
func (t *TTY) poll(timeoutMs int) (bool, error) {
	fds := []unix.PollFd{{Fd: int32(t.file.Fd()), Events: unix.POLLIN}}
	for {
		n, err := unix.Poll(fds, timeoutMs)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return false, err
		}
		return n > 0 && fds[0].Revents&(unix.POLLIN|unix.POLLHUP) != 0, nil
	}
}

// RawMode switches the device to raw mode for the lifetime of the
// returned context.
func (t *TTY) RawMode() termmode.Context {
	return termmode.Raw(int(t.file.Fd()))
}

// CookedMode switches the device back to canonical mode for the
// lifetime of the returned context.
func (t *TTY) CookedMode() termmode.Context {
	return termmode.Cooked(int(t.file.Fd()))
}

// Attach registers fn to be invoked when the source is closed. Data
// readiness on a descriptor-backed source is observed through FileNo
// and the caller's own multiplexer rather than callbacks.
func (t *TTY) Attach(fn func()) error {
	if fn == nil {
		return ErrNilCallback
	}
	t.callbacks.push(fn)
	return nil
}

// Detach removes the most recently attached callback.
func (t *TTY) Detach() {
	t.callbacks.pop()
}

// FileNo returns the descriptor of the terminal device.
func (t *TTY) FileNo() (int, error) {
	return int(t.file.Fd()), nil
}

// TypeaheadHash identifies the source by its device descriptor.
func (t *TTY) TypeaheadHash() string {
	return fmt.Sprintf("tty:%d", t.file.Fd())
}

// Close cancels any in-flight read and releases the reader. The device
// file is closed only when this source opened it.
func (t *TTY) Close() error {
	if !t.closed.CompareAndSwap(false, true) {
		return nil
	}
	t.reader.Cancel()
	err := t.reader.Close()
	if t.ownsFile {
		if cerr := t.file.Close(); err == nil {
			err = cerr
		}
	}
	t.callbacks.notify()
	return err
}

// Closed reports whether Close has been called.
func (t *TTY) Closed() bool {
	return t.closed.Load()
}
