//go:build windows

package source

import (
	"fmt"
	"sync/atomic"
	"time"
	"unicode/utf16"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/willibrandon/termkey/internal/key"
	"github.com/willibrandon/termkey/internal/termmode"
	"github.com/willibrandon/termkey/internal/vt100"
)

var (
	kernel32                          = windows.NewLazySystemDLL("kernel32.dll")
	procReadConsoleInputW             = kernel32.NewProc("ReadConsoleInputW")
	procGetNumberOfConsoleInputEvents = kernel32.NewProc("GetNumberOfConsoleInputEvents")
)

const keyEventType = 0x0001

// inputRecord mirrors INPUT_RECORD with the KEY_EVENT_RECORD member.
type inputRecord struct {
	eventType       uint16
	_               uint16
	keyDown         int32
	repeatCount     uint16
	virtualKeyCode  uint16
	virtualScanCode uint16
	unicodeChar     uint16
	controlKeyState uint32
}

// vkSymbols maps legacy virtual-key codes to symbols when the console
// cannot provide virtual-terminal input.
var vkSymbols = map[uint16]key.Symbol{
	0x21: key.KeyPageUp,   // VK_PRIOR
	0x22: key.KeyPageDown, // VK_NEXT
	0x23: key.KeyEnd,
	0x24: key.KeyHome,
	0x25: key.KeyLeft,
	0x26: key.KeyUp,
	0x27: key.KeyRight,
	0x28: key.KeyDown,
	0x2D: key.KeyInsert,
	0x2E: key.KeyDelete,
	0x70: key.KeyF1,
	0x71: key.KeyF2,
	0x72: key.KeyF3,
	0x73: key.KeyF4,
	0x74: key.KeyF5,
	0x75: key.KeyF6,
	0x76: key.KeyF7,
	0x77: key.KeyF8,
	0x78: key.KeyF9,
	0x79: key.KeyF10,
	0x7A: key.KeyF11,
	0x7B: key.KeyF12,
}

// Console reads key events from the Windows console. When the console
// supports virtual-terminal input the character stream is handed to the
// shared escape-sequence parser; otherwise key-event records are
// translated directly.
type Console struct {
	handle windows.Handle
	vt     bool

	parser  *vt100.Parser
	pending []key.Press
	records []inputRecord

	closed    atomic.Bool
	callbacks callbackStack
}

// NewConsole opens the process's console input buffer.
func NewConsole(opts Options) (*Console, error) {
	h, err := windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	if err != nil {
		return nil, fmt.Errorf("console input handle: %w", err)
	}
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return nil, fmt.Errorf("console mode: %w", err)
	}

	// Probe virtual-terminal input once at construction; RawMode sets
	// the bit for real when the reader enters raw mode.
	vt := mode&windows.ENABLE_VIRTUAL_TERMINAL_INPUT != 0
	if !vt {
		if windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_INPUT) == nil {
			vt = true
			windows.SetConsoleMode(h, mode) //nolint:errcheck // restoring probe
		}
	}

	return &Console{
		handle:  h,
		vt:      vt,
		parser:  vt100.NewWithOptions(opts.Parser),
		records: make([]inputRecord, 64),
	}, nil
}

// VirtualTerminal reports whether the console delivers escape
// sequences instead of legacy key-event records.
func (c *Console) VirtualTerminal() bool {
	return c.vt
}

// ReadKeys drains the console input buffer without blocking.
func (c *Console) ReadKeys() ([]key.Press, error) {
	if c.closed.Load() {
		return nil, ErrClosed
	}

	var count uint32
	r, _, err := procGetNumberOfConsoleInputEvents.Call(
		uintptr(c.handle), uintptr(unsafe.Pointer(&count)))
	if r == 0 {
		return c.drain(), fmt.Errorf("console input events: %w", err)
	}
	if count == 0 {
		return c.drain(), nil
	}

	var read uint32
	r, _, err = procReadConsoleInputW.Call(
		uintptr(c.handle),
		uintptr(unsafe.Pointer(&c.records[0])),
		uintptr(len(c.records)),
		uintptr(unsafe.Pointer(&read)))
	if r == 0 {
		return c.drain(), fmt.Errorf("read console input: %w", err)
	}

	var units []uint16
	for _, rec := range c.records[:read] {
		if rec.eventType != keyEventType || rec.keyDown == 0 {
			continue
		}
		if c.vt {
			for i := uint16(0); i < rec.repeatCount; i++ {
				units = append(units, rec.unicodeChar)
			}
			continue
		}
		c.pending = append(c.pending, c.translate(rec)...)
	}
	if len(units) > 0 {
		c.pending = append(c.pending, c.parser.Feed(string(utf16.Decode(units)))...)
	}
	return c.drain(), nil
}

// translate converts one legacy key-event record into presses.
func (c *Console) translate(rec inputRecord) []key.Press {
	if sym, ok := vkSymbols[rec.virtualKeyCode]; ok {
		out := make([]key.Press, 0, rec.repeatCount)
		for i := uint16(0); i < rec.repeatCount; i++ {
			out = append(out, key.NewPress(sym))
		}
		return out
	}
	if rec.unicodeChar == 0 {
		// Bare modifier keys produce no character.
		return nil
	}
	text := string(utf16.Decode([]uint16{rec.unicodeChar}))
	var out []key.Press
	for i := uint16(0); i < rec.repeatCount; i++ {
		out = append(out, c.parser.Feed(text)...)
	}
	return out
}

// FlushKeys force-resolves any partial escape sequence.
func (c *Console) FlushKeys() ([]key.Press, error) {
	if c.closed.Load() {
		return nil, ErrClosed
	}
	c.pending = append(c.pending, c.parser.Flush()...)
	return c.drain(), nil
}

func (c *Console) drain() []key.Press {
	out := c.pending
	c.pending = nil
	return out
}

// Wait blocks until the console is signaled, the timeout elapses, or
// the source is closed. A negative timeout waits indefinitely.
func (c *Console) Wait(timeout time.Duration) bool {
	if c.closed.Load() {
		return false
	}
	ms := uint32(windows.INFINITE)
	if timeout >= 0 {
		ms = uint32(timeout.Milliseconds())
	}
	ev, err := windows.WaitForSingleObject(c.handle, ms)
	return err == nil && ev == windows.WAIT_OBJECT_0
}

// RawMode switches the console to raw mode for the lifetime of the
// returned context.
func (c *Console) RawMode() termmode.Context {
	return termmode.Raw(int(c.handle))
}

// CookedMode switches the console back to line-edited input.
func (c *Console) CookedMode() termmode.Context {
	return termmode.Cooked(int(c.handle))
}

// Attach registers fn to be invoked when the source is closed.
func (c *Console) Attach(fn func()) error {
	if fn == nil {
		return ErrNilCallback
	}
	c.callbacks.push(fn)
	return nil
}

// Detach removes the most recently attached callback.
func (c *Console) Detach() {
	c.callbacks.pop()
}

// FileNo returns the console handle value for use with wait APIs.
func (c *Console) FileNo() (int, error) {
	return int(c.handle), nil
}

// TypeaheadHash identifies the source by its console handle.
func (c *Console) TypeaheadHash() string {
	return fmt.Sprintf("console:%d", c.handle)
}

// Close marks the source closed. The standard input handle belongs to
// the process and is left open.
func (c *Console) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	c.callbacks.notify()
	return nil
}

// Closed reports whether Close has been called.
func (c *Console) Closed() bool {
	return c.closed.Load()
}
