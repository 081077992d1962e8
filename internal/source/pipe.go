package source

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/willibrandon/termkey/internal/key"
	"github.com/willibrandon/termkey/internal/termmode"
	"github.com/willibrandon/termkey/internal/vt100"
)

var pipeCounter atomic.Uint64

// Pipe is an in-memory source fed programmatically through SendText and
// SendBytes. It exists for tests and for embedding applications that
// synthesize input; the bytes it receives pass through the same parser
// a terminal source uses.
//
// Unlike the other sources, Send may be called from any goroutine, so
// the pipe guards its parser and pending queue with a mutex.
type Pipe struct {
	mu      sync.Mutex
	parser  *vt100.Parser
	pending []key.Press
	closed  bool

	id        uint64
	callbacks callbackStack
}

// NewPipe returns a pipe source with default parser options.
func NewPipe() *Pipe {
	return NewPipeWithOptions(vt100.DefaultOptions())
}

// NewPipeWithOptions returns a pipe source whose parser uses opts.
func NewPipeWithOptions(opts vt100.Options) *Pipe {
	return &Pipe{
		parser: vt100.NewWithOptions(opts),
		id:     pipeCounter.Add(1),
	}
}

// SendText feeds text into the pipe as though it arrived from a
// terminal. Escape sequences may be split across calls; the parser
// carries partial state between them.
func (p *Pipe) SendText(text string) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrClosed
	}
	p.pending = append(p.pending, p.parser.Feed(text)...)
	p.mu.Unlock()

	p.callbacks.notify()
	return nil
}

// SendBytes feeds raw bytes into the pipe. A nil slice is rejected with
// ErrNilData; an empty non-nil slice is a valid no-op.
func (p *Pipe) SendBytes(data []byte) error {
	if data == nil {
		return ErrNilData
	}
	return p.SendText(string(data))
}

// ReadKeys drains and returns the presses accumulated by Send calls.
func (p *Pipe) ReadKeys() ([]key.Press, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil, ErrClosed
	}
	return p.drainLocked(), nil
}

// FlushKeys force-resolves any partial sequence held by the parser and
// drains everything pending.
func (p *Pipe) FlushKeys() ([]key.Press, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil, ErrClosed
	}
	p.pending = append(p.pending, p.parser.Flush()...)
	return p.drainLocked(), nil
}

func (p *Pipe) drainLocked() []key.Press {
	out := p.pending
	p.pending = nil
	return out
}

// RawMode returns an invalid no-op context; a pipe has no terminal.
func (p *Pipe) RawMode() termmode.Context {
	return termmode.Noop()
}

// CookedMode returns an invalid no-op context.
func (p *Pipe) CookedMode() termmode.Context {
	return termmode.Noop()
}

// Attach registers fn to be invoked after each successful Send.
func (p *Pipe) Attach(fn func()) error {
	if fn == nil {
		return ErrNilCallback
	}
	p.callbacks.push(fn)
	return nil
}

// Detach removes the most recently attached callback.
func (p *Pipe) Detach() {
	p.callbacks.pop()
}

// FileNo reports ErrNoFileNo: a pipe source has no descriptor to poll.
func (p *Pipe) FileNo() (int, error) {
	return 0, ErrNoFileNo
}

// TypeaheadHash returns an identifier unique among pipe sources in this
// process.
func (p *Pipe) TypeaheadHash() string {
	return fmt.Sprintf("pipe:%d", p.id)
}

// Close marks the pipe closed. Pending presses are discarded and later
// Send and Read calls fail with ErrClosed.
func (p *Pipe) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.pending = nil
	p.mu.Unlock()

	// Wake any consumer waiting on a callback so it observes the close.
	p.callbacks.notify()
	return nil
}

// Closed reports whether Close has been called.
func (p *Pipe) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}
