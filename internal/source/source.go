package source

import (
	"errors"
	"sync"

	"github.com/willibrandon/termkey/internal/key"
	"github.com/willibrandon/termkey/internal/termmode"
	"github.com/willibrandon/termkey/internal/vt100"
)

// Sentinel errors returned by Source operations.
var (
	// ErrClosed is returned by operations on a source after Close.
	ErrClosed = errors.New("source: closed")

	// ErrNilCallback is returned by Attach when the callback is nil.
	ErrNilCallback = errors.New("source: nil callback")

	// ErrNilData is returned by SendBytes when the byte slice is nil.
	ErrNilData = errors.New("source: nil data")

	// ErrNoFileNo is returned by FileNo on sources without an OS-level
	// file descriptor, such as the in-memory pipe source.
	ErrNoFileNo = errors.New("source: no file descriptor")
)

// Source is an input source: a stream of key presses plus control over
// the terminal mode of the underlying handle.
//
// ReadKeys and FlushKeys must be called from a single reader goroutine.
// Attach, Detach, Close, and Closed may be called from any goroutine.
type Source interface {
	// ReadKeys returns the presses currently available without
	// blocking. An empty slice with a nil error means no input is
	// pending. After Close it returns ErrClosed.
	ReadKeys() ([]key.Press, error)

	// FlushKeys force-resolves any partially buffered escape sequence
	// and returns everything pending, including the presses produced by
	// the resolution. Callers invoke it after their escape timeout has
	// elapsed with no further input.
	FlushKeys() ([]key.Press, error)

	// RawMode switches the underlying handle to raw mode and returns a
	// context restoring the prior attributes. On handles that are not
	// terminals the context is an invalid no-op.
	RawMode() termmode.Context

	// CookedMode switches the underlying handle back to canonical mode
	// for the lifetime of the returned context.
	CookedMode() termmode.Context

	// Attach registers a callback invoked when input may be available.
	// Callbacks nest: the most recently attached one is active until
	// Detach removes it, which reactivates its predecessor.
	Attach(fn func()) error

	// Detach removes the most recently attached callback.
	Detach()

	// FileNo returns the OS file descriptor for readiness multiplexing,
	// or ErrNoFileNo when the source has none.
	FileNo() (int, error)

	// TypeaheadHash identifies this source within the typeahead store.
	// It is stable for the lifetime of the source.
	TypeaheadHash() string

	// Close releases the source and unblocks any in-flight read.
	// Closing twice is a no-op.
	Close() error

	// Closed reports whether Close has been called.
	Closed() bool
}

// Options configures source construction.
type Options struct {
	// Parser configures escape-sequence recognition.
	Parser vt100.Options

	// ReadChunkSize is the read buffer size in bytes for OS-backed
	// sources. Zero or negative selects the default of 1024.
	ReadChunkSize int
}

// DefaultOptions returns the options used by the factory when the
// caller supplies none.
func DefaultOptions() Options {
	return Options{
		Parser:        vt100.DefaultOptions(),
		ReadChunkSize: defaultReadChunk,
	}
}

const defaultReadChunk = 1024

func (o Options) chunkSize() int {
	if o.ReadChunkSize <= 0 {
		return defaultReadChunk
	}
	return o.ReadChunkSize
}

// callbackStack holds nested input-availability callbacks. Only the
// top of the stack is notified.
type callbackStack struct {
	mu  sync.Mutex
	fns []func()
}

func (s *callbackStack) push(fn func()) {
	s.mu.Lock()
	s.fns = append(s.fns, fn)
	s.mu.Unlock()
}

func (s *callbackStack) pop() {
	s.mu.Lock()
	if n := len(s.fns); n > 0 {
		s.fns[n-1] = nil
		s.fns = s.fns[:n-1]
	}
	s.mu.Unlock()
}

// notify invokes the active callback, if any, outside the stack lock so
// the callback itself may attach or detach.
func (s *callbackStack) notify() {
	s.mu.Lock()
	var fn func()
	if n := len(s.fns); n > 0 {
		fn = s.fns[n-1]
	}
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}
