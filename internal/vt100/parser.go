package vt100

import (
	"bytes"
	"unicode/utf8"

	"github.com/willibrandon/termkey/internal/key"
)

// maxSequenceLength caps the escape buffer. A buffer past this length is
// force-flushed as literal characters, bounding memory under adversarial
// input that never completes a sequence.
const maxSequenceLength = 256

// pasteEnd is the bracketed-paste end marker.
var pasteEnd = []byte("\x1b[201~")

// asciiLiterals holds a preallocated one-byte string per ASCII value so
// the ground-state fast path emits plain characters without allocating.
var asciiLiterals = func() (a [128]string) {
	for i := range a {
		a[i] = string(rune(i))
	}
	return a
}()

// Options controls optional protocol recognition.
type Options struct {
	// Mouse enables the three mouse wire shapes. When false, mouse
	// sequences degrade to literal output like any unknown sequence.
	Mouse bool

	// BracketedPaste enables the paste markers. When false, markers are
	// recognized and dropped and paste content flows through as ordinary
	// key presses.
	BracketedPaste bool
}

// DefaultOptions enables every protocol the parser knows.
func DefaultOptions() Options {
	return Options{Mouse: true, BracketedPaste: true}
}

// Parser converts a character stream into an ordered sequence of key
// presses. It is a single-threaded-reader type: Feed, Flush and Reset
// must not be called concurrently, and by design hold no locks.
type Parser struct {
	opts  Options
	state State

	// buf holds a pending escape sequence; buf[0] is always ESC.
	buf []byte

	// runeBuf assembles a multi-byte UTF-8 character in ground state.
	runeBuf [utf8.UTFMax]byte
	runeLen int

	pasting  bool
	pasteBuf []byte

	out []key.Press
}

// New creates a parser with DefaultOptions.
func New() *Parser {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a parser with explicit protocol options.
func NewWithOptions(opts Options) *Parser {
	return &Parser{opts: opts}
}

// Feed appends text to the parser's live state and returns the presses
// it produced, in arrival order. It never blocks and never errors:
// malformed input degrades to literal output. The returned slice is
// owned by the caller.
func (p *Parser) Feed(text string) []key.Press {
	for i := 0; i < len(text); i++ {
		p.put(text[i])
	}
	out := p.out
	p.out = nil
	return out
}

// Flush forces any buffered incomplete sequence to resolve as literal or
// standalone output. This is how an isolated Escape key, not followed by
// more bytes, becomes an Escape press instead of waiting forever. A
// no-op on an empty buffer; an open bracketed paste keeps accumulating.
func (p *Parser) Flush() []key.Press {
	if p.runeLen > 0 {
		p.spillRune()
	}
	p.resolve(true)
	out := p.out
	p.out = nil
	return out
}

// Reset discards all buffered state for error recovery. Any partially
// received sequence or open paste is dropped without producing output.
func (p *Parser) Reset() {
	p.buf = p.buf[:0]
	p.runeLen = 0
	p.pasting = false
	p.pasteBuf = p.pasteBuf[:0]
	p.out = nil
	p.state = StateGround
}

// State reports where the parser currently is inside a sequence.
func (p *Parser) State() State {
	return p.state
}

func (p *Parser) emit(press key.Press) {
	p.out = append(p.out, press)
}

func (p *Parser) put(b byte) {
	if p.pasting {
		p.putPaste(b)
		return
	}
	if len(p.buf) > 0 {
		p.buf = append(p.buf, b)
		p.advanceState(b)
		p.resolve(false)
		return
	}
	if p.runeLen > 0 {
		p.putRune(b)
		return
	}
	switch {
	case b == 0x1b:
		p.buf = append(p.buf, b)
		p.state = StateEscape
	case b < 0x80:
		p.emitLiteral(b)
	default:
		p.runeBuf[0] = b
		p.runeLen = 1
	}
}

// emitLiteral emits a single byte from ground state: control bytes map
// through the fixed table, everything else is a literal character.
func (p *Parser) emitLiteral(b byte) {
	if sym, ok := key.ControlSymbol(b); ok {
		p.emit(key.NewPressData(sym, asciiLiterals[b]))
		return
	}
	if b < 0x80 {
		p.emit(key.NewPressData(key.KeyAny, asciiLiterals[b]))
		return
	}
	p.emit(key.NewPressData(key.KeyAny, string([]byte{b})))
}

// putRune accumulates continuation bytes of a multi-byte UTF-8 character.
func (p *Parser) putRune(b byte) {
	if b&0xc0 != 0x80 {
		// Not a continuation byte: the pending character is malformed.
		p.spillRune()
		p.put(b)
		return
	}
	p.runeBuf[p.runeLen] = b
	p.runeLen++
	if utf8.FullRune(p.runeBuf[:p.runeLen]) {
		p.emit(key.NewPressData(key.KeyAny, string(p.runeBuf[:p.runeLen])))
		p.runeLen = 0
	} else if p.runeLen == utf8.UTFMax {
		p.spillRune()
	}
}

// spillRune flushes an incomplete UTF-8 character as raw literal data.
func (p *Parser) spillRune() {
	if p.runeLen == 0 {
		return
	}
	p.emit(key.NewPressData(key.KeyAny, string(p.runeBuf[:p.runeLen])))
	p.runeLen = 0
}

// putPaste accumulates paste content verbatim, including further ESC
// bytes, until the exact end marker arrives.
func (p *Parser) putPaste(b byte) {
	p.pasteBuf = append(p.pasteBuf, b)
	if bytes.HasSuffix(p.pasteBuf, pasteEnd) {
		content := string(p.pasteBuf[:len(p.pasteBuf)-len(pasteEnd)])
		p.pasteBuf = p.pasteBuf[:0]
		p.pasting = false
		p.emit(key.NewPressData(key.KeyBracketedPaste, content))
	}
}

// resolve advances the buffered sequence toward a decision. With force
// set (Flush, overflow) every viable-but-incomplete prefix is resolved
// as literal output instead of waiting for more bytes.
func (p *Parser) resolve(force bool) {
	for len(p.buf) > 0 {
		s := string(p.buf)

		switch classifyControlString(p.buf) {
		case stringComplete:
			// Terminal responses (OSC titles, query replies) are not
			// key presses; swallow them.
			p.resetBuf()
			continue
		case stringPartial:
			if force || len(p.buf) > maxSequenceLength {
				p.resetBuf()
				continue
			}
			return
		}

		sym, exact := key.LookupSequence(s)
		longer := key.IsSequencePrefix(s)

		if exact && (!longer || force) {
			p.resetBuf()
			p.handleMatch(sym, s)
			continue
		}

		var mouse mouseClass
		if p.opts.Mouse {
			mouse = classifyMouse(p.buf)
		}
		if mouse == mouseComplete {
			p.resetBuf()
			p.emit(key.NewPressData(key.KeyVt100MouseEvent, s))
			continue
		}

		if !force && (exact || longer || mouse == mousePartial) {
			if len(p.buf) > maxSequenceLength {
				p.spillSequence()
				continue
			}
			return
		}

		// Dead end: the buffer can no longer become any known sequence.
		// Emit the leading ESC as a standalone Escape and reparse the
		// remainder from ground.
		rest := append([]byte(nil), p.buf[1:]...)
		p.resetBuf()
		p.emit(key.NewPressData(key.KeyEscape, "\x1b"))
		for _, rb := range rest {
			p.put(rb)
		}
		if !force {
			return
		}
		// Forced: keep resolving whatever the reparse re-buffered, such
		// as a trailing ESC.
	}
}

// spillSequence force-flushes an overlong buffer as literal characters.
// Unlike the dead-end path it never re-buffers, so memory stays bounded.
func (p *Parser) spillSequence() {
	buf := p.buf
	p.resetBuf()
	p.emit(key.NewPressData(key.KeyEscape, "\x1b"))
	for _, b := range buf[1:] {
		if b == 0x1b {
			p.emit(key.NewPressData(key.KeyEscape, "\x1b"))
			continue
		}
		p.emitLiteral(b)
	}
}

func (p *Parser) resetBuf() {
	p.buf = p.buf[:0]
	p.state = StateGround
}

// handleMatch dispatches an exact table match.
func (p *Parser) handleMatch(sym key.Symbol, data string) {
	switch sym {
	case key.KeyBracketedPaste:
		if p.opts.BracketedPaste {
			p.pasting = true
			p.pasteBuf = p.pasteBuf[:0]
		}
		// Disabled: the marker is dropped and the content will stream
		// through as ordinary presses.
	case key.KeyIgnore:
		// Recognized but deliberately silent, e.g. a stray paste-end
		// marker with no preceding start.
	default:
		p.emit(key.NewPressData(sym, data))
	}
}

// advanceState tracks the nominal sequence state for observability; the
// resolution logic itself is driven by the buffer contents.
func (p *Parser) advanceState(b byte) {
	switch len(p.buf) {
	case 2:
		switch b {
		case '[':
			p.state = StateCsiEntry
		case ']':
			p.state = StateOscString
		case 'X', '^', '_':
			p.state = StateSosPmApcString
		default:
			p.state = StateEscape
		}
	default:
		switch p.state {
		case StateCsiEntry, StateCsiParam:
			switch {
			case b >= 0x30 && b <= 0x3f:
				p.state = StateCsiParam
			case b >= 0x20 && b <= 0x2f:
				p.state = StateCsiIntermediate
			}
		case StateCsiIntermediate:
			// Stays until the sequence resolves.
		}
	}
}
