package key

import (
	"fmt"

	"github.com/rivo/uniseg"
)

// Press represents a single decoded key press. It pairs the logical
// Symbol with the wire data that produced it: the literal character for
// KeyAny, the escape sequence or control byte for special keys, or the
// pasted text for KeyBracketedPaste. Press values are immutable.
type Press struct {
	// Key identifies the logical key.
	Key Symbol

	// Data is the raw text behind the press. Never empty: a Press built
	// from a Symbol alone carries that Symbol's canonical representation.
	Data string
}

// NewPress creates a Press from a Symbol alone, filling Data with the
// canonical representation: the matching escape sequence if the Symbol
// has one, else its control byte, else its name. Feeding that Data back
// through the parser yields the same Symbol.
func NewPress(sym Symbol) Press {
	if seq, ok := canonicalSequence[sym]; ok {
		return Press{Key: sym, Data: seq}
	}
	if data, ok := controlData[sym]; ok {
		return Press{Key: sym, Data: data}
	}
	return Press{Key: sym, Data: sym.String()}
}

// NewPressData creates a Press carrying explicit wire data. The parser
// uses this for literal characters, paste contents, and mouse sequences.
func NewPressData(sym Symbol, data string) Press {
	return Press{Key: sym, Data: data}
}

// Equals returns true if two presses have the same key and data.
func (p Press) Equals(other Press) bool {
	return p.Key == other.Key && p.Data == other.Data
}

// IsChar returns true if this press is a literal character.
func (p Press) IsChar() bool {
	return p.Key == KeyAny
}

// DisplayWidth returns the number of terminal cells Data occupies when
// printed. Meaningful for character and paste presses; escape sequences
// report the width of their raw text.
func (p Press) DisplayWidth() int {
	return uniseg.StringWidth(p.Data)
}

// String returns a human-readable representation for debugging.
func (p Press) String() string {
	if p.Key == KeyAny {
		return fmt.Sprintf("Press(%q)", p.Data)
	}
	return fmt.Sprintf("Press(%s, %q)", p.Key, p.Data)
}
