// Package vt100 implements the escape-sequence parser that converts a
// raw terminal byte stream into ordered key presses.
//
// The parser is a character-class-driven state machine. Plain characters
// pass straight through as literal presses; an ESC byte opens a buffered
// sequence that resolves by exact match against the shared lookup table
// in the key package, by structural match for the three mouse protocol
// shapes, or, when the buffer stops being a viable prefix, by degrading
// to a standalone Escape press plus literal characters. Bracketed paste
// switches the parser into verbatim accumulation until the end marker.
//
// Feed and Flush are single-threaded-reader operations: the hot path
// holds no locks. The parser never returns an error; malformed input
// always degrades to literal output.
package vt100
