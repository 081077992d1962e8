// Package key provides the key press value types for the input system.
//
// This package defines the fundamental types for representing decoded
// keyboard input:
//
//   - Symbol: the logical identity of a key or input-event class
//   - Press: a single key press pairing a Symbol with its wire data
//
// It also owns the escape-sequence lookup tables shared with the parser:
// the bidirectional mapping between canonical sequence text and Symbol
// values, the precomputed prefix set used for incremental matching, and
// the control-byte table for C0 characters. All tables are built once at
// package initialization and never mutated afterwards, so they are safe
// for unsynchronized concurrent reads.
package key
