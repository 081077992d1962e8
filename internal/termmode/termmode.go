// Package termmode provides scoped save/restore of terminal attributes.
//
// A Context captures the attributes in effect at construction, mutates
// them toward raw or cooked, and restores the captured snapshot (not a
// hardcoded default) exactly once on Restore. Because each context
// restores its own snapshot, contexts nest correctly in LIFO order:
// dropping an inner scope brings back the outer one, and dropping the
// outermost brings back the true original state.
//
// The terminal itself is a shared, unowned resource. A context owns only
// its snapshot; arbitrating between concurrent owners of the same handle
// is the caller's responsibility.
//
// Construction on a handle that is not a real terminal (redirected file,
// pipe, unavailable console) still succeeds: the returned context marks
// itself invalid and every operation on it is a harmless no-op, never an
// error.
package termmode

// Context is a scoped terminal-attribute change. Restore is idempotent.
type Context interface {
	// Valid reports whether the context holds a real attribute snapshot.
	// Invalid contexts (non-terminal handles) no-op everywhere.
	Valid() bool

	// Restore reapplies the snapshot captured at construction. Only the
	// first call takes effect; later calls return the first result.
	Restore() error
}

// noopContext is returned for handles without terminal attributes.
type noopContext struct{}

func (noopContext) Valid() bool    { return false }
func (noopContext) Restore() error { return nil }

// Noop returns a valid-to-use but inert context, for input sources that
// have no terminal at all.
func Noop() Context {
	return noopContext{}
}

// Raw puts the terminal on fd into raw mode: no echo, no line buffering,
// no signal generation (Ctrl+C arrives as a key press), no CR/NL
// translation, reads returning after a single byte.
func Raw(fd int) Context {
	return newRaw(fd)
}

// Cooked puts the terminal on fd into its normal line-buffered, echoed,
// signal-generating mode.
func Cooked(fd int) Context {
	return newCooked(fd)
}
