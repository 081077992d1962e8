// Package source provides input sources: the contract that joins an OS
// input handle, the escape-sequence parser, and terminal mode control
// behind one interface.
//
// Threading follows a single-threaded-reader model. ReadKeys and
// FlushKeys belong to one reader goroutine and are deliberately not
// locked, keeping the per-character hot path lock-free. The cross-thread
// surfaces (the pipe source's Send operations, the typeahead store, and
// callback attachment) are internally synchronized because they are
// meant to be driven from other goroutines.
//
// No source spawns goroutines of its own. Callers multiplex with their
// own readiness primitive over FileNo (POSIX) or the console wait
// (Windows); Close unblocks any in-flight read on the handle.
package source
