package source

import (
	"sync"

	"github.com/willibrandon/termkey/internal/key"
)

// Typeahead stores presses that were read but not consumed, keyed by
// source identity, so a later consumer of the same source can pick them
// up. A screen-oriented program that drops to a subshell and resumes
// uses this to avoid losing keys typed in between.
type Typeahead struct {
	mu      sync.Mutex
	entries map[string][]key.Press
}

// NewTypeahead returns an empty store.
func NewTypeahead() *Typeahead {
	return &Typeahead{entries: make(map[string][]key.Press)}
}

// Store appends presses under the source's identity. Storing an empty
// slice is a no-op.
func (t *Typeahead) Store(src Source, presses []key.Press) {
	if len(presses) == 0 {
		return
	}
	h := src.TypeaheadHash()
	t.mu.Lock()
	t.entries[h] = append(t.entries[h], presses...)
	t.mu.Unlock()
}

// Get removes and returns everything stored for the source. Each press
// is handed out exactly once; a second Get returns nil.
func (t *Typeahead) Get(src Source) []key.Press {
	h := src.TypeaheadHash()
	t.mu.Lock()
	out := t.entries[h]
	delete(t.entries, h)
	t.mu.Unlock()
	return out
}

// Clear discards everything stored for the source.
func (t *Typeahead) Clear(src Source) {
	t.mu.Lock()
	delete(t.entries, src.TypeaheadHash())
	t.mu.Unlock()
}

// Has reports whether the store holds presses for the source.
func (t *Typeahead) Has(src Source) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries[src.TypeaheadHash()]) > 0
}

// sharedTypeahead is the process-wide store used by the package-level
// helpers.
var sharedTypeahead = NewTypeahead()

// StoreTypeahead appends presses to the process-wide store.
func StoreTypeahead(src Source, presses []key.Press) {
	sharedTypeahead.Store(src, presses)
}

// GetTypeahead drains the process-wide store for the source.
func GetTypeahead(src Source) []key.Press {
	return sharedTypeahead.Get(src)
}

// ClearTypeahead discards the process-wide entries for the source.
func ClearTypeahead(src Source) {
	sharedTypeahead.Clear(src)
}

// HasTypeahead reports whether the process-wide store holds presses for
// the source.
func HasTypeahead(src Source) bool {
	return sharedTypeahead.Has(src)
}
