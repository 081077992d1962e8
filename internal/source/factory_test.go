package source

import "testing"

func TestNewAlwaysYieldsSource(t *testing.T) {
	// Whatever the environment (terminal, redirected stdin, CI), the
	// factory must hand back a usable source.
	src, err := New(DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer src.Close() //nolint:errcheck

	if src.Closed() {
		t.Error("factory returned a closed source")
	}
	if got := src.TypeaheadHash(); got == "" {
		t.Error("TypeaheadHash is empty")
	}
	if _, err := src.FlushKeys(); err != nil {
		t.Errorf("FlushKeys on idle source = %v", err)
	}
}
