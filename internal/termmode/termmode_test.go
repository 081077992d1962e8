package termmode

import (
	"os"
	"testing"

	"golang.org/x/term"
)

func TestRawOnNonTerminal(t *testing.T) {
	// A pipe has no terminal attributes; raw mode must degrade to a
	// no-op context rather than failing.
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	ctx := Raw(int(r.Fd()))
	if ctx.Valid() {
		t.Error("Raw on a pipe returned a valid context")
	}
	if err := ctx.Restore(); err != nil {
		t.Errorf("Restore on no-op context = %v, want nil", err)
	}
	// Idempotent.
	if err := ctx.Restore(); err != nil {
		t.Errorf("second Restore = %v, want nil", err)
	}
}

func TestCookedOnNonTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	ctx := Cooked(int(w.Fd()))
	if ctx.Valid() {
		t.Error("Cooked on a pipe returned a valid context")
	}
	if err := ctx.Restore(); err != nil {
		t.Errorf("Restore = %v, want nil", err)
	}
}

func TestNoop(t *testing.T) {
	ctx := Noop()
	if ctx.Valid() {
		t.Error("Noop context reports valid")
	}
	for i := 0; i < 3; i++ {
		if err := ctx.Restore(); err != nil {
			t.Errorf("Restore #%d = %v, want nil", i, err)
		}
	}
}

func TestModeNesting(t *testing.T) {
	// Requires a real terminal; exercised in interactive runs only.
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		t.Skip("stdin is not a terminal")
	}

	original, err := term.GetState(fd)
	if err != nil {
		t.Fatalf("GetState: %v", err)
	}
	defer term.Restore(fd, original) //nolint:errcheck // best-effort cleanup

	raw := Raw(fd)
	if !raw.Valid() {
		t.Fatal("Raw on a terminal returned an invalid context")
	}
	cooked := Cooked(fd)
	if !cooked.Valid() {
		t.Fatal("Cooked on a terminal returned an invalid context")
	}

	// LIFO: dropping the cooked scope must bring back raw, and dropping
	// the raw scope must bring back the original attributes.
	if err := cooked.Restore(); err != nil {
		t.Errorf("cooked.Restore: %v", err)
	}
	if err := raw.Restore(); err != nil {
		t.Errorf("raw.Restore: %v", err)
	}

	after, err := term.GetState(fd)
	if err != nil {
		t.Fatalf("GetState after restore: %v", err)
	}
	if *after != *original {
		t.Error("terminal attributes differ from the original after nested restore")
	}
}
