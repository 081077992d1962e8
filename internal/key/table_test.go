package key

import "testing"

func TestLookupSequence(t *testing.T) {
	tests := []struct {
		seq  string
		want Symbol
	}{
		{"\x1b[A", KeyUp},
		{"\x1bOA", KeyUp},
		{"\x1b[1~", KeyHome},
		{"\x1b[4~", KeyEnd},
		{"\x1b[3~", KeyDelete},
		{"\x1b[5~", KeyPageUp},
		{"\x1b[6~", KeyPageDown},
		{"\x1bOS", KeyF4},
		{"\x1b[11~", KeyF1},
		{"\x1b[24~", KeyF12},
		{"\x1b[1;2D", KeyShiftLeft},
		{"\x1b[1;6C", KeyCtrlShiftRight},
		{"\x1b[Z", KeyBackTab},
		{"\x1b[200~", KeyBracketedPaste},
		{"\x1b[201~", KeyIgnore},
	}

	for _, tt := range tests {
		got, ok := LookupSequence(tt.seq)
		if !ok {
			t.Errorf("LookupSequence(%q) not found", tt.seq)
			continue
		}
		if got != tt.want {
			t.Errorf("LookupSequence(%q) = %s, want %s", tt.seq, got, tt.want)
		}
	}
}

func TestLookupSequenceUnknown(t *testing.T) {
	for _, seq := range []string{"", "\x1b", "\x1b[", "\x1b[99z", "abc"} {
		if sym, ok := LookupSequence(seq); ok {
			t.Errorf("LookupSequence(%q) = %s, want no match", seq, sym)
		}
	}
}

func TestIsSequencePrefix(t *testing.T) {
	tests := []struct {
		seq  string
		want bool
	}{
		{"\x1b", true},
		{"\x1b[", true},
		{"\x1bO", true},
		{"\x1b[1", true},
		{"\x1b[1;", true},
		{"\x1b[1;5", true},
		{"\x1b[20", true},  // prefix of \x1b[200~ and \x1b[20~
		{"\x1b[200", true},
		{"\x1b[A", false},  // complete, prefixes nothing longer
		{"\x1bX", false},
		{"a", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsSequencePrefix(tt.seq); got != tt.want {
			t.Errorf("IsSequencePrefix(%q) = %v, want %v", tt.seq, got, tt.want)
		}
	}
}

func TestCanonicalSequenceFirstFormWins(t *testing.T) {
	// Arrows are listed CSI-first, F1-F4 SS3-first; the canonical form
	// must reflect listing order, not map iteration order.
	tests := []struct {
		sym  Symbol
		want string
	}{
		{KeyUp, "\x1b[A"},
		{KeyHome, "\x1b[H"},
		{KeyF1, "\x1bOP"},
		{KeyF2, "\x1bOQ"},
	}

	for _, tt := range tests {
		got, ok := CanonicalSequence(tt.sym)
		if !ok {
			t.Errorf("CanonicalSequence(%s) not found", tt.sym)
			continue
		}
		if got != tt.want {
			t.Errorf("CanonicalSequence(%s) = %q, want %q", tt.sym, got, tt.want)
		}
	}
}

func TestSymbolString(t *testing.T) {
	tests := []struct {
		sym  Symbol
		want string
	}{
		{KeyUp, "Up"},
		{KeyControlC, "Ctrl+C"},
		{KeyBracketedPaste, "BracketedPaste"},
		{Symbol(9999), "Symbol(9999)"},
	}

	for _, tt := range tests {
		if got := tt.sym.String(); got != tt.want {
			t.Errorf("Symbol.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestSymbolClassifiers(t *testing.T) {
	if !KeyF7.IsFunctionKey() || KeyUp.IsFunctionKey() {
		t.Error("IsFunctionKey misclassifies")
	}
	if !KeyLeft.IsArrowKey() || KeyF1.IsArrowKey() {
		t.Error("IsArrowKey misclassifies")
	}
	if !KeyPageDown.IsNavigationKey() || KeyControlC.IsNavigationKey() {
		t.Error("IsNavigationKey misclassifies")
	}
	if !KeyControlZ.IsControlKey() || KeyAny.IsControlKey() {
		t.Error("IsControlKey misclassifies")
	}
}
