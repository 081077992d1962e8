package key

import "testing"

func TestNewPressCanonicalSequence(t *testing.T) {
	tests := []struct {
		sym  Symbol
		want string
	}{
		{KeyUp, "\x1b[A"},
		{KeyDown, "\x1b[B"},
		{KeyRight, "\x1b[C"},
		{KeyLeft, "\x1b[D"},
		{KeyHome, "\x1b[H"},
		{KeyEnd, "\x1b[F"},
		{KeyF1, "\x1bOP"},
		{KeyF5, "\x1b[15~"},
		{KeyBackTab, "\x1b[Z"},
		{KeyCtrlUp, "\x1b[1;5A"},
	}

	for _, tt := range tests {
		p := NewPress(tt.sym)
		if p.Data != tt.want {
			t.Errorf("NewPress(%s).Data = %q, want %q", tt.sym, p.Data, tt.want)
		}
		if p.Key != tt.sym {
			t.Errorf("NewPress(%s).Key = %v, want %v", tt.sym, p.Key, tt.sym)
		}
	}
}

func TestNewPressControlData(t *testing.T) {
	tests := []struct {
		sym  Symbol
		want string
	}{
		{KeyControlC, "\x03"},
		{KeyTab, "\x09"},
		{KeyEnter, "\x0d"},
		{KeyEscape, "\x1b"},
		{KeyBackspace, "\x7f"},
		{KeyControlUnderscore, "\x1f"},
	}

	for _, tt := range tests {
		p := NewPress(tt.sym)
		if p.Data != tt.want {
			t.Errorf("NewPress(%s).Data = %q, want %q", tt.sym, p.Data, tt.want)
		}
	}
}

func TestNewPressNameFallback(t *testing.T) {
	// Symbols with no wire form fall back to their name so Data is
	// never empty.
	for _, sym := range []Symbol{KeyNone, KeyAny, KeyVt100MouseEvent} {
		p := NewPress(sym)
		if p.Data == "" {
			t.Errorf("NewPress(%s).Data is empty", sym)
		}
		if p.Data != sym.String() {
			t.Errorf("NewPress(%s).Data = %q, want %q", sym, p.Data, sym.String())
		}
	}
}

func TestPressRoundTripThroughTables(t *testing.T) {
	// Every Symbol with a canonical sequence must decode back to itself
	// through the same table the parser consults.
	for sym, seq := range canonicalSequence {
		got, ok := LookupSequence(seq)
		if !ok {
			t.Errorf("canonical sequence %q for %s missing from lookup table", seq, sym)
			continue
		}
		if got != sym {
			t.Errorf("LookupSequence(%q) = %s, want %s", seq, got, sym)
		}
	}

	// Same property for control bytes.
	for sym, data := range controlData {
		if sym == KeyEscape {
			continue // resolved by the parser, not the control table
		}
		got, ok := ControlSymbol(data[0])
		if !ok {
			t.Errorf("control data %q for %s missing from control table", data, sym)
			continue
		}
		if got != sym {
			t.Errorf("ControlSymbol(%#x) = %s, want %s", data[0], got, sym)
		}
	}
}

func TestPressEquals(t *testing.T) {
	a := NewPressData(KeyAny, "a")
	b := NewPressData(KeyAny, "a")
	c := NewPressData(KeyAny, "b")

	if !a.Equals(b) {
		t.Error("identical presses not equal")
	}
	if a.Equals(c) {
		t.Error("presses with different data compare equal")
	}
	if a.Equals(NewPress(KeyUp)) {
		t.Error("character press equals arrow press")
	}
}

func TestPressDisplayWidth(t *testing.T) {
	tests := []struct {
		data string
		want int
	}{
		{"a", 1},
		{"abc", 3},
		{"世", 2}, // CJK, double width
		{"é", 1}, // combining accent, one cell
	}

	for _, tt := range tests {
		p := NewPressData(KeyAny, tt.data)
		if got := p.DisplayWidth(); got != tt.want {
			t.Errorf("DisplayWidth(%q) = %d, want %d", tt.data, got, tt.want)
		}
	}
}
