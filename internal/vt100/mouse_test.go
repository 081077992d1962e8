package vt100

import (
	"testing"

	"github.com/willibrandon/termkey/internal/key"
)

func TestMouseX10(t *testing.T) {
	// ESC [ M plus exactly three payload bytes, forwarded raw.
	const seq = "\x1b[M \x21\x22"
	p := New()
	got := p.Feed(seq)
	if len(got) != 1 {
		t.Fatalf("X10 feed = %v, want one press", got)
	}
	if got[0].Key != key.KeyVt100MouseEvent {
		t.Errorf("key = %s, want Vt100MouseEvent", got[0].Key)
	}
	if got[0].Data != seq {
		t.Errorf("data = %q, want raw sequence %q", got[0].Data, seq)
	}
}

func TestMouseX10HighBytes(t *testing.T) {
	// Payload bytes above 0x7f (large coordinates) are accepted.
	seq := "\x1b[M" + string([]byte{0xc8, 0xff, 0x80})
	p := New()
	got := p.Feed(seq)
	if len(got) != 1 || got[0].Key != key.KeyVt100MouseEvent {
		t.Fatalf("X10 with high bytes = %v, want one mouse event", got)
	}
}

func TestMouseSGR(t *testing.T) {
	tests := []string{
		"\x1b[<0;33;44M",
		"\x1b[<0;33;44m", // release
		"\x1b[<64;120;3M",
	}
	for _, seq := range tests {
		p := New()
		got := p.Feed(seq)
		if len(got) != 1 {
			t.Errorf("Feed(%q) = %v, want one press", seq, got)
			continue
		}
		if got[0].Key != key.KeyVt100MouseEvent || got[0].Data != seq {
			t.Errorf("Feed(%q) = %v, want raw mouse event", seq, got)
		}
	}
}

func TestMouseUrxvt(t *testing.T) {
	const seq = "\x1b[32;45;12M"
	p := New()
	got := p.Feed(seq)
	if len(got) != 1 || got[0].Key != key.KeyVt100MouseEvent || got[0].Data != seq {
		t.Fatalf("urxvt feed = %v, want one raw mouse event", got)
	}
}

func TestMouseIncremental(t *testing.T) {
	const seq = "\x1b[<0;1;2M"
	p := New()
	for i := 0; i < len(seq)-1; i++ {
		if got := p.Feed(string(seq[i])); len(got) != 0 {
			t.Fatalf("premature emit at byte %d: %v", i, got)
		}
	}
	got := p.Feed("M")
	if len(got) != 1 || got[0].Key != key.KeyVt100MouseEvent {
		t.Fatalf("final byte = %v, want mouse event", got)
	}
}

func TestMouseDisabledDegradesToLiteral(t *testing.T) {
	p := NewWithOptions(Options{Mouse: false, BracketedPaste: true})
	out := p.Feed("\x1b[<0;1;2M")
	out = append(out, p.Flush()...)
	if len(out) == 0 || out[0].Key != key.KeyEscape {
		t.Fatalf("disabled mouse should degrade to Escape + literals, got %v", out)
	}
	for _, pr := range out[1:] {
		if pr.Key != key.KeyAny {
			t.Errorf("expected literal press, got %v", pr)
		}
	}
}

func TestMouseMalformedParams(t *testing.T) {
	// Too many semicolons can never be a mouse event; degrades literal.
	p := New()
	out := p.Feed("\x1b[<1;2;3;4M")
	out = append(out, p.Flush()...)
	if len(out) == 0 || out[0].Key != key.KeyEscape {
		t.Fatalf("malformed mouse params should degrade, got %v", out)
	}
	for _, pr := range out {
		if pr.Key == key.KeyVt100MouseEvent {
			t.Fatalf("malformed params produced a mouse event: %v", out)
		}
	}
}

func TestClassifyMouse(t *testing.T) {
	tests := []struct {
		buf  string
		want mouseClass
	}{
		{"\x1b[M", mousePartial},
		{"\x1b[Mab", mousePartial},
		{"\x1b[Mabc", mouseComplete},
		{"\x1b[<", mousePartial},
		{"\x1b[<0;1;2", mousePartial},
		{"\x1b[<0;1;2M", mouseComplete},
		{"\x1b[<0;1;2m", mouseComplete},
		{"\x1b[<0;1M", mouseNone}, // only one separator
		{"\x1b[1;2;3M", mouseComplete},
		{"\x1b[1;2;3m", mouseNone}, // urxvt has no lowercase final
		{"\x1b[A", mouseNone},
		{"\x1b", mouseNone},
		{"abc", mouseNone},
	}

	for _, tt := range tests {
		if got := classifyMouse([]byte(tt.buf)); got != tt.want {
			t.Errorf("classifyMouse(%q) = %d, want %d", tt.buf, got, tt.want)
		}
	}
}
