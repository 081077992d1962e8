package key

// sequenceList enumerates every escape sequence the parser recognizes by
// exact match, in priority order: the first entry for a Symbol is its
// canonical wire form, used when a Press is built from the Symbol alone.
//
// Mouse events are not listed here. Their parameter bytes are unbounded,
// so the parser matches them structurally instead of by table lookup.
var sequenceList = []struct {
	seq string
	sym Symbol
}{
	// Arrow keys, CSI then SS3 application-mode forms.
	{"\x1b[A", KeyUp},
	{"\x1b[B", KeyDown},
	{"\x1b[C", KeyRight},
	{"\x1b[D", KeyLeft},
	{"\x1bOA", KeyUp},
	{"\x1bOB", KeyDown},
	{"\x1bOC", KeyRight},
	{"\x1bOD", KeyLeft},

	// Home and End in their three wire forms.
	{"\x1b[H", KeyHome},
	{"\x1b[F", KeyEnd},
	{"\x1b[1~", KeyHome},
	{"\x1b[4~", KeyEnd},
	{"\x1bOH", KeyHome},
	{"\x1bOF", KeyEnd},

	{"\x1b[2~", KeyInsert},
	{"\x1b[3~", KeyDelete},
	{"\x1b[5~", KeyPageUp},
	{"\x1b[6~", KeyPageDown},

	// Function keys: SS3 for F1-F4, CSI n~ for the rest, plus the
	// alternate CSI forms some terminals emit for F1/F2 and F3/F4.
	{"\x1bOP", KeyF1},
	{"\x1bOQ", KeyF2},
	{"\x1bOR", KeyF3},
	{"\x1bOS", KeyF4},
	{"\x1b[11~", KeyF1},
	{"\x1b[12~", KeyF2},
	{"\x1b[13~", KeyF3},
	{"\x1b[14~", KeyF4},
	{"\x1b[15~", KeyF5},
	{"\x1b[17~", KeyF6},
	{"\x1b[18~", KeyF7},
	{"\x1b[19~", KeyF8},
	{"\x1b[20~", KeyF9},
	{"\x1b[21~", KeyF10},
	{"\x1b[23~", KeyF11},
	{"\x1b[24~", KeyF12},

	// Modifier parameters: 2=Shift, 5=Ctrl, 6=Ctrl+Shift.
	{"\x1b[1;5A", KeyCtrlUp},
	{"\x1b[1;5B", KeyCtrlDown},
	{"\x1b[1;5C", KeyCtrlRight},
	{"\x1b[1;5D", KeyCtrlLeft},
	{"\x1b[1;2A", KeyShiftUp},
	{"\x1b[1;2B", KeyShiftDown},
	{"\x1b[1;2C", KeyShiftRight},
	{"\x1b[1;2D", KeyShiftLeft},
	{"\x1b[1;6A", KeyCtrlShiftUp},
	{"\x1b[1;6B", KeyCtrlShiftDown},
	{"\x1b[1;6C", KeyCtrlShiftRight},
	{"\x1b[1;6D", KeyCtrlShiftLeft},

	{"\x1b[Z", KeyBackTab},

	// Bracketed paste markers. The start marker switches the parser into
	// paste accumulation; a stray end marker is recognized and dropped.
	{"\x1b[200~", KeyBracketedPaste},
	{"\x1b[201~", KeyIgnore},
}

var (
	sequences         map[string]Symbol
	canonicalSequence map[Symbol]string
	sequencePrefixes  map[string]struct{}
)

func init() {
	sequences = make(map[string]Symbol, len(sequenceList))
	canonicalSequence = make(map[Symbol]string, len(sequenceList))
	sequencePrefixes = make(map[string]struct{}, len(sequenceList)*4)

	for _, e := range sequenceList {
		sequences[e.seq] = e.sym
		if _, ok := canonicalSequence[e.sym]; !ok {
			canonicalSequence[e.sym] = e.seq
		}
		// Every proper prefix of the sequence, including the sequence
		// itself when it prefixes a longer entry, must be recognizable
		// in O(1) while bytes trickle in.
		for i := 1; i < len(e.seq); i++ {
			sequencePrefixes[e.seq[:i]] = struct{}{}
		}
	}
}

// LookupSequence returns the Symbol an escape sequence decodes to.
func LookupSequence(seq string) (Symbol, bool) {
	s, ok := sequences[seq]
	return s, ok
}

// IsSequencePrefix reports whether seq is a proper prefix of at least one
// known sequence. The check is a single map probe; it runs once per
// incoming character on the parser's hot path.
func IsSequencePrefix(seq string) bool {
	_, ok := sequencePrefixes[seq]
	return ok
}

// CanonicalSequence returns the preferred wire form for a Symbol, if the
// Symbol has one.
func CanonicalSequence(sym Symbol) (string, bool) {
	seq, ok := canonicalSequence[sym]
	return seq, ok
}
