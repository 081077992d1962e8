package key

// controlSymbols maps C0 control bytes (and DEL) to their Symbols.
// ESC (0x1b) is absent: it starts escape sequences and is resolved by the
// parser, not by direct lookup.
var controlSymbols = map[byte]Symbol{
	0x00: KeyControlAt,
	0x01: KeyControlA,
	0x02: KeyControlB,
	0x03: KeyControlC,
	0x04: KeyControlD,
	0x05: KeyControlE,
	0x06: KeyControlF,
	0x07: KeyControlG,
	0x08: KeyControlH,
	0x09: KeyTab,   // Ctrl+I
	0x0a: KeyControlJ,
	0x0b: KeyControlK,
	0x0c: KeyControlL,
	0x0d: KeyEnter, // Ctrl+M
	0x0e: KeyControlN,
	0x0f: KeyControlO,
	0x10: KeyControlP,
	0x11: KeyControlQ,
	0x12: KeyControlR,
	0x13: KeyControlS,
	0x14: KeyControlT,
	0x15: KeyControlU,
	0x16: KeyControlV,
	0x17: KeyControlW,
	0x18: KeyControlX,
	0x19: KeyControlY,
	0x1a: KeyControlZ,
	0x1c: KeyControlBackslash,
	0x1d: KeyControlSquareClose,
	0x1e: KeyControlCircumflex,
	0x1f: KeyControlUnderscore,
	0x7f: KeyBackspace,
}

// controlData maps Symbols back to the control byte they canonically
// decode from. Written out explicitly so the choice is deterministic.
var controlData = map[Symbol]string{
	KeyControlAt:          "\x00",
	KeyControlA:           "\x01",
	KeyControlB:           "\x02",
	KeyControlC:           "\x03",
	KeyControlD:           "\x04",
	KeyControlE:           "\x05",
	KeyControlF:           "\x06",
	KeyControlG:           "\x07",
	KeyControlH:           "\x08",
	KeyTab:                "\x09",
	KeyControlJ:           "\x0a",
	KeyControlK:           "\x0b",
	KeyControlL:           "\x0c",
	KeyEnter:              "\x0d",
	KeyControlN:           "\x0e",
	KeyControlO:           "\x0f",
	KeyControlP:           "\x10",
	KeyControlQ:           "\x11",
	KeyControlR:           "\x12",
	KeyControlS:           "\x13",
	KeyControlT:           "\x14",
	KeyControlU:           "\x15",
	KeyControlV:           "\x16",
	KeyControlW:           "\x17",
	KeyControlX:           "\x18",
	KeyControlY:           "\x19",
	KeyControlZ:           "\x1a",
	KeyEscape:             "\x1b",
	KeyControlBackslash:   "\x1c",
	KeyControlSquareClose: "\x1d",
	KeyControlCircumflex:  "\x1e",
	KeyControlUnderscore:  "\x1f",
	KeyBackspace:          "\x7f",
}

// ControlSymbol returns the Symbol for a control byte. The second return
// is false for bytes that are not control characters (or are ESC).
func ControlSymbol(b byte) (Symbol, bool) {
	s, ok := controlSymbols[b]
	return s, ok
}
