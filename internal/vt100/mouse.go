package vt100

// mouseClass is the result of structurally matching a buffered sequence
// against the three mouse protocol shapes.
type mouseClass uint8

const (
	// mouseNone: the buffer cannot become a mouse sequence.
	mouseNone mouseClass = iota
	// mousePartial: the buffer is a viable mouse-sequence prefix.
	mousePartial
	// mouseComplete: the buffer is exactly one full mouse sequence.
	mouseComplete
)

// x10Length is ESC [ M plus exactly three payload bytes.
const x10Length = 6

// classifyMouse matches buf against the X10, SGR and urxvt wire shapes.
// The payload is never decoded; a complete match is forwarded raw and
// button/coordinate decoding is the consumer's job.
func classifyMouse(buf []byte) mouseClass {
	if len(buf) < 3 || buf[0] != 0x1b || buf[1] != '[' {
		return mouseNone
	}
	switch {
	case buf[2] == 'M':
		// X10: ESC [ M then three arbitrary payload bytes.
		if len(buf) < x10Length {
			return mousePartial
		}
		if len(buf) == x10Length {
			return mouseComplete
		}
		return mouseNone
	case buf[2] == '<':
		// SGR: ESC [ < digits ; digits ; digits then M or m.
		return classifyMouseParams(buf[3:], true)
	case buf[2] >= '0' && buf[2] <= '9':
		// urxvt: ESC [ digits ; digits ; digits M.
		return classifyMouseParams(buf[2:], false)
	}
	return mouseNone
}

// classifyMouseParams validates the digits;digits;digits body shared by
// the SGR and urxvt shapes. SGR additionally accepts a lowercase final
// (button release).
func classifyMouseParams(body []byte, sgr bool) mouseClass {
	semis := 0
	for i, b := range body {
		switch {
		case b >= '0' && b <= '9':
		case b == ';':
			semis++
			if semis > 2 {
				return mouseNone
			}
		case b == 'M' || (sgr && b == 'm'):
			if i != len(body)-1 || semis != 2 {
				return mouseNone
			}
			return mouseComplete
		default:
			return mouseNone
		}
	}
	return mousePartial
}

// stringClass is the result of matching a buffered control string
// (OSC, SOS, PM, APC) that must be swallowed rather than decoded.
type stringClass uint8

const (
	stringNone stringClass = iota
	stringPartial
	stringComplete
)

// classifyControlString detects OSC (ESC ]) and SOS/PM/APC (ESC X, ESC ^,
// ESC _) strings. OSC terminates on BEL or ST (ESC \); the others on ST
// only. These arrive as terminal responses, not key presses, and are
// discarded on completion.
func classifyControlString(buf []byte) stringClass {
	if len(buf) < 2 || buf[0] != 0x1b {
		return stringNone
	}
	osc := false
	switch buf[1] {
	case ']':
		osc = true
	case 'X', '^', '_':
	default:
		return stringNone
	}
	body := buf[2:]
	for i, b := range body {
		if osc && b == 0x07 {
			if i == len(body)-1 {
				return stringComplete
			}
			return stringNone
		}
		if b == '\\' && i > 0 && body[i-1] == 0x1b {
			if i == len(body)-1 {
				return stringComplete
			}
			return stringNone
		}
	}
	return stringPartial
}
