package vt100

import "fmt"

// State identifies where the parser is inside an escape sequence.
// StateGround is both the initial state and the only state Flush is
// guaranteed to land in.
type State uint8

const (
	// StateGround passes characters through as literal presses.
	StateGround State = iota
	// StateEscape holds a lone ESC awaiting disambiguation.
	StateEscape
	// StateCsiEntry follows ESC [.
	StateCsiEntry
	// StateCsiParam accumulates CSI parameter bytes (digits, ; < ?).
	StateCsiParam
	// StateCsiIntermediate accumulates CSI intermediate bytes (0x20-0x2F).
	StateCsiIntermediate
	// StateOscString swallows an OSC control string up to BEL or ST.
	StateOscString
	// StateSosPmApcString swallows SOS/PM/APC strings up to ST.
	StateSosPmApcString
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case StateGround:
		return "Ground"
	case StateEscape:
		return "Escape"
	case StateCsiEntry:
		return "CsiEntry"
	case StateCsiParam:
		return "CsiParam"
	case StateCsiIntermediate:
		return "CsiIntermediate"
	case StateOscString:
		return "OscString"
	case StateSosPmApcString:
		return "SosPmApcString"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}
