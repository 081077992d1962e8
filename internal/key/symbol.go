package key

import "fmt"

// Symbol identifies the logical meaning of a key press.
// Character input uses KeyAny with the character itself carried in
// Press.Data; every other value names a specific key or event class.
type Symbol uint16

const (
	// KeyNone represents no key.
	KeyNone Symbol = iota

	// KeyAny represents a literal character; the character is in Press.Data.
	KeyAny

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Modified arrow keys
	KeyCtrlUp
	KeyCtrlDown
	KeyCtrlLeft
	KeyCtrlRight
	KeyShiftUp
	KeyShiftDown
	KeyShiftLeft
	KeyShiftRight
	KeyCtrlShiftUp
	KeyCtrlShiftDown
	KeyCtrlShiftLeft
	KeyCtrlShiftRight

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Control characters. ControlI, ControlM and Control[ are reported as
	// KeyTab, KeyEnter and KeyEscape respectively.
	KeyControlAt
	KeyControlA
	KeyControlB
	KeyControlC
	KeyControlD
	KeyControlE
	KeyControlF
	KeyControlG
	KeyControlH
	KeyControlJ
	KeyControlK
	KeyControlL
	KeyControlN
	KeyControlO
	KeyControlP
	KeyControlQ
	KeyControlR
	KeyControlS
	KeyControlT
	KeyControlU
	KeyControlV
	KeyControlW
	KeyControlX
	KeyControlY
	KeyControlZ
	KeyControlBackslash
	KeyControlSquareClose
	KeyControlCircumflex
	KeyControlUnderscore

	// Event classes
	KeyBracketedPaste
	KeyVt100MouseEvent

	// KeyIgnore marks sequences that are recognized but produce no press,
	// such as a stray paste-end marker.
	KeyIgnore
)

// symbolNames provides the human-readable name for each Symbol.
var symbolNames = map[Symbol]string{
	KeyNone:               "None",
	KeyAny:                "Any",
	KeyEscape:             "Escape",
	KeyEnter:              "Enter",
	KeyTab:                "Tab",
	KeyBackTab:            "BackTab",
	KeyBackspace:          "Backspace",
	KeyDelete:             "Delete",
	KeyInsert:             "Insert",
	KeyHome:               "Home",
	KeyEnd:                "End",
	KeyPageUp:             "PageUp",
	KeyPageDown:           "PageDown",
	KeyUp:                 "Up",
	KeyDown:               "Down",
	KeyLeft:               "Left",
	KeyRight:              "Right",
	KeyCtrlUp:             "CtrlUp",
	KeyCtrlDown:           "CtrlDown",
	KeyCtrlLeft:           "CtrlLeft",
	KeyCtrlRight:          "CtrlRight",
	KeyShiftUp:            "ShiftUp",
	KeyShiftDown:          "ShiftDown",
	KeyShiftLeft:          "ShiftLeft",
	KeyShiftRight:         "ShiftRight",
	KeyCtrlShiftUp:        "CtrlShiftUp",
	KeyCtrlShiftDown:      "CtrlShiftDown",
	KeyCtrlShiftLeft:      "CtrlShiftLeft",
	KeyCtrlShiftRight:     "CtrlShiftRight",
	KeyF1:                 "F1",
	KeyF2:                 "F2",
	KeyF3:                 "F3",
	KeyF4:                 "F4",
	KeyF5:                 "F5",
	KeyF6:                 "F6",
	KeyF7:                 "F7",
	KeyF8:                 "F8",
	KeyF9:                 "F9",
	KeyF10:                "F10",
	KeyF11:                "F11",
	KeyF12:                "F12",
	KeyControlAt:          "Ctrl+@",
	KeyControlA:           "Ctrl+A",
	KeyControlB:           "Ctrl+B",
	KeyControlC:           "Ctrl+C",
	KeyControlD:           "Ctrl+D",
	KeyControlE:           "Ctrl+E",
	KeyControlF:           "Ctrl+F",
	KeyControlG:           "Ctrl+G",
	KeyControlH:           "Ctrl+H",
	KeyControlJ:           "Ctrl+J",
	KeyControlK:           "Ctrl+K",
	KeyControlL:           "Ctrl+L",
	KeyControlN:           "Ctrl+N",
	KeyControlO:           "Ctrl+O",
	KeyControlP:           "Ctrl+P",
	KeyControlQ:           "Ctrl+Q",
	KeyControlR:           "Ctrl+R",
	KeyControlS:           "Ctrl+S",
	KeyControlT:           "Ctrl+T",
	KeyControlU:           "Ctrl+U",
	KeyControlV:           "Ctrl+V",
	KeyControlW:           "Ctrl+W",
	KeyControlX:           "Ctrl+X",
	KeyControlY:           "Ctrl+Y",
	KeyControlZ:           "Ctrl+Z",
	KeyControlBackslash:   "Ctrl+\\",
	KeyControlSquareClose: "Ctrl+]",
	KeyControlCircumflex:  "Ctrl+^",
	KeyControlUnderscore:  "Ctrl+_",
	KeyBracketedPaste:     "BracketedPaste",
	KeyVt100MouseEvent:    "Vt100MouseEvent",
	KeyIgnore:             "Ignore",
}

// String returns a human-readable name for the symbol.
func (s Symbol) String() string {
	if name, ok := symbolNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Symbol(%d)", uint16(s))
}

// IsFunctionKey returns true if this is a function key (F1-F12).
func (s Symbol) IsFunctionKey() bool {
	return s >= KeyF1 && s <= KeyF12
}

// IsArrowKey returns true if this is an unmodified arrow key.
func (s Symbol) IsArrowKey() bool {
	return s >= KeyUp && s <= KeyRight
}

// IsNavigationKey returns true if this is a navigation key.
func (s Symbol) IsNavigationKey() bool {
	return s.IsArrowKey() || s == KeyHome || s == KeyEnd || s == KeyPageUp || s == KeyPageDown
}

// IsControlKey returns true if this is a control-character key.
func (s Symbol) IsControlKey() bool {
	return s >= KeyControlAt && s <= KeyControlUnderscore
}
