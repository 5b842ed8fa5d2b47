package input

// Key is an internal key code. Values are stable within a process but are
// not a wire format; hosts map them onto their own UI toolkit.
type Key int32

// KeyNone is the resolution failure value: unknown labels map to it.
const (
	KeyNone Key = iota
	KeyTab
	KeyLeftArrow
	KeyRightArrow
	KeyUpArrow
	KeyDownArrow
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyApostrophe
	KeyComma
	KeyMinus
	KeyPeriod
	KeySlash
	KeySemicolon
	KeyEqual
	KeyLeftBracket
	KeyBackslash
	KeyRightBracket
	KeyGraveAccent
	KeyCapsLock
	KeyScrollLock
	KeyNumLock
	KeyPrintScreen
	KeyPause
	KeyKeypad0
	KeyKeypad1
	KeyKeypad2
	KeyKeypad3
	KeyKeypad4
	KeyKeypad5
	KeyKeypad6
	KeyKeypad7
	KeyKeypad8
	KeyKeypad9
	KeyKeypadDecimal
	KeyKeypadDivide
	KeyKeypadMultiply
	KeyKeypadSubtract
	KeyKeypadAdd
	KeyKeypadEnter
	KeyKeypadEqual
	KeyLeftShift
	KeyLeftCtrl
	KeyLeftAlt
	KeyLeftSuper
	KeyRightShift
	KeyRightCtrl
	KeyRightAlt
	KeyRightSuper
	KeyMenu
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
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
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
)

// keyMapping resolves a browser KeyboardEvent.key value to an internal key
// and a text codepoint. Lower/Upper are the unshifted and shifted labels;
// for named keys they are identical.
type keyMapping struct {
	Key          Key
	Lower        string
	Upper        string
	LowerUnicode uint32
	UpperUnicode uint32
}

// keyTable is scanned linearly per keyboard event; it is small enough that
// a map buys nothing. The trailing KeyNone row terminates the scan.
var keyTable = []keyMapping{
	{KeyTab, "Tab", "Tab", 0x00, 0x00},
	{KeyLeftArrow, "ArrowLeft", "ArrowLeft", 0x00, 0x00},
	{KeyRightArrow, "ArrowRight", "ArrowRight", 0x00, 0x00},
	{KeyUpArrow, "ArrowUp", "ArrowUp", 0x00, 0x00},
	{KeyDownArrow, "ArrowDown", "ArrowDown", 0x00, 0x00},
	{KeyPageUp, "PageUp", "PageUp", 0x00, 0x00},
	{KeyPageDown, "PageDown", "PageDown", 0x00, 0x00},
	{KeyHome, "Home", "Home", 0x00, 0x00},
	{KeyEnd, "End", "End", 0x00, 0x00},
	{KeyInsert, "Insert", "Insert", 0x00, 0x00},
	{KeyDelete, "Delete", "Delete", 0x00, 0x00},
	{KeyBackspace, "Backspace", "Backspace", 0x00, 0x00},
	{KeySpace, " ", " ", 0x20, 0x20},
	{KeyEnter, "Enter", "Enter", 0x00, 0x00},
	{KeyEscape, "Escape", "Escape", 0x00, 0x00},
	{KeyApostrophe, "'", "\"", 0x27, 0x22},
	{KeyComma, ",", "<", 0x2C, 0x3C},
	{KeyMinus, "-", "_", 0x2D, 0x5F},
	{KeyPeriod, ".", ">", 0x2E, 0x3E},
	{KeySlash, "/", "?", 0x2F, 0x3F},
	{KeySemicolon, ";", ":", 0x3B, 0x3A},
	{KeyEqual, "=", "+", 0x3D, 0x2B},
	{KeyLeftBracket, "[", "{", 0x5B, 0x7B},
	{KeyBackslash, "\\", "|", 0x5C, 0x7C},
	{KeyRightBracket, "]", "}", 0x5D, 0x7D},
	{KeyGraveAccent, "`", "~", 0x60, 0x7E},
	{KeyCapsLock, "CapsLock", "CapsLock", 0x00, 0x00},
	{KeyScrollLock, "ScrollLock", "ScrollLock", 0x00, 0x00},
	{KeyNumLock, "NumLock", "NumLock", 0x00, 0x00},
	{KeyPrintScreen, "PrintScreen", "PrintScreen", 0x00, 0x00},
	{KeyPause, "Pause", "Pause", 0x00, 0x00},
	{KeyKeypad0, "0", "0", 0x30, 0x30},
	{KeyKeypad1, "1", "1", 0x31, 0x31},
	{KeyKeypad2, "2", "2", 0x32, 0x32},
	{KeyKeypad3, "3", "3", 0x33, 0x33},
	{KeyKeypad4, "4", "4", 0x34, 0x34},
	{KeyKeypad5, "5", "5", 0x35, 0x35},
	{KeyKeypad6, "6", "6", 0x36, 0x36},
	{KeyKeypad7, "7", "7", 0x37, 0x37},
	{KeyKeypad8, "8", "8", 0x38, 0x38},
	{KeyKeypad9, "9", "9", 0x39, 0x39},
	{KeyKeypadDecimal, ".", "Decimal", 0x2E, 0x2E},
	{KeyKeypadDivide, "/", "Divide", 0x2F, 0x2F},
	{KeyKeypadMultiply, "*", "Multiply", 0x2A, 0x2A},
	{KeyKeypadSubtract, "-", "Subtract", 0x2D, 0x2D},
	{KeyKeypadAdd, "+", "Add", 0x2B, 0x2B},
	{KeyKeypadEnter, "Enter", "Enter", 0x00, 0x00},
	{KeyKeypadEqual, "=", "=", 0x3D, 0x3D},
	{KeyLeftShift, "Shift", "Shift", 0x00, 0x00},
	{KeyLeftCtrl, "Control", "Control", 0x00, 0x00},
	{KeyLeftAlt, "Alt", "Alt", 0x00, 0x00},
	{KeyLeftSuper, "Meta", "Meta", 0x00, 0x00},
	{KeyRightShift, "Shift", "Shift", 0x00, 0x00},
	{KeyRightCtrl, "Control", "Control", 0x00, 0x00},
	{KeyRightAlt, "Alt", "Alt", 0x00, 0x00},
	{KeyRightSuper, "Meta", "Meta", 0x00, 0x00},
	{KeyMenu, "ContextMenu", "ContextMenu", 0x00, 0x00},
	{Key0, "0", ")", 0x30, 0x29},
	{Key1, "1", "!", 0x31, 0x21},
	{Key2, "2", "@", 0x32, 0x40},
	{Key3, "3", "#", 0x33, 0x23},
	{Key4, "4", "$", 0x34, 0x24},
	{Key5, "5", "%", 0x35, 0x25},
	{Key6, "6", "^", 0x36, 0x5E},
	{Key7, "7", "&", 0x37, 0x26},
	{Key8, "8", "*", 0x38, 0x2A},
	{Key9, "9", "(", 0x39, 0x28},
	{KeyA, "a", "A", 0x61, 0x41},
	{KeyB, "b", "B", 0x62, 0x42},
	{KeyC, "c", "C", 0x63, 0x43},
	{KeyD, "d", "D", 0x64, 0x44},
	{KeyE, "e", "E", 0x65, 0x45},
	{KeyF, "f", "F", 0x66, 0x46},
	{KeyG, "g", "G", 0x67, 0x47},
	{KeyH, "h", "H", 0x68, 0x48},
	{KeyI, "i", "I", 0x69, 0x49},
	{KeyJ, "j", "J", 0x6A, 0x4A},
	{KeyK, "k", "K", 0x6B, 0x4B},
	{KeyL, "l", "L", 0x6C, 0x4C},
	{KeyM, "m", "M", 0x6D, 0x4D},
	{KeyN, "n", "N", 0x6E, 0x4E},
	{KeyO, "o", "O", 0x6F, 0x4F},
	{KeyP, "p", "P", 0x70, 0x50},
	{KeyQ, "q", "Q", 0x71, 0x51},
	{KeyR, "r", "R", 0x72, 0x52},
	{KeyS, "s", "S", 0x73, 0x53},
	{KeyT, "t", "T", 0x74, 0x54},
	{KeyU, "u", "U", 0x75, 0x55},
	{KeyV, "v", "V", 0x76, 0x56},
	{KeyW, "w", "W", 0x77, 0x57},
	{KeyX, "x", "X", 0x78, 0x58},
	{KeyY, "y", "Y", 0x79, 0x59},
	{KeyZ, "z", "Z", 0x7A, 0x5A},
	{KeyF1, "F1", "F1", 0x00, 0x00},
	{KeyF2, "F2", "F2", 0x00, 0x00},
	{KeyF3, "F3", "F3", 0x00, 0x00},
	{KeyF4, "F4", "F4", 0x00, 0x00},
	{KeyF5, "F5", "F5", 0x00, 0x00},
	{KeyF6, "F6", "F6", 0x00, 0x00},
	{KeyF7, "F7", "F7", 0x00, 0x00},
	{KeyF8, "F8", "F8", 0x00, 0x00},
	{KeyF9, "F9", "F9", 0x00, 0x00},
	{KeyF10, "F10", "F10", 0x00, 0x00},
	{KeyF11, "F11", "F11", 0x00, 0x00},
	{KeyF12, "F12", "F12", 0x00, 0x00},
	{KeyF13, "F13", "F13", 0x00, 0x00},
	{KeyF14, "F14", "F14", 0x00, 0x00},
	{KeyF15, "F15", "F15", 0x00, 0x00},
	{KeyF16, "F16", "F16", 0x00, 0x00},
	{KeyF17, "F17", "F17", 0x00, 0x00},
	{KeyF18, "F18", "F18", 0x00, 0x00},
	{KeyF19, "F19", "F19", 0x00, 0x00},
	{KeyF20, "F20", "F20", 0x00, 0x00},
	{KeyF21, "F21", "F21", 0x00, 0x00},
	{KeyF22, "F22", "F22", 0x00, 0x00},
	{KeyF23, "F23", "F23", 0x00, 0x00},
	{KeyF24, "F24", "F24", 0x00, 0x00},
	{KeyNone, "", "", 0x00, 0x00},
}

// LookupKey resolves a browser KeyboardEvent.key value. The first row whose
// lower or upper label matches wins; an upper-label match yields the upper
// codepoint. Unknown labels resolve to (KeyNone, 0).
func LookupKey(label string) (Key, uint32) {
	for _, m := range keyTable {
		if m.Key == KeyNone {
			break
		}
		if m.Lower == label || m.Upper == label {
			if m.Upper == label {
				return m.Key, m.UpperUnicode
			}
			return m.Key, m.LowerUnicode
		}
	}
	return KeyNone, 0
}

// LookupCode resolves a browser KeyboardEvent.code value. Physical key
// codes are not mapped yet; every code resolves to KeyNone.
func LookupCode(code string) Key {
	return KeyNone
}

// RemapButton converts a browser pointer button number to the internal
// numbering: browsers report middle as 1 and right as 2, internally middle
// is 2 and right is 1. Other values pass through.
func RemapButton(button int32) int32 {
	switch button {
	case 0:
		return 0
	case 1:
		return 2
	case 2:
		return 1
	default:
		return button
	}
}
