// Package keymap holds the static key tables: keycode definitions, the seven
// layer grids, display labels, and USB usage mapping. It contains no logic
// beyond keycode algebra and is fully host-testable.
package keymap

// Keycode identifies a key function. Values below 0x0100 are plain HID
// keyboard-page usage IDs; higher values are firmware-internal functions.
// The high bits encode mod-tap and layer-tap composites, see modtap.go.
type Keycode uint16

const KeyNone Keycode = 0x0000

// Basic keys (HID keyboard/keypad page usages).
const (
	KeyA Keycode = 0x04 + iota
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
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeySpace
	KeyMinus
	KeyEqual
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash
)

const (
	KeySemicolon Keycode = 0x33 + iota
	KeyQuote
	KeyGrave
	KeyComma
	KeyDot
	KeySlash
	KeyCapsLock
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
	KeyPrintScreen
	KeyScrollLock
	KeyPause
	KeyInsert
	KeyHome
	KeyPageUp
	KeyDelete
	KeyEnd
	KeyPageDown
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
)

const (
	KeyApp     Keycode = 0x65
	KeyAgain   Keycode = 0x79
	KeyUndo    Keycode = 0x7A
	KeyCut     Keycode = 0x7B
	KeyCopy    Keycode = 0x7C
	KeyPaste   Keycode = 0x7D
	KeyMute    Keycode = 0x7F
	KeyVolUp   Keycode = 0x80
	KeyVolDown Keycode = 0x81
)

// Modifiers.
const (
	KeyLeftCtrl Keycode = 0xE0 + iota
	KeyLeftShift
	KeyLeftAlt
	KeyLeftGui
	KeyRightCtrl
	KeyRightShift
	KeyRightAlt
	KeyRightGui
)

// Firmware-internal keys: no boot-keyboard usage, handled locally or not at
// all (media transport and mouse emulation need endpoints this firmware does
// not expose; they still occupy their layer positions).
const (
	LedToggle Keycode = 0x0100 + iota
	LedModeNext
	LedHueUp
	LedHueDown
	LedSatUp
	LedSatDown
	LedValUp
	LedValDown

	MediaPlayPause
	MediaStop
	MediaNext
	MediaPrev

	MouseUp
	MouseDown
	MouseLeft
	MouseRight
	MouseWheelUp
	MouseWheelDown
	MouseWheelLeft
	MouseWheelRight
	MouseBtn1
	MouseBtn2
	MouseBtn3
)

// modShift marks a basic keycode that is sent with left shift held, used for
// the shifted punctuation on the number and symbol layers.
const modShift Keycode = 0x0200

// Shifted punctuation.
const (
	KeyTilde      = modShift | KeyGrave
	KeyExclaim    = modShift | Key1
	KeyAt         = modShift | Key2
	KeyHash       = modShift | Key3
	KeyDollar     = modShift | Key4
	KeyPercent    = modShift | Key5
	KeyCaret      = modShift | Key6
	KeyAmpersand  = modShift | Key7
	KeyAsterisk   = modShift | Key8
	KeyLeftParen  = modShift | Key9
	KeyRightParen = modShift | Key0
	KeyUnderscore = modShift | KeyMinus
	KeyPlus       = modShift | KeyEqual
	KeyLeftBrace  = modShift | KeyLeftBracket
	KeyRightBrace = modShift | KeyRightBracket
	KeyPipe       = modShift | KeyBackslash
	KeyColon      = modShift | KeySemicolon
)

// IsShifted reports whether kc is a shifted punctuation keycode.
func (kc Keycode) IsShifted() bool {
	return kc&modShift != 0 && !kc.IsModTap() && !kc.IsLayerTap()
}

// Base strips the shift marker off a shifted keycode.
func (kc Keycode) Base() Keycode {
	if kc.IsShifted() {
		return kc &^ modShift
	}
	return kc
}

// Usage returns the HID keyboard-page usage for kc, or 0 when the key has no
// boot-keyboard representation.
func (kc Keycode) Usage() uint8 {
	kc = kc.Tap().Base()
	if kc == KeyNone || kc > 0xFF {
		return 0
	}
	return uint8(kc)
}
