package keymap

// Layer selects one of the alternate key grids.
type Layer uint8

const (
	LayerBase Layer = iota
	LayerNav
	LayerFunction
	LayerNumber
	LayerSymbol
	LayerMedia
	LayerMouse

	LayerCount
)

// Matrix geometry: three 10-wide finger rows plus a thumb row using the six
// middle columns.
const (
	Rows = 4
	Cols = 10
)

// Grid is one layer's keycode assignment per matrix position.
type Grid [Rows][Cols]Keycode

// Layers holds the full keymap. KeyNone positions are dead: they do not fall
// through to lower layers.
var Layers = [LayerCount]Grid{
	LayerBase: {
		{KeyQ, KeyW, KeyE, KeyR, KeyT, KeyY, KeyU, KeyI, KeyO, KeyP},
		{ModTap(ModLeftGui, KeyA), ModTap(ModLeftAlt, KeyS), ModTap(ModLeftCtrl, KeyD), ModTap(ModLeftShift, KeyF), KeyG,
			KeyH, ModTap(ModRightShift, KeyJ), ModTap(ModRightCtrl, KeyK), ModTap(ModRightAlt, KeyL), ModTap(ModRightGui, KeySemicolon)},
		{KeyZ, KeyX, KeyC, KeyV, KeyB, KeyN, KeyM, KeyComma, KeyDot, KeySlash},
		{KeyNone, KeyNone, LayerTap(LayerMedia, KeyEscape), LayerTap(LayerNav, KeySpace), LayerTap(LayerMouse, KeyTab),
			LayerTap(LayerSymbol, KeyEnter), LayerTap(LayerNumber, KeyBackspace), LayerTap(LayerFunction, KeyDelete), KeyNone, KeyNone},
	},
	LayerNav: {
		{KeyNone, KeyNone, KeyNone, KeyNone, KeyNone, KeyAgain, KeyPaste, KeyCopy, KeyCut, KeyUndo},
		{KeyLeftGui, KeyLeftAlt, KeyLeftCtrl, KeyLeftShift, KeyNone, KeyCapsLock, KeyLeft, KeyDown, KeyUp, KeyRight},
		{KeyNone, KeyNone, KeyNone, KeyNone, KeyNone, KeyInsert, KeyHome, KeyPageDown, KeyPageUp, KeyEnd},
		{KeyNone, KeyNone, KeyNone, KeyNone, KeyNone, KeyEnter, KeyBackspace, KeyDelete, KeyNone, KeyNone},
	},
	LayerFunction: {
		{KeyF12, KeyF7, KeyF8, KeyF9, KeyPrintScreen, KeyNone, KeyNone, KeyNone, KeyNone, KeyNone},
		{KeyF11, KeyF4, KeyF5, KeyF6, KeyScrollLock, KeyNone, KeyRightShift, KeyRightCtrl, KeyRightAlt, KeyRightGui},
		{KeyF10, KeyF1, KeyF2, KeyF3, KeyPause, KeyNone, KeyNone, KeyNone, KeyNone, KeyNone},
		{KeyNone, KeyNone, KeyApp, KeySpace, KeyTab, KeyNone, KeyNone, KeyNone, KeyNone, KeyNone},
	},
	LayerNumber: {
		{KeyLeftBracket, Key7, Key8, Key9, KeyRightBrace, KeyNone, KeyNone, KeyNone, KeyNone, KeyNone},
		{KeySemicolon, Key4, Key5, Key6, KeyEqual, KeyNone, KeyRightShift, KeyRightCtrl, KeyRightAlt, KeyRightGui},
		{KeyQuote, Key1, Key2, Key3, KeyBackslash, KeyNone, KeyNone, KeyNone, KeyNone, KeyNone},
		{KeyNone, KeyNone, KeyDot, Key0, KeyMinus, KeyNone, KeyNone, KeyNone, KeyNone, KeyNone},
	},
	LayerSymbol: {
		{KeyLeftBrace, KeyAmpersand, KeyAsterisk, KeyLeftParen, KeyRightBrace, KeyNone, KeyNone, KeyNone, KeyNone, KeyNone},
		{KeyColon, KeyDollar, KeyPercent, KeyCaret, KeyPlus, KeyNone, KeyRightShift, KeyRightCtrl, KeyRightAlt, KeyRightGui},
		{KeyTilde, KeyExclaim, KeyAt, KeyHash, KeyPipe, KeyNone, KeyNone, KeyNone, KeyNone, KeyNone},
		{KeyNone, KeyNone, KeyLeftParen, KeyRightParen, KeyUnderscore, KeyNone, KeyNone, KeyNone, KeyNone, KeyNone},
	},
	LayerMedia: {
		{KeyNone, KeyNone, KeyNone, KeyNone, KeyNone, LedToggle, LedModeNext, LedHueUp, LedSatUp, LedValUp},
		{KeyLeftGui, KeyLeftAlt, KeyLeftCtrl, KeyLeftShift, KeyNone, KeyNone, MediaPrev, KeyVolDown, KeyVolUp, MediaNext},
		{KeyNone, KeyNone, KeyNone, KeyNone, KeyNone, KeyNone, KeyNone, KeyNone, KeyNone, KeyNone},
		{KeyNone, KeyNone, KeyNone, KeyNone, KeyNone, MediaStop, MediaPlayPause, KeyMute, KeyNone, KeyNone},
	},
	LayerMouse: {
		{KeyNone, KeyNone, KeyNone, KeyNone, KeyNone, KeyAgain, KeyPaste, KeyCopy, KeyCut, KeyUndo},
		{KeyLeftGui, KeyLeftAlt, KeyLeftCtrl, KeyLeftShift, KeyNone, KeyNone, MouseLeft, MouseDown, MouseUp, MouseRight},
		{KeyNone, KeyNone, KeyNone, KeyNone, KeyNone, KeyNone, MouseWheelLeft, MouseWheelDown, MouseWheelUp, MouseWheelRight},
		{KeyNone, KeyNone, KeyNone, KeyNone, KeyNone, MouseBtn2, MouseBtn1, MouseBtn3, KeyNone, KeyNone},
	},
}

// At resolves a matrix position on the given layer.
func At(layer Layer, row, col uint8) Keycode {
	if layer >= LayerCount || row >= Rows || col >= Cols {
		return KeyNone
	}
	return Layers[layer][row][col]
}
