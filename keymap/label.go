package keymap

// labels maps keycodes to the 1-3 character strings shown on the display.
// Only keys the original board labeled are present; everything else renders
// as the generic fallback.
var labels = map[Keycode]string{
	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F",
	KeyG: "G", KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L",
	KeyM: "M", KeyN: "N", KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R",
	KeyS: "S", KeyT: "T", KeyU: "U", KeyV: "V", KeyW: "W", KeyX: "X",
	KeyY: "Y", KeyZ: "Z",

	Key1: "1", Key2: "2", Key3: "3", Key4: "4", Key5: "5",
	Key6: "6", Key7: "7", Key8: "8", Key9: "9", Key0: "0",

	KeySemicolon: ";", KeyComma: ",", KeyDot: ".", KeySlash: "/",

	KeyEscape: "ESC", KeyTab: "TAB", KeyEnter: "ENT",
	KeySpace: "SPC", KeyBackspace: "BSP", KeyDelete: "DEL",

	KeyLeftCtrl: "CTR", KeyLeftShift: "SHF", KeyLeftAlt: "ALT", KeyLeftGui: "GUI",
	KeyRightCtrl: "CTR", KeyRightShift: "SHF", KeyRightAlt: "ALT", KeyRightGui: "GUI",
}

// LabelFallback is shown for keys without a label of their own.
const LabelFallback = "KEY"

// Label returns the display label for kc. Composites resolve to their tap
// keycode first.
func Label(kc Keycode) string {
	if s, ok := labels[kc.Tap()]; ok {
		return s
	}
	return LabelFallback
}
