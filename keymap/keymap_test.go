package keymap

import "testing"

func TestLabelBasic(t *testing.T) {
	cases := []struct {
		kc   Keycode
		want string
	}{
		{KeyA, "A"},
		{KeyZ, "Z"},
		{Key0, "0"},
		{KeySemicolon, ";"},
		{KeyEscape, "ESC"},
		{KeyEnter, "ENT"},
		{KeyBackspace, "BSP"},
		{KeyRightGui, "GUI"},
		{KeyF5, "KEY"},
		{KeyHome, "KEY"},
		{MediaPlayPause, "KEY"},
		{KeyNone, "KEY"},
	}
	for _, tc := range cases {
		if got := Label(tc.kc); got != tc.want {
			t.Errorf("Label(%#04x) = %q, want %q", uint16(tc.kc), got, tc.want)
		}
	}
}

func TestLabelUnwrapsComposites(t *testing.T) {
	if got := Label(ModTap(ModLeftGui, KeyA)); got != "A" {
		t.Errorf("mod-tap label = %q, want A", got)
	}
	if got := Label(LayerTap(LayerNav, KeySpace)); got != "SPC" {
		t.Errorf("layer-tap label = %q, want SPC", got)
	}
}

func TestTapExtraction(t *testing.T) {
	mt := ModTap(ModRightCtrl, KeyK)
	if !mt.IsModTap() || mt.IsLayerTap() {
		t.Fatalf("ModTap classification wrong: %#04x", uint16(mt))
	}
	if mt.Tap() != KeyK {
		t.Errorf("Tap() = %#04x, want KeyK", uint16(mt.Tap()))
	}
	if mt.HoldMod() != ModRightCtrl {
		t.Errorf("HoldMod() = %#02x, want ModRightCtrl", uint8(mt.HoldMod()))
	}

	lt := LayerTap(LayerFunction, KeyDelete)
	if !lt.IsLayerTap() || lt.IsModTap() {
		t.Fatalf("LayerTap classification wrong: %#04x", uint16(lt))
	}
	if lt.Tap() != KeyDelete {
		t.Errorf("Tap() = %#04x, want KeyDelete", uint16(lt.Tap()))
	}
	if lt.HoldLayer() != LayerFunction {
		t.Errorf("HoldLayer() = %d, want LayerFunction", lt.HoldLayer())
	}

	if KeyA.Tap() != KeyA {
		t.Error("plain keycode must pass through Tap()")
	}
}

func TestShiftedPunctuation(t *testing.T) {
	if !KeyLeftBrace.IsShifted() {
		t.Error("KeyLeftBrace must be shifted")
	}
	if KeyLeftBrace.Base() != KeyLeftBracket {
		t.Errorf("Base() = %#04x, want KeyLeftBracket", uint16(KeyLeftBrace.Base()))
	}
	if KeyA.IsShifted() {
		t.Error("KeyA must not be shifted")
	}
	// Composites are not shifted keys even though they share bit 9.
	if ModTap(ModLeftShift, KeyF).IsShifted() {
		t.Error("mod-tap must not classify as shifted")
	}
}

func TestUsage(t *testing.T) {
	cases := []struct {
		kc   Keycode
		want uint8
	}{
		{KeyA, 0x04},
		{Key1, 0x1E},
		{KeyEnter, 0x28},
		{KeyLeftCtrl, 0xE0},
		{KeyRightGui, 0xE7},
		{KeyAmpersand, 0x24},                 // shifted 7 sends the 7 usage
		{ModTap(ModLeftShift, KeyF), 0x09},   // composite resolves to tap key
		{LayerTap(LayerNav, KeySpace), 0x2C}, // composite resolves to tap key
		{LedToggle, 0},
		{MouseBtn1, 0},
		{KeyNone, 0},
	}
	for _, tc := range cases {
		if got := tc.kc.Usage(); got != tc.want {
			t.Errorf("Usage(%#04x) = %#02x, want %#02x", uint16(tc.kc), got, tc.want)
		}
	}
}

func TestModUsage(t *testing.T) {
	cases := []struct {
		mod  Mod
		want uint8
	}{
		{ModLeftCtrl, 0xE0},
		{ModLeftShift, 0xE1},
		{ModLeftAlt, 0xE2},
		{ModLeftGui, 0xE3},
		{ModRightCtrl, 0xE4},
		{ModRightShift, 0xE5},
		{ModRightAlt, 0xE6},
		{ModRightGui, 0xE7},
	}
	for _, tc := range cases {
		if got := tc.mod.Usage(); got != tc.want {
			t.Errorf("Mod(%#02x).Usage() = %#02x, want %#02x", uint8(tc.mod), got, tc.want)
		}
	}
}

func TestLayerGrids(t *testing.T) {
	if At(LayerBase, 0, 0) != KeyQ {
		t.Error("base 0,0 must be Q")
	}
	if kc := At(LayerBase, 1, 0); kc.Tap() != KeyA || kc.HoldMod() != ModLeftGui {
		t.Errorf("base 1,0 must be gui-tap A, got %#04x", uint16(kc))
	}
	if kc := At(LayerBase, 3, 3); kc.Tap() != KeySpace || kc.HoldLayer() != LayerNav {
		t.Errorf("base 3,3 must be nav-tap space, got %#04x", uint16(kc))
	}
	if At(LayerNav, 1, 6) != KeyLeft {
		t.Error("nav 1,6 must be Left")
	}
	if At(LayerMedia, 0, 5) != LedToggle {
		t.Error("media 0,5 must be LedToggle")
	}
	// Dead positions stay dead: no fall-through to base.
	if At(LayerNav, 0, 0) != KeyNone {
		t.Error("nav 0,0 must be dead")
	}
	if At(LayerCount, 0, 0) != KeyNone || At(LayerBase, Rows, 0) != KeyNone {
		t.Error("out of range positions must resolve to KeyNone")
	}
}
