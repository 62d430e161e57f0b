package keymap

// Composite keycodes: a mod-tap key sends its tap keycode when tapped and
// holds a modifier when held; a layer-tap key activates a layer when held.
// The encoding mirrors the convention the original boards used: the tap
// keycode lives in the low byte, the hold function in bits 8-12.
const (
	modTapBase   Keycode = 0x2000
	modTapMax    Keycode = 0x3FFF
	layerTapBase Keycode = 0x4000
	layerTapMax  Keycode = 0x4FFF
)

// Mod identifies a hold modifier for mod-tap keys.
type Mod uint8

const (
	ModLeftCtrl Mod = 1 << iota
	ModLeftShift
	ModLeftAlt
	ModLeftGui
	modRightFlag
)

const (
	ModRightCtrl  = ModLeftCtrl | modRightFlag
	ModRightShift = ModLeftShift | modRightFlag
	ModRightAlt   = ModLeftAlt | modRightFlag
	ModRightGui   = ModLeftGui | modRightFlag
)

// Usage returns the HID usage of the modifier key itself.
func (m Mod) Usage() uint8 {
	base := uint8(KeyLeftCtrl)
	if m&modRightFlag != 0 {
		base = uint8(KeyRightCtrl)
		m &^= modRightFlag
	}
	switch m {
	case ModLeftCtrl:
		return base
	case ModLeftShift:
		return base + 1
	case ModLeftAlt:
		return base + 2
	case ModLeftGui:
		return base + 3
	}
	return 0
}

// ModTap builds a composite that taps kc and holds mod.
func ModTap(mod Mod, kc Keycode) Keycode {
	return modTapBase | Keycode(mod)<<8 | kc&0xFF
}

// LayerTap builds a composite that taps kc and activates layer while held.
func LayerTap(layer Layer, kc Keycode) Keycode {
	return layerTapBase | Keycode(layer)<<8 | kc&0xFF
}

func (kc Keycode) IsModTap() bool {
	return kc >= modTapBase && kc <= modTapMax
}

func (kc Keycode) IsLayerTap() bool {
	return kc >= layerTapBase && kc <= layerTapMax
}

// Tap extracts the tap keycode from a composite; plain keycodes pass through.
func (kc Keycode) Tap() Keycode {
	if kc.IsModTap() || kc.IsLayerTap() {
		return kc & 0xFF
	}
	return kc
}

// HoldMod returns the hold modifier of a mod-tap key.
func (kc Keycode) HoldMod() Mod {
	if !kc.IsModTap() {
		return 0
	}
	return Mod(kc >> 8 & 0x1F)
}

// HoldLayer returns the held layer of a layer-tap key.
func (kc Keycode) HoldLayer() Layer {
	if !kc.IsLayerTap() {
		return LayerBase
	}
	return Layer(kc >> 8 & 0x0F)
}
