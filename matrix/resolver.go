// Package matrix turns physical switch transitions into key events: it picks
// the keycode for the active layer, decides tap versus hold for composite
// keys, and drives the USB HID output.
package matrix

import (
	"pocketboard/hal"
	"pocketboard/keymap"
)

// TappingTerm is how long a composite key may be down and still count as a
// tap, in milliseconds.
const TappingTerm = 200

// KeyFunc observes every physical press and release with the keycode the
// position resolved to at press time. Composite keycodes are passed through
// unresolved; the display unwraps them itself.
type KeyFunc func(kc keymap.Keycode, pressed bool)

type pos struct {
	row uint8
	col uint8
}

type keyKind uint8

const (
	kindNone keyKind = iota
	kindPending
	kindUsage
	kindShifted
	kindHoldMod
	kindHoldLayer
)

type keyState struct {
	kind  keyKind
	kc    keymap.Keycode
	layer keymap.Layer
}

// Resolver is the matrix-to-keycode engine. It is single-goroutine like the
// rest of the event path and keeps no locks.
type Resolver struct {
	hid   hal.HID
	onKey KeyFunc

	keys   map[pos]*keyState
	layers []keymap.Layer // stack of held layer-taps, last wins

	pending  *keyState
	deadline uint64
}

func NewResolver(hid hal.HID, onKey KeyFunc) *Resolver {
	return &Resolver{
		hid:   hid,
		onKey: onKey,
		keys:  make(map[pos]*keyState),
	}
}

// Layer returns the currently active layer.
func (r *Resolver) Layer() keymap.Layer {
	if n := len(r.layers); n > 0 {
		return r.layers[n-1]
	}
	return keymap.LayerBase
}

// Handle processes one debounced switch transition at the given millisecond
// timestamp.
func (r *Resolver) Handle(ev hal.SwitchEvent, now uint64) {
	if ev.Pressed {
		r.press(pos{ev.Row, ev.Col}, now)
	} else {
		r.release(pos{ev.Row, ev.Col})
	}
}

// Tick commits a pending composite to its hold function once the tapping
// term has elapsed.
func (r *Resolver) Tick(now uint64) {
	if r.pending != nil && now >= r.deadline {
		r.commitHold()
	}
}

func (r *Resolver) press(p pos, now uint64) {
	// A second press while a composite is undecided settles it as a hold, so
	// the new key resolves with that hold already applied.
	if r.pending != nil {
		r.commitHold()
	}

	kc := keymap.At(r.Layer(), p.row, p.col)
	if r.onKey != nil {
		r.onKey(kc, true)
	}

	st := &keyState{kc: kc}
	r.keys[p] = st

	switch {
	case kc.IsModTap() || kc.IsLayerTap():
		st.kind = kindPending
		r.pending = st
		r.deadline = now + TappingTerm
	case kc.IsShifted():
		st.kind = kindShifted
		r.sendPress(kc)
	case kc.Usage() != 0:
		st.kind = kindUsage
		r.sendPress(kc)
	default:
		st.kind = kindNone
	}
}

func (r *Resolver) release(p pos) {
	st, ok := r.keys[p]
	if !ok {
		return
	}
	delete(r.keys, p)

	if r.onKey != nil {
		r.onKey(st.kc, false)
	}

	switch st.kind {
	case kindPending:
		// Released alone inside the tapping term: send the tap keycode as a
		// press/release pulse.
		r.pending = nil
		tap := st.kc.Tap()
		if tap.Usage() != 0 {
			r.sendPress(tap)
			r.sendRelease(tap)
		}
	case kindUsage, kindShifted:
		r.sendRelease(st.kc)
	case kindHoldMod:
		_ = r.hid.Release(st.kc.HoldMod().Usage())
	case kindHoldLayer:
		r.dropLayer(st.layer)
	}
}

func (r *Resolver) commitHold() {
	st := r.pending
	r.pending = nil
	if st == nil || st.kind != kindPending {
		return
	}
	switch {
	case st.kc.IsModTap():
		st.kind = kindHoldMod
		_ = r.hid.Press(st.kc.HoldMod().Usage())
	case st.kc.IsLayerTap():
		st.kind = kindHoldLayer
		st.layer = st.kc.HoldLayer()
		r.layers = append(r.layers, st.layer)
	}
}

func (r *Resolver) dropLayer(layer keymap.Layer) {
	for i := len(r.layers) - 1; i >= 0; i-- {
		if r.layers[i] == layer {
			r.layers = append(r.layers[:i], r.layers[i+1:]...)
			return
		}
	}
}

func (r *Resolver) sendPress(kc keymap.Keycode) {
	if kc.IsShifted() {
		_ = r.hid.Press(uint8(keymap.KeyLeftShift))
	}
	_ = r.hid.Press(kc.Usage())
}

func (r *Resolver) sendRelease(kc keymap.Keycode) {
	_ = r.hid.Release(kc.Usage())
	if kc.IsShifted() {
		_ = r.hid.Release(uint8(keymap.KeyLeftShift))
	}
}
