// Package app wires the hardware abstraction to the firmware logic: matrix
// events feed the keycode resolver, ticks feed the resolver and the display
// controller. All state lives on one goroutine.
package app

import (
	"pocketboard/hal"
	"pocketboard/keymap"
	"pocketboard/matrix"
	"pocketboard/ui"
)

type system struct {
	h    hal.HAL
	ctrl *ui.Controller
	res  *matrix.Resolver
}

// New initializes the firmware on h and starts the event loop.
func New(h hal.HAL) func() error {
	_ = newSystem(h)
	return func() error { return nil }
}

// Run starts the firmware and blocks forever (TinyGo entrypoint).
func Run(h hal.HAL) {
	_ = New(h)
	select {}
}

func newSystem(h hal.HAL) *system {
	s := &system{h: h}

	// now is owned by the event loop; the resolver callback runs inside it.
	var now uint64
	s.ctrl = ui.New(h.Logger(), h.LED(), h.Framebuffer(), h.Flash(), now)
	s.res = matrix.NewResolver(h.HID(), func(kc keymap.Keycode, pressed bool) {
		s.ctrl.Key(now, kc, pressed)
	})

	var events <-chan hal.SwitchEvent
	if m := h.Matrix(); m != nil {
		events = m.Events()
	}
	var ticks <-chan uint64
	if t := h.Time(); t != nil {
		ticks = t.Ticks()
	}

	go func() {
		for events != nil || ticks != nil {
			select {
			case ev, ok := <-events:
				if !ok {
					events = nil
					continue
				}
				s.res.Handle(ev, now)
			case t, ok := <-ticks:
				if !ok {
					ticks = nil
					continue
				}
				now = t
				s.res.Tick(now)
				s.ctrl.Tick(now, h.Locks().LockState())
			}
		}
	}()

	return s
}
