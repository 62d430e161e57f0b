//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hostMatrix maps the desktop keyboard onto the physical 4x10 switch grid so
// the firmware sees the same transitions it would from the real matrix.
type hostMatrix struct {
	ch    chan SwitchEvent
	locks *hostLocks
}

type hostKeyPos struct {
	key ebiten.Key
	row uint8
	col uint8
}

var hostKeyGrid = []hostKeyPos{
	{ebiten.KeyQ, 0, 0}, {ebiten.KeyW, 0, 1}, {ebiten.KeyE, 0, 2}, {ebiten.KeyR, 0, 3}, {ebiten.KeyT, 0, 4},
	{ebiten.KeyY, 0, 5}, {ebiten.KeyU, 0, 6}, {ebiten.KeyI, 0, 7}, {ebiten.KeyO, 0, 8}, {ebiten.KeyP, 0, 9},

	{ebiten.KeyA, 1, 0}, {ebiten.KeyS, 1, 1}, {ebiten.KeyD, 1, 2}, {ebiten.KeyF, 1, 3}, {ebiten.KeyG, 1, 4},
	{ebiten.KeyH, 1, 5}, {ebiten.KeyJ, 1, 6}, {ebiten.KeyK, 1, 7}, {ebiten.KeyL, 1, 8}, {ebiten.KeySemicolon, 1, 9},

	{ebiten.KeyZ, 2, 0}, {ebiten.KeyX, 2, 1}, {ebiten.KeyC, 2, 2}, {ebiten.KeyV, 2, 3}, {ebiten.KeyB, 2, 4},
	{ebiten.KeyN, 2, 5}, {ebiten.KeyM, 2, 6}, {ebiten.KeyComma, 2, 7}, {ebiten.KeyPeriod, 2, 8}, {ebiten.KeySlash, 2, 9},

	{ebiten.KeyEscape, 3, 2}, {ebiten.KeySpace, 3, 3}, {ebiten.KeyTab, 3, 4},
	{ebiten.KeyEnter, 3, 5}, {ebiten.KeyBackspace, 3, 6}, {ebiten.KeyDelete, 3, 7},
}

func newHostMatrix(locks *hostLocks) *hostMatrix {
	return &hostMatrix{ch: make(chan SwitchEvent, 64), locks: locks}
}

func (m *hostMatrix) Events() <-chan SwitchEvent { return m.ch }

func (m *hostMatrix) poll() {
	emit := func(row, col uint8, pressed bool) {
		select {
		case m.ch <- SwitchEvent{Row: row, Col: col, Pressed: pressed}:
		default:
		}
	}

	for _, p := range hostKeyGrid {
		if inpututil.IsKeyJustPressed(p.key) {
			emit(p.row, p.col, true)
		}
		if inpututil.IsKeyJustReleased(p.key) {
			emit(p.row, p.col, false)
		}
	}

	// The simulator has no USB host to report lock state back, so CapsLock
	// on the desktop keyboard toggles the simulated indicator directly.
	if inpututil.IsKeyJustPressed(ebiten.KeyCapsLock) {
		m.locks.toggleCaps()
	}
}
