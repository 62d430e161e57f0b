//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	led    *hostLED
	fb     *hostFramebuffer
	matrix *hostMatrix
	locks  *hostLocks
	hid    *hostHID
	t      *hostTime
	flash  *hostFlash
}

// New returns a host HAL implementation backed by the desktop simulator.
func New() HAL {
	logger := &hostLogger{w: os.Stdout}
	locks := &hostLocks{}
	return &hostHAL{
		logger: logger,
		led:    &hostLED{logger: logger},
		fb:     newHostFramebuffer(displayWidth, displayHeight),
		matrix: newHostMatrix(locks),
		locks:  locks,
		hid:    &hostHID{logger: logger},
		t:      newHostTime(),
		flash:  newHostFlash(),
	}
}

func (h *hostHAL) Logger() Logger           { return h.logger }
func (h *hostHAL) LED() LED                 { return h.led }
func (h *hostHAL) Framebuffer() Framebuffer { return h.fb }
func (h *hostHAL) Matrix() Matrix           { return h.matrix }
func (h *hostHAL) Locks() Locks             { return h.locks }
func (h *hostHAL) HID() HID                 { return h.hid }
func (h *hostHAL) Flash() Flash             { return h.flash }
func (h *hostHAL) Time() Time               { return h.t }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostLED struct {
	mu     sync.Mutex
	on     bool
	logger *hostLogger
}

func (l *hostLED) High() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = true
	l.logger.WriteLineString("led: HIGH")
}

func (l *hostLED) Low() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = false
	l.logger.WriteLineString("led: LOW")
}

// hostLocks simulates host lock indicators; the simulator matrix toggles
// them when the mapped lock keys are pressed.
type hostLocks struct {
	mu    sync.Mutex
	state LockState
}

func (l *hostLocks) LockState() LockState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *hostLocks) toggleCaps() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.Caps = !l.state.Caps
}

type hostHID struct {
	logger *hostLogger
}

func (h *hostHID) Press(usage uint8) error {
	h.logger.WriteLineString(fmt.Sprintf("hid: press 0x%02X", usage))
	return nil
}

func (h *hostHID) Release(usage uint8) error {
	h.logger.WriteLineString(fmt.Sprintf("hid: release 0x%02X", usage))
	return nil
}
