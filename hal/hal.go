package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction for the status LED.
type LED interface {
	High()
	Low()
}

var ErrNotImplemented = errors.New("not implemented")

// Panel geometry, portrait orientation.
const (
	displayWidth  = 80
	displayHeight = 160
)

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
//
// Present pushes the buffer to the panel; drawing into Buffer alone
// changes nothing on screen.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// SwitchEvent is a raw matrix transition: one physical switch changed level.
type SwitchEvent struct {
	Row     uint8
	Col     uint8
	Pressed bool
}

// Matrix provides debounced switch transitions from the key matrix.
type Matrix interface {
	Events() <-chan SwitchEvent
}

// LockState mirrors the host-side keyboard lock indicators.
type LockState struct {
	Caps   bool
	Num    bool
	Scroll bool
}

// Locks reports the current host lock indicator state.
type Locks interface {
	LockState() LockState
}

// HID sends boot-keyboard usage transitions to the USB host.
//
// Usages are plain HID usage IDs from the keyboard/keypad page.
type HID interface {
	Press(usage uint8) error
	Release(usage uint8) error
}

// Flash provides raw access to non-volatile memory.
//
// It is intentionally low-level: addresses and erase blocks only.
type Flash interface {
	SizeBytes() uint32
	EraseBlockBytes() uint32
	ReadAt(p []byte, off uint32) (int, error)
	WriteAt(p []byte, off uint32) (int, error)
	Erase(off, size uint32) error
}

// Time provides a base tick stream. One tick is one millisecond.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the firmware and the hardware.
type HAL interface {
	Logger() Logger
	LED() LED
	Framebuffer() Framebuffer
	Matrix() Matrix
	Locks() Locks
	HID() HID
	Flash() Flash
	Time() Time
}
