//go:build tinygo && (rp2040 || rp2350)

package hal

import (
	"machine/usb/hid/keyboard"
)

// usbHID forwards resolved usages to the USB HID keyboard endpoint.
//
// TinyGo keycodes carry the plain keyboard-page usage in the low byte with a
// key-type marker in the high bits, matching the Teensy layout tables.
type hidPort interface {
	Down(keyboard.Keycode) error
	Up(keyboard.Keycode) error
}

type usbHID struct {
	port hidPort
}

const usbKeyTypeNormal = 0xF000

func newUSBHID() *usbHID {
	return &usbHID{port: keyboard.Port()}
}

func (h *usbHID) Press(usage uint8) error {
	return h.port.Down(keyboard.Keycode(usbKeyTypeNormal | uint16(usage)))
}

func (h *usbHID) Release(usage uint8) error {
	return h.port.Up(keyboard.Keycode(usbKeyTypeNormal | uint16(usage)))
}

// usbLocks would mirror the host's LED output report. The TinyGo usb stack
// does not surface it, so the indicators stay at their zero value on device.
type usbLocks struct {
	state LockState
}

func (l *usbLocks) LockState() LockState { return l.state }
