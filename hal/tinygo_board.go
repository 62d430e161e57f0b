//go:build tinygo && (rp2040 || rp2350)

package hal

import (
	"machine"
)

// Pocketboard wiring (RP2040):
//
//	GP2  SPI0 SCK   -> display
//	GP3  SPI0 MOSI  -> display
//	GP1  display CS
//	GP29 display DC
//	GP28 display RST
//	GP12 status LED
//	GP4-GP7 matrix rows (outputs)
//	GP8-GP11, GP13-GP18 matrix columns (inputs, pull-down)
const (
	ledPin = machine.GP12
)

type boardHAL struct {
	logger serialLogger
	led    *pinLED
	fb     Framebuffer
	matrix *gpioMatrix
	locks  *usbLocks
	hid    *usbHID
	t      *tinyGoTime
	flash  Flash
}

// New returns the Pocketboard HAL implementation.
func New() HAL {
	led := machine.Pin(ledPin)
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	var fb Framebuffer
	if d, err := newBoardDisplay(); err == nil {
		fb = d
	} else {
		fb = newStubFramebuffer(displayWidth, displayHeight)
	}

	return &boardHAL{
		led:    &pinLED{pin: led},
		fb:     fb,
		matrix: newGPIOMatrix(),
		locks:  &usbLocks{},
		hid:    newUSBHID(),
		t:      newTinyGoTime(),
		flash:  newRP2Flash(),
	}
}

func (h *boardHAL) Logger() Logger           { return h.logger }
func (h *boardHAL) LED() LED                 { return h.led }
func (h *boardHAL) Framebuffer() Framebuffer { return h.fb }
func (h *boardHAL) Matrix() Matrix           { return h.matrix }
func (h *boardHAL) Locks() Locks             { return h.locks }
func (h *boardHAL) HID() HID                 { return h.hid }
func (h *boardHAL) Flash() Flash             { return h.flash }
func (h *boardHAL) Time() Time               { return h.t }

// stubFramebuffer keeps the firmware running when the panel does not come up.
// Both panel and stub must satisfy Framebuffer so New can fall back.
var (
	_ Framebuffer = (*boardDisplay)(nil)
	_ Framebuffer = (*stubFramebuffer)(nil)
)

type stubFramebuffer struct {
	width  int
	height int
	buf    []byte
}

func newStubFramebuffer(width, height int) *stubFramebuffer {
	return &stubFramebuffer{
		width:  width,
		height: height,
		buf:    make([]byte, width*height*2),
	}
}

func (f *stubFramebuffer) Width() int          { return f.width }
func (f *stubFramebuffer) Height() int         { return f.height }
func (f *stubFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *stubFramebuffer) StrideBytes() int    { return f.width * 2 }
func (f *stubFramebuffer) Buffer() []byte      { return f.buf }
func (f *stubFramebuffer) Present() error      { return nil }

func (f *stubFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := RGB565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}
