package gfx

import (
	"image/color"
	"testing"

	"pocketboard/hal"
)

type fakeFB struct {
	w, h     int
	buf      []byte
	presents int
}

func newFakeFB(w, h int) *fakeFB {
	return &fakeFB{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *fakeFB) Width() int              { return f.w }
func (f *fakeFB) Height() int             { return f.h }
func (f *fakeFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *fakeFB) StrideBytes() int        { return f.w * 2 }
func (f *fakeFB) Buffer() []byte          { return f.buf }
func (f *fakeFB) Present() error          { f.presents++; return nil }

func (f *fakeFB) ClearRGB(r, g, b uint8) {
	pixel := hal.RGB565(r, g, b)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = byte(pixel)
		f.buf[i+1] = byte(pixel >> 8)
	}
}

func (f *fakeFB) at(x, y int) uint16 {
	off := y*f.w*2 + x*2
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

func TestSetPixelClips(t *testing.T) {
	fb := newFakeFB(8, 8)
	p := NewPainter(fb)

	p.SetPixel(-1, 0, White)
	p.SetPixel(0, -1, White)
	p.SetPixel(8, 0, White)
	p.SetPixel(0, 8, White)
	for i, b := range fb.buf {
		if b != 0 {
			t.Fatalf("out-of-bounds write reached the buffer at byte %d", i)
		}
	}

	p.SetPixel(3, 5, White)
	if fb.at(3, 5) != 0xFFFF {
		t.Fatalf("pixel (3,5) = %#04x, want 0xFFFF", fb.at(3, 5))
	}
}

func TestFillCircle(t *testing.T) {
	fb := newFakeFB(16, 16)
	p := NewPainter(fb)

	p.FillCircle(8, 8, 3, White)
	if fb.at(8, 8) == 0 {
		t.Fatal("center not filled")
	}
	if fb.at(8, 5) == 0 || fb.at(5, 8) == 0 {
		t.Fatal("radius extent not filled")
	}
	if fb.at(11, 11) != 0 {
		t.Fatal("corner outside the circle was filled")
	}

	// Radius zero and negative are no-ops.
	before := fb.at(0, 0)
	p.FillCircle(0, 0, 0, White)
	p.FillCircle(0, 0, -1, White)
	if fb.at(0, 0) != before {
		t.Fatal("degenerate circle drew pixels")
	}
}

func TestDisplayPresents(t *testing.T) {
	fb := newFakeFB(4, 4)
	p := NewPainter(fb)
	if err := p.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if fb.presents != 1 {
		t.Fatalf("presents = %d, want 1", fb.presents)
	}
}

func TestHSVConversion(t *testing.T) {
	cases := []struct {
		name string
		in   HSV
		want color.RGBA
	}{
		{"zero saturation is gray", HSV{H: 90, S: 0, V: 128}, color.RGBA{128, 128, 128, 0xFF}},
		{"zero value is black", HSV{H: 90, S: 255, V: 0}, color.RGBA{0, 0, 0, 0xFF}},
		{"pure red", HSV{H: 0, S: 255, V: 255}, color.RGBA{255, 0, 0, 0xFF}},
		{"pure green", HSV{H: 86, S: 255, V: 255}, color.RGBA{0, 255, 0, 0xFF}},
		{"pure blue", HSV{H: 172, S: 255, V: 255}, color.RGBA{0, 0, 255, 0xFF}},
	}
	for _, tc := range cases {
		if got := tc.in.RGBA(); got != tc.want {
			t.Errorf("%s: %+v -> %+v, want %+v", tc.name, tc.in, got, tc.want)
		}
	}
}
