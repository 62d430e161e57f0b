// Package gfx draws onto a hal.Framebuffer: filled primitives for the status
// indicators plus a drivers.Displayer adapter so tinyfont can render glyphs.
package gfx

import (
	"image/color"

	"pocketboard/hal"
)

// Painter wraps a framebuffer with drawing primitives. It implements
// drivers.Displayer, so it can be handed straight to tinyfont.
type Painter struct {
	fb hal.Framebuffer
}

func NewPainter(fb hal.Framebuffer) *Painter {
	return &Painter{fb: fb}
}

// Size implements drivers.Displayer.
func (p *Painter) Size() (x, y int16) {
	if p.fb == nil {
		return 0, 0
	}
	return int16(p.fb.Width()), int16(p.fb.Height())
}

// SetPixel implements drivers.Displayer.
func (p *Painter) SetPixel(x, y int16, c color.RGBA) {
	if p.fb == nil || p.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := p.fb.Buffer()
	if buf == nil {
		return
	}

	w := p.fb.Width()
	h := p.fb.Height()
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return
	}

	pixel := hal.RGB565(c.R, c.G, c.B)
	off := iy*p.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

// Display implements drivers.Displayer by presenting the framebuffer.
func (p *Painter) Display() error {
	if p.fb == nil {
		return nil
	}
	return p.fb.Present()
}

// Flush is Display under the name the rest of the firmware uses.
func (p *Painter) Flush() error { return p.Display() }

// Clear paints the whole screen in c without presenting it.
func (p *Painter) Clear(c color.RGBA) {
	if p.fb == nil {
		return
	}
	p.fb.ClearRGB(c.R, c.G, c.B)
}

// FillCircle draws a filled circle centered on (cx, cy).
func (p *Painter) FillCircle(cx, cy, r int16, c color.RGBA) {
	if r <= 0 {
		return
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				p.SetPixel(cx+dx, cy+dy, c)
			}
		}
	}
}
