// Package pix implements the PBA1 frame-animation container used for the
// idle animation: a small header, a four-color RGB565 palette, and 2-bit
// run-length-encoded frames.
//
// Layout (all multi-byte fields little-endian):
//
//	magic   "PBA1"
//	width   uint8
//	height  uint8
//	frames  uint8
//	interval uint16  frame interval in milliseconds
//	palette  4 x uint16 RGB565
//	data     per frame: (count uint8, index uint8) runs covering width*height
package pix

import (
	"errors"
	"fmt"
	"image/color"

	"pocketboard/hal"
)

const (
	magic      = "PBA1"
	headerSize = 4 + 3 + 2 + 4*2
	maxRun     = 255
)

var (
	ErrBadMagic  = errors.New("pix: bad magic")
	ErrTruncated = errors.New("pix: truncated data")
)

// Animation is a decoded PBA1 asset.
type Animation struct {
	Width    int
	Height   int
	Interval uint16 // milliseconds per frame
	Palette  [4]color.RGBA

	frames [][]byte // palette indices, Width*Height each
}

// Frames returns the number of frames.
func (a *Animation) Frames() int { return len(a.frames) }

// Decode parses a PBA1 blob. It validates structure fully so a corrupt asset
// fails here rather than at draw time.
func Decode(data []byte) (*Animation, error) {
	if len(data) < headerSize {
		return nil, ErrTruncated
	}
	if string(data[:4]) != magic {
		return nil, ErrBadMagic
	}

	w := int(data[4])
	h := int(data[5])
	frames := int(data[6])
	if w == 0 || h == 0 || frames == 0 {
		return nil, fmt.Errorf("pix: invalid geometry %dx%dx%d", w, h, frames)
	}
	interval := uint16(data[7]) | uint16(data[8])<<8
	if interval == 0 {
		return nil, errors.New("pix: zero frame interval")
	}

	a := &Animation{
		Width:    w,
		Height:   h,
		Interval: interval,
	}
	for i := 0; i < 4; i++ {
		p := uint16(data[9+2*i]) | uint16(data[10+2*i])<<8
		r, g, b := hal.RGB888From565(p)
		a.Palette[i] = color.RGBA{R: r, G: g, B: b, A: 0xFF}
	}

	pixels := w * h
	off := headerSize
	for f := 0; f < frames; f++ {
		frame := make([]byte, 0, pixels)
		for len(frame) < pixels {
			if off+1 >= len(data) {
				return nil, ErrTruncated
			}
			count := int(data[off])
			index := data[off+1]
			off += 2
			if count == 0 || index > 3 {
				return nil, fmt.Errorf("pix: bad run at byte %d", off-2)
			}
			if len(frame)+count > pixels {
				return nil, fmt.Errorf("pix: frame %d overflows", f)
			}
			for i := 0; i < count; i++ {
				frame = append(frame, index)
			}
		}
		a.frames = append(a.frames, frame)
	}
	if off != len(data) {
		return nil, fmt.Errorf("pix: %d trailing bytes", len(data)-off)
	}
	return a, nil
}

// Encode serializes an animation back into a PBA1 blob.
func Encode(a *Animation) ([]byte, error) {
	if a.Width <= 0 || a.Width > 255 || a.Height <= 0 || a.Height > 255 {
		return nil, fmt.Errorf("pix: geometry %dx%d out of range", a.Width, a.Height)
	}
	if len(a.frames) == 0 || len(a.frames) > 255 {
		return nil, fmt.Errorf("pix: frame count %d out of range", len(a.frames))
	}
	if a.Interval == 0 {
		return nil, errors.New("pix: zero frame interval")
	}

	out := make([]byte, 0, headerSize)
	out = append(out, magic...)
	out = append(out, uint8(a.Width), uint8(a.Height), uint8(len(a.frames)))
	out = append(out, byte(a.Interval), byte(a.Interval>>8))
	for _, c := range a.Palette {
		p := hal.RGB565(c.R, c.G, c.B)
		out = append(out, byte(p), byte(p>>8))
	}

	pixels := a.Width * a.Height
	for f, frame := range a.frames {
		if len(frame) != pixels {
			return nil, fmt.Errorf("pix: frame %d has %d pixels, want %d", f, len(frame), pixels)
		}
		run := 1
		for i := 1; i <= len(frame); i++ {
			if i < len(frame) && frame[i] == frame[i-1] && run < maxRun {
				run++
				continue
			}
			if frame[i-1] > 3 {
				return nil, fmt.Errorf("pix: frame %d has index %d", f, frame[i-1])
			}
			out = append(out, uint8(run), frame[i-1])
			run = 1
		}
	}
	return out, nil
}

// NewAnimation builds an animation from raw index frames, for the generator
// and for tests.
func NewAnimation(w, h int, interval uint16, palette [4]color.RGBA, frames [][]byte) *Animation {
	return &Animation{
		Width:    w,
		Height:   h,
		Interval: interval,
		Palette:  palette,
		frames:   frames,
	}
}
