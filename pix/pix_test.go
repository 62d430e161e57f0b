package pix

import (
	"bytes"
	"errors"
	"image/color"
	"testing"
)

var testPalette = [4]color.RGBA{
	{A: 0xFF},
	{R: 0xFF, A: 0xFF},
	{G: 0xFF, A: 0xFF},
	{B: 0xFF, A: 0xFF},
}

func testAnim(t *testing.T) *Animation {
	t.Helper()
	frames := [][]byte{
		{0, 0, 1, 1},
		{2, 2, 3, 3},
	}
	return NewAnimation(2, 2, 100, testPalette, frames)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	a := testAnim(t)
	blob, err := Encode(a)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := Decode(blob)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Width != 2 || got.Height != 2 || got.Frames() != 2 || got.Interval != 100 {
		t.Fatalf("decoded header mismatch: %+v", got)
	}
	for i := range a.frames {
		if !bytes.Equal(got.frames[i], a.frames[i]) {
			t.Errorf("frame %d mismatch: %v != %v", i, got.frames[i], a.frames[i])
		}
	}
}

func TestDecodeRejectsCorruptData(t *testing.T) {
	a := testAnim(t)
	blob, err := Encode(a)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	if _, err := Decode(nil); !errors.Is(err, ErrTruncated) {
		t.Errorf("nil blob: got %v, want ErrTruncated", err)
	}

	bad := append([]byte(nil), blob...)
	copy(bad, "NOPE")
	if _, err := Decode(bad); !errors.Is(err, ErrBadMagic) {
		t.Errorf("bad magic: got %v, want ErrBadMagic", err)
	}

	if _, err := Decode(blob[:len(blob)-3]); !errors.Is(err, ErrTruncated) {
		t.Errorf("truncated frames: got %v, want ErrTruncated", err)
	}

	trailing := append(append([]byte(nil), blob...), 0x00)
	if _, err := Decode(trailing); err == nil {
		t.Error("trailing bytes must fail")
	}

	badIdx := append([]byte(nil), blob...)
	badIdx[headerSize+1] = 7 // palette index out of range
	if _, err := Decode(badIdx); err == nil {
		t.Error("palette index > 3 must fail")
	}

	zeroGeom := append([]byte(nil), blob...)
	zeroGeom[4] = 0
	if _, err := Decode(zeroGeom); err == nil {
		t.Error("zero width must fail")
	}
}

type recordSurface struct {
	pixels  map[[2]int16]color.RGBA
	flushes int
}

func newRecordSurface() *recordSurface {
	return &recordSurface{pixels: make(map[[2]int16]color.RGBA)}
}

func (s *recordSurface) SetPixel(x, y int16, c color.RGBA) {
	s.pixels[[2]int16{x, y}] = c
}

func (s *recordSurface) Flush() error {
	s.flushes++
	return nil
}

func TestPlayerLoopsAndStops(t *testing.T) {
	a := testAnim(t)
	dst := newRecordSurface()
	p := NewPlayer(a, dst, 10, 20)

	if p.Running() {
		t.Fatal("player must start stopped")
	}

	p.Start(1000)
	if !p.Running() {
		t.Fatal("Start must mark running")
	}
	if dst.flushes != 1 {
		t.Fatalf("Start must draw frame 0, flushes=%d", dst.flushes)
	}
	if c := dst.pixels[[2]int16{10, 20}]; c != testPalette[0] {
		t.Errorf("frame 0 pixel = %v, want palette[0]", c)
	}

	// Before the interval elapses nothing advances.
	p.Tick(1099)
	if dst.flushes != 1 {
		t.Fatal("tick before interval must not draw")
	}

	p.Tick(1100)
	if dst.flushes != 2 {
		t.Fatal("tick at interval must draw the next frame")
	}
	if c := dst.pixels[[2]int16{10, 20}]; c != testPalette[2] {
		t.Errorf("frame 1 pixel = %v, want palette[2]", c)
	}

	// Next advance wraps back to frame 0.
	p.Tick(1200)
	if c := dst.pixels[[2]int16{10, 20}]; c != testPalette[0] {
		t.Errorf("wrapped pixel = %v, want palette[0]", c)
	}

	p.Stop()
	p.Tick(2000)
	if dst.flushes != 3 {
		t.Error("stopped player must not draw")
	}
}
