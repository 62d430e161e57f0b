package settings

import (
	"testing"

	"pocketboard/hal"
)

// memFlash mimics real NOR flash: erase sets 0xFF, writes can only clear bits.
type memFlash struct {
	buf []byte
}

const memFlashBlock = 4096

func newMemFlash(blocks int) *memFlash {
	buf := make([]byte, blocks*memFlashBlock)
	for i := range buf {
		buf[i] = 0x00 // factory-blank, not erased: forces the erase path
	}
	return &memFlash{buf: buf}
}

func (f *memFlash) SizeBytes() uint32       { return uint32(len(f.buf)) }
func (f *memFlash) EraseBlockBytes() uint32 { return memFlashBlock }

func (f *memFlash) ReadAt(p []byte, off uint32) (int, error) {
	return copy(p, f.buf[off:]), nil
}

func (f *memFlash) WriteAt(p []byte, off uint32) (int, error) {
	for i, b := range p {
		if f.buf[off+uint32(i)]&b != b {
			return 0, hal.ErrNotImplemented
		}
		f.buf[off+uint32(i)] = b
	}
	return len(p), nil
}

func (f *memFlash) Erase(off, size uint32) error {
	for i := off; i < off+size; i++ {
		f.buf[i] = 0xFF
	}
	return nil
}

func TestLoadUninitializedKeepsDefaults(t *testing.T) {
	s := NewStore(newMemFlash(2))
	cfg, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default {
		t.Errorf("blank flash must load defaults, got %+v", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	flash := newMemFlash(2)
	s := NewStore(flash)

	want := LEDConfig{Hue: 200, Sat: 120, Val: 45, Enabled: true}
	if err := s.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := NewStore(flash).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("round trip: got %+v, want %+v", got, want)
	}
}

func TestLoadRejectsCorruptRecord(t *testing.T) {
	flash := newMemFlash(2)
	s := NewStore(flash)
	if err := s.Save(LEDConfig{Hue: 10, Sat: 20, Val: 30, Enabled: false}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Clearing a payload bit breaks the checksum.
	off := flash.SizeBytes() - memFlashBlock
	flash.buf[off+5] &^= 0x02
	cfg, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default {
		t.Errorf("corrupt record must load defaults, got %+v", cfg)
	}
}

func TestSaveOverwritesPreviousRecord(t *testing.T) {
	flash := newMemFlash(2)
	s := NewStore(flash)

	if err := s.Save(LEDConfig{Hue: 1, Sat: 2, Val: 3, Enabled: true}); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	want := LEDConfig{Hue: 99, Sat: 98, Val: 97, Enabled: false}
	if err := s.Save(want); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestSaturatingSteps(t *testing.T) {
	if got := AddStep(250); got != 255 {
		t.Errorf("AddStep(250) = %d, want 255", got)
	}
	if got := AddStep(255); got != 255 {
		t.Errorf("AddStep(255) = %d, want 255", got)
	}
	if got := SubStep(5); got != 0 {
		t.Errorf("SubStep(5) = %d, want 0", got)
	}
	if got := SubStep(0); got != 0 {
		t.Errorf("SubStep(0) = %d, want 0", got)
	}
	if got := AddStep(100); got != 110 {
		t.Errorf("AddStep(100) = %d, want 110", got)
	}
	if got := SubStep(100); got != 90 {
		t.Errorf("SubStep(100) = %d, want 90", got)
	}

	// Repeated application stays in range from any start.
	v := uint8(3)
	for i := 0; i < 50; i++ {
		v = AddStep(v)
	}
	if v != 255 {
		t.Errorf("repeated AddStep = %d, want 255", v)
	}
	for i := 0; i < 50; i++ {
		v = SubStep(v)
	}
	if v != 0 {
		t.Errorf("repeated SubStep = %d, want 0", v)
	}
}
