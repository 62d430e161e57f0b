package settings

import (
	"fmt"

	"pocketboard/hal"
)

// Record layout in flash:
//
//	magic   "PBLC"
//	version uint8
//	hue, sat, val uint8
//	enabled uint8 (0 or 1)
//	check   uint8 (xor of the five payload bytes)
const (
	storeMagic   = "PBLC"
	storeVersion = 1
	recordSize   = 4 + 1 + 4 + 1
)

// Store reads and writes the LED configuration at a fixed flash block.
// The magic marker doubles as the "storage initialized" flag: a blank or
// foreign block leaves the compiled-in defaults in place.
type Store struct {
	flash hal.Flash
	off   uint32
}

// NewStore places the record at the start of the last erase block, well away
// from the firmware image at the front of flash.
func NewStore(flash hal.Flash) *Store {
	var off uint32
	if bs := flash.EraseBlockBytes(); bs > 0 && flash.SizeBytes() >= bs {
		off = flash.SizeBytes() - bs
	}
	return &Store{flash: flash, off: off}
}

// NewStoreAt places the record at an explicit block offset, for tests.
func NewStoreAt(flash hal.Flash, off uint32) *Store {
	return &Store{flash: flash, off: off}
}

// Load returns the stored configuration, or Default when flash has never
// been written or the record does not check out.
func (s *Store) Load() (LEDConfig, error) {
	var buf [recordSize]byte
	if _, err := s.flash.ReadAt(buf[:], s.off); err != nil {
		return Default, fmt.Errorf("settings load: %w", err)
	}
	if string(buf[:4]) != storeMagic {
		return Default, nil
	}
	if buf[4] != storeVersion {
		return Default, nil
	}
	if checksum(buf[4:9]) != buf[9] {
		return Default, nil
	}
	return LEDConfig{
		Hue:     buf[5],
		Sat:     buf[6],
		Val:     buf[7],
		Enabled: buf[8] != 0,
	}, nil
}

// Save writes the whole record. Flash semantics require erasing the block
// before rewriting it.
func (s *Store) Save(cfg LEDConfig) error {
	bs := s.flash.EraseBlockBytes()
	if bs == 0 {
		return hal.ErrNotImplemented
	}
	if err := s.flash.Erase(s.off, bs); err != nil {
		return fmt.Errorf("settings save: %w", err)
	}

	var buf [recordSize]byte
	copy(buf[:4], storeMagic)
	buf[4] = storeVersion
	buf[5] = cfg.Hue
	buf[6] = cfg.Sat
	buf[7] = cfg.Val
	if cfg.Enabled {
		buf[8] = 1
	}
	buf[9] = checksum(buf[4:9])

	if _, err := s.flash.WriteAt(buf[:], s.off); err != nil {
		return fmt.Errorf("settings save: %w", err)
	}
	return nil
}

func checksum(p []byte) uint8 {
	var c uint8
	for _, b := range p {
		c ^= b
	}
	return c
}
