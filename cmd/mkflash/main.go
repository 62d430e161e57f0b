//go:build !tinygo

// Command mkflash creates and inspects the flash image the host simulator
// uses, so a simulator run can start from a known LED configuration.
//
//	mkflash -o pocketboard.flash -hue 200 -led
//	mkflash -o pocketboard.flash -show
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"pocketboard/settings"
)

const (
	defaultFlashSize = 2 * 1024 * 1024
	eraseBlockBytes  = 4096
)

var errWriteRequiresErase = errors.New("flash write requires erase")

// fileFlash gives the settings store NOR semantics over a plain file: erase
// fills a block with 0xFF, writes may only clear bits.
type fileFlash struct {
	f    *os.File
	size uint32
}

func openFlash(path string, size uint32) (*fileFlash, error) {
	if size == 0 || size%eraseBlockBytes != 0 {
		return nil, fmt.Errorf("size %d not a multiple of the erase block", size)
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}
	if st, err := f.Stat(); err == nil && st.Size() > 0 {
		size = uint32(st.Size())
	} else if err := f.Truncate(int64(size)); err != nil {
		_ = f.Close()
		return nil, err
	}
	return &fileFlash{f: f, size: size}, nil
}

func (f *fileFlash) SizeBytes() uint32       { return f.size }
func (f *fileFlash) EraseBlockBytes() uint32 { return eraseBlockBytes }

func (f *fileFlash) ReadAt(p []byte, off uint32) (int, error) {
	return f.f.ReadAt(p, int64(off))
}

func (f *fileFlash) WriteAt(p []byte, off uint32) (int, error) {
	buf := make([]byte, len(p))
	if _, err := f.f.ReadAt(buf, int64(off)); err != nil && !errors.Is(err, io.EOF) {
		return 0, err
	}
	for i := range p {
		if buf[i]&p[i] != p[i] {
			return 0, errWriteRequiresErase
		}
	}
	return f.f.WriteAt(p, int64(off))
}

func (f *fileFlash) Erase(off, size uint32) error {
	scratch := make([]byte, eraseBlockBytes)
	for i := range scratch {
		scratch[i] = 0xFF
	}
	for size > 0 {
		if _, err := f.f.WriteAt(scratch, int64(off)); err != nil {
			return err
		}
		off += eraseBlockBytes
		size -= eraseBlockBytes
	}
	return nil
}

func main() {
	path := flag.String("o", "pocketboard.flash", "flash image path")
	size := flag.Uint("size", defaultFlashSize, "image size in bytes when creating")
	show := flag.Bool("show", false, "print the stored configuration and exit")
	hue := flag.Uint("hue", uint(settings.Default.Hue), "LED hue (0-255)")
	sat := flag.Uint("sat", uint(settings.Default.Sat), "LED saturation (0-255)")
	val := flag.Uint("val", uint(settings.Default.Val), "LED value (0-255)")
	led := flag.Bool("led", settings.Default.Enabled, "LED enabled")
	flag.Parse()

	flash, err := openFlash(*path, uint32(*size))
	if err != nil {
		fmt.Fprintln(os.Stderr, "mkflash:", err)
		os.Exit(1)
	}
	store := settings.NewStore(flash)

	if *show {
		cfg, err := store.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "mkflash:", err)
			os.Exit(1)
		}
		fmt.Printf("hue=%d sat=%d val=%d enabled=%v\n", cfg.Hue, cfg.Sat, cfg.Val, cfg.Enabled)
		return
	}

	for name, v := range map[string]uint{"hue": *hue, "sat": *sat, "val": *val} {
		if v > 255 {
			fmt.Fprintf(os.Stderr, "mkflash: %s %d out of range\n", name, v)
			os.Exit(1)
		}
	}
	cfg := settings.LEDConfig{
		Hue:     uint8(*hue),
		Sat:     uint8(*sat),
		Val:     uint8(*val),
		Enabled: *led,
	}
	if err := store.Save(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "mkflash:", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s: hue=%d sat=%d val=%d enabled=%v\n", *path, cfg.Hue, cfg.Sat, cfg.Val, cfg.Enabled)
}
