//go:build tinygo && (rp2040 || rp2350)

package hal

import (
	"fmt"
	"machine"

	"tinygo.org/x/drivers/st7735"
)

// boardDisplay is an RGB565 shadow buffer in RAM pushed to the ST7735 panel
// on Present. The panel is mounted upside down, hence the 180 degree rotation.
type boardDisplay struct {
	dev    st7735.Device
	width  int
	height int
	buf    []byte
	tx     []byte
}

func newBoardDisplay() (*boardDisplay, error) {
	if err := machine.SPI0.Configure(machine.SPIConfig{
		SCK:       machine.GP2,
		SDO:       machine.GP3,
		Frequency: 32_000_000,
	}); err != nil {
		return nil, fmt.Errorf("display: SPI0 configure: %w", err)
	}

	dev := st7735.New(machine.SPI0, machine.GP28, machine.GP29, machine.GP1, machine.NoPin)
	dev.Configure(st7735.Config{
		Width:    displayWidth,
		Height:   displayHeight,
		Rotation: st7735.ROTATION_180,
	})

	d := &boardDisplay{
		dev:    dev,
		width:  displayWidth,
		height: displayHeight,
		buf:    make([]byte, displayWidth*displayHeight*2),
		tx:     make([]byte, displayWidth*displayHeight*2),
	}
	return d, nil
}

func (d *boardDisplay) Width() int          { return d.width }
func (d *boardDisplay) Height() int         { return d.height }
func (d *boardDisplay) Format() PixelFormat { return PixelFormatRGB565 }
func (d *boardDisplay) StrideBytes() int    { return d.width * 2 }
func (d *boardDisplay) Buffer() []byte      { return d.buf }

func (d *boardDisplay) ClearRGB(r, g, b uint8) {
	pixel := RGB565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(d.buf); i += 2 {
		d.buf[i] = lo
		d.buf[i+1] = hi
	}
}

func (d *boardDisplay) Present() error {
	// The shadow buffer is little-endian; the panel wants big-endian pixels.
	for i := 0; i+1 < len(d.buf); i += 2 {
		d.tx[i] = d.buf[i+1]
		d.tx[i+1] = d.buf[i]
	}
	return d.dev.DrawRGBBitmap8(0, 0, d.tx, int16(d.width), int16(d.height))
}
