package gfx

import "image/color"

// HSV is an 8-bit-per-channel HSV color, the format the LED configuration is
// stored in. Hue wraps over the full byte range.
type HSV struct {
	H uint8
	S uint8
	V uint8
}

// RGBA converts to a displayable RGB color using integer math only.
func (c HSV) RGBA() color.RGBA {
	if c.S == 0 {
		return color.RGBA{R: c.V, G: c.V, B: c.V, A: 0xFF}
	}

	region := c.H / 43
	remainder := (c.H - region*43) * 6

	v := uint16(c.V)
	s := uint16(c.S)
	rem := uint16(remainder)

	p := uint8(v * (255 - s) / 255)
	q := uint8(v * (255 - s*rem/255) / 255)
	t := uint8(v * (255 - s*(255-rem)/255) / 255)

	switch region {
	case 0:
		return color.RGBA{R: c.V, G: t, B: p, A: 0xFF}
	case 1:
		return color.RGBA{R: q, G: c.V, B: p, A: 0xFF}
	case 2:
		return color.RGBA{R: p, G: c.V, B: t, A: 0xFF}
	case 3:
		return color.RGBA{R: p, G: q, B: c.V, A: 0xFF}
	case 4:
		return color.RGBA{R: t, G: p, B: c.V, A: 0xFF}
	default:
		return color.RGBA{R: c.V, G: p, B: q, A: 0xFF}
	}
}

var (
	Black = color.RGBA{A: 0xFF}
	White = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)
