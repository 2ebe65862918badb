package imaging

import (
	"fmt"
	"image/color"
)

// Color is a packed 0xAARRGGBB colour with non-premultiplied channels.
type Color uint32

// RGBA8 packs four 8-bit channels.
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (c Color) A() uint8 { return uint8(c >> 24) }
func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

func (c Color) WithA(v uint8) Color { return c&0x00FFFFFF | Color(v)<<24 }
func (c Color) WithR(v uint8) Color { return c&0xFF00FFFF | Color(v)<<16 }
func (c Color) WithG(v uint8) Color { return c&0xFFFF00FF | Color(v)<<8 }
func (c Color) WithB(v uint8) Color { return c&0xFFFFFF00 | Color(v) }

// Shade is the integer mean of the red, green and blue channels.
func (c Color) Shade() uint8 {
	return uint8((uint16(c.R()) + uint16(c.G()) + uint16(c.B())) / 3)
}

// NRGBA returns c as a standard library colour.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) { return c.NRGBA().RGBA() }

// String formats c as 0xaarrggbb.
func (c Color) String() string { return fmt.Sprintf("0x%08x", uint32(c)) }

// ColorOf converts any colour to Color.
func ColorOf(c color.Color) Color {
	if v, ok := c.(Color); ok {
		return v
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)

	return RGBA8(n.R, n.G, n.B, n.A)
}
