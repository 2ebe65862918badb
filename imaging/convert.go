package imaging

import (
	"image"

	"github.com/katalvlaran/gridkit/grid"
)

// Converter maps element values to and from Color.
type Converter[T any] interface {
	ToColor(v T) Color
	FromColor(c Color) T
}

type funcConverter[T any] struct {
	to   func(T) Color
	from func(Color) T
}

func (f funcConverter[T]) ToColor(v T) Color   { return f.to(v) }
func (f funcConverter[T]) FromColor(c Color) T { return f.from(c) }

// ConverterFunc builds a Converter from a pair of functions.
func ConverterFunc[T any](to func(T) Color, from func(Color) T) Converter[T] {
	return funcConverter[T]{to: to, from: from}
}

// Built-in converters.
var (
	// Identity passes colours through.
	Identity = ConverterFunc(func(c Color) Color { return c }, func(c Color) Color { return c })

	// Uint32 treats the value as 0xAARRGGBB.
	Uint32 = ConverterFunc(func(v uint32) Color { return Color(v) }, func(c Color) uint32 { return uint32(c) })

	// Gray maps v to opaque (v, v, v) and reads back the shade.
	Gray = ConverterFunc(func(v uint8) Color { return RGBA8(v, v, v, 0xFF) }, Color.Shade)

	// Bool maps true to opaque green and false to transparent black. Any
	// non-zero colour reads back as true.
	Bool = ConverterFunc(
		func(v bool) Color {
			if v {
				return 0xFF00FF00
			}
			return 0
		},
		func(c Color) bool { return c != 0 })

	// Bytes4 treats the array as big-endian [a, r, g, b].
	Bytes4 = ConverterFunc(
		func(v [4]byte) Color { return RGBA8(v[1], v[2], v[3], v[0]) },
		func(c Color) [4]byte { return [4]byte{c.A(), c.R(), c.G(), c.B()} })
)

// ToImage converts every cell of g to a Color.
func ToImage[T any](g *grid.Grid[T], conv Converter[T]) *grid.Grid[Color] {
	return grid.Map(g, conv.ToColor)
}

// FromImage converts every colour of img back to T.
func FromImage[T any](img *grid.Grid[Color], conv Converter[T]) *grid.Grid[T] {
	return grid.Map(img, conv.FromColor)
}

// ToStd copies g into a new *image.NRGBA anchored at the origin.
func ToStd(g *grid.Grid[Color]) *image.NRGBA {
	w, h := g.Width(), g.Height()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i, c := range g.Data() {
		p := img.Pix[i*4 : i*4+4 : i*4+4]
		p[0], p[1], p[2], p[3] = c.R(), c.G(), c.B(), c.A()
	}

	return img
}

// FromStd copies img into a grid. The result is indexed from img.Bounds().Min.
// Complexity: O(W*H).
func FromStd(img image.Image) *grid.Grid[Color] {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	data := make([]Color, 0, w*h)

	if n, ok := img.(*image.NRGBA); ok {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			row := n.Pix[n.PixOffset(b.Min.X, y):]
			for x := 0; x < w; x++ {
				p := row[x*4 : x*4+4 : x*4+4]
				data = append(data, RGBA8(p[0], p[1], p[2], p[3]))
			}
		}

		return grid.MustNew(data, w, h)
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			data = append(data, ColorOf(img.At(x, y)))
		}
	}

	return grid.MustNew(data, w, h)
}
