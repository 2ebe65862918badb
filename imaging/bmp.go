package imaging

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/katalvlaran/gridkit"
	"github.com/katalvlaran/gridkit/grid"
	"golang.org/x/image/bmp"
)

const (
	bmpFileHeaderSize = 14
	bmpInfoHeaderSize = 40
	bmpHeaderSize     = bmpFileHeaderSize + bmpInfoHeaderSize

	// 72 DPI
	bmpPixelsPerMeter = 2835
)

var le = binary.LittleEndian

// EncodeBMP writes img as an uncompressed 32-bit top-down BMP with BGRA
// pixels. Rows need no padding at four bytes per pixel.
func EncodeBMP(img *grid.Grid[Color]) []byte {
	w, h := img.Width(), img.Height()
	dataSize := w * h * 4

	out := make([]byte, 0, bmpHeaderSize+dataSize)
	out = append(out, 'B', 'M')
	out = le.AppendUint32(out, uint32(bmpHeaderSize+dataSize))
	out = le.AppendUint32(out, 0) // reserved
	out = le.AppendUint32(out, bmpHeaderSize)

	out = le.AppendUint32(out, bmpInfoHeaderSize)
	out = le.AppendUint32(out, uint32(int32(w)))
	out = le.AppendUint32(out, uint32(-int32(h))) // negative height: top-down
	out = le.AppendUint16(out, 1)                 // planes
	out = le.AppendUint16(out, 32)
	out = le.AppendUint32(out, 0) // BI_RGB
	out = le.AppendUint32(out, uint32(dataSize))
	out = le.AppendUint32(out, bmpPixelsPerMeter)
	out = le.AppendUint32(out, bmpPixelsPerMeter)
	out = le.AppendUint32(out, 0) // palette colours
	out = le.AppendUint32(out, 0) // important colours

	for _, c := range img.Data() {
		out = append(out, c.B(), c.G(), c.R(), c.A())
	}

	return out
}

// DecodeBMP reads a BMP. Uncompressed 24- and 32-bit files with a 40-byte
// info header are decoded directly, honouring row padding and the sign of
// the height; 24-bit pixels get full alpha. Everything else goes through
// golang.org/x/image/bmp.
func DecodeBMP(b []byte) (*grid.Grid[Color], error) {
	if len(b) < bmpHeaderSize || b[0] != 'B' || b[1] != 'M' {
		return nil, fmt.Errorf("DecodeBMP: missing header: %w", ErrFormat)
	}
	offset := int(le.Uint32(b[10:]))
	infoSize := le.Uint32(b[14:])
	width := int(int32(le.Uint32(b[18:])))
	height := int(int32(le.Uint32(b[22:])))
	bpp := int(le.Uint16(b[28:]))
	compression := le.Uint32(b[30:])

	if infoSize != bmpInfoHeaderSize || compression != 0 || (bpp != 24 && bpp != 32) {
		return decodeStdBMP(b, bpp)
	}

	topDown := height < 0
	if topDown {
		height = -height
	}
	if width < 0 {
		return nil, fmt.Errorf("DecodeBMP: width %d: %w", width, ErrFormat)
	}

	bytesPP := bpp / 8
	padding := (4 - (width*bytesPP)%4) % 4
	stride := width*bytesPP + padding
	if offset < bmpHeaderSize || offset > len(b) || (len(b)-offset)/max(stride, 1) < height {
		return nil, fmt.Errorf("DecodeBMP: %dx%d pixel data truncated: %w", width, height, ErrFormat)
	}

	data := make([]Color, width*height)
	for row := 0; row < height; row++ {
		y := row
		if !topDown {
			y = height - 1 - row
		}
		src := b[offset+row*stride:]
		dst := data[y*width : (y+1)*width]
		for x := range dst {
			p := src[x*bytesPP:]
			a := uint8(0xFF)
			if bytesPP == 4 {
				a = p[3]
			}
			dst[x] = RGBA8(p[2], p[1], p[0], a)
		}
	}

	return grid.MustNew(data, width, height), nil
}

func decodeStdBMP(b []byte, bpp int) (*grid.Grid[Color], error) {
	gridkit.Logger().Debug("imaging: delegating BMP variant", "bpp", bpp)
	img, err := bmp.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("DecodeBMP: %v: %w", err, ErrFormat)
	}

	return FromStd(img), nil
}
