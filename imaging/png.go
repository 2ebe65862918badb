package imaging

import (
	"bytes"
	"fmt"
	"image/png"
	"io"

	"github.com/katalvlaran/gridkit/grid"
)

// EncodePNG writes img to w as a non-premultiplied RGBA PNG.
func EncodePNG(w io.Writer, img *grid.Grid[Color]) error {
	return png.Encode(w, ToStd(img))
}

// DecodePNG reads a PNG of any colour type.
func DecodePNG(r io.Reader) (*grid.Grid[Color], error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("DecodePNG: %v: %w", err, ErrFormat)
	}

	return FromStd(img), nil
}

func pngBytes(img *grid.Grid[Color]) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
