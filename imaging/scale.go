package imaging

import (
	"fmt"
	"image"

	"github.com/katalvlaran/gridkit/grid"
	"golang.org/x/image/draw"
)

// Interpolation selects the resampling kernel used by Scale.
type Interpolation int

const (
	NearestNeighbor Interpolation = iota
	ApproxBiLinear
	BiLinear
	CatmullRom
)

func (in Interpolation) scaler() draw.Scaler {
	switch in {
	case ApproxBiLinear:
		return draw.ApproxBiLinear
	case BiLinear:
		return draw.BiLinear
	case CatmullRom:
		return draw.CatmullRom
	default:
		return draw.NearestNeighbor
	}
}

// Scale resamples img to width×height. An empty source yields a transparent
// grid of the requested size.
func Scale(img *grid.Grid[Color], width, height int, in Interpolation) (*grid.Grid[Color], error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("Scale(%dx%d): %w", width, height, ErrBadSize)
	}
	if img.IsEmpty() || width == 0 || height == 0 {
		return grid.Filled(width, height, Color(0)), nil
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	src := ToStd(img)
	in.scaler().Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return FromStd(dst), nil
}
