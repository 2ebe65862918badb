package imaging

import (
	"bytes"
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/storage"
	"github.com/spf13/afero"
)

// SaveBMP converts g with conv and writes it to path as a BMP.
func SaveBMP[T any](fs afero.Fs, path string, g *grid.Grid[T], conv Converter[T]) error {
	return storage.WriteBytes(fs, path, EncodeBMP(ToImage(g, conv)))
}

// LoadBMP reads a BMP from path and converts it with conv.
func LoadBMP[T any](fs afero.Fs, path string, conv Converter[T]) (*grid.Grid[T], error) {
	b, err := storage.ReadBytes(fs, path)
	if err != nil {
		return nil, err
	}
	img, err := DecodeBMP(b)
	if err != nil {
		return nil, fmt.Errorf("imaging: load %q: %w", path, err)
	}

	return FromImage(img, conv), nil
}

// SavePNG converts g with conv and writes it to path as a PNG.
func SavePNG[T any](fs afero.Fs, path string, g *grid.Grid[T], conv Converter[T]) error {
	b, err := pngBytes(ToImage(g, conv))
	if err != nil {
		return fmt.Errorf("imaging: save %q: %w", path, err)
	}

	return storage.WriteBytes(fs, path, b)
}

// LoadPNG reads a PNG from path and converts it with conv.
func LoadPNG[T any](fs afero.Fs, path string, conv Converter[T]) (*grid.Grid[T], error) {
	b, err := storage.ReadBytes(fs, path)
	if err != nil {
		return nil, err
	}
	img, err := DecodePNG(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("imaging: load %q: %w", path, err)
	}

	return FromImage(img, conv), nil
}
