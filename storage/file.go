package storage

import (
	"fmt"
	"path/filepath"

	"github.com/katalvlaran/gridkit"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/spf13/afero"
)

// filePerm is applied to files created by WriteBytes.
const filePerm = 0o644

// ReadBytes returns the full contents of path on fs. A nil fs means the OS
// filesystem.
func ReadBytes(fs afero.Fs, path string) ([]byte, error) {
	b, err := afero.ReadFile(orOS(fs), path)
	if err != nil {
		return nil, fmt.Errorf("storage: read %q: %w", path, err)
	}

	return b, nil
}

// WriteBytes replaces the contents of path on fs with b, creating missing
// parent directories.
func WriteBytes(fs afero.Fs, path string, b []byte) error {
	fs = orOS(fs)
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("storage: mkdir %q: %w", dir, err)
		}
	}
	if err := afero.WriteFile(fs, path, b, filePerm); err != nil {
		return fmt.Errorf("storage: write %q: %w", path, err)
	}
	gridkit.Logger().Debug("storage: wrote file", "path", path, "bytes", len(b))

	return nil
}

// SaveFile marshals g with c and writes it to path.
func SaveFile[T any](fs afero.Fs, path string, g *grid.Grid[T], c Codec[T]) error {
	return WriteBytes(fs, path, Marshal(g, c))
}

// LoadFile reads path and unmarshals it with c. A missing file yields an
// error matching fs.ErrNotExist.
func LoadFile[T any](fs afero.Fs, path string, c Codec[T]) (*grid.Grid[T], error) {
	b, err := ReadBytes(fs, path)
	if err != nil {
		return nil, err
	}
	g, err := Unmarshal(b, c)
	if err != nil {
		return nil, fmt.Errorf("storage: load %q: %w", path, err)
	}

	return g, nil
}

func orOS(fs afero.Fs) afero.Fs {
	if fs == nil {
		return afero.NewOsFs()
	}

	return fs
}
