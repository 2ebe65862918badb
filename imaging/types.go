package imaging

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
)

// Sentinel errors for image codecs.
var (
	// ErrFormat indicates data that is not a valid image of the expected kind.
	ErrFormat = errors.New("imaging: malformed image data")

	// ErrBadSize indicates a negative target size. It wraps grid.ErrBadShape.
	ErrBadSize = fmt.Errorf("imaging: %w", grid.ErrBadShape)
)
