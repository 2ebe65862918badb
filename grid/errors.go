package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and access. Match them with errors.Is.
var (
	// ErrOutOfBounds indicates an index or coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: index out of bounds")

	// ErrBadShape indicates negative dimensions, a buffer whose length is not
	// width*height, or ragged nested rows.
	ErrBadShape = errors.New("grid: invalid shape")

	// ErrDimensionMismatch indicates two operands whose width/height differ
	// where identical dimensions are required.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")
)

const (
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxNew  = "New"
	ctxTake = "Take"
)

// gridErrorf attaches the method name and the offending index to err.
func gridErrorf(method string, index int, err error) error {
	return fmt.Errorf("Grid.%s(%d): %w", method, index, err)
}
