package region

import (
	"errors"
	"fmt"
)

// Sentinel errors for region construction and pathing.
var (
	// ErrOutOfRegion indicates a path endpoint that is not a region cell.
	ErrOutOfRegion = errors.New("region: coordinate outside region")

	// ErrPathNotFound indicates the end cell is unreachable from the start.
	ErrPathNotFound = errors.New("region: path not found")

	// ErrNilGrid indicates a nil grid argument.
	ErrNilGrid = errors.New("region: grid is nil")
)

const (
	ctxAt       = "At"
	ctxAtEq     = "AtEq"
	ctxFindPath = "FindPath"
)

func regionErrorf(method string, v any, err error) error {
	return fmt.Errorf("Region.%s(%v): %w", method, v, err)
}
