package storage

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Unmarshal and LoadFile.
var (
	// ErrTruncated indicates the input ended before a complete value.
	ErrTruncated = errors.New("storage: truncated input")

	// ErrFormat indicates structurally invalid input: a count that does not
	// match the dimensions, an undecodable element or trailing bytes.
	ErrFormat = errors.New("storage: malformed input")
)

// Codec converts values of T to and from bytes.
//
// Size reports how many leading bytes of remaining belong to the next value,
// or -1 if that cannot be determined. Decode receives exactly those bytes.
type Codec[T any] interface {
	Encode(v T) []byte
	Decode(b []byte) (T, bool)
	Size(remaining []byte) int
}

// storageErrorf attaches the operation name and byte offset to err.
func storageErrorf(op string, offset int, err error) error {
	return fmt.Errorf("storage.%s(@%d): %w", op, offset, err)
}
