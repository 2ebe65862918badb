// Package storage serialises grids to bytes and files.
//
// A Codec[T] converts one cell value to and from its big-endian byte form.
// Fixed-size codecs cover the numeric kinds and bool; String, List and Array
// carry a u32 element count ahead of their payload, and GridOf nests whole
// grids. A marshalled grid is
//
//	[width u32][height u32][count u32][element ... element]
//
// where count must equal width*height on decode.
//
// File helpers work on an afero.Fs so callers can substitute an in-memory
// filesystem:
//
//	fs := afero.NewMemMapFs()
//	_ = storage.SaveFile(fs, "level.grid", g, storage.Int32)
//	back, err := storage.LoadFile(fs, "level.grid", storage.Int32)
package storage
