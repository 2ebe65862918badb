package storage

import (
	"github.com/katalvlaran/gridkit/grid"
)

// headerSize covers width, height and element count.
const headerSize = 3 * countSize

// Marshal encodes g as [width][height][count][elements...].
// Complexity: O(W*H) element encodes.
func Marshal[T any](g *grid.Grid[T], c Codec[T]) []byte {
	out := make([]byte, 0, headerSize+g.Len())
	out = be.AppendUint32(out, uint32(g.Width()))
	out = be.AppendUint32(out, uint32(g.Height()))
	out = be.AppendUint32(out, uint32(g.Len()))
	for _, v := range g.Data() {
		out = append(out, c.Encode(v)...)
	}

	return out
}

// Unmarshal decodes a grid written by Marshal. The whole of b must be consumed.
//
// Errors: ErrTruncated if b ends early, ErrFormat for a count that differs
// from width*height, an element the codec rejects or trailing bytes.
func Unmarshal[T any](b []byte, c Codec[T]) (*grid.Grid[T], error) {
	g, n, err := unmarshal(b, c)
	if err != nil {
		return nil, err
	}
	if n != len(b) {
		return nil, storageErrorf("Unmarshal", n, ErrFormat)
	}

	return g, nil
}

func unmarshal[T any](b []byte, c Codec[T]) (*grid.Grid[T], int, error) {
	if len(b) < headerSize {
		return nil, 0, storageErrorf("Unmarshal", len(b), ErrTruncated)
	}
	w, h, n := be.Uint32(b[0:]), be.Uint32(b[4:]), be.Uint32(b[8:])
	if uint64(w)*uint64(h) != uint64(n) {
		return nil, 8, storageErrorf("Unmarshal", 8, ErrFormat)
	}
	count := int(n)

	off := headerSize
	data := make([]T, 0, min(count, len(b)-off))
	for i := 0; i < count; i++ {
		sz := c.Size(b[off:])
		if sz < 0 || sz > len(b)-off {
			return nil, off, storageErrorf("Unmarshal", off, ErrTruncated)
		}
		v, ok := c.Decode(b[off : off+sz])
		if !ok {
			return nil, off, storageErrorf("Unmarshal", off, ErrFormat)
		}
		data = append(data, v)
		off += sz
	}

	g, err := grid.New(data, int(w), int(h))
	if err != nil {
		return nil, off, storageErrorf("Unmarshal", 0, ErrFormat)
	}

	return g, off, nil
}

type gridCodec[T any] struct {
	elem Codec[T]
}

// GridOf returns a codec for whole grids so grids can be nested in cells or lists.
func GridOf[T any](elem Codec[T]) Codec[*grid.Grid[T]] {
	return gridCodec[T]{elem: elem}
}

func (gc gridCodec[T]) Encode(g *grid.Grid[T]) []byte { return Marshal(g, gc.elem) }

func (gc gridCodec[T]) Decode(b []byte) (*grid.Grid[T], bool) {
	g, err := Unmarshal(b, gc.elem)

	return g, err == nil
}

func (gc gridCodec[T]) Size(remaining []byte) int {
	_, n, err := unmarshal(remaining, gc.elem)
	if err != nil {
		return -1
	}

	return n
}
