package storage

import (
	"encoding/binary"
	"math"
)

var be = binary.BigEndian

// fixed is a codec whose values always occupy size bytes.
type fixed[T any] struct {
	size int
	put  func([]byte, T) []byte
	get  func([]byte) T
}

func (f fixed[T]) Encode(v T) []byte {
	return f.put(make([]byte, 0, f.size), v)
}

func (f fixed[T]) Decode(b []byte) (T, bool) {
	if len(b) != f.size {
		var zero T
		return zero, false
	}

	return f.get(b), true
}

func (f fixed[T]) Size(remaining []byte) int {
	if len(remaining) < f.size {
		return -1
	}

	return f.size
}

// Fixed-size codecs. Multi-byte values are big-endian.
var (
	Uint8 Codec[uint8] = fixed[uint8]{1,
		func(b []byte, v uint8) []byte { return append(b, v) },
		func(b []byte) uint8 { return b[0] }}
	Uint16 Codec[uint16] = fixed[uint16]{2, be.AppendUint16, be.Uint16}
	Uint32 Codec[uint32] = fixed[uint32]{4, be.AppendUint32, be.Uint32}
	Uint64 Codec[uint64] = fixed[uint64]{8, be.AppendUint64, be.Uint64}

	Int8 Codec[int8] = fixed[int8]{1,
		func(b []byte, v int8) []byte { return append(b, byte(v)) },
		func(b []byte) int8 { return int8(b[0]) }}
	Int16 Codec[int16] = fixed[int16]{2,
		func(b []byte, v int16) []byte { return be.AppendUint16(b, uint16(v)) },
		func(b []byte) int16 { return int16(be.Uint16(b)) }}
	Int32 Codec[int32] = fixed[int32]{4,
		func(b []byte, v int32) []byte { return be.AppendUint32(b, uint32(v)) },
		func(b []byte) int32 { return int32(be.Uint32(b)) }}
	Int64 Codec[int64] = fixed[int64]{8,
		func(b []byte, v int64) []byte { return be.AppendUint64(b, uint64(v)) },
		func(b []byte) int64 { return int64(be.Uint64(b)) }}

	Float32 Codec[float32] = fixed[float32]{4,
		func(b []byte, v float32) []byte { return be.AppendUint32(b, math.Float32bits(v)) },
		func(b []byte) float32 { return math.Float32frombits(be.Uint32(b)) }}
	Float64 Codec[float64] = fixed[float64]{8,
		func(b []byte, v float64) []byte { return be.AppendUint64(b, math.Float64bits(v)) },
		func(b []byte) float64 { return math.Float64frombits(be.Uint64(b)) }}

	// Bool is one byte; any non-zero byte decodes as true.
	Bool Codec[bool] = fixed[bool]{1,
		func(b []byte, v bool) []byte {
			if v {
				return append(b, 1)
			}
			return append(b, 0)
		},
		func(b []byte) bool { return b[0] != 0 }}
)

// countSize is the width of the u32 element count prefix.
const countSize = 4

// list encodes a u32 count followed by the elements.
type list[T any] struct {
	elem Codec[T]
	n    int // required length, -1 for any
}

// List returns a codec for slices of elem.
func List[T any](elem Codec[T]) Codec[[]T] {
	return list[T]{elem: elem, n: -1}
}

// Array returns a codec for slices of exactly n elements. It shares the
// List wire format and rejects any other length on decode.
func Array[T any](elem Codec[T], n int) Codec[[]T] {
	return list[T]{elem: elem, n: n}
}

func (l list[T]) Encode(v []T) []byte {
	out := be.AppendUint32(nil, uint32(len(v)))
	for _, e := range v {
		out = append(out, l.elem.Encode(e)...)
	}

	return out
}

func (l list[T]) Decode(b []byte) ([]T, bool) {
	v, n, ok := decodeList(b, l.elem)
	if !ok || n != len(b) || (l.n >= 0 && len(v) != l.n) {
		return nil, false
	}

	return v, true
}

func (l list[T]) Size(remaining []byte) int {
	_, n, ok := decodeList(remaining, l.elem)
	if !ok {
		return -1
	}

	return n
}

// decodeList reads a count-prefixed run of elements from the front of b and
// reports how many bytes it consumed.
func decodeList[T any](b []byte, elem Codec[T]) ([]T, int, bool) {
	if len(b) < countSize {
		return nil, 0, false
	}
	count := int(be.Uint32(b))
	off := countSize
	// each element takes at least one byte
	if count > len(b)-off {
		return nil, 0, false
	}
	out := make([]T, 0, count)
	for i := 0; i < count; i++ {
		sz := elem.Size(b[off:])
		if sz < 0 || sz > len(b)-off {
			return nil, 0, false
		}
		v, ok := elem.Decode(b[off : off+sz])
		if !ok {
			return nil, 0, false
		}
		out = append(out, v)
		off += sz
	}

	return out, off, true
}

type stringCodec struct{}

// String encodes a u32 byte count followed by the UTF-8 bytes.
var String Codec[string] = stringCodec{}

func (stringCodec) Encode(v string) []byte {
	out := be.AppendUint32(make([]byte, 0, countSize+len(v)), uint32(len(v)))

	return append(out, v...)
}

func (stringCodec) Decode(b []byte) (string, bool) {
	if len(b) < countSize || int(be.Uint32(b)) != len(b)-countSize {
		return "", false
	}

	return string(b[countSize:]), true
}

func (stringCodec) Size(remaining []byte) int {
	if len(remaining) < countSize {
		return -1
	}
	n := int(be.Uint32(remaining))
	if n > len(remaining)-countSize {
		return -1
	}

	return countSize + n
}
