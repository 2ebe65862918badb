package grid

import "golang.org/x/exp/constraints"

// Number is the element constraint for overlay arithmetic.
type Number interface {
	constraints.Integer | constraints.Float
}

// Map returns a new grid of the same dimensions holding fn applied to every
// cell of g, in row-major order.
// Complexity: O(W*H).
func Map[T, U any](g *Grid[T], fn func(T) U) *Grid[U] {
	data := make([]U, len(g.data))
	for i, v := range g.data {
		data[i] = fn(v)
	}

	return &Grid[U]{data: data, width: g.width, height: g.height}
}

// MapIndexed is Map with the cell coordinates passed to fn.
func MapIndexed[T, U any](g *Grid[T], fn func(x, y int, v T) U) *Grid[U] {
	data := make([]U, len(g.data))
	for i, v := range g.data {
		x, y := g.IndexToXY(i)
		data[i] = fn(x, y, v)
	}

	return &Grid[U]{data: data, width: g.width, height: g.height}
}

// Combine applies fn to every cell of the overlap between g and other,
// anchored at the origin (min width × min height), writing into g.
// Cells of g outside the overlap are left unchanged.
// Complexity: O(overlap area).
func (g *Grid[T]) Combine(other *Grid[T], fn func(a, b T) T) {
	w, h := min(g.width, other.width), min(g.height, other.height)
	for y := 0; y < h; y++ {
		l, r := y*g.width, y*other.width
		for x := 0; x < w; x++ {
			g.data[l+x] = fn(g.data[l+x], other.data[r+x])
		}
	}
}

func combined[T any](a, b *Grid[T], fn func(x, y T) T) *Grid[T] {
	out := a.Clone()
	out.Combine(b, fn)

	return out
}

// Add returns a copy of a with b added over their overlap.
func Add[T Number](a, b *Grid[T]) *Grid[T] { return combined(a, b, func(x, y T) T { return x + y }) }

// Sub returns a copy of a with b subtracted over their overlap.
func Sub[T Number](a, b *Grid[T]) *Grid[T] { return combined(a, b, func(x, y T) T { return x - y }) }

// Mul returns a copy of a multiplied by b over their overlap.
func Mul[T Number](a, b *Grid[T]) *Grid[T] { return combined(a, b, func(x, y T) T { return x * y }) }

// Div returns a copy of a divided by b over their overlap. Integer division
// by a zero cell panics, as the built-in operator does.
func Div[T Number](a, b *Grid[T]) *Grid[T] { return combined(a, b, func(x, y T) T { return x / y }) }

// AddInPlace adds b into a over their overlap.
func AddInPlace[T Number](a, b *Grid[T]) { a.Combine(b, func(x, y T) T { return x + y }) }

// SubInPlace subtracts b from a over their overlap.
func SubInPlace[T Number](a, b *Grid[T]) { a.Combine(b, func(x, y T) T { return x - y }) }

// MulInPlace multiplies a by b over their overlap.
func MulInPlace[T Number](a, b *Grid[T]) { a.Combine(b, func(x, y T) T { return x * y }) }

// DivInPlace divides a by b over their overlap.
func DivInPlace[T Number](a, b *Grid[T]) { a.Combine(b, func(x, y T) T { return x / y }) }

// And returns a copy of a bitwise-ANDed with b over their overlap.
func And[T constraints.Integer](a, b *Grid[T]) *Grid[T] {
	return combined(a, b, func(x, y T) T { return x & y })
}

// Or returns a copy of a bitwise-ORed with b over their overlap.
func Or[T constraints.Integer](a, b *Grid[T]) *Grid[T] {
	return combined(a, b, func(x, y T) T { return x | y })
}

// Xor returns a copy of a bitwise-XORed with b over their overlap.
func Xor[T constraints.Integer](a, b *Grid[T]) *Grid[T] {
	return combined(a, b, func(x, y T) T { return x ^ y })
}

// Shl returns a copy of a with each overlapping cell shifted left by the
// matching cell of b. A negative shift count panics, as with the operator.
func Shl[T constraints.Integer](a, b *Grid[T]) *Grid[T] {
	return combined(a, b, func(x, y T) T { return x << y })
}

// Shr is the right-shift counterpart of Shl.
func Shr[T constraints.Integer](a, b *Grid[T]) *Grid[T] {
	return combined(a, b, func(x, y T) T { return x >> y })
}

// Scale multiplies every cell by k in place.
func Scale[T Number](g *Grid[T], k T) {
	for i := range g.data {
		g.data[i] *= k
	}
}
