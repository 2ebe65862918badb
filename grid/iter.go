package grid

import "iter"

// All yields (index, value) pairs in row-major order.
func (g *Grid[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range g.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values yields cell values in row-major order.
func (g *Grid[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Pixels yields (coordinate, value) pairs in row-major order.
func (g *Grid[T]) Pixels() iter.Seq2[XY, T] {
	return func(yield func(XY, T) bool) {
		x, y := 0, 0
		for _, v := range g.data {
			if !yield(XY{X: x, Y: y}, v) {
				return
			}
			x++
			if x == g.width {
				x, y = 0, y+1
			}
		}
	}
}

// Rows yields each row index with a live sub-slice of the backing buffer.
func (g *Grid[T]) Rows() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for y := 0; y < g.height; y++ {
			if !yield(y, g.data[y*g.width:(y+1)*g.width]) {
				return
			}
		}
	}
}

// Update replaces every cell with fn(x, y, value), in row-major order.
func (g *Grid[T]) Update(fn func(x, y int, v T) T) {
	x, y := 0, 0
	for i := range g.data {
		g.data[i] = fn(x, y, g.data[i])
		x++
		if x == g.width {
			x, y = 0, y+1
		}
	}
}

// Retain sets every cell for which keep reports false to the zero value.
func (g *Grid[T]) Retain(keep func(v T) bool) {
	var zero T
	for i, v := range g.data {
		if !keep(v) {
			g.data[i] = zero
		}
	}
}

// Count returns the number of cells satisfying pred.
func (g *Grid[T]) Count(pred func(v T) bool) int {
	n := 0
	for _, v := range g.data {
		if pred(v) {
			n++
		}
	}

	return n
}
