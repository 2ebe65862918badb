package grid

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Grid is a width×height container stored as one row-major slice.
// Invariant: len(data) == width*height for the lifetime of the value.
type Grid[T any] struct {
	data   []T
	width  int
	height int
}

// cellCount returns width*height, or false when a dimension is negative or
// the product overflows int.
func cellCount(width, height int) (int, bool) {
	if width < 0 || height < 0 || (width > 0 && height > math.MaxInt/width) {
		return 0, false
	}

	return width * height, true
}

// New wraps data as a width×height grid without copying.
// Returns ErrBadShape if a dimension is negative, width*height overflows or
// len(data) != width*height.
// Complexity: O(1).
func New[T any](data []T, width, height int) (*Grid[T], error) {
	if n, ok := cellCount(width, height); !ok || len(data) != n {
		return nil, fmt.Errorf("Grid.%s(%dx%d, len=%d): %w", ctxNew, width, height, len(data), ErrBadShape)
	}

	return &Grid[T]{data: data, width: width, height: height}, nil
}

// MustNew is like New but panics on a shape violation. Intended for literals
// in tests and package-level variables.
func MustNew[T any](data []T, width, height int) *Grid[T] {
	g, err := New(data, width, height)
	if err != nil {
		panic(err)
	}

	return g
}

// Empty returns a 0×0 grid.
func Empty[T any]() *Grid[T] {
	return &Grid[T]{data: []T{}}
}

// Filled returns a width×height grid with every cell set to v.
// Negative dimensions are treated as zero; a cell count that overflows int
// panics with ErrBadShape.
// Complexity: O(W*H).
func Filled[T any](width, height int, v T) *Grid[T] {
	width, height = max(width, 0), max(height, 0)
	n, ok := cellCount(width, height)
	if !ok {
		panic(fmt.Errorf("Grid.Filled(%dx%d): %w", width, height, ErrBadShape))
	}
	data := make([]T, n)
	for i := range data {
		data[i] = v
	}

	return &Grid[T]{data: data, width: width, height: height}
}

// From2D copies nested rows into a new grid. All rows must share one length;
// otherwise ErrBadShape is returned. An empty input yields an empty grid.
// Complexity: O(W*H).
func From2D[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 {
		return Empty[T](), nil
	}
	w := len(rows[0])
	data := make([]T, 0, w*len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("From2D: row %d has %d cells, want %d: %w", y, len(row), w, ErrBadShape)
		}
		data = append(data, row...)
	}
	if w == 0 {
		return Empty[T](), nil
	}

	return &Grid[T]{data: data, width: w, height: len(rows)}, nil
}

// CheckersBoard builds a square board of count×count tiles, each tile
// cell×cell cells, alternating a and b starting with a at the top-left.
func CheckersBoard[T any](count, cell int, a, b T) *Grid[T] {
	size := max(count, 0) * max(cell, 0)
	g := Filled(size, size, a)
	for i := range g.data {
		x, y := i%size, i/size
		if (x/cell+y/cell)%2 == 1 {
			g.data[i] = b
		}
	}

	return g
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Len returns width*height.
func (g *Grid[T]) Len() int { return len(g.data) }

// IsEmpty reports whether the grid holds no cells.
func (g *Grid[T]) IsEmpty() bool { return len(g.data) == 0 }

// Bounds returns the full rectangle {0, 0, Width, Height}.
func (g *Grid[T]) Bounds() Rect { return Rect{W: g.width, H: g.height} }

// SameSize reports whether g has the given dimensions.
func (g *Grid[T]) SameSize(width, height int) bool {
	return g.width == width && g.height == height
}

// Data returns the live backing slice. Writes through it are visible in g;
// its length must not be changed.
func (g *Grid[T]) Data() []T { return g.data }

// Data2D copies the grid into nested rows.
func (g *Grid[T]) Data2D() [][]T {
	rows := make([][]T, g.height)
	for y := range rows {
		rows[y] = slices.Clone(g.data[y*g.width : (y+1)*g.width])
	}

	return rows
}

// Clone returns a deep copy of the grid structure (elements are copied by value).
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{data: slices.Clone(g.data), width: g.width, height: g.height}
}

// XYToIndex returns y*width + x. No bounds check.
func (g *Grid[T]) XYToIndex(x, y int) int { return y*g.width + x }

// IndexToXY returns (i % width, i / width). No bounds check.
// A zero-width grid maps every index to (0, 0).
func (g *Grid[T]) IndexToXY(i int) (int, int) {
	if g.width == 0 {
		return 0, 0
	}

	return i % g.width, i / g.width
}

// XYOf converts any Indexer to its coordinate pair for this grid.
func (g *Grid[T]) XYOf(ix Indexer) XY {
	if p, ok := ix.(XY); ok {
		return p
	}
	x, y := g.IndexToXY(ix.GridIndex(g.width))

	return XY{X: x, Y: y}
}

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IndexValid reports whether i addresses a cell.
func (g *Grid[T]) IndexValid(i int) bool { return i >= 0 && i < len(g.data) }

// Resolve converts ix to a linear index and reports whether it is in bounds.
// Coordinate pairs are checked per axis so that an overflowing X never
// aliases a cell of the next row.
func (g *Grid[T]) Resolve(ix Indexer) (int, bool) {
	if p, ok := ix.(XY); ok {
		return p.GridIndex(g.width), g.InBounds(p.X, p.Y)
	}
	i := ix.GridIndex(g.width)

	return i, g.IndexValid(i)
}

// At returns the cell addressed by ix, or ErrOutOfBounds.
// Complexity: O(1).
func (g *Grid[T]) At(ix Indexer) (T, error) {
	i, ok := g.Resolve(ix)
	if !ok {
		var zero T
		return zero, gridErrorf(ctxAt, i, ErrOutOfBounds)
	}

	return g.data[i], nil
}

// Set stores v at the cell addressed by ix, or returns ErrOutOfBounds.
// Complexity: O(1).
func (g *Grid[T]) Set(ix Indexer, v T) error {
	i, ok := g.Resolve(ix)
	if !ok {
		return gridErrorf(ctxSet, i, ErrOutOfBounds)
	}
	g.data[i] = v

	return nil
}

// Get is an unchecked read of index i for hot loops. It panics when i is
// out of range, like a slice access.
func (g *Grid[T]) Get(i int) T { return g.data[i] }

// Put is an unchecked write of index i for hot loops.
func (g *Grid[T]) Put(i int, v T) { g.data[i] = v }

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// IndexNeighbors returns the valid 4-connected neighbors of i in the fixed
// order left, top, right, bottom. Neighbors never wrap across rows.
// Complexity: O(1).
func (g *Grid[T]) IndexNeighbors(i int) []int {
	return g.AppendIndexNeighbors(make([]int, 0, 4), i)
}

// AppendIndexNeighbors appends the neighbors of i to dst (same order as
// IndexNeighbors) and returns the extended slice. Reusing dst keeps
// traversal loops allocation-free.
func (g *Grid[T]) AppendIndexNeighbors(dst []int, i int) []int {
	w := g.width
	if w == 0 || !g.IndexValid(i) {
		return dst
	}
	x := i % w
	if x > 0 {
		dst = append(dst, i-1)
	}
	if i >= w {
		dst = append(dst, i-w)
	}
	if x != w-1 {
		dst = append(dst, i+1)
	}
	if i < len(g.data)-w {
		dst = append(dst, i+w)
	}

	return dst
}

// IsEdge reports whether cell i lies on the outer border of the grid.
func (g *Grid[T]) IsEdge(i int) bool {
	x, y := g.IndexToXY(i)

	return x == 0 || y == 0 || x == g.width-1 || y == g.height-1
}

// Equal reports whether a and b have the same dimensions and equal cells.
func Equal[T comparable](a, b *Grid[T]) bool {
	return a.width == b.width && a.height == b.height && slices.Equal(a.data, b.data)
}

// EqualFunc is Equal with a caller-supplied cell comparison.
func EqualFunc[T, U any](a *Grid[T], b *Grid[U], eq func(T, U) bool) bool {
	return a.width == b.width && a.height == b.height && slices.EqualFunc(a.data, b.data, eq)
}

// String renders one line per row, cells formatted with %v and
// separated by a single space.
func (g *Grid[T]) String() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%v", g.data[y*g.width+x])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
