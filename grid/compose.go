package grid

import "fmt"

// Append overwrites the top-left part of g with addition. Cells of addition
// that fall outside g are ignored.
func (g *Grid[T]) Append(addition *Grid[T]) {
	g.AppendAt(addition, Index(0))
}

// AppendAt overwrites the part of g covered by addition placed with its
// top-left corner at offset. Cells of addition that fall outside g are
// ignored; an offset outside g is a no-op.
// Complexity: O(overlap area).
func (g *Grid[T]) AppendAt(addition *Grid[T], offset Indexer) {
	at := g.XYOf(offset)
	overlap := Rect{X: at.X, Y: at.Y, W: addition.width, H: addition.height}.Intersect(g.width, g.height)
	if overlap.Empty() {
		return
	}
	// Source origin inside addition; non-zero when offset is negative.
	sx, sy := overlap.X-at.X, overlap.Y-at.Y
	for row := 0; row < overlap.H; row++ {
		dst := (overlap.Y+row)*g.width + overlap.X
		src := (sy+row)*addition.width + sx
		copy(g.data[dst:dst+overlap.W], addition.data[src:src+overlap.W])
	}
}

// SubGrid returns an owned copy of the cells inside r, clipped to g.
// A rectangle entirely outside g yields an empty grid.
// Complexity: O(r.W*r.H).
func (g *Grid[T]) SubGrid(r Rect) *Grid[T] {
	clip := r.Intersect(g.width, g.height)
	if clip.Empty() {
		return Empty[T]()
	}
	data := make([]T, 0, clip.W*clip.H)
	for y := clip.Y; y < clip.Y+clip.H; y++ {
		row := y*g.width + clip.X
		data = append(data, g.data[row:row+clip.W]...)
	}

	return &Grid[T]{data: data, width: clip.W, height: clip.H}
}

// SubGridRefs returns a grid of pointers into g's buffer for the cells
// inside r, clipped to g. Writes through the pointers modify g; the view
// must not be used after g's buffer is replaced.
func SubGridRefs[T any](g *Grid[T], r Rect) *Grid[*T] {
	clip := r.Intersect(g.width, g.height)
	if clip.Empty() {
		return Empty[*T]()
	}
	data := make([]*T, 0, clip.W*clip.H)
	for y := clip.Y; y < clip.Y+clip.H; y++ {
		for x := clip.X; x < clip.X+clip.W; x++ {
			data = append(data, &g.data[y*g.width+x])
		}
	}

	return &Grid[*T]{data: data, width: clip.W, height: clip.H}
}

// Take returns an owned copy of exactly the cells inside r. Unlike SubGrid
// it does not clip: a rectangle reaching outside g returns ErrOutOfBounds.
func (g *Grid[T]) Take(r Rect) (*Grid[T], error) {
	if r.X < 0 || r.Y < 0 || r.W < 0 || r.H < 0 || r.X+r.W > g.width || r.Y+r.H > g.height {
		return nil, fmt.Errorf("Grid.%s(%v) on %dx%d: %w", ctxTake, r, g.width, g.height, ErrOutOfBounds)
	}

	return g.SubGrid(r), nil
}

// Deref copies the values behind a pointer grid into an owned grid.
// Nil pointers become the zero value.
func Deref[T any](refs *Grid[*T]) *Grid[T] {
	return Map(refs, func(p *T) T {
		if p == nil {
			var zero T
			return zero
		}

		return *p
	})
}

// Flatten lays the cells of a grid of grids side by side into one grid.
// Each output column band is as wide as the widest cell in that column and
// each row band as tall as the tallest cell in that row; smaller cells are
// anchored top-left and the remainder keeps the zero value. Nil cells count
// as 0×0.
// Complexity: O(total output cells).
func Flatten[T any](g *Grid[*Grid[T]]) *Grid[T] {
	colW := make([]int, g.width)
	rowH := make([]int, g.height)
	for i, cell := range g.data {
		if cell == nil {
			continue
		}
		x, y := g.IndexToXY(i)
		colW[x] = max(colW[x], cell.width)
		rowH[y] = max(rowH[y], cell.height)
	}

	colX := make([]int, g.width)
	total := 0
	for x, w := range colW {
		colX[x] = total
		total += w
	}
	rowY := make([]int, g.height)
	totalH := 0
	for y, h := range rowH {
		rowY[y] = totalH
		totalH += h
	}

	var zero T
	out := Filled(total, totalH, zero)
	for i, cell := range g.data {
		if cell == nil {
			continue
		}
		x, y := g.IndexToXY(i)
		out.AppendAt(cell, XY{X: colX[x], Y: rowY[y]})
	}

	return out
}
