package region

import (
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/mask"
)

// Region is a set of cells of a width×height area with a cached bounding box.
type Region struct {
	cells  *grid.Grid[bool]
	bounds grid.Rect
}

// New wraps a copy of cells as a Region and computes its bounds.
func New(cells *grid.Grid[bool]) (*Region, error) {
	if cells == nil {
		return nil, ErrNilGrid
	}
	r := &Region{cells: cells.Clone()}
	r.updateBounds()

	return r, nil
}

// FromMask builds a region from the true cells of m.
func FromMask(m *mask.Mask) *Region {
	r := &Region{cells: m.Grid().Clone()}
	r.updateBounds()

	return r
}

// Grid returns the membership grid. Callers must not modify it; use
// AddEdge/RemoveEdge so the bounds stay consistent.
func (r *Region) Grid() *grid.Grid[bool] { return r.cells }

// Bounds returns the tight bounding box of the region cells.
func (r *Region) Bounds() grid.Rect { return r.bounds }

// Width returns the width of the covered area (not of the bounds).
func (r *Region) Width() int { return r.cells.Width() }

// Height returns the height of the covered area.
func (r *Region) Height() int { return r.cells.Height() }

// Contains reports whether ix addresses a region cell. Out-of-range
// addresses report false.
func (r *Region) Contains(ix grid.Indexer) bool {
	i, ok := r.cells.Resolve(ix)

	return ok && r.cells.Get(i)
}

// Len returns the number of region cells.
func (r *Region) Len() int {
	return r.cells.Count(func(v bool) bool { return v })
}

// IsEmpty reports whether the region has no cells.
func (r *Region) IsEmpty() bool { return r.bounds.Empty() }

// BoundsSubGrid returns a copy of the membership grid cropped to Bounds.
func (r *Region) BoundsSubGrid() *grid.Grid[bool] { return r.cells.SubGrid(r.bounds) }

// Mask returns the region as a mask.Mask.
func (r *Region) Mask() *mask.Mask {
	m, _ := mask.New(r.cells)

	return m
}

// Clone returns an independent copy.
func (r *Region) Clone() *Region {
	return &Region{cells: r.cells.Clone(), bounds: r.bounds}
}

// updateBounds rescans the rows and columns for the first and last true cell.
// Complexity: O(W*H).
func (r *Region) updateBounds() {
	w, h := r.cells.Width(), r.cells.Height()
	data := r.cells.Data()
	minX, minY, maxX, maxY := w, h, -1, -1
	for y := 0; y < h; y++ {
		row := data[y*w : (y+1)*w]
		for x, in := range row {
			if !in {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	if maxX < 0 {
		r.bounds = grid.Rect{}
		return
	}
	r.bounds = grid.Rect{X: minX, Y: minY, W: maxX - minX + 1, H: maxY - minY + 1}
}
