package grid

import "fmt"

// Indexer is anything that can address a cell of a grid of the given width.
// GridIndex returns the linear row-major index; it does not check bounds.
type Indexer interface {
	GridIndex(width int) int
}

// Index addresses a cell by its linear row-major offset.
type Index int

// GridIndex implements Indexer.
func (i Index) GridIndex(int) int { return int(i) }

// XY addresses a cell by column X and row Y.
type XY struct {
	X, Y int
}

// Pt is shorthand for XY{X: x, Y: y}.
func Pt(x, y int) XY { return XY{X: x, Y: y} }

// GridIndex implements Indexer: Y*width + X.
func (p XY) GridIndex(width int) int { return p.Y*width + p.X }

// Add returns p translated by q.
func (p XY) Add(q XY) XY { return XY{X: p.X + q.X, Y: p.Y + q.Y} }

// String renders the pair as "[x,y]".
func (p XY) String() string { return fmt.Sprintf("[%d,%d]", p.X, p.Y) }

// Rect is an axis-aligned rectangle with top-left corner (X, Y), width W
// and height H. The zero Rect is empty.
type Rect struct {
	X, Y, W, H int
}

// R is shorthand for Rect{X: x, Y: y, W: w, H: h}.
func R(x, y, w, h int) Rect { return Rect{X: x, Y: y, W: w, H: h} }

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Min returns the top-left corner.
func (r Rect) Min() XY { return XY{X: r.X, Y: r.Y} }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p XY) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersect clips r to the rectangle [0,w)×[0,h). The result may be empty.
func (r Rect) Intersect(w, h int) Rect {
	x0, y0 := max(r.X, 0), max(r.Y, 0)
	x1, y1 := min(r.X+r.W, w), min(r.Y+r.H, h)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}

	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// String renders the rectangle as "[x,y,w,h]".
func (r Rect) String() string { return fmt.Sprintf("[%d,%d,%d,%d]", r.X, r.Y, r.W, r.H) }
