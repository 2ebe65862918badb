package mask

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
)

// ErrDimensionMismatch is returned when a mask is applied to a grid of a
// different size. It wraps grid.ErrDimensionMismatch.
var ErrDimensionMismatch = fmt.Errorf("mask: %w", grid.ErrDimensionMismatch)

// ErrNilGrid is returned by New for a nil source grid.
var ErrNilGrid = errors.New("mask: grid is nil")

// Range is a half-open run of linear indices [Start, End).
type Range struct {
	Start, End int
}

// Len returns End - Start.
func (r Range) Len() int { return r.End - r.Start }

// Mask is an immutable boolean grid with precomputed positive and negative runs.
type Mask struct {
	cells    *grid.Grid[bool]
	positive []Range
	negative []Range
	count    int
}

// New builds a Mask over cells. The grid is cloned so later writes to it do
// not desynchronise the ranges.
// Complexity: O(W*H).
func New(cells *grid.Grid[bool]) (*Mask, error) {
	if cells == nil {
		return nil, ErrNilGrid
	}
	m := &Mask{cells: cells.Clone()}
	m.scan()

	return m, nil
}

// FromFunc builds a mask that is true where pred holds for the cell of g.
func FromFunc[T any](g *grid.Grid[T], pred func(T) bool) *Mask {
	m := &Mask{cells: grid.Map(g, pred)}
	m.scan()

	return m
}

// FromValue builds a mask that is true where the cell of g equals v.
func FromValue[T comparable](g *grid.Grid[T], v T) *Mask {
	return FromFunc(g, func(c T) bool { return c == v })
}

// scan derives the alternating runs in one pass.
func (m *Mask) scan() {
	data := m.cells.Data()
	m.positive, m.negative, m.count = nil, nil, 0
	if len(data) == 0 {
		return
	}
	start := 0
	for i := 1; i <= len(data); i++ {
		if i < len(data) && data[i] == data[start] {
			continue
		}
		r := Range{Start: start, End: i}
		if data[start] {
			m.positive = append(m.positive, r)
			m.count += r.Len()
		} else {
			m.negative = append(m.negative, r)
		}
		start = i
	}
}

// Grid returns the underlying boolean grid. Callers must not modify it.
func (m *Mask) Grid() *grid.Grid[bool] { return m.cells }

// Width returns the mask width.
func (m *Mask) Width() int { return m.cells.Width() }

// Height returns the mask height.
func (m *Mask) Height() int { return m.cells.Height() }

// SameSize reports whether the mask covers a width×height area.
func (m *Mask) SameSize(width, height int) bool { return m.cells.SameSize(width, height) }

// Positive returns the runs of true cells in ascending order.
func (m *Mask) Positive() []Range { return m.positive }

// Negative returns the runs of false cells in ascending order.
func (m *Mask) Negative() []Range { return m.negative }

// PositiveCount returns the number of true cells.
func (m *Mask) PositiveCount() int { return m.count }

// At reports whether linear index i is inside the mask. Out-of-range
// indices report false.
func (m *Mask) At(i int) bool {
	return m.cells.IndexValid(i) && m.cells.Get(i)
}

// Apply sets every cell of g outside the mask to the zero value.
// Returns ErrDimensionMismatch if g and m differ in size.
// Complexity: O(number of negative cells).
func Apply[T any](g *grid.Grid[T], m *Mask) error {
	if !m.SameSize(g.Width(), g.Height()) {
		return fmt.Errorf("Apply(%dx%d, mask %dx%d): %w", g.Width(), g.Height(), m.Width(), m.Height(), ErrDimensionMismatch)
	}
	var zero T
	data := g.Data()
	for _, r := range m.negative {
		for i := r.Start; i < r.End; i++ {
			data[i] = zero
		}
	}

	return nil
}
