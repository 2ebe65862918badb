package region

import (
	"github.com/katalvlaran/gridkit"
	"github.com/katalvlaran/gridkit/grid"
)

// Direction bits recording which neighbor already queued a cell.
const (
	fromLeft uint8 = 1 << iota
	fromTop
	fromRight
	fromBottom
)

// queued is a flood-fill queue entry: the cell and the cell that found it.
type queued struct {
	index, source int
}

// At flood-fills from start. The seed is tested as same(seed, seed); every
// other cell is tested against the value of the neighbor that discovered it.
// A cell rejected from one neighbor may still be accepted from another, but
// each (cell, discovering neighbor) pair is examined at most once and an
// accepted cell is never re-examined.
//
// Returns grid.ErrOutOfBounds if start is outside g.
// Complexity: O(W*H) time, the queue holds at most 4 entries per cell.
func At[T any](g *grid.Grid[T], start grid.Indexer, same func(from, to T) bool) (*Region, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	seed, ok := g.Resolve(start)
	if !ok {
		return nil, regionErrorf(ctxAt, start, grid.ErrOutOfBounds)
	}

	w := g.Width()
	cells := grid.Filled(w, g.Height(), false)
	seen := make([]uint8, g.Len())
	queue := make([]queued, 0, g.Len())
	queue = append(queue, queued{index: seed, source: seed})
	neighbors := make([]int, 0, 4)

	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		if cells.Get(cur.index) {
			continue
		}
		if !same(g.Get(cur.source), g.Get(cur.index)) {
			continue
		}
		cells.Put(cur.index, true)

		neighbors = g.AppendIndexNeighbors(neighbors[:0], cur.index)
		for _, n := range neighbors {
			if cells.Get(n) {
				continue
			}
			bit := direction(cur.index, n, w)
			if seen[n]&bit != 0 {
				continue
			}
			seen[n] |= bit
			queue = append(queue, queued{index: n, source: cur.index})
		}
	}
	gridkit.Logger().Debug("region: flood fill", "seed", seed, "queued", len(queue))

	r := &Region{cells: cells}
	r.updateBounds()

	return r, nil
}

// direction returns the bit naming where src lies relative to dst.
func direction(src, dst, width int) uint8 {
	switch src {
	case dst - 1:
		return fromLeft
	case dst - width:
		return fromTop
	case dst + 1:
		return fromRight
	default:
		return fromBottom
	}
}

// AtEq flood-fills from start over cells equal to the seed value.
// Returns grid.ErrOutOfBounds if start is outside g.
// Complexity: O(W*H).
func AtEq[T comparable](g *grid.Grid[T], start grid.Indexer) (*Region, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	seed, ok := g.Resolve(start)
	if !ok {
		return nil, regionErrorf(ctxAtEq, start, grid.ErrOutOfBounds)
	}

	want := g.Get(seed)
	cells := grid.Filled(g.Width(), g.Height(), false)
	visited := make([]bool, g.Len())
	visited[seed] = true
	queue := make([]int, 0, g.Len())
	queue = append(queue, seed)
	neighbors := make([]int, 0, 4)

	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		if g.Get(cur) != want {
			continue
		}
		cells.Put(cur, true)
		neighbors = g.AppendIndexNeighbors(neighbors[:0], cur)
		for _, n := range neighbors {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	gridkit.Logger().Debug("region: equality flood fill", "seed", seed, "visited", len(queue))

	r := &Region{cells: cells}
	r.updateBounds()

	return r, nil
}
