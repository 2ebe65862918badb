package region

import (
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
)

const noPrev = -1

// FindPath returns the shortest 4-connected path from start to end that
// stays on region cells, both endpoints included. Neighbors are expanded in
// the order left, top, right, bottom and the first cell to discover another
// becomes its predecessor, so the result is deterministic.
//
// Returns ErrOutOfRegion if either endpoint is not a region cell and
// ErrPathNotFound if end is unreachable.
// Complexity: O(W*H).
func (r *Region) FindPath(start, end grid.Indexer) ([]grid.XY, error) {
	from, ok := r.cells.Resolve(start)
	if !ok || !r.cells.Get(from) {
		return nil, regionErrorf(ctxFindPath, start, ErrOutOfRegion)
	}
	to, ok := r.cells.Resolve(end)
	if !ok || !r.cells.Get(to) {
		return nil, regionErrorf(ctxFindPath, end, ErrOutOfRegion)
	}

	prev := make([]int, r.cells.Len())
	for i := range prev {
		prev[i] = noPrev
	}
	queued := make([]bool, r.cells.Len())
	queue := make([]int, 0, r.cells.Len())
	queue = append(queue, from)
	queued[from] = true
	prev[from] = from // the seed is its own predecessor
	neighbors := make([]int, 0, 4)

	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		if cur == to {
			return r.backtrack(prev, to)
		}
		neighbors = r.cells.AppendIndexNeighbors(neighbors[:0], cur)
		for _, n := range neighbors {
			if r.cells.Get(n) && !queued[n] {
				queued[n] = true
				prev[n] = cur
				queue = append(queue, n)
			}
		}
	}

	return nil, fmt.Errorf("Region.%s(%v -> %v): %w", ctxFindPath, start, end, ErrPathNotFound)
}

// backtrack follows predecessors from end until the self-referencing seed.
func (r *Region) backtrack(prev []int, end int) ([]grid.XY, error) {
	var rev []int
	for cur := end; ; {
		rev = append(rev, cur)
		p := prev[cur]
		if p == cur {
			break
		}
		if p == noPrev || len(rev) > len(prev) {
			return nil, fmt.Errorf("Region.%s: broken predecessor chain at %d: %w", ctxFindPath, cur, ErrPathNotFound)
		}
		cur = p
	}

	path := make([]grid.XY, len(rev))
	for i, idx := range rev {
		path[len(rev)-1-i] = r.cells.XYOf(grid.Index(idx))
	}

	return path, nil
}
