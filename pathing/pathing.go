package pathing

import (
	"fmt"

	"github.com/katalvlaran/gridkit"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/region"
)

// FindPath returns the shortest path from start to end that only crosses
// cells equal to the start cell. It is region.AtEq followed by
// Region.FindPath and returns that package's errors.
func FindPath[T comparable](g *grid.Grid[T], start, end grid.Indexer) ([]grid.XY, error) {
	r, err := region.AtEq(g, start)
	if err != nil {
		return nil, err
	}

	return r.FindPath(start, end)
}

// FindPathWeighted returns the cheapest path from start to end, both
// included, and its total cost. weight(from, to) is called with the values
// of two adjacent cells and reports the step cost, or ok=false when the step
// is impassable.
//
// Returns grid.ErrOutOfBounds for an endpoint outside g, ErrNegativeWeight,
// ErrPathNotFound, ErrLoopDetected, ErrOptionViolation, or the context error.
func FindPathWeighted[T any, W Weight](
	g *grid.Grid[T],
	start, end grid.Indexer,
	weight func(from, to T) (W, bool),
	opts ...Option,
) ([]grid.XY, W, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, 0, cfg.err
	}

	from, ok := g.Resolve(start)
	if !ok {
		return nil, 0, fmt.Errorf("FindPathWeighted start %v: %w", start, grid.ErrOutOfBounds)
	}
	to, ok := g.Resolve(end)
	if !ok {
		return nil, 0, fmt.Errorf("FindPathWeighted end %v: %w", end, grid.ErrOutOfBounds)
	}

	r := &runner[T, W]{
		g:       g,
		weight:  weight,
		options: cfg,
		best:    make([]W, g.Len()),
		prev:    make([]int, g.Len()),
		reached: make([]bool, g.Len()),
		queue:   make([]int, 0, g.Len()),
	}
	if err := r.process(from); err != nil {
		return nil, 0, err
	}
	if !r.reached[to] {
		return nil, 0, fmt.Errorf("FindPathWeighted %v -> %v: %w", start, end, ErrPathNotFound)
	}
	path, err := r.backtrack(to)
	if err != nil {
		return nil, 0, err
	}

	return path, r.best[to], nil
}

// runner holds the per-search state of FindPathWeighted.
type runner[T any, W Weight] struct {
	g       *grid.Grid[T]
	weight  func(from, to T) (W, bool)
	options Options
	best    []W    // cheapest known cost per cell
	prev    []int  // predecessor per cell; the start points to itself
	reached []bool // whether best/prev are set
	queue   []int  // append-only; read with a cursor
}

// process relaxes from the start cell until the queue cursor is exhausted.
func (r *runner[T, W]) process(start int) error {
	r.best[start] = 0
	r.prev[start] = start
	r.reached[start] = true
	r.queue = append(r.queue, start)
	neighbors := make([]int, 0, 4)

	for qi := 0; qi < len(r.queue); qi++ {
		if qi%checkEvery == 0 {
			if err := r.options.Ctx.Err(); err != nil {
				return err
			}
		}
		if r.options.MaxSteps > 0 && qi >= r.options.MaxSteps {
			return fmt.Errorf("FindPathWeighted: step limit %d reached: %w", r.options.MaxSteps, ErrPathNotFound)
		}

		cur := r.queue[qi]
		curVal := r.g.Get(cur)
		neighbors = r.g.AppendIndexNeighbors(neighbors[:0], cur)
		for _, n := range neighbors {
			w, ok := r.weight(curVal, r.g.Get(n))
			if !ok {
				continue
			}
			if w != w { // NaN never compares as an improvement or a regression
				return fmt.Errorf("%w: step %d→%d weight=%v", ErrInvalidWeight, cur, n, w)
			}
			if w < 0 {
				return fmt.Errorf("%w: step %d→%d weight=%v", ErrNegativeWeight, cur, n, w)
			}
			r.relax(cur, n, r.best[cur]+w)
		}
	}
	gridkit.Logger().Debug("pathing: weighted search", "processed", len(r.queue))

	return nil
}

// relax records cand as the cost of n via cur when it is strictly better.
func (r *runner[T, W]) relax(cur, n int, cand W) {
	if r.reached[n] && cand >= r.best[n] {
		return
	}
	r.best[n] = cand
	r.prev[n] = cur
	r.reached[n] = true
	r.queue = append(r.queue, n)
}

// backtrack walks predecessors from end to the self-referencing start.
func (r *runner[T, W]) backtrack(end int) ([]grid.XY, error) {
	onPath := make(map[int]struct{})
	var rev []int
	for cur := end; ; cur = r.prev[cur] {
		if _, seen := onPath[cur]; seen {
			return nil, fmt.Errorf("%w: cell %d", ErrLoopDetected, cur)
		}
		onPath[cur] = struct{}{}
		rev = append(rev, cur)
		if r.prev[cur] == cur {
			break
		}
	}

	path := make([]grid.XY, len(rev))
	for i, idx := range rev {
		path[len(rev)-1-i] = r.g.XYOf(grid.Index(idx))
	}

	return path, nil
}

// Uniform returns a weight function with cost 1 between cells for which
// passable reports true on the destination, and no edge otherwise.
func Uniform[T any, W Weight](passable func(T) bool) func(from, to T) (W, bool) {
	return func(_, to T) (W, bool) {
		return 1, passable(to)
	}
}
