package similarity

import (
	"context"

	"github.com/katalvlaran/gridkit/grid"
)

// Settings bundles a comparator with Options. It is immutable after
// construction and safe for concurrent use.
type Settings[T any] struct {
	eq   func(a, b T) bool
	opts Options
}

// New returns Settings comparing cells with ==.
func New[T comparable](opts ...Option) (*Settings[T], error) {
	return NewFunc(func(a, b T) bool { return a == b }, opts...)
}

// NewFunc returns Settings comparing cells with eq.
func NewFunc[T any](eq func(a, b T) bool, opts ...Option) (*Settings[T], error) {
	if eq == nil {
		return nil, ErrNilComparator
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	return &Settings[T]{eq: eq, opts: cfg}, nil
}

// Options returns a copy of the configured options.
func (s *Settings[T]) Options() Options { return s.opts }

// threshold returns the configured threshold, or 1 when none is set.
func (s *Settings[T]) threshold() float64 {
	if s.opts.HasThreshold {
		return s.opts.Threshold
	}

	return 1
}

// Score returns the fraction of compared cells that match.
func (s *Settings[T]) Score(a, b *grid.Grid[T]) float64 {
	return score(a, b, s.eq, s.opts.Mask)
}

// Similar reports whether a and b reach the threshold (1 when unset).
func (s *Settings[T]) Similar(a, b *grid.Grid[T]) bool {
	return similar(a, b, s.eq, s.opts.Mask, s.threshold())
}

// Compare returns Score, or 1/0 from Similar when a threshold is set.
func (s *Settings[T]) Compare(a, b *grid.Grid[T]) float64 {
	if !s.opts.HasThreshold {
		return s.Score(a, b)
	}
	if s.Similar(a, b) {
		return 1
	}

	return 0
}

// Find returns the first top-left offset in haystack where needle matches.
func (s *Settings[T]) Find(haystack, needle *grid.Grid[T]) (grid.XY, bool) {
	sc, ok := newScan(haystack, needle, s.eq, s.opts.Mask, s.threshold())
	if !ok {
		return grid.XY{}, false
	}

	return sc.first(0, sc.endY)
}

// FindAll returns every matching top-left offset in row-major order. A scan
// cancelled through the Ctx option returns nil.
func (s *Settings[T]) FindAll(haystack, needle *grid.Grid[T]) []grid.XY {
	out, _ := s.FindAllContext(context.Background(), haystack, needle)

	return out
}

// FindAllContext is FindAll with cancellation and the configured worker
// count. The scan stops when either ctx or the Ctx option is done.
func (s *Settings[T]) FindAllContext(ctx context.Context, haystack, needle *grid.Grid[T]) ([]grid.XY, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := s.opts.Ctx.Err(); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(s.opts.Ctx, cancel)
	defer stop()

	sc, ok := newScan(haystack, needle, s.eq, s.opts.Mask, s.threshold())
	if !ok {
		return nil, nil
	}

	return sc.all(ctx, s.opts.Workers)
}
