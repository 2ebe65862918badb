package similarity

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/mask"
)

// Sentinel errors.
var (
	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("similarity: invalid option supplied")

	// ErrNilComparator indicates NewFunc was given a nil comparator.
	ErrNilComparator = errors.New("similarity: comparator is nil")

	// ErrDimensionMismatch wraps grid.ErrDimensionMismatch for operand and
	// mask size checks. Only returned by Validate; the query functions log it.
	ErrDimensionMismatch = fmt.Errorf("similarity: %w", grid.ErrDimensionMismatch)
)

// Option configures Settings.
type Option func(*Options)

// Options holds the configurable parts of Settings.
type Options struct {
	// Threshold, when HasThreshold is set, turns Compare into a boolean
	// (1 or 0) and is used by Similar, Find and FindAll.
	Threshold    float64
	HasThreshold bool

	// Mask restricts comparisons to its positive cells.
	Mask *mask.Mask

	// Ctx cancels FindAll and FindAllContext scans.
	Ctx context.Context

	// Workers is the number of goroutines used by FindAllContext.
	// 0 or 1 scans on the calling goroutine.
	Workers int

	err error
}

// DefaultOptions returns Options with no threshold, no mask, a background
// context and a single worker.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Workers: 1}
}

// WithThreshold sets the minimum similarity. NaN is rejected.
func WithThreshold(t float64) Option {
	return func(o *Options) {
		if math.IsNaN(t) {
			o.err = fmt.Errorf("%w: threshold is NaN", ErrOptionViolation)
			return
		}
		o.Threshold, o.HasThreshold = t, true
	}
}

// WithMask restricts comparisons to the positive cells of m. Nil clears it.
func WithMask(m *mask.Mask) Option {
	return func(o *Options) { o.Mask = m }
}

// WithContext sets a context that cancels FindAll and FindAllContext.
// Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the FindAllContext parallelism.
//
//	n > 1: split rows across n goroutines
//	n == 0 or 1: sequential
//	n < 0: invalid → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = max(n, 1)
	}
}
