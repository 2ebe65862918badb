package pathing

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for weighted path search.
var (
	// ErrPathNotFound indicates the destination was never reached.
	ErrPathNotFound = errors.New("pathing: path not found")

	// ErrLoopDetected indicates that backtracking revisited a cell. This is
	// an invariant violation and more severe than ErrPathNotFound.
	ErrLoopDetected = errors.New("pathing: loop detected while backtracking")

	// ErrNegativeWeight indicates the weight function returned a negative cost.
	ErrNegativeWeight = errors.New("pathing: negative edge weight")

	// ErrInvalidWeight indicates the weight function returned NaN.
	ErrInvalidWeight = errors.New("pathing: NaN edge weight")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("pathing: invalid option supplied")
)

// Weight is the constraint for cumulative path costs.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Option configures a weighted search.
type Option func(*Options)

// Options holds the weighted search parameters.
type Options struct {
	// Ctx allows cancellation; checked periodically between dequeues.
	Ctx context.Context

	// MaxSteps, if > 0, aborts the search with ErrPathNotFound after that
	// many queue entries have been processed.
	MaxSteps int

	err error
}

// checkEvery is the dequeue interval between context checks.
const checkEvery = 1024

// DefaultOptions returns Options with a background context and no step cap.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a context for cancellation. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps caps the number of processed queue entries.
//
//	n > 0: cap at n
//	n == 0: no cap
//	n < 0: invalid → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}
