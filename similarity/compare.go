package similarity

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridkit"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/mask"
)

// Budget returns the number of mismatches tolerated among count compared
// cells at threshold t: round((1-t) × count), clamped to [0, count]. Halves
// round away from zero even when 1-t is not exactly representable, so
// Budget(0.9, 5) is 1.
func Budget(t float64, count int) int {
	b := int(math.Round((1-t)*float64(count) + budgetEpsilon))

	return min(max(b, 0), count)
}

// Validate reports whether a and b (and m, when non-nil) share dimensions.
func Validate[T any](a, b *grid.Grid[T], m *mask.Mask) error {
	if !a.SameSize(b.Width(), b.Height()) {
		return fmt.Errorf("compare %dx%d with %dx%d: %w", a.Width(), a.Height(), b.Width(), b.Height(), ErrDimensionMismatch)
	}
	if m != nil && !m.SameSize(a.Width(), a.Height()) {
		return fmt.Errorf("compare %dx%d with mask %dx%d: %w", a.Width(), a.Height(), m.Width(), m.Height(), ErrDimensionMismatch)
	}

	return nil
}

// errNothingCompared is logged when a comparison with 0 < t < 1 has no cells
// to compare. Such a comparison scores 0 and never matches.
var errNothingCompared = errors.New("similarity: no cells to compare")

// budgetEpsilon absorbs the representation error of 1-t before rounding.
const budgetEpsilon = 1e-9

func warn(err error) {
	gridkit.Logger().Warn("similarity: returning default", "err", err)
}

// SimilarityTo returns the fraction of equal cells of a and b.
func SimilarityTo[T comparable](a, b *grid.Grid[T]) float64 {
	return score(a, b, equal[T], nil)
}

// SimilarityToFunc is SimilarityTo with a custom comparator.
func SimilarityToFunc[T any](a, b *grid.Grid[T], eq func(a, b T) bool) float64 {
	return score(a, b, eq, nil)
}

// SimilarityToMasked compares only the positive cells of m.
func SimilarityToMasked[T comparable](a, b *grid.Grid[T], m *mask.Mask) float64 {
	return score(a, b, equal[T], m)
}

// SimilarTo reports whether at least a fraction t of the cells are equal.
func SimilarTo[T comparable](a, b *grid.Grid[T], t float64) bool {
	return similar(a, b, equal[T], nil, t)
}

// SimilarToMasked is SimilarTo restricted to the positive cells of m.
func SimilarToMasked[T comparable](a, b *grid.Grid[T], t float64, m *mask.Mask) bool {
	return similar(a, b, equal[T], m, t)
}

func equal[T comparable](a, b T) bool { return a == b }

// score counts matches over the compared cells. No compared cells scores 0.
// Complexity: O(W*H).
func score[T any](a, b *grid.Grid[T], eq func(a, b T) bool, m *mask.Mask) float64 {
	if err := Validate(a, b, m); err != nil {
		warn(err)
		return 0
	}
	ad, bd := a.Data(), b.Data()
	matches, count := 0, 0
	visit(len(ad), m, func(i int) bool {
		count++
		if eq(ad[i], bd[i]) {
			matches++
		}

		return true
	})
	if count == 0 {
		return 0
	}

	return float64(matches) / float64(count)
}

// similar counts mismatches and stops once the budget is exceeded.
func similar[T any](a, b *grid.Grid[T], eq func(a, b T) bool, m *mask.Mask, t float64) bool {
	if err := Validate(a, b, m); err != nil {
		warn(err)
		return false
	}
	switch {
	case math.IsNaN(t) || t > 1:
		return false
	case t <= 0:
		return true
	}

	count := a.Len()
	if m != nil {
		count = m.PositiveCount()
	}
	if count == 0 {
		// exact equality holds vacuously; a fractional threshold has no base
		if t == 1 {
			return true
		}
		warn(errNothingCompared)
		return false
	}
	budget := 0
	if t < 1 {
		budget = Budget(t, count)
	}

	ad, bd := a.Data(), b.Data()
	mismatches := 0
	visit(len(ad), m, func(i int) bool {
		if !eq(ad[i], bd[i]) {
			mismatches++
		}

		return mismatches <= budget
	})

	return mismatches <= budget
}

// visit calls fn for every index in [0, n), or only for the positive runs of
// m when it is non-nil, until fn returns false.
func visit(n int, m *mask.Mask, fn func(i int) bool) {
	if m == nil {
		for i := 0; i < n; i++ {
			if !fn(i) {
				return
			}
		}
		return
	}
	for _, r := range m.Positive() {
		for i := r.Start; i < r.End; i++ {
			if !fn(i) {
				return
			}
		}
	}
}
