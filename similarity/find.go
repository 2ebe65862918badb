package similarity

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridkit"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/mask"
)

// Find returns the first top-left offset, in row-major order, at which
// needle matches haystack with at least similarity t.
func Find[T comparable](haystack, needle *grid.Grid[T], t float64) (grid.XY, bool) {
	sc, ok := newScan(haystack, needle, equal[T], nil, t)
	if !ok {
		return grid.XY{}, false
	}

	return sc.first(0, sc.endY)
}

// FindAll returns every matching top-left offset in row-major order.
// Overlapping matches are all reported.
func FindAll[T comparable](haystack, needle *grid.Grid[T], t float64) []grid.XY {
	sc, ok := newScan(haystack, needle, equal[T], nil, t)
	if !ok {
		return nil
	}

	return sc.collect(0, sc.endY)
}

// FindMasked is Find comparing only the positive cells of m, which must
// have the needle's dimensions.
func FindMasked[T comparable](haystack, needle *grid.Grid[T], m *mask.Mask, t float64) (grid.XY, bool) {
	sc, ok := newScan(haystack, needle, equal[T], m, t)
	if !ok {
		return grid.XY{}, false
	}

	return sc.first(0, sc.endY)
}

// FindAllMasked is FindAll comparing only the positive cells of m.
func FindAllMasked[T comparable](haystack, needle *grid.Grid[T], m *mask.Mask, t float64) []grid.XY {
	sc, ok := newScan(haystack, needle, equal[T], m, t)
	if !ok {
		return nil
	}

	return sc.collect(0, sc.endY)
}

// segment is a run of compared needle cells within one needle row.
type segment struct {
	needle int // start index in the needle
	offset int // start offset in the haystack relative to the window origin
	length int
}

// scan holds the precomputed state of a sliding-window search.
type scan[T any] struct {
	hay, needle []T
	hw          int
	endX, endY  int // exclusive bounds of valid origins
	segs        []segment
	eq          func(a, b T) bool
	budget      int
}

// newScan validates the inputs and precomputes the compared segments.
// It reports false, after logging, when no offset can match.
func newScan[T any](haystack, needle *grid.Grid[T], eq func(a, b T) bool, m *mask.Mask, t float64) (*scan[T], bool) {
	nw, nh := needle.Width(), needle.Height()
	hw, hh := haystack.Width(), haystack.Height()
	if nw > hw || nh > hh {
		warn(fmt.Errorf("find %dx%d in %dx%d: needle larger than haystack: %w", nw, nh, hw, hh, ErrDimensionMismatch))
		return nil, false
	}
	if m != nil && !m.SameSize(nw, nh) {
		warn(fmt.Errorf("find with mask %dx%d on needle %dx%d: %w", m.Width(), m.Height(), nw, nh, ErrDimensionMismatch))
		return nil, false
	}
	if math.IsNaN(t) || t > 1 {
		return nil, false
	}

	sc := &scan[T]{
		hay:    haystack.Data(),
		needle: needle.Data(),
		hw:     hw,
		endX:   hw - nw + 1,
		endY:   hh - nh + 1,
		eq:     eq,
	}
	count := 0
	addRun := func(start, end int) {
		for start < end {
			y := start / nw
			stop := min(end, (y+1)*nw)
			sc.segs = append(sc.segs, segment{needle: start, offset: y*hw + start%nw, length: stop - start})
			count += stop - start
			start = stop
		}
	}
	if nw > 0 {
		if m == nil {
			addRun(0, len(sc.needle))
		} else {
			for _, r := range m.Positive() {
				addRun(r.Start, r.End)
			}
		}
	}
	if count == 0 && t > 0 && t < 1 {
		warn(errNothingCompared)
		return nil, false
	}
	if t < 1 {
		sc.budget = Budget(t, count)
	}

	return sc, true
}

// matchAt reports whether the window with origin index o is within budget.
func (sc *scan[T]) matchAt(o int) bool {
	mismatches := 0
	for _, s := range sc.segs {
		h := o + s.offset
		for k := 0; k < s.length; k++ {
			if !sc.eq(sc.hay[h+k], sc.needle[s.needle+k]) {
				mismatches++
				if mismatches > sc.budget {
					return false
				}
			}
		}
	}

	return true
}

// first returns the first match with origin row in [y0, y1).
func (sc *scan[T]) first(y0, y1 int) (grid.XY, bool) {
	for y := y0; y < y1; y++ {
		for x := 0; x < sc.endX; x++ {
			if sc.matchAt(y*sc.hw + x) {
				return grid.XY{X: x, Y: y}, true
			}
		}
	}

	return grid.XY{}, false
}

// collect returns every match with origin row in [y0, y1), row-major.
func (sc *scan[T]) collect(y0, y1 int) []grid.XY {
	var out []grid.XY
	for y := y0; y < y1; y++ {
		out = sc.appendRow(out, y)
	}

	return out
}

func (sc *scan[T]) appendRow(out []grid.XY, y int) []grid.XY {
	for x := 0; x < sc.endX; x++ {
		if sc.matchAt(y*sc.hw + x) {
			out = append(out, grid.XY{X: x, Y: y})
		}
	}

	return out
}

// all scans every row, splitting contiguous row bands across workers.
// Bands are concatenated in order, so the result is row-major.
func (sc *scan[T]) all(ctx context.Context, workers int) ([]grid.XY, error) {
	workers = min(max(workers, 1), max(sc.endY, 1))
	if workers == 1 {
		var out []grid.XY
		for y := 0; y < sc.endY; y++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			out = sc.appendRow(out, y)
		}
		return out, nil
	}

	bands := make([][]grid.XY, workers)
	per := (sc.endY + workers - 1) / workers
	eg, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		y0, y1 := w*per, min((w+1)*per, sc.endY)
		eg.Go(func() error {
			for y := y0; y < y1; y++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				bands[w] = sc.appendRow(bands[w], y)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	gridkit.Logger().Debug("similarity: parallel scan", "workers", workers, "rows", sc.endY)

	var out []grid.XY
	for _, b := range bands {
		out = append(out, b...)
	}

	return out, nil
}
