package matcher

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridkit"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/mask"
	"github.com/katalvlaran/gridkit/similarity"
)

// Sentinel errors recorded by the builder methods and returned by Err.
var (
	// ErrConfigAfterEntries indicates an area of interest or mask set after
	// entries were registered; those entries would be processed differently
	// from later queries.
	ErrConfigAfterEntries = errors.New("matcher: area of interest and mask must be set before entries")

	// ErrNilFilter indicates New was given a nil filter.
	ErrNilFilter = errors.New("matcher: filter is nil")

	// ErrNilGrid indicates a nil grid was registered.
	ErrNilGrid = errors.New("matcher: grid is nil")
)

// Entry is a processed reference grid.
type Entry[T any] struct {
	Name string
	Grid *grid.Grid[T]
}

// Match is the result of MostSimilarTo.
type Match struct {
	Name  string
	Score float64
}

// Matcher holds the processing pipeline and the registered entries.
type Matcher[S any, T comparable] struct {
	filter  func(S) T
	aoi     grid.Rect
	hasAOI  bool
	mask    *mask.Mask
	entries []Entry[T]
	err     error
}

// New returns a Matcher converting source cells with filter.
func New[S any, T comparable](filter func(S) T) *Matcher[S, T] {
	m := &Matcher[S, T]{filter: filter}
	if filter == nil {
		m.err = ErrNilFilter
	}

	return m
}

// record keeps the first builder error.
func (m *Matcher[S, T]) record(err error) {
	if m.err == nil {
		m.err = err
	}
}

// Err returns the first error recorded by the builder methods.
func (m *Matcher[S, T]) Err() error { return m.err }

// WithAreaOfInterest crops every processed grid to r.
func (m *Matcher[S, T]) WithAreaOfInterest(r grid.Rect) *Matcher[S, T] {
	if len(m.entries) > 0 {
		m.record(ErrConfigAfterEntries)
		return m
	}
	m.aoi, m.hasAOI = r, true

	return m
}

// WithMask zeroes the cells outside mk in every processed grid and restricts
// scoring to the positive cells of mk.
func (m *Matcher[S, T]) WithMask(mk *mask.Mask) *Matcher[S, T] {
	if len(m.entries) > 0 {
		m.record(ErrConfigAfterEntries)
		return m
	}
	m.mask = mk

	return m
}

// WithNamedEntry processes g and registers it under name. A processing
// failure is recorded for Err and the entry is skipped.
func (m *Matcher[S, T]) WithNamedEntry(name string, g *grid.Grid[S]) *Matcher[S, T] {
	if err := m.AddEntry(name, g); err != nil {
		m.record(err)
	}

	return m
}

// AddEntry is WithNamedEntry returning the processing error directly.
func (m *Matcher[S, T]) AddEntry(name string, g *grid.Grid[S]) error {
	if m.filter == nil {
		return ErrNilFilter
	}
	if g == nil {
		return fmt.Errorf("entry %q: %w", name, ErrNilGrid)
	}
	p, err := m.Process(g)
	if err != nil {
		return fmt.Errorf("entry %q: %w", name, err)
	}
	m.entries = append(m.entries, Entry[T]{Name: name, Grid: p})

	return nil
}

// Entries returns the registered entries in registration order.
func (m *Matcher[S, T]) Entries() []Entry[T] { return m.entries }

// Len returns the number of registered entries.
func (m *Matcher[S, T]) Len() int { return len(m.entries) }

// Process runs g through the pipeline: crop to the area of interest unless
// g already has its size, apply the mask, convert with the filter. g itself
// is not modified.
func (m *Matcher[S, T]) Process(g *grid.Grid[S]) (*grid.Grid[T], error) {
	src := g
	if m.hasAOI && !g.SameSize(m.aoi.W, m.aoi.H) {
		cropped, err := g.Take(m.aoi)
		if err != nil {
			return nil, err
		}
		src = cropped
	} else if m.mask != nil {
		src = g.Clone()
	}
	if m.mask != nil {
		if err := mask.Apply(src, m.mask); err != nil {
			return nil, err
		}
	}

	return grid.Map(src, m.filter), nil
}

// MostSimilarTo returns the entry with the highest score against g. Ties
// go to the entry registered first. ok is false when there are no entries
// or g cannot be processed.
func (m *Matcher[S, T]) MostSimilarTo(g *grid.Grid[S]) (Match, bool) {
	target, ok := m.query(g)
	if !ok || len(m.entries) == 0 {
		return Match{}, false
	}
	best := Match{Name: m.entries[0].Name, Score: m.score(target, m.entries[0].Grid)}
	for _, e := range m.entries[1:] {
		if s := m.score(target, e.Grid); s > best.Score {
			best = Match{Name: e.Name, Score: s}
		}
	}

	return best, true
}

// FirstSimilarTo returns the name of the first registered entry whose
// similarity to g reaches threshold.
func (m *Matcher[S, T]) FirstSimilarTo(g *grid.Grid[S], threshold float64) (string, bool) {
	target, ok := m.query(g)
	if !ok {
		return "", false
	}
	for _, e := range m.entries {
		if m.similar(target, e.Grid, threshold) {
			return e.Name, true
		}
	}

	return "", false
}

func (m *Matcher[S, T]) query(g *grid.Grid[S]) (*grid.Grid[T], bool) {
	if g == nil || m.filter == nil {
		return nil, false
	}
	target, err := m.Process(g)
	if err != nil {
		gridkit.Logger().Warn("matcher: cannot process query", "err", err)
		return nil, false
	}

	return target, true
}

func (m *Matcher[S, T]) score(a, b *grid.Grid[T]) float64 {
	if m.mask != nil {
		return similarity.SimilarityToMasked(a, b, m.mask)
	}

	return similarity.SimilarityTo(a, b)
}

func (m *Matcher[S, T]) similar(a, b *grid.Grid[T], t float64) bool {
	if m.mask != nil {
		return similarity.SimilarToMasked(a, b, t, m.mask)
	}

	return similarity.SimilarTo(a, b, t)
}
