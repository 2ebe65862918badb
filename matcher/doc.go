// Package matcher classifies grids against a library of named reference
// grids.
//
// A Matcher is configured with a filter converting source cells to target
// cells, an optional area of interest and an optional mask:
//
//	m := matcher.New(func(c imaging.Color) bool { return c.Shade() > 128 }).
//		WithAreaOfInterest(grid.R(10, 20, 32, 16)).
//		WithMask(iconMask).
//		WithNamedEntry("ok", okCapture).
//		WithNamedEntry("cancel", cancelCapture)
//	if err := m.Err(); err != nil { ... }
//	name, ok := m.FirstSimilarTo(screen, 0.9)
//
// Every grid, entry or query, is processed the same way: cropped to the area
// of interest unless it already has that size, masked (cells outside the mask
// take the zero value), then converted through the filter. Entries are
// processed once, at registration. The mask therefore has the dimensions of
// the area of interest, or of the entries when no area is set.
package matcher
