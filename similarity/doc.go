// Package similarity compares grids cell by cell and searches for sub-grids.
//
// Scores are the fraction of compared cells for which the comparator holds
// (equality by default). With a mask, only the mask's positive cells are
// compared and the fraction is taken over their count.
//
// Thresholded checks count mismatches and stop as soon as the mismatch
// budget round((1-threshold) × comparedCells) is exceeded. Edge cases:
//
//	threshold <= 0  always similar
//	threshold == 1  every compared cell must match
//	threshold > 1   never similar (NaN likewise)
//
// Find and FindAll slide the needle over every top-left offset of the
// haystack in row-major order, applying the same budget at each offset.
// FindAll reports every matching offset, including overlapping ones, in
// row-major order. FindAllContext splits the rows across worker goroutines
// with errgroup; the merged result is identical to the sequential scan.
//
// Mismatched dimensions are not errors here: the functions log a warning
// through gridkit.Logger and return the neutral result (0, false, nil).
package similarity
