// Package mask provides Mask, a boolean grid annotated with the maximal
// contiguous runs of true (positive) and false (negative) cells.
//
// Ranges are computed once, by a single linear scan, when the mask is built.
// Together they partition [0, width*height) and alternate in truth value, so
// masked loops can walk only the positive runs instead of branching on every
// cell. A Mask is never patched incrementally; build a new one instead.
package mask
