// Package grid provides Grid[T], a generic two-dimensional container backed
// by a single flat row-major buffer.
//
// A Grid of width W and height H owns a slice of exactly W*H elements. Cell
// (x, y) lives at index y*W + x; x is the column (fast axis) and y the row.
//
// Addressing goes through the Indexer capability: Index addresses a cell by
// its linear offset, XY by its column/row pair. Every spatial operation in
// gridkit accepts an Indexer, so callers may use whichever form is natural.
//
// Features:
//   - Bounds-checked At/Set returning ErrOutOfBounds instead of panicking.
//   - O(1) 4-connected neighbor lookup (IndexNeighbors) that never wraps rows.
//   - Map/MapIndexed conversion to a new element type, preserving dimensions.
//   - Overlay arithmetic (Add, Sub, Mul, Div and bitwise forms) applied over
//     the overlapping rectangle of two operands only.
//   - Composition: Append/AppendAt, owned SubGrid copies, pointer views via
//     SubGridRefs, strict Take, and Flatten for grids of grids.
//   - Range-over-func iteration (All, Pixels) and in-place Update.
//
// Equality (Equal, EqualFunc) compares width and height as well as the
// element sequence, so a 2×3 and a 3×2 grid with the same data differ.
//
// Grids are not safe for concurrent mutation; concurrent readers are fine.
package grid
