// Package pathing finds paths over a grid.Grid treated as an implicit
// 4-connected graph.
//
// FindPath is the unweighted form: it flood-fills the cells equal to the
// start cell and runs a breadth-first search inside that region.
//
// FindPathWeighted is the weighted form. The caller supplies
// weight(fromValue, toValue) returning the cost of stepping between two
// adjacent cells, or ok=false when the step is impassable. Costs must be
// non-negative. Each cell keeps its best known cumulative cost and
// predecessor; a cell is queued again whenever a strictly cheaper route to
// it is found. The queue is append-only with an advancing read cursor.
//
// Complexity:
//
//   - FindPath:         O(W*H)
//   - FindPathWeighted: O(W*H) per improvement wave; bounded by the number of
//     strict improvements, typically a small multiple of W*H.
//
// Errors (sentinel):
//
//   - ErrPathNotFound    the end cell was never reached.
//   - ErrLoopDetected    predecessor bookkeeping formed a cycle (internal fault).
//   - ErrNegativeWeight  the weight function returned a negative cost.
//   - ErrOptionViolation an invalid Option was supplied.
package pathing
