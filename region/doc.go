// Package region implements flood-fill regions over a grid.Grid and the
// operations built on them.
//
// A Region is a boolean grid of the same size as its source plus a cached
// tight bounding box of its true cells. The bounding box is recomputed by
// every mutating call before it returns; an empty region has bounds
// {0, 0, 0, 0}.
//
// Construction:
//
//	At(g, start, same)    breadth-first flood fill where a cell joins when
//	                      same(valueOfDiscoveringNeighbor, valueOfCell) holds.
//	                      Membership is judged against the neighbor that found
//	                      the cell, not the seed, so gradients can be followed.
//	AtEq(g, start)        flood fill of cells equal to the seed value.
//	New(cells)            wrap an existing boolean grid.
//
// Morphology (4-connected):
//
//	RemoveEdge(n)         strip n boundary layers (erosion). Cells on the outer
//	                      border of the grid count as boundary cells.
//	AddEdge(n)            grow n layers (dilation).
//	EdgeDistanceMap()     erosion layer (1-based) at which each cell is stripped.
//
// Paths:
//
//	FindPath(start, end)  breadth-first shortest path through region cells,
//	                      neighbors expanded left, top, right, bottom.
//
// Every traversal uses an append-only queue with an advancing read cursor.
package region
