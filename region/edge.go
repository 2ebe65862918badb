package region

import (
	"github.com/katalvlaran/gridkit"
	"github.com/katalvlaran/gridkit/grid"
)

// RemoveEdge strips layers boundary layers from the region (4-connected
// erosion). A region cell is on the boundary when a 4-neighbor is outside
// the region or when it lies on the border of the grid. Stops early once
// the region is empty. Bounds are recomputed after every layer.
// Complexity: O(layers × W × H).
func (r *Region) RemoveEdge(layers int) {
	for l := 0; l < layers && !r.bounds.Empty(); l++ {
		for _, i := range r.boundary() {
			r.cells.Put(i, false)
		}
		r.updateBounds()
	}
}

// AddEdge grows the region by layers cells (4-connected dilation): every
// outside cell with a 4-neighbor inside the region joins. Bounds are
// recomputed after every layer.
// Complexity: O(layers × W × H).
func (r *Region) AddEdge(layers int) {
	neighbors := make([]int, 0, 4)
	for l := 0; l < layers && !r.bounds.Empty(); l++ {
		var grow []int
		for i, in := range r.cells.Data() {
			if in {
				continue
			}
			neighbors = r.cells.AppendIndexNeighbors(neighbors[:0], i)
			for _, n := range neighbors {
				if r.cells.Get(n) {
					grow = append(grow, i)
					break
				}
			}
		}
		if len(grow) == 0 {
			break
		}
		for _, i := range grow {
			r.cells.Put(i, true)
		}
		r.updateBounds()
	}
}

// boundary lists the region cells that the next erosion layer removes.
// Only cells inside the current bounds are scanned.
func (r *Region) boundary() []int {
	var edge []int
	neighbors := make([]int, 0, 4)
	w := r.cells.Width()
	b := r.bounds
	for y := b.Y; y < b.Y+b.H; y++ {
		for x := b.X; x < b.X+b.W; x++ {
			i := y*w + x
			if !r.cells.Get(i) {
				continue
			}
			if r.cells.IsEdge(i) {
				edge = append(edge, i)
				continue
			}
			neighbors = r.cells.AppendIndexNeighbors(neighbors[:0], i)
			for _, n := range neighbors {
				if !r.cells.Get(n) {
					edge = append(edge, i)
					break
				}
			}
		}
	}

	return edge
}

// EdgeDistanceMap returns, for every region cell, the erosion layer at which
// it would be stripped: 1 for boundary cells, 2 for the layer beneath, and so
// on. Cells outside the region are 0. The region itself is not modified.
// Complexity: O(depth × W × H).
func (r *Region) EdgeDistanceMap() *grid.Grid[int] {
	out := grid.Filled(r.cells.Width(), r.cells.Height(), 0)
	work := r.Clone()
	layer := 0
	for !work.bounds.Empty() {
		layer++
		for _, i := range work.boundary() {
			work.cells.Put(i, false)
			out.Put(i, layer)
		}
		work.updateBounds()
	}
	gridkit.Logger().Debug("region: edge distance map", "layers", layer)

	return out
}
