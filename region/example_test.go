package region_test

import (
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/region"
)

// ExampleRegion_EdgeDistanceMap prints the erosion depth of a 5×3 block.
func ExampleRegion_EdgeDistanceMap() {
	r, _ := region.AtEq(grid.Filled(5, 3, 'x'), grid.Pt(0, 0))
	fmt.Print(r.EdgeDistanceMap())
	// Output:
	// 1 1 1 1 1
	// 1 2 2 2 1
	// 1 1 1 1 1
}

// ExampleRegion_RemoveEdge erodes a 5×5 block surrounded by empty cells.
func ExampleRegion_RemoveEdge() {
	g := grid.Filled(7, 7, 0)
	g.AppendAt(grid.Filled(5, 5, 1), grid.Pt(1, 1))
	r, _ := region.AtEq(g, grid.Pt(3, 3))
	r.RemoveEdge(1)
	fmt.Println(r.Bounds(), r.Len())
	// Output:
	// [2,2,3,3] 9
}
