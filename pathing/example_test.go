package pathing_test

import (
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/pathing"
)

// ExampleFindPathWeighted routes around an expensive band of cells.
func ExampleFindPathWeighted() {
	terrain := grid.MustNew([]int{
		1, 1, 1,
		9, 9, 1,
		1, 1, 1,
	}, 3, 3)
	cost := func(_, to int) (int, bool) { return to, true }

	path, total, err := pathing.FindPathWeighted(terrain, grid.Pt(0, 0), grid.Pt(0, 2), cost)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path, total)
	// Output:
	// [[0,0] [1,0] [2,0] [2,1] [2,2] [1,2] [0,2]] 6
}
