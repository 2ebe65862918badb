package similarity_test

import (
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/similarity"
)

// ExampleFind locates a 2×2 template inside a 3×3 grid.
func ExampleFind() {
	hay := grid.MustNew([]int{0, 1, 2, 3, 4, 5, 6, 7, 8}, 3, 3)
	needle := grid.MustNew([]int{3, 4, 6, 7}, 2, 2)

	at, ok := similarity.Find(hay, needle, 1)
	fmt.Println(at, ok)
	// Output:
	// [0,1] true
}

// ExampleSimilarityTo scores two grids differing in one cell.
func ExampleSimilarityTo() {
	a := grid.MustNew([]int{0, 1, 2, 3}, 2, 2)
	b := grid.MustNew([]int{0, 1, 2, 9}, 2, 2)
	fmt.Println(similarity.SimilarityTo(a, b), similarity.SimilarTo(a, b, 0.75))
	// Output:
	// 0.75 true
}
