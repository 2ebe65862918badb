package region_test

import (
	"testing"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/region"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var maze = []string{
	" x   xxx x",
	"xxxx     x",
	"x    xx  x",
	"x xxx  xxx",
	"xxx xxxx  ",
}

func TestFindPath_Maze(t *testing.T) {
	g := charGrid(t, maze...)
	r, err := region.AtEq(g, grid.Pt(1, 0))
	require.NoError(t, err)

	path, err := r.FindPath(grid.Pt(1, 0), grid.Pt(9, 0))
	require.NoError(t, err)

	want := []grid.XY{
		grid.Pt(1, 0), grid.Pt(1, 1), grid.Pt(0, 1), grid.Pt(0, 2), grid.Pt(0, 3), grid.Pt(0, 4), grid.Pt(1, 4),
		grid.Pt(2, 4), grid.Pt(2, 3), grid.Pt(3, 3), grid.Pt(4, 3), grid.Pt(4, 4), grid.Pt(5, 4), grid.Pt(6, 4),
		grid.Pt(7, 4), grid.Pt(7, 3), grid.Pt(8, 3), grid.Pt(9, 3), grid.Pt(9, 2), grid.Pt(9, 1), grid.Pt(9, 0),
	}
	assert.Equal(t, want, path)

	// Deterministic across runs.
	again, err := r.FindPath(grid.Pt(1, 0), grid.Pt(9, 0))
	require.NoError(t, err)
	assert.Equal(t, path, again)
}

func TestFindPath_SameCell(t *testing.T) {
	r, err := region.AtEq(grid.Filled(3, 3, 1), grid.Index(4))
	require.NoError(t, err)

	path, err := r.FindPath(grid.Index(4), grid.Index(4))
	require.NoError(t, err)
	assert.Equal(t, []grid.XY{grid.Pt(1, 1)}, path)
}

func TestFindPath_Errors(t *testing.T) {
	g := charGrid(t,
		"x x",
		"x x",
		"xxx",
	)
	r, err := region.AtEq(g, grid.Pt(0, 0))
	require.NoError(t, err)

	_, err = r.FindPath(grid.Pt(1, 0), grid.Pt(0, 0))
	assert.ErrorIs(t, err, region.ErrOutOfRegion)
	_, err = r.FindPath(grid.Pt(0, 0), grid.Pt(5, 5))
	assert.ErrorIs(t, err, region.ErrOutOfRegion)

	// Two disconnected islands merged into one region by hand.
	cells := grid.MustNew([]bool{true, false, true}, 3, 1)
	split, err := region.New(cells)
	require.NoError(t, err)
	_, err = split.FindPath(grid.Index(0), grid.Index(2))
	assert.ErrorIs(t, err, region.ErrPathNotFound)
}

// TestFindPath_AroundCorner checks the path length of a U-shaped region.
func TestFindPath_AroundCorner(t *testing.T) {
	g := charGrid(t,
		"x x",
		"x x",
		"xxx",
	)
	r, err := region.AtEq(g, grid.Pt(0, 0))
	require.NoError(t, err)

	path, err := r.FindPath(grid.Pt(0, 0), grid.Pt(2, 0))
	require.NoError(t, err)
	assert.Len(t, path, 7)
	assert.Equal(t, grid.Pt(0, 0), path[0])
	assert.Equal(t, grid.Pt(2, 0), path[len(path)-1])
}
