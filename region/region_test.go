package region_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/region"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// charGrid builds a rune grid from equal-length rows.
func charGrid(t *testing.T, rows ...string) *grid.Grid[rune] {
	t.Helper()
	cells := make([][]rune, len(rows))
	for i, r := range rows {
		cells[i] = []rune(r)
	}
	g, err := grid.From2D(cells)
	require.NoError(t, err)

	return g
}

// boolGrid renders 'x' as true.
func boolGrid(t *testing.T, rows ...string) []bool {
	t.Helper()

	return grid.Map(charGrid(t, rows...), func(r rune) bool { return r == 'x' }).Data()
}

func render(g *grid.Grid[bool]) string {
	var sb strings.Builder
	for _, row := range g.Data2D() {
		for _, v := range row {
			if v {
				sb.WriteByte('x')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}

	return b - a
}

func TestAt_Predicate(t *testing.T) {
	g := grid.MustNew([]int{10, 0, 0, 0, 10, 9, 14, 12, 0}, 3, 3)

	r, err := region.At(g, grid.Pt(1, 1), func(a, b int) bool { return absDiff(a, b) < 3 })
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, false, false, true, true, true, true, false}, r.Grid().Data())
	assert.Equal(t, grid.R(0, 1, 3, 2), r.Bounds())
	assert.Equal(t, 4, r.Len())
}

// TestAt_FollowsGradient checks that membership is judged against the
// discovering neighbor: a slow ramp is included even though its far end
// differs from the seed by much more than the tolerance.
func TestAt_FollowsGradient(t *testing.T) {
	g := grid.MustNew([]int{0, 2, 4, 6, 8, 20}, 6, 1)
	near := func(a, b int) bool { return absDiff(a, b) < 3 }

	r, err := region.At(g, grid.Index(0), near)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, true, true, true, false}, r.Grid().Data())

	eq, err := region.AtEq(g, grid.Index(0))
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false, false, false, false}, eq.Grid().Data())
}

// TestAt_RecheckFromOtherNeighbor verifies that a cell rejected from one
// neighbor is still accepted when a later neighbor qualifies it.
func TestAt_RecheckFromOtherNeighbor(t *testing.T) {
	// Seed 5 at (0,0). (1,0)=9 is rejected from the seed but reachable via
	// (1,1)=8 which is reachable via (0,1)=6.
	g := grid.MustNew([]int{
		5, 9,
		6, 8,
	}, 2, 2)
	step := func(a, b int) bool { return absDiff(a, b) <= 2 }

	r, err := region.At(g, grid.Pt(0, 0), step)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, true, true}, r.Grid().Data())
}

func TestAtEq(t *testing.T) {
	g := grid.MustNew([]rune{'x', ' ', ' ', ' ', 'x', 'x', 'x', 'x', ' '}, 3, 3)

	r, err := region.AtEq(g, grid.Pt(1, 1))
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, false, false, true, true, true, true, false}, r.Grid().Data())
}

func TestAt_OutOfBounds(t *testing.T) {
	g := grid.Filled(3, 3, 0)
	_, err := region.AtEq(g, grid.Pt(3, 0))
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
	_, err = region.At(g, grid.Index(-1), func(a, b int) bool { return true })
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
	_, err = region.New(nil)
	assert.ErrorIs(t, err, region.ErrNilGrid)
}

func TestBounds_Empty(t *testing.T) {
	r, err := region.New(grid.Filled(4, 4, false))
	require.NoError(t, err)
	assert.Equal(t, grid.Rect{}, r.Bounds())
	assert.True(t, r.IsEmpty())

	r.RemoveEdge(3)
	r.AddEdge(3)
	assert.True(t, r.IsEmpty())
}

func thinShape(t *testing.T) *region.Region {
	g := charGrid(t,
		"  x  ",
		"  x x",
		"xxxxx",
		" xxx ",
		"  x  ",
	)
	r, err := region.AtEq(g, grid.Pt(2, 2))
	require.NoError(t, err)

	return r
}

func TestRemoveEdge_Thin(t *testing.T) {
	r := thinShape(t)
	r.RemoveEdge(1)

	assert.Equal(t, boolGrid(t,
		"     ",
		"     ",
		"  x  ",
		"  x  ",
		"     ",
	), r.Grid().Data(), "\n%s", render(r.Grid()))
	assert.Equal(t, grid.R(2, 2, 1, 2), r.Bounds())
}

func TestRemoveEdge_Thick(t *testing.T) {
	r, err := region.AtEq(grid.Filled(25, 25, 'x'), grid.Pt(12, 12))
	require.NoError(t, err)
	r.RemoveEdge(5)

	for y := 0; y < 25; y++ {
		for x := 0; x < 25; x++ {
			want := x >= 5 && x < 20 && y >= 5 && y < 20
			assert.Equal(t, want, r.Contains(grid.Pt(x, y)), "(%d,%d)", x, y)
		}
	}
	assert.Equal(t, grid.R(5, 5, 15, 15), r.Bounds())
}

func TestAddEdge_Thin(t *testing.T) {
	r := thinShape(t)
	r.AddEdge(1)

	assert.Equal(t, boolGrid(t,
		" xxxx",
		"xxxxx",
		"xxxxx",
		"xxxxx",
		" xxx ",
	), r.Grid().Data(), "\n%s", render(r.Grid()))
	assert.Equal(t, grid.R(0, 0, 5, 5), r.Bounds())
}

// TestAddEdge_Thick dilates the inner 15×15 square back out; 4-connectivity
// leaves diamond-shaped corners.
func TestAddEdge_Thick(t *testing.T) {
	square := grid.Filled(25, 25, ' ')
	square.AppendAt(grid.Filled(15, 15, 'x'), grid.Pt(5, 5))
	r, err := region.AtEq(square, grid.Pt(12, 12))
	require.NoError(t, err)
	r.AddEdge(5)

	for y := 0; y < 25; y++ {
		pad := 0
		switch {
		case y < 5:
			pad = 5 - y
		case y > 19:
			pad = y - 19
		}
		for x := 0; x < 25; x++ {
			want := x >= pad && x < 25-pad
			assert.Equal(t, want, r.Contains(grid.Pt(x, y)), "(%d,%d)", x, y)
		}
	}
	assert.Equal(t, grid.R(0, 0, 25, 25), r.Bounds())
}

func TestEdgeDistanceMap(t *testing.T) {
	rows := make([]string, 9)
	for y := range rows {
		if y > 0 && y < 7 {
			rows[y] = "  xxxxx  "
		} else {
			rows[y] = "         "
		}
	}
	r, err := region.AtEq(charGrid(t, rows...), grid.Pt(2, 2))
	require.NoError(t, err)

	dist := r.EdgeDistanceMap()
	assert.Equal(t, [][]int{
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 1, 2, 2, 2, 1, 0, 0},
		{0, 0, 1, 2, 3, 2, 1, 0, 0},
		{0, 0, 1, 2, 3, 2, 1, 0, 0},
		{0, 0, 1, 2, 2, 2, 1, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
	}, dist.Data2D())
	// The region itself is untouched.
	assert.Equal(t, 30, r.Len())
}

func TestMaskRoundTrip(t *testing.T) {
	r := thinShape(t)
	m := r.Mask()
	assert.Equal(t, r.Len(), m.PositiveCount())
	back := region.FromMask(m)
	assert.Equal(t, r.Grid().Data(), back.Grid().Data())
	assert.Equal(t, r.Bounds(), back.Bounds())
	assert.Equal(t, r.Bounds().W, r.BoundsSubGrid().Width())
}
