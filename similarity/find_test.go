package similarity_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/mask"
	"github.com/katalvlaran/gridkit/similarity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind_Exact(t *testing.T) {
	hay := seq(9, 3, 3)
	needle := grid.MustNew([]int{3, 4, 6, 7}, 2, 2)

	at, ok := similarity.Find(hay, needle, 1)
	require.True(t, ok)
	assert.Equal(t, grid.Pt(0, 1), at)
}

func TestFind_NotPresent(t *testing.T) {
	hay := seq(9, 3, 3)
	_, ok := similarity.Find(hay, grid.MustNew([]int{9, 9, 9, 9}, 2, 2), 1)
	assert.False(t, ok)

	_, ok = similarity.Find(hay, seq(16, 4, 4), 0)
	assert.False(t, ok, "needle larger than haystack")

	_, ok = similarity.Find(hay, grid.MustNew([]int{3, 4, 6, 7}, 2, 2), 1.1)
	assert.False(t, ok)
}

// TestFind_Budget accepts one mismatching cell out of four at 0.75.
func TestFind_Budget(t *testing.T) {
	hay := seq(9, 3, 3)
	needle := grid.MustNew([]int{3, 4, 6, 0}, 2, 2)

	_, ok := similarity.Find(hay, needle, 1)
	assert.False(t, ok)
	at, ok := similarity.Find(hay, needle, 0.75)
	require.True(t, ok)
	assert.Equal(t, grid.Pt(0, 1), at)
}

// TestFindAll_Overlapping reports overlapping matches in row-major order.
func TestFindAll_Overlapping(t *testing.T) {
	hay := grid.MustNew([]int{
		1, 1, 1, 0,
		1, 1, 1, 0,
		0, 1, 1, 0,
	}, 4, 3)
	needle := grid.Filled(2, 2, 1)

	assert.Equal(t, []grid.XY{grid.Pt(0, 0), grid.Pt(1, 0), grid.Pt(1, 1)}, similarity.FindAll(hay, needle, 1))
	assert.Empty(t, similarity.FindAll(hay, grid.Filled(2, 2, 7), 1))
}

func TestFindMasked(t *testing.T) {
	hay := seq(16, 4, 4)
	// Only the corners of the 2×2 needle are compared.
	needle := grid.MustNew([]int{5, -1, -1, 10}, 2, 2)
	corners, err := mask.New(grid.MustNew([]bool{true, false, false, true}, 2, 2))
	require.NoError(t, err)

	at, ok := similarity.FindMasked(hay, needle, corners, 1)
	require.True(t, ok)
	assert.Equal(t, grid.Pt(1, 1), at)

	assert.Equal(t, []grid.XY{grid.Pt(1, 1)}, similarity.FindAllMasked(hay, needle, corners, 1))
	assert.Len(t, similarity.FindAllMasked(hay, needle, corners, 0), 9)
}

func TestFindMasked_MaskMustMatchNeedle(t *testing.T) {
	hay := seq(16, 4, 4)
	needle := grid.MustNew([]int{5, 6, 9, 10}, 2, 2)
	wrong := mask.FromFunc(hay, func(int) bool { return true })

	_, ok := similarity.FindMasked(hay, needle, wrong, 1)
	assert.False(t, ok)
}

// TestFindAllContext_ParallelMatchesSequential compares worker counts.
func TestFindAllContext_ParallelMatchesSequential(t *testing.T) {
	hay := grid.CheckersBoard(8, 2, 1, 0)
	needle := grid.Filled(2, 2, 1)
	want := similarity.FindAll(hay, needle, 1)
	require.NotEmpty(t, want)

	for _, w := range []int{1, 2, 3, 7, 32} {
		s, err := similarity.New[int](similarity.WithWorkers(w))
		require.NoError(t, err)
		got, err := s.FindAllContext(context.Background(), hay, needle)
		require.NoError(t, err)
		assert.Equal(t, want, got, "workers=%d", w)
	}
}

func TestFindAllContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s, err := similarity.New[int](similarity.WithWorkers(4))
	require.NoError(t, err)

	_, err = s.FindAllContext(ctx, grid.Filled(64, 64, 0), grid.Filled(2, 2, 0))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFindAll_CancelledByOption(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	hay, needle := grid.Filled(64, 64, 0), grid.Filled(2, 2, 0)

	for _, w := range []int{1, 4} {
		s, err := similarity.New[int](similarity.WithContext(ctx), similarity.WithWorkers(w))
		require.NoError(t, err)

		assert.Nil(t, s.FindAll(hay, needle), "workers=%d", w)
		_, err = s.FindAllContext(context.Background(), hay, needle)
		assert.ErrorIs(t, err, context.Canceled, "workers=%d", w)
	}
}

func TestSettings_FindUsesThresholdAndMask(t *testing.T) {
	hay := seq(16, 4, 4)
	needle := grid.MustNew([]int{5, 6, 9, 0}, 2, 2)

	s, err := similarity.New[int](similarity.WithThreshold(0.75))
	require.NoError(t, err)
	at, ok := s.Find(hay, needle)
	require.True(t, ok)
	assert.Equal(t, grid.Pt(1, 1), at)
	assert.Equal(t, []grid.XY{grid.Pt(1, 1)}, s.FindAll(hay, needle))

	exact, err := similarity.New[int]()
	require.NoError(t, err)
	_, ok = exact.Find(hay, needle)
	assert.False(t, ok)
}
