package font_test

import (
	"testing"

	"github.com/katalvlaran/gridkit/font"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func goRegular(t testing.TB) *font.Font {
	t.Helper()
	f, err := font.Parse(goregular.TTF)
	require.NoError(t, err)

	return f
}

func inked(g *grid.Grid[bool]) int { return g.Count(func(v bool) bool { return v }) }

// inkedRows counts set cells in rows [from, to).
func inkedRows(g *grid.Grid[bool], from, to int) int {
	n := 0
	for y := from; y < to; y++ {
		for x := 0; x < g.Width(); x++ {
			if v, _ := g.At(grid.Pt(x, y)); v {
				n++
			}
		}
	}

	return n
}

func TestParse(t *testing.T) {
	f := goRegular(t)
	assert.Equal(t, 2048, f.UnitsPerEm())
	assert.Positive(t, f.NumGlyphs())

	_, err := font.Parse([]byte("not a font"))
	assert.ErrorIs(t, err, font.ErrFormat)
}

func TestLoadFile(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "fonts/go.ttf", goregular.TTF, 0o644))

	f, err := font.LoadFile(mem, "fonts/go.ttf")
	require.NoError(t, err)
	assert.Equal(t, 2048, f.UnitsPerEm())

	_, err = font.LoadFile(mem, "fonts/none.ttf")
	assert.Error(t, err)
}

func TestDrawChar(t *testing.T) {
	f := goRegular(t)
	const size = 32

	t.Run("Space", func(t *testing.T) {
		g := f.DrawChar(' ', size)
		assert.Equal(t, size, g.Width())
		assert.Equal(t, size, g.Height())
		assert.Zero(t, inked(g))
	})
	t.Run("PeriodSitsOnBaseline", func(t *testing.T) {
		g := f.DrawChar('.', size)
		assert.Positive(t, inked(g))
		assert.Zero(t, inkedRows(g, 0, size*3/4))
	})
	t.Run("TIsTopHeavy", func(t *testing.T) {
		g := f.DrawChar('T', size)
		assert.Greater(t, inkedRows(g, 8, 14), inkedRows(g, size-6, size))
	})
	t.Run("CapitalOutweighsLower", func(t *testing.T) {
		assert.Greater(t, inked(f.DrawChar('O', size)), inked(f.DrawChar('o', size)))
	})
	t.Run("ZeroHeight", func(t *testing.T) {
		assert.True(t, f.DrawChar('A', 0).IsEmpty())
	})
}

func TestDrawString(t *testing.T) {
	f := goRegular(t)

	cells := f.DrawString("ab\nc", 16)
	require.Equal(t, 2, cells.Width())
	require.Equal(t, 2, cells.Height())
	assert.True(t, grid.Equal(f.DrawChar('a', 16), cells.Get(0)))
	assert.True(t, grid.Equal(f.DrawChar('c', 16), cells.Get(2)))
	assert.True(t, cells.Get(3).IsEmpty())

	bitmap := grid.Flatten(cells)
	assert.Equal(t, 32, bitmap.Width())
	assert.Equal(t, 32, bitmap.Height())
	assert.Equal(t, inked(f.DrawChar('a', 16))+inked(f.DrawChar('b', 16))+inked(f.DrawChar('c', 16)), inked(bitmap))
}
