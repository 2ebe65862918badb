package font

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridkit"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/storage"
	"github.com/spf13/afero"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ErrFormat indicates font data sfnt could not parse.
var ErrFormat = errors.New("font: malformed font data")

// Font is a parsed font. It is safe for concurrent use.
type Font struct {
	f *sfnt.Font
}

// Parse parses TrueType or OpenType data. The slice must not be modified
// while the Font is in use.
func Parse(data []byte) (*Font, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font.Parse: %v: %w", err, ErrFormat)
	}

	return &Font{f: f}, nil
}

// LoadFile reads and parses the font at path on fs.
func LoadFile(fs afero.Fs, path string) (*Font, error) {
	b, err := storage.ReadBytes(fs, path)
	if err != nil {
		return nil, err
	}

	return Parse(b)
}

// UnitsPerEm returns the design-space resolution of the font.
func (f *Font) UnitsPerEm() int { return int(f.f.UnitsPerEm()) }

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int { return f.f.NumGlyphs() }

// DrawChar renders r into a lineHeight × lineHeight grid. Runes without a
// glyph render the font's .notdef glyph; a non-positive lineHeight yields an
// empty grid.
func (f *Font) DrawChar(r rune, lineHeight int) *grid.Grid[bool] {
	var buf sfnt.Buffer

	return f.drawChar(&buf, r, lineHeight)
}

// DrawString renders s with one cell per rune. Each line of s becomes a row;
// rows shorter than the longest line are padded with empty grids. Pass the
// result to grid.Flatten for a single bitmap.
func (f *Font) DrawString(s string, lineHeight int) *grid.Grid[*grid.Grid[bool]] {
	var buf sfnt.Buffer
	lines := strings.Split(s, "\n")

	rows := make([][]rune, len(lines))
	width := 0
	for i, l := range lines {
		rows[i] = []rune(l)
		width = max(width, len(rows[i]))
	}

	cells := make([]*grid.Grid[bool], 0, width*len(rows))
	for _, row := range rows {
		for x := 0; x < width; x++ {
			if x < len(row) {
				cells = append(cells, f.drawChar(&buf, row[x], lineHeight))
			} else {
				cells = append(cells, grid.Empty[bool]())
			}
		}
	}

	return grid.MustNew(cells, width, len(rows))
}

func (f *Font) drawChar(buf *sfnt.Buffer, r rune, lineHeight int) *grid.Grid[bool] {
	if lineHeight <= 0 {
		return grid.Empty[bool]()
	}

	gid, err := f.f.GlyphIndex(buf, r)
	if err != nil {
		gridkit.Logger().Warn("font: glyph lookup failed", "rune", string(r), "err", err)
		return grid.Filled(lineHeight, lineHeight, false)
	}
	segs, err := f.f.LoadGlyph(buf, gid, fixed.I(lineHeight), nil)
	if err != nil {
		gridkit.Logger().Warn("font: glyph load failed", "rune", string(r), "glyph", gid, "err", err)
		return grid.Filled(lineHeight, lineHeight, false)
	}

	return fill(outline(segs, float64(lineHeight)), lineHeight)
}
