// Package font rasterises TrueType and OpenType glyphs into boolean grids.
//
// Outlines come from golang.org/x/image/font/sfnt, scaled so one em equals
// the requested line height. Every glyph renders into a square lineHeight ×
// lineHeight grid whose bottom edge is the baseline; descenders are clipped.
// Curves are flattened into 16 line segments and filled with an even-odd
// scanline pass through the centre of each pixel row.
//
//	f, _ := font.Parse(goregular.TTF)
//	cells := f.DrawString("Hi\nthere", 24)
//	bitmap := grid.Flatten(cells)
package font
