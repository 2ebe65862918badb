// Package gridkit is a generic two-dimensional grid engine for image-like
// data: screen captures, glyph bitmaps, tile maps and boolean masks.
//
// What is inside
//
//	grid/       Grid[T], a width×height flat row-major buffer with
//	            bounds-checked access, neighbor lookup, overlay arithmetic,
//	            append/sub-grid composition and iteration
//	mask/       boolean masks with precomputed positive/negative index ranges
//	region/     flood-fill regions, edge erosion/dilation, edge-distance maps
//	            and breadth-first paths inside a region
//	pathing/    weighted shortest paths over a grid with a caller cost function
//	similarity/ cell-by-cell similarity scores, thresholded comparisons and
//	            sub-grid search with a mismatch budget
//	matcher/    a named template library answering "which entry is closest?"
//	storage/    big-endian byte codecs for grids and their elements, file I/O
//	imaging/    0xAARRGGBB colors, BMP/PNG codecs, image.Image bridging
//	font/       TrueType glyph rasterisation to boolean grids
//
// Conventions
//
//   - Coordinates are (x, y) with x the column and y the row; index = y*width + x.
//   - Structural operations return sentinel errors (match them with errors.Is).
//   - Spatial queries on mismatched inputs degrade to a neutral result
//     (score 0, no match) and report the condition through the package logger.
//
// Logging is silent by default. Call SetLogger to route diagnostics to a
// *slog.Logger of your choice.
package gridkit
