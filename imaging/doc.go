// Package imaging converts grids to and from images.
//
// Colour cells use Color, a packed 0xAARRGGBB value. Any other element type
// reaches Color through a Converter; Identity, Uint32, Gray, Bool and Bytes4
// cover the common cases.
//
// Codecs:
//   - BMP: EncodeBMP writes 32-bit top-down bitmaps with a 40-byte info
//     header. DecodeBMP reads 24- and 32-bit uncompressed files in either row
//     order and hands other variants (palettes, V4/V5 headers, bitfields) to
//     golang.org/x/image/bmp.
//   - PNG: EncodePNG/DecodePNG over image/png.
//
// ToStd and FromStd bridge to the image package, and Scale resamples through
// golang.org/x/image/draw. File helpers take an afero.Fs.
package imaging
