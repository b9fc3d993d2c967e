// Package raster provides the pixel-level building blocks for the wfc
// pipeline: packed-RGB colors, a flat row-major Image, and the color table
// (Indexed) that re-expresses an image over a dense color-index space.
//
// What:
//
//   - Color packs an opaque RGB triple into a uint32; identity is exact equality.
//   - Image is a Width×Height grid of Color values, row-major, mutable.
//   - Indexed is an Image deduplicated through its color table: a dense
//     palette in first-seen scan order plus one uint8 index per pixel.
//   - FromImage / Image.ToRGBA bridge to the standard library image types.
//
// Why:
//
//   - Pattern extraction compares millions of pixel pairs; comparing dense
//     uint8 indices is cheaper than comparing full colors and makes the
//     base-C pattern encoding possible.
//   - The palette survives the whole run, so rendering is a single lookup.
//
// Complexity:
//
//   - Index:     O(W×H) time, O(W×H + C) memory (C = distinct colors).
//   - FromImage: O(W×H) time and memory.
//
// Errors:
//
//   - ErrEmptyImage: the image has no pixels.
//   - ErrPaletteOverflow: more than 256 distinct colors; the color-index
//     space is uint8.
package raster
