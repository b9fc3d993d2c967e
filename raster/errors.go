package raster

import "errors"

var (
	// ErrEmptyImage indicates an image with zero width or height.
	ErrEmptyImage = errors.New("raster: image must have at least one pixel")
	// ErrPaletteOverflow indicates more than 256 distinct colors in the input.
	ErrPaletteOverflow = errors.New("raster: too many distinct colors for uint8 index space")
)
