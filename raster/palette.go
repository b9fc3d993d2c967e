package raster

// Indexed is an image re-expressed over its color table: Palette holds each
// distinct color once, in first-seen scan order, and Pix holds one dense
// uint8 index per pixel (row-major). Indexed is read-only after construction.
type Indexed struct {
	Width, Height int
	Palette       []Color
	Pix           []uint8
}

// Index builds the color table of im and the index-mapped copy of its pixels.
// Palette order is the first-seen order of a row-major scan, so index
// assignment is stable for a given input.
// Returns ErrEmptyImage for a nil or empty image and ErrPaletteOverflow when
// the image holds more than 256 distinct colors.
// Complexity: O(W×H) time, O(W×H + C) memory.
func Index(im *Image) (*Indexed, error) {
	if im == nil || im.Width <= 0 || im.Height <= 0 {
		return nil, ErrEmptyImage
	}
	ix := &Indexed{
		Width:   im.Width,
		Height:  im.Height,
		Palette: make([]Color, 0, 16),
		Pix:     make([]uint8, im.Width*im.Height),
	}
	seen := make(map[Color]uint8, 16)
	for i, c := range im.Pix {
		id, ok := seen[c]
		if !ok {
			if len(ix.Palette) == 256 {
				return nil, ErrPaletteOverflow
			}
			id = uint8(len(ix.Palette))
			seen[c] = id
			ix.Palette = append(ix.Palette, c)
		}
		ix.Pix[i] = id
	}
	return ix, nil
}

// At returns the color index of the pixel at (x, y).
// Complexity: O(1).
func (ix *Indexed) At(x, y int) uint8 {
	return ix.Pix[y*ix.Width+x]
}

// ColorAt resolves the pixel at (x, y) through the color table.
// Complexity: O(1).
func (ix *Indexed) ColorAt(x, y int) Color {
	return ix.Palette[ix.At(x, y)]
}
