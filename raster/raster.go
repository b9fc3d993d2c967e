// Package raster - Color and Image primitives shared by the wfc pipeline.
package raster

import (
	"image"
	"image/color"
)

// Color is an opaque RGB triple packed as 0x00RRGGBB.
// Alpha is dropped on conversion; identity is exact uint32 equality.
type Color uint32

// RGB packs three 8-bit channels into a Color.
// Complexity: O(1).
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB unpacks the three 8-bit channels of c.
// Complexity: O(1).
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Image is a Width×Height grid of packed Color values stored row-major:
// the pixel at (x, y) lives at Pix[y*Width+x].
type Image struct {
	Width, Height int
	Pix           []Color
}

// New allocates a zeroed (all-black) Width×Height image.
// Returns ErrEmptyImage when either dimension is not positive.
// Complexity: O(W×H).
func New(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyImage
	}
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]Color, width*height),
	}, nil
}

// At returns the color of the pixel at (x, y).
// Complexity: O(1).
func (im *Image) At(x, y int) Color {
	return im.Pix[y*im.Width+x]
}

// Set overwrites the pixel at (x, y).
// Complexity: O(1).
func (im *Image) Set(x, y int, c Color) {
	im.Pix[y*im.Width+x] = c
}

// FromImage flattens any stdlib image.Image into a packed-RGB Image,
// discarding alpha. Returns ErrEmptyImage for empty bounds.
// Complexity: O(W×H).
func FromImage(src image.Image) (*Image, error) {
	b := src.Bounds()
	im, err := New(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			r, g, bb, _ := src.At(b.Min.X+x, b.Min.Y+y).RGBA()
			// RGBA returns 16-bit channels; keep the high byte.
			im.Set(x, y, RGB(uint8(r>>8), uint8(g>>8), uint8(bb>>8)))
		}
	}
	return im, nil
}

// ToRGBA converts the image back to a stdlib *image.RGBA with full alpha.
// Complexity: O(W×H).
func (im *Image) ToRGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, im.Width, im.Height))
	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			r, g, b := im.At(x, y).RGB()
			out.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xFF})
		}
	}
	return out
}
