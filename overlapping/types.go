// Package overlapping - option types for the overlapping WFC model.
package overlapping

import (
	"github.com/katalvlaran/wfc/raster"
	"github.com/katalvlaran/wfc/solver"
)

// pattern is one NxN tile of color indices, flattened row-major.
type pattern []uint8

// Options configures an overlapping model.
//
// Fields:
//   - N              — pattern window size in pixels (N×N).
//   - Symmetry       — how many of the 8 dihedral variants of each window to
//     extract, in the fixed order identity, reflection, rotation, … (1..8).
//   - Width, Height  — output image size in pixels.
//   - PeriodicInput  — treat the sample as toric while scanning windows.
//   - PeriodicOutput — make the output toric; otherwise the wave shrinks to
//     (Width-N+1)×(Height-N+1) cells to avoid edge overhang.
//   - Ground         — pin the highest-id pattern to the bottom row and ban
//     it everywhere else before solving (see ErrGroundContradiction).
//   - Heuristic      — cell selection policy, solver.Entropy or
//     solver.Scanline.
//   - StepLimit      — optional observation budget per attempt; 0 means
//     unbounded (a solve is intrinsically bounded by the cell count).
type Options struct {
	N              int
	Symmetry       int
	Width, Height  int
	PeriodicInput  bool
	PeriodicOutput bool
	Ground         bool
	Heuristic      solver.Heuristic
	StepLimit      int
}

// DefaultOptions returns the conventional overlapping configuration:
// 3×3 patterns, full dihedral symmetry, toric input, 48×48 output.
func DefaultOptions() Options {
	return Options{
		N:             3,
		Symmetry:      8,
		Width:         48,
		Height:        48,
		PeriodicInput: true,
		Heuristic:     solver.Entropy,
	}
}

// validate rejects option combinations that cannot produce a wave.
func (o Options) validate() error {
	if o.N < 1 {
		return ErrBadPatternSize
	}
	if o.Symmetry < 1 || o.Symmetry > 8 {
		return ErrBadSymmetry
	}
	if o.Width <= 0 || o.Height <= 0 {
		return ErrBadOutputSize
	}
	if !o.PeriodicOutput && (o.Width < o.N || o.Height < o.N) {
		return ErrBadOutputSize
	}
	return nil
}

// Result is the outcome of one generation attempt.
type Result struct {
	// Image is the rendered output, Width×Height pixels.
	Image *raster.Image
	// Suspect is true when the render substituted the fallback pattern for a
	// contradicted cell: the image is a diagnostic aid, not a valid solve.
	Suspect bool
}
