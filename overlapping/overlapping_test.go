package overlapping_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/wfc/overlapping"
	"github.com/katalvlaran/wfc/raster"
	"github.com/katalvlaran/wfc/solver"
)

//----------------------------------------------------------------------------//
// Fixtures
//----------------------------------------------------------------------------//

func solidSample(t require.TestingT, c raster.Color) *raster.Image {
	im, err := raster.New(2, 2)
	require.NoError(t, err)
	for i := range im.Pix {
		im.Pix[i] = c
	}
	return im
}

func checkerboardSample(t require.TestingT) *raster.Image {
	im, err := raster.New(4, 4)
	require.NoError(t, err)
	dark, light := raster.RGB(20, 20, 20), raster.RGB(230, 230, 230)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if (x+y)%2 == 0 {
				im.Set(x, y, dark)
			} else {
				im.Set(x, y, light)
			}
		}
	}
	return im
}

// skyGroundSample is all “sky” except for a solid bottom row, so the
// highest-id pattern is the sky-over-ground seam.
func skyGroundSample(t require.TestingT) *raster.Image {
	im, err := raster.New(4, 4)
	require.NoError(t, err)
	sky, ground := raster.RGB(120, 180, 255), raster.RGB(90, 60, 20)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if y == 3 {
				im.Set(x, y, ground)
			} else {
				im.Set(x, y, sky)
			}
		}
	}
	return im
}

//----------------------------------------------------------------------------//
// Options and extraction failures
//----------------------------------------------------------------------------//

// TestNewModel_Validation verifies rejection of malformed options and of
// degenerate samples.
func TestNewModel_Validation(t *testing.T) {
	sample := checkerboardSample(t)

	cases := []struct {
		name string
		opts overlapping.Options
		err  error
	}{
		{
			"ZeroPatternSize",
			overlapping.Options{N: 0, Symmetry: 1, Width: 8, Height: 8},
			overlapping.ErrBadPatternSize,
		},
		{
			"SymmetryTooHigh",
			overlapping.Options{N: 2, Symmetry: 9, Width: 8, Height: 8},
			overlapping.ErrBadSymmetry,
		},
		{
			"SymmetryTooLow",
			overlapping.Options{N: 2, Symmetry: 0, Width: 8, Height: 8},
			overlapping.ErrBadSymmetry,
		},
		{
			"OutputSmallerThanPattern",
			overlapping.Options{N: 3, Symmetry: 1, Width: 2, Height: 8},
			overlapping.ErrBadOutputSize,
		},
		{
			"NoWindowsFit",
			// Non-periodic 4×4 sample cannot host a single 5×5 window.
			overlapping.Options{N: 5, Symmetry: 1, Width: 16, Height: 16},
			overlapping.ErrNoPatterns,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := overlapping.NewModel(sample, tc.opts)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

//----------------------------------------------------------------------------//
// Generation suite
//----------------------------------------------------------------------------//

// OverlappingSuite exercises full generation runs end to end.
type OverlappingSuite struct {
	suite.Suite
}

// TestTrivialRoundTrip verifies the degenerate-but-legal case: a one-color
// sample with N=1 and symmetry=1 must always succeed and fill any output
// size with that color.
func (s *OverlappingSuite) TestTrivialRoundTrip() {
	c := raster.RGB(30, 60, 90)
	m, err := overlapping.NewModel(solidSample(s.T(), c), overlapping.Options{
		N: 1, Symmetry: 1,
		Width: 7, Height: 5,
	})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, m.PatternCount())
	require.Equal(s.T(), 1, m.ColorCount())

	for seed := int64(1); seed <= 3; seed++ {
		res, err := m.Generate(seed)
		require.NoError(s.T(), err)
		require.False(s.T(), res.Suspect)
		require.Equal(s.T(), 7, res.Image.Width)
		require.Equal(s.T(), 5, res.Image.Height)
		for _, px := range res.Image.Pix {
			require.Equal(s.T(), c, px)
		}
	}
}

// TestCheckerboardPeriodic verifies that a checkerboard sample regenerates
// strict alternation on a toric output, wrap seams included.
func (s *OverlappingSuite) TestCheckerboardPeriodic() {
	m, err := overlapping.NewModel(checkerboardSample(s.T()), overlapping.Options{
		N: 2, Symmetry: 1,
		Width: 8, Height: 6,
		PeriodicInput:  true,
		PeriodicOutput: true,
	})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, m.PatternCount())

	res, err := m.Generate(17)
	require.NoError(s.T(), err)
	require.False(s.T(), res.Suspect)

	im := res.Image
	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			require.NotEqual(s.T(), im.At(x, y), im.At((x+1)%im.Width, y),
				"horizontal neighbors must alternate (x=%d y=%d)", x, y)
			require.NotEqual(s.T(), im.At(x, y), im.At(x, (y+1)%im.Height),
				"vertical neighbors must alternate (x=%d y=%d)", x, y)
		}
	}
}

// TestCheckerboardNonPeriodic verifies the reduced wave and the per-axis
// edge clamping of the renderer on a non-toric output.
func (s *OverlappingSuite) TestCheckerboardNonPeriodic() {
	m, err := overlapping.NewModel(checkerboardSample(s.T()), overlapping.Options{
		N: 2, Symmetry: 1,
		Width: 7, Height: 7,
		PeriodicInput: true,
	})
	require.NoError(s.T(), err)

	res, err := m.Generate(4)
	require.NoError(s.T(), err)
	require.False(s.T(), res.Suspect)

	im := res.Image
	require.Equal(s.T(), 7, im.Width)
	require.Equal(s.T(), 7, im.Height)
	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width-1; x++ {
			require.NotEqual(s.T(), im.At(x, y), im.At(x+1, y))
		}
	}
	for y := 0; y < im.Height-1; y++ {
		for x := 0; x < im.Width; x++ {
			require.NotEqual(s.T(), im.At(x, y), im.At(x, y+1))
		}
	}
}

// TestContradictionIsReportedAndRendered verifies the failure contract:
// strict alternation cannot tile an odd torus, the error wraps
// solver.ErrContradiction, and the degraded render is flagged Suspect.
func (s *OverlappingSuite) TestContradictionIsReportedAndRendered() {
	m, err := overlapping.NewModel(checkerboardSample(s.T()), overlapping.Options{
		N: 2, Symmetry: 1,
		Width: 5, Height: 5,
		PeriodicInput:  true,
		PeriodicOutput: true,
	})
	require.NoError(s.T(), err)

	res, err := m.Generate(1)
	require.ErrorIs(s.T(), err, solver.ErrContradiction)
	require.NotNil(s.T(), res, "a degraded render must accompany the contradiction")
	require.True(s.T(), res.Suspect)
	require.Equal(s.T(), 5, res.Image.Width)
}

// TestGroundBias verifies the ground constraint: the seam pattern owns the
// bottom row, sky fills the rest, deterministically.
func (s *OverlappingSuite) TestGroundBias() {
	m, err := overlapping.NewModel(skyGroundSample(s.T()), overlapping.Options{
		N: 2, Symmetry: 1,
		Width: 6, Height: 5,
		Ground: true,
	})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, m.PatternCount(), "sky block + seam block")

	res, err := m.Generate(99)
	require.NoError(s.T(), err)
	require.False(s.T(), res.Suspect)

	sky, ground := raster.RGB(120, 180, 255), raster.RGB(90, 60, 20)
	im := res.Image
	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			want := sky
			if y == im.Height-1 {
				want = ground
			}
			require.Equal(s.T(), want, im.At(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

// TestGroundContradiction verifies that an incompatible ground constraint
// fails fast with the dedicated configuration error.
func (s *OverlappingSuite) TestGroundContradiction() {
	// Pinning one checkerboard phase across a whole row contradicts strict
	// horizontal alternation immediately.
	m, err := overlapping.NewModel(checkerboardSample(s.T()), overlapping.Options{
		N: 2, Symmetry: 1,
		Width: 6, Height: 6,
		PeriodicInput: true,
		Ground:        true,
	})
	require.NoError(s.T(), err)

	res, err := m.Generate(1)
	require.ErrorIs(s.T(), err, overlapping.ErrGroundContradiction)
	require.Nil(s.T(), res)
}

// TestDeterminism verifies seed reproducibility on a loosely constrained
// model where sampling genuinely decides the output.
func (s *OverlappingSuite) TestDeterminism() {
	im, err := raster.New(3, 1)
	require.NoError(s.T(), err)
	im.Set(0, 0, raster.RGB(255, 0, 0))
	im.Set(1, 0, raster.RGB(0, 255, 0))
	im.Set(2, 0, raster.RGB(0, 0, 255))

	// N=1 windows have empty overlaps, so every pattern neighbors every
	// other: the solve is pure weighted sampling.
	m, err := overlapping.NewModel(im, overlapping.Options{
		N: 1, Symmetry: 1,
		Width: 6, Height: 6,
	})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, m.PatternCount())

	a, err := m.Generate(1234)
	require.NoError(s.T(), err)
	b, err := m.Generate(1234)
	require.NoError(s.T(), err)
	require.Equal(s.T(), a.Image.Pix, b.Image.Pix, "identical seeds must reproduce identical pixels")

	other, err := m.Generate(4321)
	require.NoError(s.T(), err)
	require.NotEqual(s.T(), a.Image.Pix, other.Image.Pix, "different seeds should diverge on 3^36 colorings")
}

// TestStepLimit verifies the per-attempt observation budget.
func (s *OverlappingSuite) TestStepLimit() {
	im, err := raster.New(3, 1)
	require.NoError(s.T(), err)
	im.Set(0, 0, raster.RGB(255, 0, 0))
	im.Set(1, 0, raster.RGB(0, 255, 0))
	im.Set(2, 0, raster.RGB(0, 0, 255))

	m, err := overlapping.NewModel(im, overlapping.Options{
		N: 1, Symmetry: 1,
		Width: 6, Height: 6,
		StepLimit: 2, // 36 unconstrained cells need 36 observations
	})
	require.NoError(s.T(), err)

	res, err := m.Generate(1)
	require.ErrorIs(s.T(), err, solver.ErrStepLimit)
	require.Nil(s.T(), res)
}

// TestModelReuseAcrossAttempts verifies that one Model serves many
// independent attempts with derived RNG streams.
func (s *OverlappingSuite) TestModelReuseAcrossAttempts() {
	m, err := overlapping.NewModel(checkerboardSample(s.T()), overlapping.Options{
		N: 2, Symmetry: 1,
		Width: 6, Height: 6,
		PeriodicInput:  true,
		PeriodicOutput: true,
	})
	require.NoError(s.T(), err)

	base := solver.RNGFromSeed(5)
	for attempt := uint64(0); attempt < 4; attempt++ {
		res, err := m.GenerateWithRNG(solver.DeriveRNG(base, attempt))
		require.NoError(s.T(), err)
		require.False(s.T(), res.Suspect)
	}
}

// Entry point for running the suite.
func TestOverlappingSuite(t *testing.T) {
	suite.Run(t, new(OverlappingSuite))
}
