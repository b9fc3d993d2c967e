package overlapping_test

import (
	"testing"

	"github.com/katalvlaran/wfc/overlapping"
	"github.com/katalvlaran/wfc/raster"
	"github.com/katalvlaran/wfc/solver"
)

func benchSample(b *testing.B) *raster.Image {
	im, err := raster.New(8, 8)
	if err != nil {
		b.Fatal(err)
	}
	dark, light := raster.RGB(0, 0, 0), raster.RGB(255, 255, 255)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if (x+y)%2 == 0 {
				im.Set(x, y, dark)
			} else {
				im.Set(x, y, light)
			}
		}
	}
	return im
}

// BenchmarkNewModel measures the one-time extraction + propagator build.
func BenchmarkNewModel(b *testing.B) {
	sample := benchSample(b)
	opts := overlapping.Options{
		N: 3, Symmetry: 8,
		Width: 32, Height: 32,
		PeriodicInput:  true,
		PeriodicOutput: true,
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := overlapping.NewModel(sample, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGenerate measures a full 32×32 toric solve on the checkerboard
// model, which always converges.
func BenchmarkGenerate(b *testing.B) {
	m, err := overlapping.NewModel(benchSample(b), overlapping.Options{
		N: 2, Symmetry: 1,
		Width: 32, Height: 32,
		PeriodicInput:  true,
		PeriodicOutput: true,
	})
	if err != nil {
		b.Fatal(err)
	}
	base := solver.RNGFromSeed(1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.GenerateWithRNG(solver.DeriveRNG(base, uint64(i))); err != nil {
			b.Fatal(err)
		}
	}
}
