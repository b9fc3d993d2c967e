// Package overlapping - the Model front-end tying extraction, propagation
// and rendering together.
package overlapping

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/wfc/raster"
	"github.com/katalvlaran/wfc/solver"
)

// Model holds everything derived from one sample image: the color table,
// the weighted pattern set and the propagator. A Model is immutable after
// NewModel and may be shared by concurrent Generate calls, each using its
// own RNG stream.
type Model struct {
	opts     Options
	palette  []raster.Color
	patterns []pattern
	weights  []float64
	compat   [solver.NumDirections][][]int

	waveWidth, waveHeight int
}

// NewModel scans the sample image once and precomputes the immutable solve
// inputs: indexed colors, deduplicated weighted patterns, and the
// per-direction compatibility table.
// Returns an Options validation error, a raster indexing error, or
// ErrNoPatterns for a degenerate sample.
// Complexity: O(W×H×symmetry×N²) extraction + O(P²×N²) propagator build.
func NewModel(sample *raster.Image, opts Options) (*Model, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	ix, err := raster.Index(sample)
	if err != nil {
		return nil, err
	}
	patterns, weights, err := extractPatterns(ix, opts.N, opts.Symmetry, opts.PeriodicInput)
	if err != nil {
		return nil, err
	}

	m := &Model{
		opts:       opts,
		palette:    ix.Palette,
		patterns:   patterns,
		weights:    weights,
		compat:     buildPropagator(patterns, opts.N),
		waveWidth:  opts.Width,
		waveHeight: opts.Height,
	}
	if !opts.PeriodicOutput {
		m.waveWidth -= opts.N - 1
		m.waveHeight -= opts.N - 1
	}
	return m, nil
}

// PatternCount returns P, the number of unique extracted patterns.
func (m *Model) PatternCount() int { return len(m.patterns) }

// ColorCount returns the number of distinct sample colors.
func (m *Model) ColorCount() int { return len(m.palette) }

// Weights returns a copy of the per-pattern occurrence counts, indexed by
// pattern id.
func (m *Model) Weights() []float64 {
	out := make([]float64, len(m.weights))
	copy(out, m.weights)
	return out
}

// Generate runs one solve attempt seeded deterministically: the same seed
// always reproduces the same output. See GenerateWithRNG for semantics.
func (m *Model) Generate(seed int64) (*Result, error) {
	return m.GenerateWithRNG(solver.RNGFromSeed(seed))
}

// GenerateWithRNG runs one solve attempt on a fresh wave driven by rng.
//
// On success the Result holds the rendered Width×Height image. On
// contradiction the error wraps solver.ErrContradiction and the Result is
// still returned: a degraded render with Suspect set, useful for
// diagnostics. Callers are expected to retry with a fresh RNG stream
// (solver.DeriveRNG). ErrGroundContradiction and ErrStepLimit-wrapped
// failures are not retryable the same way: the former is a configuration
// error, the latter asks for a larger budget.
func (m *Model) GenerateWithRNG(rng *rand.Rand) (*Result, error) {
	s, err := solver.New(m.solverOptions(rng))
	if err != nil {
		// The ground hook runs during solver construction; its failure is a
		// configuration error, surfaced immediately.
		return nil, err
	}

	for step := 0; m.opts.StepLimit <= 0 || step < m.opts.StepLimit; step++ {
		switch s.Observe() {
		case solver.ObserveDone:
			return m.render(s), nil
		case solver.ObserveContradiction:
			res := m.render(s)
			return res, fmt.Errorf("overlapping: %w", solver.ErrContradiction)
		}
		if err = s.Propagate(); err != nil {
			res := m.render(s)
			return res, fmt.Errorf("overlapping: %w", err)
		}
	}
	if s.Done() {
		return m.render(s), nil
	}
	return nil, fmt.Errorf("overlapping: %w", solver.ErrStepLimit)
}

// solverOptions assembles the engine configuration for one attempt.
func (m *Model) solverOptions(rng *rand.Rand) solver.Options {
	opts := solver.Options{
		Width:     m.waveWidth,
		Height:    m.waveHeight,
		Periodic:  m.opts.PeriodicOutput,
		Weights:   m.weights,
		Compat:    m.compat,
		Heuristic: m.opts.Heuristic,
		RNG:       rng,
	}
	if m.opts.Ground {
		opts.OnClear = m.groundClear
	}
	return opts
}

// groundClear is the pre-solve hook installing the ground constraint: the
// bottom row is pinned to the highest-id pattern and that pattern is banned
// everywhere else, then the implied removals are propagated once.
func (m *Model) groundClear(s *solver.Solver) error {
	last := len(m.patterns) - 1
	w, h := s.Width(), s.Height()
	for x := 0; x < w; x++ {
		for p := 0; p < last; p++ {
			s.Ban(s.CellIndex(x, h-1), p)
		}
		for y := 0; y < h-1; y++ {
			s.Ban(s.CellIndex(x, y), last)
		}
	}
	if err := s.Propagate(); err != nil {
		return ErrGroundContradiction
	}
	return nil
}
