package solver

import (
	"math"
	"math/rand"
)

// removal is one pending (cell, pattern) ban awaiting propagation.
type removal struct {
	cell, pattern int
}

// Solver holds the mutable wave state of one solve attempt. Construct with
// New, drive with Run (or manually with Reset/Observe/Propagate), and
// inspect with the accessor methods. Not safe for concurrent use.
type Solver struct {
	width, height int
	periodic      bool
	heuristic     Heuristic
	rng           *rand.Rand
	onClear       func(*Solver) error

	// Immutable pattern tables, shared with the caller.
	weights    []float64
	weightLogs []float64 // weights[p] * log(weights[p])
	compat     [NumDirections][][]int

	// Initial per-cell sums, precomputed once.
	sumAllWeights    float64
	sumAllWeightLogs float64
	startEntropy     float64

	// Wave state, reset per attempt.
	wave          []bool    // cell*P + p
	support       []int     // (cell*P + p)*NumDirections + d
	possible      []int     // possibility count per cell
	sumWeights    []float64 // running weight sum per cell
	sumWeightLogs []float64 // running weight*log(weight) sum per cell
	entropies     []float64
	queue         []removal
	undecided     int
	contradiction bool
	scanCursor    int
}

// New validates opts and allocates a Solver in its pristine state (Reset has
// already been applied, including the OnClear hook).
// Returns ErrBadDimensions, ErrNoPatterns, ErrBadWeights or ErrBadPropagator
// on invalid options, or the hook's error verbatim if OnClear fails.
// Complexity: O(W×H×P) time and memory.
func New(opts Options) (*Solver, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, ErrBadDimensions
	}
	numPatterns := len(opts.Weights)
	if numPatterns == 0 {
		return nil, ErrNoPatterns
	}
	for _, w := range opts.Weights {
		if w <= 0 {
			return nil, ErrBadWeights
		}
	}
	for d := 0; d < NumDirections; d++ {
		if len(opts.Compat[d]) != numPatterns {
			return nil, ErrBadPropagator
		}
		for _, list := range opts.Compat[d] {
			for _, q := range list {
				if q < 0 || q >= numPatterns {
					return nil, ErrBadPropagator
				}
			}
		}
	}

	rng := opts.RNG
	if rng == nil {
		rng = RNGFromSeed(0)
	}

	cells := opts.Width * opts.Height
	s := &Solver{
		width:         opts.Width,
		height:        opts.Height,
		periodic:      opts.Periodic,
		heuristic:     opts.Heuristic,
		rng:           rng,
		onClear:       opts.OnClear,
		weights:       opts.Weights,
		weightLogs:    make([]float64, numPatterns),
		compat:        opts.Compat,
		wave:          make([]bool, cells*numPatterns),
		support:       make([]int, cells*numPatterns*NumDirections),
		possible:      make([]int, cells),
		sumWeights:    make([]float64, cells),
		sumWeightLogs: make([]float64, cells),
		entropies:     make([]float64, cells),
	}
	for p, w := range s.weights {
		s.weightLogs[p] = w * math.Log(w)
		s.sumAllWeights += w
		s.sumAllWeightLogs += s.weightLogs[p]
	}
	s.startEntropy = math.Log(s.sumAllWeights) - s.sumAllWeightLogs/s.sumAllWeights

	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset restores the wave to its pristine all-possible state, re-derives the
// support counters from the compatibility table, clears the ban queue, and
// finally invokes the OnClear hook (if any). A fresh attempt requires a
// Reset; Run performs one implicitly.
// Returns the hook's error verbatim when it fails.
// Complexity: O(W×H×P).
func (s *Solver) Reset() error {
	numPatterns := len(s.weights)
	for i := range s.wave {
		s.wave[i] = true
	}
	for cell := 0; cell < len(s.possible); cell++ {
		s.possible[cell] = numPatterns
		s.sumWeights[cell] = s.sumAllWeights
		s.sumWeightLogs[cell] = s.sumAllWeightLogs
		s.entropies[cell] = s.startEntropy
		for p := 0; p < numPatterns; p++ {
			base := (cell*numPatterns + p) * NumDirections
			for d := Direction(0); d < NumDirections; d++ {
				// Support in direction d is fed by the neighbor on the other
				// side, so the initial count comes from the opposite table.
				s.support[base+int(d)] = len(s.compat[d.Opposite()][p])
			}
		}
	}
	s.queue = s.queue[:0]
	s.contradiction = false
	s.scanCursor = 0
	if numPatterns > 1 {
		s.undecided = len(s.possible)
	} else {
		s.undecided = 0
	}

	if s.onClear != nil {
		if err := s.onClear(s); err != nil {
			return err
		}
	}
	return nil
}

// Width returns the wave grid width in cells.
func (s *Solver) Width() int { return s.width }

// Height returns the wave grid height in cells.
func (s *Solver) Height() int { return s.height }

// PatternCount returns P, the size of the pattern id space.
func (s *Solver) PatternCount() int { return len(s.weights) }

// CellIndex maps (x, y) to a row-major cell index: y*Width + x.
// Complexity: O(1).
func (s *Solver) CellIndex(x, y int) int {
	return y*s.width + x
}

// Coordinate converts a row-major cell index back to (x, y).
// Complexity: O(1).
func (s *Solver) Coordinate(cell int) (x, y int) {
	return cell % s.width, cell / s.width
}

// Possible reports whether pattern p is still possible at cell.
// Complexity: O(1).
func (s *Solver) Possible(cell, p int) bool {
	return s.wave[cell*len(s.weights)+p]
}

// PossibleCount returns the cached cardinality of the cell's possibility set.
// Zero means the cell is contradicted, one means it is decided.
// Complexity: O(1).
func (s *Solver) PossibleCount(cell int) int {
	return s.possible[cell]
}

// FirstPossible returns the lowest still-possible pattern id at cell,
// or -1 when the cell is contradicted.
// Complexity: O(P).
func (s *Solver) FirstPossible(cell int) int {
	base := cell * len(s.weights)
	for p := range s.weights {
		if s.wave[base+p] {
			return p
		}
	}
	return -1
}

// Entropy returns the cached positional entropy of the cell:
// log(sumWeights) - sumWeightLogWeights/sumWeights over its possibilities.
// Complexity: O(1).
func (s *Solver) Entropy(cell int) float64 {
	return s.entropies[cell]
}

// Done reports whether every cell holds exactly one possibility.
// Complexity: O(1).
func (s *Solver) Done() bool {
	return !s.contradiction && s.undecided == 0
}

// Contradicted reports whether any cell's possibility set became empty.
// The state remains inspectable for diagnostics.
// Complexity: O(1).
func (s *Solver) Contradicted() bool {
	return s.contradiction
}

// neighbor resolves the cell at offset d from cell, wrapping on a periodic
// grid. The second return value is false when the neighbor falls outside a
// non-periodic grid.
// Complexity: O(1).
func (s *Solver) neighbor(cell int, d Direction) (int, bool) {
	x, y := s.Coordinate(cell)
	dx, dy := d.Offset()
	x += dx
	y += dy
	if s.periodic {
		x = (x + s.width) % s.width
		y = (y + s.height) % s.height
	} else if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0, false
	}
	return s.CellIndex(x, y), true
}

// Run executes one full solve attempt: Reset (including the OnClear hook),
// then Observe+Propagate cycles until the wave is decided.
// maxSteps bounds the number of observations; pass 0 for no explicit bound
// (a solve is intrinsically bounded by Width×Height cycles).
// Returns nil on success, ErrContradiction on failure, ErrStepLimit when the
// budget ran out, or the OnClear hook's error verbatim.
func (s *Solver) Run(maxSteps int) error {
	if err := s.Reset(); err != nil {
		return err
	}
	for step := 0; maxSteps <= 0 || step < maxSteps; step++ {
		switch s.Observe() {
		case ObserveDone:
			return nil
		case ObserveContradiction:
			return ErrContradiction
		}
		if err := s.Propagate(); err != nil {
			return err
		}
	}
	if s.Done() {
		return nil
	}
	return ErrStepLimit
}
