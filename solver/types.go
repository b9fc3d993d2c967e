// Package solver - option types and grid direction constants.
package solver

import "math/rand"

// Direction indexes the four cardinal neighbor offsets of the wave grid.
// Opposite directions pair up as d XOR 1, which propagation relies on.
type Direction int

const (
	// Left is the (-1, 0) offset.
	Left Direction = iota
	// Right is the (+1, 0) offset.
	Right
	// Up is the (0, -1) offset.
	Up
	// Down is the (0, +1) offset.
	Down

	// NumDirections is the size of the direction set.
	NumDirections = 4
)

// deltaX and deltaY hold the unit offset of each Direction.
var (
	deltaX = [NumDirections]int{-1, 1, 0, 0}
	deltaY = [NumDirections]int{0, 0, -1, 1}
)

// Offset returns the unit (dx, dy) offset of d.
// Complexity: O(1).
func (d Direction) Offset() (dx, dy int) {
	return deltaX[d], deltaY[d]
}

// Opposite returns the direction pointing the other way.
// Complexity: O(1).
func (d Direction) Opposite() Direction {
	return d ^ 1
}

// Heuristic selects how Observe picks the next cell to collapse.
type Heuristic int

const (
	// Entropy picks the undecided cell with minimum positional entropy,
	// jittered by a tiny random term to break ties.
	Entropy Heuristic = iota
	// Scanline picks undecided cells in row-major order with a cursor that
	// only moves forward between observations.
	Scanline
)

// Options configures a Solver.
//
// Fields:
//   - Width, Height — wave grid dimensions (cells, not pixels).
//   - Periodic      — if true, neighbor lookups wrap around the grid edges.
//   - Weights       — per-pattern occurrence weights; len(Weights) is the
//     pattern count P, every entry must be > 0.
//   - Compat        — Compat[d][p] lists the pattern ids allowed at offset d
//     from a cell holding p; each direction table must have P rows.
//   - Heuristic     — Entropy (default) or Scanline.
//   - RNG           — randomness source for sampling and tie-breaking;
//     nil falls back to the fixed default stream (RNGFromSeed(0)).
//   - OnClear       — optional pre-solve hook invoked by Reset after the wave
//     returns to its pristine all-possible state. The hook may Ban and
//     Propagate to install extra constraints; a non-nil error aborts the
//     solve immediately and is reported verbatim.
type Options struct {
	Width, Height int
	Periodic      bool
	Weights       []float64
	Compat        [NumDirections][][]int
	Heuristic     Heuristic
	RNG           *rand.Rand
	OnClear       func(*Solver) error
}

// Observation is the outcome of a single Observe call.
type Observation int

const (
	// ObserveContinue means one cell was collapsed; call Propagate next.
	ObserveContinue Observation = iota
	// ObserveDone means every cell is decided; the solve succeeded.
	ObserveDone
	// ObserveContradiction means some cell has no possibilities left.
	ObserveContradiction
)
