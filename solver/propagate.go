package solver

import "math"

// Ban removes pattern p from the cell's possibility set and enqueues the
// removal for propagation. Banning an already-excluded pattern is a no-op.
// The cell's cached possibility count, weight sums and entropy are updated
// incrementally; if the count drops to zero the solver latches its
// contradiction state (the queue must still be drained by Propagate).
// Complexity: O(1) amortized.
func (s *Solver) Ban(cell, p int) {
	numPatterns := len(s.weights)
	idx := cell*numPatterns + p
	if !s.wave[idx] {
		return
	}
	s.wave[idx] = false

	// Zero the support counters so cascades cannot re-ban this pair.
	base := idx * NumDirections
	for d := 0; d < NumDirections; d++ {
		s.support[base+d] = 0
	}
	s.queue = append(s.queue, removal{cell: cell, pattern: p})

	s.possible[cell]--
	s.sumWeights[cell] -= s.weights[p]
	s.sumWeightLogs[cell] -= s.weightLogs[p]
	switch {
	case s.possible[cell] == 0:
		s.contradiction = true
		s.entropies[cell] = 0
	case s.sumWeights[cell] > 0:
		s.entropies[cell] = math.Log(s.sumWeights[cell]) -
			s.sumWeightLogs[cell]/s.sumWeights[cell]
	}
	if s.possible[cell] == 1 {
		s.undecided--
	}
}

// Propagate drains the ban queue to a fixpoint. For each pending removal of
// pattern p at a cell, every neighbor pattern q that was compatible with p
// in some direction loses one unit of support there; when a support counter
// reaches zero, q is banned at the neighbor, enqueueing further work.
// Calling Propagate with an empty queue is a no-op.
// Returns ErrContradiction when any cell was left with no possibilities
// during the drain; the wave remains inspectable either way.
// Complexity: O(removals × avg compatibility degree) across a whole solve.
func (s *Solver) Propagate() error {
	numPatterns := len(s.weights)
	for len(s.queue) > 0 {
		r := s.queue[len(s.queue)-1]
		s.queue = s.queue[:len(s.queue)-1]

		for d := Direction(0); d < NumDirections; d++ {
			n, ok := s.neighbor(r.cell, d)
			if !ok {
				continue
			}
			for _, q := range s.compat[d][r.pattern] {
				supportIdx := (n*numPatterns+q)*NumDirections + int(d)
				s.support[supportIdx]--
				if s.support[supportIdx] == 0 {
					s.Ban(n, q)
				}
			}
		}
	}
	if s.contradiction {
		return ErrContradiction
	}
	return nil
}
