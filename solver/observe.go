package solver

// entropyJitter scales the random tie-breaking term added to cached
// entropies during selection. Small enough never to reorder cells whose
// entropies genuinely differ.
const entropyJitter = 1e-6

// Observe performs one observation step: it selects the next undecided cell
// according to the configured heuristic, samples one of its surviving
// patterns with probability proportional to pattern weight (a single draw
// from the injected RNG), and bans every other pattern there.
// It returns ObserveDone when every cell is already decided,
// ObserveContradiction when the wave is contradicted, and ObserveContinue
// after a collapse — in which case the caller must run Propagate before the
// next Observe.
// Complexity: O(W×H) selection + O(P) sampling.
func (s *Solver) Observe() Observation {
	if s.contradiction {
		return ObserveContradiction
	}
	cell := s.nextCell()
	if cell < 0 {
		return ObserveDone
	}

	chosen := s.samplePattern(cell)
	for p := range s.weights {
		if p != chosen && s.Possible(cell, p) {
			s.Ban(cell, p)
		}
	}
	return ObserveContinue
}

// nextCell picks the next cell to collapse, or -1 when all cells are decided.
func (s *Solver) nextCell() int {
	if s.heuristic == Scanline {
		for ; s.scanCursor < len(s.possible); s.scanCursor++ {
			if s.possible[s.scanCursor] > 1 {
				cell := s.scanCursor
				s.scanCursor++
				return cell
			}
		}
		return -1
	}

	// Entropy heuristic: minimum cached entropy among undecided cells,
	// perturbed by a tiny random jitter to break exact ties.
	best := -1
	bestEntropy := 0.0
	for cell, count := range s.possible {
		if count <= 1 {
			continue
		}
		e := s.entropies[cell] + entropyJitter*s.rng.Float64()
		if best < 0 || e < bestEntropy {
			best = cell
			bestEntropy = e
		}
	}
	return best
}

// samplePattern draws one surviving pattern at cell, weighted by pattern
// frequency, using a single uniform draw from the RNG.
func (s *Solver) samplePattern(cell int) int {
	r := s.rng.Float64() * s.sumWeights[cell]
	last := -1
	for p := range s.weights {
		if !s.Possible(cell, p) {
			continue
		}
		last = p
		r -= s.weights[p]
		if r <= 0 {
			return p
		}
	}
	// Floating-point slack: fall back to the last surviving pattern.
	return last
}
