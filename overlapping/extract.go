package overlapping

import (
	"math"

	"github.com/katalvlaran/wfc/raster"
)

// patternSet deduplicates pattern content and accumulates occurrence
// weights, assigning dense ids in discovery order.
//
// Content is keyed by its base-C positional encoding (C = color count) when
// C^(N²) fits in 64 bits — the encoding is exact and collision-free within
// that bound. Larger color/size combinations fall back to keying by the raw
// flattened content, which is equally exact but allocates per lookup.
type patternSet struct {
	n      int
	base   uint64
	useInt bool
	byInt  map[uint64]int
	byRaw  map[string]int

	patterns []pattern
	weights  []float64
}

// newPatternSet sizes the dedup index for `colors` distinct color indices
// and n×n windows, choosing the integer-key path when it cannot overflow.
func newPatternSet(colors, n int) *patternSet {
	ps := &patternSet{
		n:      n,
		base:   uint64(colors),
		useInt: intKeyFits(uint64(colors), n*n),
	}
	if ps.useInt {
		ps.byInt = make(map[uint64]int)
	} else {
		ps.byRaw = make(map[string]int)
	}
	return ps
}

// intKeyFits reports whether base^digits stays within uint64.
func intKeyFits(base uint64, digits int) bool {
	if base <= 1 {
		return true
	}
	limit := uint64(1)
	for i := 0; i < digits; i++ {
		if limit > math.MaxUint64/base {
			return false
		}
		limit *= base
	}
	return true
}

// intKey encodes p as a base-C integer, first cell most significant.
func (ps *patternSet) intKey(p pattern) uint64 {
	key := uint64(0)
	for _, v := range p {
		key = key*ps.base + uint64(v)
	}
	return key
}

// add records one occurrence of p: the first occurrence of its content
// assigns the next dense id and copies the content, every occurrence
// (including the first) adds one unit of weight.
func (ps *patternSet) add(p pattern) {
	var (
		id int
		ok bool
	)
	if ps.useInt {
		id, ok = ps.byInt[ps.intKey(p)]
	} else {
		id, ok = ps.byRaw[string(p)]
	}
	if !ok {
		id = len(ps.patterns)
		stored := make(pattern, len(p))
		copy(stored, p)
		ps.patterns = append(ps.patterns, stored)
		ps.weights = append(ps.weights, 0)
		if ps.useInt {
			ps.byInt[ps.intKey(p)] = id
		} else {
			ps.byRaw[string(p)] = id
		}
	}
	ps.weights[id]++
}

// extractPatterns slides an n×n window over every valid origin of the
// indexed sample (all origins when periodicInput, wrapping at the edges),
// expands each window under the requested symmetry count, and deduplicates
// the variants into a weighted pattern list.
// Returns ErrNoPatterns when no window fits the sample.
// Complexity: O(W×H×symmetry×N²).
func extractPatterns(ix *raster.Indexed, n, symmetry int, periodicInput bool) ([]pattern, []float64, error) {
	xmax, ymax := ix.Width, ix.Height
	if !periodicInput {
		xmax -= n - 1
		ymax -= n - 1
	}
	if xmax <= 0 || ymax <= 0 {
		return nil, nil, ErrNoPatterns
	}

	ps := newPatternSet(len(ix.Palette), n)
	window := make(pattern, n*n)
	for y := 0; y < ymax; y++ {
		for x := 0; x < xmax; x++ {
			for dy := 0; dy < n; dy++ {
				for dx := 0; dx < n; dx++ {
					window[dx+dy*n] = ix.At((x+dx)%ix.Width, (y+dy)%ix.Height)
				}
			}
			for _, v := range variants(window, n, symmetry) {
				ps.add(v)
			}
		}
	}
	if len(ps.patterns) == 0 {
		return nil, nil, ErrNoPatterns
	}
	return ps.patterns, ps.weights, nil
}
