package overlapping

import "github.com/katalvlaran/wfc/solver"

// agrees reports whether p1 and p2 hold identical color indices over the
// overlap of two n×n windows offset by (dx, dy), with p2 placed at the
// offset. |dx|, |dy| ≤ 1 for the cardinal directions used here, but the
// comparison is written for any offset within the window.
// Complexity: O(N²).
func agrees(p1, p2 pattern, dx, dy, n int) bool {
	xmin, xmax := 0, n
	if dx < 0 {
		xmax = dx + n
	} else {
		xmin = dx
	}
	ymin, ymax := 0, n
	if dy < 0 {
		ymax = dy + n
	} else {
		ymin = dy
	}
	for y := ymin; y < ymax; y++ {
		for x := xmin; x < xmax; x++ {
			if p1[x+n*y] != p2[(x-dx)+n*(y-dy)] {
				return false
			}
		}
	}
	return true
}

// buildPropagator brute-forces the per-direction compatibility table:
// compat[d][p1] lists every p2 whose overlap with p1 agrees at offset d.
// Only the compatible pairs are stored, keeping propagation sparse.
// Complexity: O(P²×N²) per direction, performed once per model.
func buildPropagator(patterns []pattern, n int) (compat [solver.NumDirections][][]int) {
	for d := solver.Direction(0); d < solver.NumDirections; d++ {
		dx, dy := d.Offset()
		table := make([][]int, len(patterns))
		for p1 := range patterns {
			list := make([]int, 0, len(patterns))
			for p2 := range patterns {
				if agrees(patterns[p1], patterns[p2], dx, dy, n) {
					list = append(list, p2)
				}
			}
			table[p1] = list
		}
		compat[d] = table
	}
	return compat
}
