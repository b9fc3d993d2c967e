package overlapping

import (
	"github.com/katalvlaran/wfc/raster"
	"github.com/katalvlaran/wfc/solver"
)

// clampAxis maps an output pixel coordinate to the wave cell owning it and
// the offset inside that cell's pattern. Interior pixels map directly with
// offset 0; pixels beyond the last cell of a non-periodic wave fold back to
// the last cell with a growing in-pattern offset, which stays < N because
// the wave is exactly N-1 cells narrower than the output per axis.
// Complexity: O(1).
func clampAxis(v, cells int) (cell, offset int) {
	if v < cells {
		return v, 0
	}
	return cells - 1, v - (cells - 1)
}

// render reads the solved (or partially solved) wave into a Width×Height
// image. Every pixel is resolved through the pattern owning it; cells left
// without any possibility render the fallback pattern 0 and mark the result
// Suspect.
// Complexity: O(Width×Height + P) worst case per pixel lookup is O(P) for
// the first-possible scan; O(Width×Height×P) total upper bound.
func (m *Model) render(s *solver.Solver) *Result {
	out, _ := raster.New(m.opts.Width, m.opts.Height)
	n := m.opts.N
	suspect := false
	for y := 0; y < m.opts.Height; y++ {
		cellY, dy := clampAxis(y, m.waveHeight)
		for x := 0; x < m.opts.Width; x++ {
			cellX, dx := clampAxis(x, m.waveWidth)
			p := s.FirstPossible(s.CellIndex(cellX, cellY))
			if p < 0 {
				p = 0
				suspect = true
			}
			out.Set(x, y, m.palette[m.patterns[p][dx+dy*n]])
		}
	}
	return &Result{Image: out, Suspect: suspect}
}
