package overlapping

// rotated returns p turned 90° clockwise within its n×n frame.
// Complexity: O(N²).
func rotated(p pattern, n int) pattern {
	out := make(pattern, len(p))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			out[x+y*n] = p[(n-1-y)+x*n]
		}
	}
	return out
}

// reflected returns p mirrored along the vertical axis of its n×n frame.
// Complexity: O(N²).
func reflected(p pattern, n int) pattern {
	out := make(pattern, len(p))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			out[x+y*n] = p[(n-1-x)+y*n]
		}
	}
	return out
}

// variants expands p into the first `symmetry` members of its dihedral
// orbit, in the fixed order: identity, reflection, rotation, reflected
// rotation, and so on through the three rotations. symmetry=1 keeps only
// the identity; symmetry=8 yields the full square symmetry group.
// Complexity: O(symmetry×N²).
func variants(p pattern, n, symmetry int) []pattern {
	vs := make([]pattern, 0, symmetry)
	cur := p
	for len(vs) < symmetry {
		vs = append(vs, cur)
		if len(vs) == symmetry {
			break
		}
		vs = append(vs, reflected(cur, n))
		cur = rotated(cur, n)
	}
	return vs
}
