package ordering

import "math"

// DefaultTolerance is the per-axis tolerance under which two reconstructed
// coordinates are considered the same physical point. It absorbs the
// rounding noise of reconstructing one logical point from different
// quadrants; callers working on meshes far from unit scale should tune
// Checker.Tolerance instead.
const DefaultTolerance = 1e-15

// Vert is the reconstructed physical position of one local vertex.
type Vert struct {
	X, Y, Z float64
}

// CompareVerts orders two vertices lexicographically by (x, y, z), where
// an axis compares equal iff the coordinates differ by strictly less than
// tol. Returns -1, 0 or 1. A pair differing by exactly tol on some axis
// compares distinct.
func CompareVerts(a, b Vert, tol float64) int {
	if d := a.X - b.X; math.Abs(d) >= tol {
		return sign(d)
	}
	if d := a.Y - b.Y; math.Abs(d) >= tol {
		return sign(d)
	}
	if d := a.Z - b.Z; math.Abs(d) >= tol {
		return sign(d)
	}
	return 0
}

func sign(d float64) int {
	if d < 0 {
		return -1
	}
	return 1
}
