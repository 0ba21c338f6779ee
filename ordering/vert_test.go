package ordering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareVertsAxisChain(t *testing.T) {
	tol := DefaultTolerance

	a := Vert{X: 0, Y: 5, Z: 9}
	b := Vert{X: 1, Y: 0, Z: 0}
	assert.Equal(t, -1, CompareVerts(a, b, tol))
	assert.Equal(t, 1, CompareVerts(b, a, tol))

	// x ties, y decides.
	a = Vert{X: 2, Y: 1, Z: 9}
	b = Vert{X: 2, Y: 3, Z: 0}
	assert.Equal(t, -1, CompareVerts(a, b, tol))

	// x and y tie, z decides.
	a = Vert{X: 2, Y: 3, Z: 1}
	b = Vert{X: 2, Y: 3, Z: 0}
	assert.Equal(t, 1, CompareVerts(a, b, tol))

	assert.Equal(t, 0, CompareVerts(a, a, tol))
}

func TestCompareVertsToleranceBoundary(t *testing.T) {
	tol := 1e-15
	a := Vert{}

	// A difference of exactly the tolerance is distinct, on any axis.
	assert.Equal(t, -1, CompareVerts(a, Vert{X: tol}, tol))
	assert.Equal(t, -1, CompareVerts(a, Vert{Y: tol}, tol))
	assert.Equal(t, -1, CompareVerts(a, Vert{Z: tol}, tol))

	// Anything strictly inside the tolerance compares equal.
	assert.Equal(t, 0, CompareVerts(a, Vert{X: 0.9 * tol}, tol))
	assert.Equal(t, 0, CompareVerts(a, Vert{X: 0.9 * tol, Y: 0.9 * tol, Z: 0.9 * tol}, tol))
}

func TestCompareVertsAntisymmetric(t *testing.T) {
	verts := []Vert{
		{0, 0, 0},
		{0, 0, 1},
		{0, 1, 0},
		{1, 0, 0},
		{0.5, 0.5, 0},
	}
	for i, a := range verts {
		for j, b := range verts {
			assert.Equalf(t, CompareVerts(a, b, DefaultTolerance),
				-CompareVerts(b, a, DefaultTolerance),
				"pair %d,%d", i, j)
		}
	}
}
