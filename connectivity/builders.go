package connectivity

import (
	"math"
)

// NewUnitSquare returns a single tree covering the unit square with all
// four faces on the domain boundary.
func NewUnitSquare() *Connectivity {
	return &Connectivity{
		NumTrees:     1,
		NumVertices:  4,
		TreeToVertex: []int32{0, 1, 2, 3},
		Vertices: []float64{
			0, 0, 0,
			1, 0, 0,
			1, 1, 0,
			0, 1, 0,
		},
		TreeToTree: []int32{0, 0, 0, 0},
		TreeToFace: []int32{0, 1, 2, 3},
	}
}

// NewPeriodic returns a single tree covering the unit square whose
// opposite faces are identified with each other. The geometry is the unit
// square; the identification is consumed by the vertex numbering provider
// when the identify-periodic flag is set.
func NewPeriodic() *Connectivity {
	c := NewUnitSquare()
	c.TreeToFace = []int32{2, 3, 0, 1}
	return c
}

// NewStar returns six kite-shaped trees arranged as a six-pointed star
// around a shared center vertex. Vertex 0 is the center, vertices 1..6
// the inner hexagon at radius 1, vertices 7..12 the star tips at radius
// sqrt(3). Tree k is the counterclockwise loop
// (center, inner k, tip k, inner k+1).
func NewStar() *Connectivity {
	c := &Connectivity{
		NumTrees:     6,
		NumVertices:  13,
		TreeToVertex: make([]int32, 24),
		Vertices:     make([]float64, 39),
		TreeToTree:   make([]int32, 24),
		TreeToFace:   make([]int32, 24),
	}

	tipRadius := math.Sqrt(3)
	for k := 0; k < 6; k++ {
		inner := float64(k) * math.Pi / 3
		tip := inner + math.Pi/6
		c.Vertices[3*(1+k)] = math.Cos(inner)
		c.Vertices[3*(1+k)+1] = math.Sin(inner)
		c.Vertices[3*(7+k)] = tipRadius * math.Cos(tip)
		c.Vertices[3*(7+k)+1] = tipRadius * math.Sin(tip)
	}

	for k := 0; k < 6; k++ {
		c.TreeToVertex[4*k+0] = 0
		c.TreeToVertex[4*k+1] = int32(1 + k)
		c.TreeToVertex[4*k+2] = int32(7 + k)
		c.TreeToVertex[4*k+3] = int32(1 + (k+1)%6)

		// Faces 0 and 3 are the center spokes shared with the adjacent
		// kites; faces 1 and 2 run out to the tip and stay on the boundary.
		c.TreeToTree[4*k+0] = int32((k + 5) % 6)
		c.TreeToFace[4*k+0] = 3
		c.TreeToTree[4*k+1] = int32(k)
		c.TreeToFace[4*k+1] = 1
		c.TreeToTree[4*k+2] = int32(k)
		c.TreeToFace[4*k+2] = 2
		c.TreeToTree[4*k+3] = int32((k + 1) % 6)
		c.TreeToFace[4*k+3] = 0
	}

	return c
}
