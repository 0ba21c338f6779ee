package ordering

import (
	"gonum.org/v1/gonum/mat"

	"github.com/ampyx/p4est/connectivity"
	"github.com/ampyx/p4est/quadrant"
)

// pixelOrder permutes a tree's counterclockwise corner loop into pixel
// order: bottom-left, bottom-right, top-left, top-right.
var pixelOrder = [4]int{0, 1, 3, 2}

// treeGeometry maps a tree's reference square to physical space via
// bilinear interpolation of the tree's four macro-vertices.
type treeGeometry struct {
	// corners holds the macro-vertex coordinates as a 4x3 matrix, rows in
	// pixel order.
	corners *mat.Dense
}

func newTreeGeometry(conn *connectivity.Connectivity, tree int) *treeGeometry {
	tv := conn.TreeCorners(tree)
	m := mat.NewDense(4, 3, nil)
	for i, p := range pixelOrder {
		v := tv[p]
		m.SetRow(i, conn.Vertices[3*v:3*v+3])
	}
	return &treeGeometry{corners: m}
}

// at evaluates the bilinear map at reference coordinates (u, v):
//
//	P(u, v) = V0 (1-u)(1-v) + V1 u (1-v) + V2 (1-u) v + V3 u v
func (g *treeGeometry) at(u, v float64) Vert {
	w := mat.NewVecDense(4, []float64{
		(1 - u) * (1 - v),
		u * (1 - v),
		(1 - u) * v,
		u * v,
	})
	var p mat.VecDense
	p.MulVec(g.corners.T(), w)
	return Vert{X: p.AtVec(0), Y: p.AtVec(1), Z: p.AtVec(2)}
}

// Corners returns the physical positions of the quadrant's four corners
// in pixel order. Corners shared between adjacent quadrants of the tree
// reconstruct to the same point up to floating-point rounding.
func (g *treeGeometry) Corners(q quadrant.Quadrant) [4]Vert {
	eta1, eta2, h := q.Ref()
	return [4]Vert{
		g.at(eta1, eta2),
		g.at(eta1+h, eta2),
		g.at(eta1, eta2+h),
		g.at(eta1+h, eta2+h),
	}
}
