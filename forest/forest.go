package forest

import (
	"fmt"

	"github.com/ampyx/p4est/connectivity"
	"github.com/ampyx/p4est/quadrant"
)

// Tree holds the quadrant sequence of one macro-cell in z-order traversal
// order.
type Tree struct {
	Quadrants []quadrant.Quadrant
}

// Forest is the calling process's slice of a forest of quadtrees: one
// Tree per macro-cell, with quadrants stored only for the locally owned
// tree range [FirstLocalTree, LastLocalTree]. An empty local range is
// encoded as FirstLocalTree=0, LastLocalTree=-1.
type Forest struct {
	Trees          []Tree
	FirstLocalTree int
	LastLocalTree  int
}

// New returns a forest holding one root quadrant per tree of the
// connectivity, all locally owned.
func New(conn *connectivity.Connectivity) *Forest {
	f := &Forest{
		Trees:          make([]Tree, conn.NumTrees),
		FirstLocalTree: 0,
		LastLocalTree:  conn.NumTrees - 1,
	}
	for t := range f.Trees {
		f.Trees[t].Quadrants = []quadrant.Quadrant{{X: 0, Y: 0, Level: 0}}
	}
	return f
}

// NewUniform returns a forest where every tree is uniformly subdivided to
// the given level, quadrants in z-order, all trees locally owned.
func NewUniform(conn *connectivity.Connectivity, level uint8) *Forest {
	f := &Forest{
		Trees:          make([]Tree, conn.NumTrees),
		FirstLocalTree: 0,
		LastLocalTree:  conn.NumTrees - 1,
	}
	n := 1 << (2 * uint(level))
	for t := range f.Trees {
		quads := make([]quadrant.Quadrant, n)
		for m := 0; m < n; m++ {
			quads[m] = mortonQuadrant(m, level)
		}
		f.Trees[t].Quadrants = quads
	}
	return f
}

// mortonQuadrant decodes z-order index m into the m-th quadrant of a
// uniform refinement: even bits of m give the x grid position, odd bits
// the y grid position.
func mortonQuadrant(m int, level uint8) quadrant.Quadrant {
	var gx, gy int32
	for b := uint(0); b < uint(level); b++ {
		gx |= int32(m>>(2*b)&1) << b
		gy |= int32(m>>(2*b+1)&1) << b
	}
	l := quadrant.Len(level)
	return quadrant.Quadrant{X: gx * l, Y: gy * l, Level: level}
}

// LocalNumQuadrants returns the number of quadrants owned by this
// process.
func (f *Forest) LocalNumQuadrants() int {
	n := 0
	for t := f.FirstLocalTree; t <= f.LastLocalTree; t++ {
		n += len(f.Trees[t].Quadrants)
	}
	return n
}

// Validate checks the local tree range and every quadrant's coordinate
// invariant.
func (f *Forest) Validate() error {
	if f.FirstLocalTree == 0 && f.LastLocalTree == -1 {
		return nil // empty local range
	}
	if f.FirstLocalTree < 0 || f.LastLocalTree >= len(f.Trees) ||
		f.FirstLocalTree > f.LastLocalTree {
		return fmt.Errorf("invalid local tree range [%d,%d] with %d trees",
			f.FirstLocalTree, f.LastLocalTree, len(f.Trees))
	}
	for t := f.FirstLocalTree; t <= f.LastLocalTree; t++ {
		for i, q := range f.Trees[t].Quadrants {
			if !q.Valid() {
				return fmt.Errorf("tree %d quadrant %d: invalid coordinates x=%d y=%d level=%d",
					t, i, q.X, q.Y, q.Level)
			}
		}
	}
	return nil
}
