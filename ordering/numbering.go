package ordering

import (
	"fmt"

	"github.com/ampyx/p4est/forest"
)

// Numbering is the output of the external local-vertex numbering
// provider: for every locally owned quadrant, the identifiers of its four
// corners in pixel order, quadrants in forest traversal order.
// Identifiers are dense in [0, NumVertices); corners that are
// geometrically and topologically identical (including across periodic
// identifications when the provider was asked to identify them) carry the
// same identifier.
type Numbering struct {
	NumVertices  int
	QuadToVertex []int32 // 4 per quadrant
}

// Validate checks the numbering's dimensions against a forest and the
// identifier range.
func (n *Numbering) Validate(f *forest.Forest) error {
	if want := 4 * f.LocalNumQuadrants(); len(n.QuadToVertex) != want {
		return fmt.Errorf("QuadToVertex length %d does not match 4*local quadrants=%d",
			len(n.QuadToVertex), want)
	}
	for i, v := range n.QuadToVertex {
		if v < 0 || int(v) >= n.NumVertices {
			return fmt.Errorf("QuadToVertex[%d]=%d out of range [0,%d)",
				i, v, n.NumVertices)
		}
	}
	return nil
}
