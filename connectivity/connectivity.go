package connectivity

import (
	"fmt"
)

// Connectivity describes the macro-level geometry of a forest: the corner
// coordinates of every tree and the face adjacency between trees.
//
// TreeToVertex lists four vertex indices per tree in right-hand-rule
// order, i.e. a counterclockwise loop around the tree. Face f of a tree
// joins loop corners f and (f+1)%4. TreeToTree and TreeToFace record, per
// face, the neighboring tree and the matching face on that neighbor; a
// boundary face connects back to itself.
type Connectivity struct {
	NumTrees    int
	NumVertices int

	TreeToVertex []int32   // 4 per tree, counterclockwise corner loop
	Vertices     []float64 // 3 per vertex: x, y, z

	TreeToTree []int32 // 4 per tree, neighbor across each face
	TreeToFace []int32 // 4 per tree, matching face on the neighbor
}

// TreeCorners returns the four vertex indices of a tree in the stored
// right-hand-rule order.
func (c *Connectivity) TreeCorners(tree int) [4]int32 {
	var tv [4]int32
	copy(tv[:], c.TreeToVertex[4*tree:4*tree+4])
	return tv
}

// Vertex returns the coordinates of one macro-vertex.
func (c *Connectivity) Vertex(v int32) (x, y, z float64) {
	return c.Vertices[3*v], c.Vertices[3*v+1], c.Vertices[3*v+2]
}

// Validate checks array lengths, index ranges and adjacency symmetry.
func (c *Connectivity) Validate() error {
	if c.NumTrees <= 0 || c.NumVertices <= 0 {
		return fmt.Errorf("invalid dimensions: NumTrees=%d, NumVertices=%d",
			c.NumTrees, c.NumVertices)
	}
	if len(c.TreeToVertex) != 4*c.NumTrees {
		return fmt.Errorf("TreeToVertex length %d does not match 4*NumTrees=%d",
			len(c.TreeToVertex), 4*c.NumTrees)
	}
	if len(c.Vertices) != 3*c.NumVertices {
		return fmt.Errorf("Vertices length %d does not match 3*NumVertices=%d",
			len(c.Vertices), 3*c.NumVertices)
	}
	if len(c.TreeToTree) != 4*c.NumTrees || len(c.TreeToFace) != 4*c.NumTrees {
		return fmt.Errorf("adjacency lengths %d/%d do not match 4*NumTrees=%d",
			len(c.TreeToTree), len(c.TreeToFace), 4*c.NumTrees)
	}

	for i, v := range c.TreeToVertex {
		if v < 0 || int(v) >= c.NumVertices {
			return fmt.Errorf("TreeToVertex[%d]=%d out of range [0,%d)",
				i, v, c.NumVertices)
		}
	}

	// Adjacency must be symmetric: following a face to the neighbor and
	// back must return to the same tree and face.
	for t := 0; t < c.NumTrees; t++ {
		for f := 0; f < 4; f++ {
			nt := c.TreeToTree[4*t+f]
			nf := c.TreeToFace[4*t+f]
			if nt < 0 || int(nt) >= c.NumTrees || nf < 0 || nf >= 4 {
				return fmt.Errorf("tree %d face %d: neighbor %d/%d out of range",
					t, f, nt, nf)
			}
			if int(c.TreeToTree[4*nt+nf]) != t || int(c.TreeToFace[4*nt+nf]) != f {
				return fmt.Errorf("tree %d face %d: adjacency not symmetric", t, f)
			}
		}
	}

	return nil
}
