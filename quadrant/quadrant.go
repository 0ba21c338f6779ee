package quadrant

// MaxLevel is the deepest refinement level representable in the integer
// coordinate system. Coordinates use 30 of the 31 value bits of an int32.
const MaxLevel = 30

// RootLen is the side length of a tree's root quadrant in integer
// coordinates. Every quadrant origin lies in [0, RootLen) per axis.
const RootLen int32 = 1 << MaxLevel

// Len returns the side length of a quadrant at the given level.
func Len(level uint8) int32 {
	return RootLen >> level
}

// LastOffset returns the origin coordinate of the last quadrant of the
// given level along one axis.
func LastOffset(level uint8) int32 {
	return RootLen - Len(level)
}

// Quadrant identifies one cell of a tree by its origin in the tree's
// integer coordinate system and its refinement level. The origin must be
// a multiple of Len(Level) per axis.
type Quadrant struct {
	X, Y  int32
	Level uint8
}

// Len returns the quadrant's side length in integer coordinates.
func (q Quadrant) Len() int32 {
	return Len(q.Level)
}

// ChildID returns the quadrant's position 0..3 within its parent, in
// z-order: bit 0 from the x axis, bit 1 from the y axis. The root
// quadrant reports 0.
func (q Quadrant) ChildID() int {
	if q.Level == 0 {
		return 0
	}
	l := q.Len()
	id := 0
	if q.X&l != 0 {
		id |= 1
	}
	if q.Y&l != 0 {
		id |= 2
	}
	return id
}

// Ref returns the quadrant's dimensionless reference parameters: the
// origin (eta1, eta2) and side length h, all scaled into the unit square.
func (q Quadrant) Ref() (eta1, eta2, h float64) {
	intsize := 1.0 / float64(RootLen)
	eta1 = float64(q.X) * intsize
	eta2 = float64(q.Y) * intsize
	h = float64(q.Len()) * intsize
	return
}

// Valid reports whether the quadrant satisfies the coordinate invariant:
// level within range, origin inside the root quadrant and aligned to the
// quadrant's own side length.
func (q Quadrant) Valid() bool {
	if q.Level > MaxLevel {
		return false
	}
	l := q.Len()
	if q.X < 0 || q.X > LastOffset(q.Level) || q.X%l != 0 {
		return false
	}
	if q.Y < 0 || q.Y > LastOffset(q.Level) || q.Y%l != 0 {
		return false
	}
	return true
}
