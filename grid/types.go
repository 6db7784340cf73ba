package grid

import "fmt"

// Cell represents a single grid position. It is an immutable value type:
// equality and map hashing work by value.
type Cell struct {
	X, Y int
}

// Less reports whether c precedes other in the canonical total order:
// compare X first, then Y. Walls store their cell pair in this order.
// Complexity: O(1).
func (c Cell) Less(other Cell) bool {
	if c.X != other.X {
		return c.X < other.X
	}

	return c.Y < other.Y
}

// Manhattan returns the Manhattan distance |c.X−other.X| + |c.Y−other.Y|.
// Complexity: O(1).
func (c Cell) Manhattan(other Cell) int {
	return intAbs(c.X-other.X) + intAbs(c.Y-other.Y)
}

// Translate returns the cell shifted by (dx, dy).
// Complexity: O(1).
func (c Cell) Translate(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// String renders the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Wall is a canonical unordered pair of grid-adjacent cells. Its presence in
// a WallSet means no passage exists between A and B. Always construct walls
// through NewWall so that A precedes B in the canonical Cell order.
type Wall struct {
	A, B Cell
}

// NewWall builds the canonical wall between a and b: the lesser cell (in
// Cell.Less order) is stored first, so NewWall(a, b) == NewWall(b, a).
// Adjacency is not validated here; use WallSet.IsWallBetween for the
// checked query. Complexity: O(1).
func NewWall(a, b Cell) Wall {
	if b.Less(a) {
		a, b = b, a
	}

	return Wall{A: a, B: b}
}

// Less orders walls by their first cell, then by their second.
// Used to produce the deterministic serialized view in WallSet.Walls.
// Complexity: O(1).
func (w Wall) Less(other Wall) bool {
	if w.A != other.A {
		return w.A.Less(other.A)
	}

	return w.B.Less(other.B)
}

// String renders the wall as "{(x1,y1),(x2,y2)}".
func (w Wall) String() string {
	return fmt.Sprintf("{%s,%s}", w.A, w.B)
}

// intAbs returns |v| for int values.
func intAbs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
