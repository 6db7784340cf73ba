package grid

// neighborOffsets lists the four orthogonal directions in the order
// right, down, left, up. Both the carver and the search iterate candidates
// in this order before any shuffling or filtering.
var neighborOffsets = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// Grid describes a width×height board. It is immutable once built and owns
// the bounds and adjacency rules shared by maze generation and search.
type Grid struct {
	Width, Height int
}

// New constructs a Grid descriptor.
// Returns ErrBadDimensions if width or height is not positive.
// Complexity: O(1).
func New(width, height int) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, ErrBadDimensions
	}

	return Grid{Width: width, Height: height}, nil
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// CellCount returns the number of cells, Width×Height.
// Complexity: O(1).
func (g Grid) CellCount() int {
	return g.Width * g.Height
}

// InteriorWallCount returns the number of interior edges of the grid graph,
// 2·W·H − W − H: the capacity of a fully-walled WallSet.
// Complexity: O(1).
func (g Grid) InteriorWallCount() int {
	return 2*g.Width*g.Height - g.Width - g.Height
}

// NeighborOffsets returns the four orthogonal direction offsets.
// Use it for all adjacency traversals to keep iteration order consistent.
// Complexity: O(1).
func (g Grid) NeighborOffsets() [4][2]int {
	return neighborOffsets
}

// FullWallSet builds the fully-walled starting state: a wall between every
// pair of grid-adjacent cells. This is the carver's initial topology.
// Complexity: O(W×H) time and memory.
func (g Grid) FullWallSet() WallSet {
	ws := make(WallSet, g.InteriorWallCount())
	var c Cell
	for c.X = 0; c.X < g.Width; c.X++ {
		for c.Y = 0; c.Y < g.Height; c.Y++ {
			if c.X < g.Width-1 {
				ws.Add(NewWall(c, c.Translate(1, 0)))
			}
			if c.Y < g.Height-1 {
				ws.Add(NewWall(c, c.Translate(0, 1)))
			}
		}
	}

	return ws
}

// PassableNeighbors returns the traversable neighbors of c: candidates from
// NeighborOffsets that are in bounds and not separated from c by a wall in
// ws. This is the single adjacency rule shared by carving and search.
// Complexity: O(1) (bounded by four candidates).
func (g Grid) PassableNeighbors(ws WallSet, c Cell) []Cell {
	neighbors := make([]Cell, 0, 4)
	var nb Cell
	for _, d := range neighborOffsets {
		nb = c.Translate(d[0], d[1])
		if !g.InBounds(nb) {
			continue
		}
		if ws.Has(NewWall(c, nb)) {
			continue
		}
		neighbors = append(neighbors, nb)
	}

	return neighbors
}
