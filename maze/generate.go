package maze

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mazepath/grid"
)

// Generate produces the wall set of a perfect width×height maze.
//
// The carve starts from cell (0,0) on a fully-walled grid and performs a
// randomized depth-first traversal: at each cell the four directions are
// shuffled, and for every in-bounds, unvisited neighbor the wall between the
// two cells is removed before descending. When a cell has no unvisited
// neighbor left, the walk backtracks.
//
// Postcondition: the passage graph spans all W×H cells with exactly
// W×H−1 passages — a tree, hence exactly one simple path between any two
// cells.
//
// Returns grid.ErrBadDimensions (wrapped) if width or height is not
// positive.
//
// Complexity:
//
//   - Time:  O(W×H)
//   - Space: O(W×H)
func Generate(width, height int, opts ...Option) (grid.WallSet, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&cfg)
	}

	// 2) Validate dimensions via the shared Grid constructor.
	g, err := grid.New(width, height)
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}

	// 3) Fully-walled starting state: every interior edge present.
	walls := g.FullWallSet()

	// 4) Carve passages depth-first from the origin.
	c := &carver{
		g:       g,
		walls:   walls,
		visited: make(map[grid.Cell]bool, g.CellCount()),
		rng:     streamFromOptions(cfg),
	}
	c.run(grid.Cell{X: 0, Y: 0})

	return walls, nil
}

// carver holds the mutable state for a single Generate execution.
type carver struct {
	g       grid.Grid          // board dimensions; read-only
	walls   grid.WallSet       // the topology being carved
	visited map[grid.Cell]bool // cells already reached by the walk
	rng     *rand.Rand         // direction shuffling stream
}

// frame is one suspended cell on the explicit traversal stack: the cell,
// its shuffled direction order, and the index of the next direction to try.
type frame struct {
	cell grid.Cell
	dirs [4][2]int
	next int
}

// run walks the grid depth-first from start, removing a wall on every first
// visit. The stack replaces call-stack recursion: depth can reach W×H, which
// would overflow the runtime stack on large grids.
func (c *carver) run(start grid.Cell) {
	stack := make([]frame, 0, c.g.CellCount())
	c.visited[start] = true
	stack = append(stack, frame{cell: start, dirs: c.shuffledDirs()})

	var (
		top *frame
		d   [2]int
		nb  grid.Cell
	)
	for len(stack) > 0 {
		top = &stack[len(stack)-1]

		// Frame exhausted: backtrack.
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}

		// Advance to the next direction of the current frame.
		d = top.dirs[top.next]
		top.next++

		nb = top.cell.Translate(d[0], d[1])
		if !c.g.InBounds(nb) || c.visited[nb] {
			continue
		}

		// First visit: open the passage and descend.
		c.walls.Remove(grid.NewWall(top.cell, nb))
		c.visited[nb] = true
		stack = append(stack, frame{cell: nb, dirs: c.shuffledDirs()})
	}
}

// shuffledDirs returns the four direction offsets in uniformly random order.
func (c *carver) shuffledDirs() [4][2]int {
	dirs := c.g.NeighborOffsets()
	shuffleOffsets(&dirs, c.rng)

	return dirs
}
