package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/mazepath/grid"
)

// FindPath computes one shortest path from start to end over a
// width×height grid whose walls are given by ws, together with the ordered
// exploration trace.
//
// The wall set is read-only input: it may come from maze.Generate or be
// hand-constructed (including intentionally disconnected sets). Each call is
// independent and carries its own state; repeated calls on the same wall set
// need no reconstruction of anything.
//
// Returns:
//
//   - res: Path + Found + Explored (see Result). An unreachable end yields
//     Found=false with the trace of everything finalized before exhaustion.
//   - err: grid.ErrBadDimensions (wrapped) for non-positive dimensions,
//     ErrOutOfBounds if start or end lies outside the grid.
//
// Complexity:
//
//   - Time:  O(E log V), V = W×H, E ≤ 4V
//   - Space: O(V + E)
func FindPath(width, height int, ws grid.WallSet, start, end grid.Cell, opts ...Option) (*Result, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&cfg)
	}

	// 2) Validate dimensions via the shared Grid constructor.
	g, err := grid.New(width, height)
	if err != nil {
		return nil, fmt.Errorf("astar: %w", err)
	}

	// 3) Validate endpoints: fail fast instead of searching outside the board.
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %s on %dx%d grid", ErrOutOfBounds, start, width, height)
	}
	if !g.InBounds(end) {
		return nil, fmt.Errorf("%w: end %s on %dx%d grid", ErrOutOfBounds, end, width, height)
	}

	// 4) Initialize per-call state. V is the capacity hint for all maps.
	V := g.CellCount()
	r := &runner{
		g:         g,
		walls:     ws,
		end:       end,
		gScore:    make(map[grid.Cell]int, V),
		parent:    make(map[grid.Cell]grid.Cell, V),
		finalized: make(map[grid.Cell]bool, V),
		pq:        &cellPQ{items: make([]*cellItem, 0, V), lex: cfg.LexicographicTies},
	}

	// 5) Seed the frontier with the start cell.
	r.gScore[start] = 0
	heap.Init(r.pq)
	heap.Push(r.pq, &cellItem{cell: start, f: start.Manhattan(end)})

	// 6) Run the main loop; it returns the reconstructed path or nil.
	path := r.process(start)

	return &Result{
		Path:     path,
		Found:    path != nil,
		Explored: r.explored,
	}, nil
}

// runner holds the mutable state for a single FindPath execution. Nothing
// survives the call: the exploration trace is returned by value, never kept
// on a long-lived object.
type runner struct {
	g         grid.Grid               // board dimensions; read-only
	walls     grid.WallSet            // topology; read-only
	end       grid.Cell               // search target
	gScore    map[grid.Cell]int       // cell → best known distance from start
	parent    map[grid.Cell]grid.Cell // cell → predecessor on its best path
	finalized map[grid.Cell]bool      // cells whose distance is settled
	pq        *cellPQ                 // frontier min-heap, lazy decrease-key
	explored  []grid.Cell             // finalization order
}

// process is the core A* loop: pop the minimum-f cell, finalize it, stop at
// the end cell, otherwise relax its passable neighbors.
//
// Returns the start→end path when the end is reached, nil when the frontier
// exhausts first.
func (r *runner) process(start grid.Cell) []grid.Cell {
	var (
		item      *cellItem
		current   grid.Cell
		tentative int
	)
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-f entry.
		item = heap.Pop(r.pq).(*cellItem)
		current = item.cell

		// 2) Skip stale duplicates already finalized.
		if r.finalized[current] {
			continue
		}

		// 3) Finalize: the distance to current is now exact. Record the
		//    trace entry in pop order.
		r.finalized[current] = true
		r.explored = append(r.explored, current)

		// 4) Goal reached: walk the parent links back and reverse.
		if current == r.end {
			return r.reconstruct(start)
		}

		// 5) Relax every traversable neighbor.
		for _, nb := range r.g.PassableNeighbors(r.walls, current) {
			tentative = r.gScore[current] + 1
			if best, seen := r.gScore[nb]; seen && tentative >= best {
				continue
			}
			r.gScore[nb] = tentative
			r.parent[nb] = current
			heap.Push(r.pq, &cellItem{cell: nb, f: tentative + nb.Manhattan(r.end)})
		}
	}

	// Frontier exhausted without reaching the end.
	return nil
}

// reconstruct follows parent links from the end back to start and reverses
// the sequence in place. The start cell has no parent entry, so the walk
// terminates on identity, which also covers start == end.
func (r *runner) reconstruct(start grid.Cell) []grid.Cell {
	path := make([]grid.Cell, 0, r.gScore[r.end]+1)
	current := r.end
	for {
		path = append(path, current)
		if current == start {
			break
		}
		current = r.parent[current]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
