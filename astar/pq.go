package astar

import "github.com/katalvlaran/mazepath/grid"

// cellItem represents a frontier entry: a cell and its f = g + h key at the
// moment it was pushed. Under lazy decrease-key an improved key pushes a new
// item; the stale one is ignored when popped.
type cellItem struct {
	cell grid.Cell // grid position
	f    int       // priority key: exact cost so far plus heuristic
}

// cellPQ is a binary min-heap of frontier entries ordered by ascending f.
// With lex=false, equal-f order is whatever the heap does internally; with
// lex=true, equal f falls back to the canonical Cell order.
type cellPQ struct {
	items []*cellItem
	lex   bool
}

// Len returns the number of items in the heap.
func (pq *cellPQ) Len() int { return len(pq.items) }

// Less defines the comparison: smaller f → higher priority, with the
// optional canonical secondary key on ties.
func (pq *cellPQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if pq.lex {
		return a.cell.Less(b.cell)
	}

	return false
}

// Swap swaps two elements in the heap.
func (pq *cellPQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *cellItem.
func (pq *cellPQ) Push(x any) { pq.items = append(pq.items, x.(*cellItem)) }

// Pop removes and returns the last element; container/heap has already moved
// the minimum there.
func (pq *cellPQ) Pop() any {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]

	return item
}
