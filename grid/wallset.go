package grid

import "sort"

// WallSet is the complete set of present walls defining a maze topology.
// The zero value of the underlying map type is not usable for writes;
// construct with NewWallSet or Grid.FullWallSet. A WallSet produced by the
// generator is read-only by convention and safe to share across any number
// of concurrent readers.
type WallSet map[Wall]struct{}

// NewWallSet returns an empty WallSet.
func NewWallSet() WallSet {
	return make(WallSet)
}

// Add inserts w into the set. Idempotent.
// Complexity: O(1) average.
func (ws WallSet) Add(w Wall) {
	ws[w] = struct{}{}
}

// Remove deletes w from the set. Removing an absent wall is a no-op.
// Complexity: O(1) average.
func (ws WallSet) Remove(w Wall) {
	delete(ws, w)
}

// Has reports whether w is present in the set.
// Complexity: O(1) average.
func (ws WallSet) Has(w Wall) bool {
	_, ok := ws[w]

	return ok
}

// Len returns the number of walls in the set.
func (ws WallSet) Len() int {
	return len(ws)
}

// Clone returns an independent copy of the set.
// Complexity: O(n).
func (ws WallSet) Clone() WallSet {
	out := make(WallSet, len(ws))
	for w := range ws {
		out[w] = struct{}{}
	}

	return out
}

// Walls returns the walls as a sorted slice: within each wall A precedes B
// in the canonical Cell order, and walls are ordered by (A, B). This is the
// deterministic serialized view consumed by renderers and fixtures.
// Complexity: O(n log n).
func (ws WallSet) Walls() []Wall {
	out := make([]Wall, 0, len(ws))
	for w := range ws {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// IsWallBetween reports whether a wall separates a and b.
// Returns ErrNotAdjacent if the two cells are not grid-adjacent
// (Manhattan distance ≠ 1); the canonical pair is looked up otherwise.
// Complexity: O(1) average.
func (ws WallSet) IsWallBetween(a, b Cell) (bool, error) {
	if a.Manhattan(b) != 1 {
		return false, ErrNotAdjacent
	}

	return ws.Has(NewWall(a, b)), nil
}
