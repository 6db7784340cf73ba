// Package astar defines the result type, options, and sentinel errors for
// the A* search.
package astar

import (
	"errors"

	"github.com/katalvlaran/mazepath/grid"
)

// Sentinel errors returned by FindPath.
var (
	// ErrOutOfBounds indicates the start or end cell lies outside the grid.
	ErrOutOfBounds = errors.New("astar: start or end cell out of bounds")
)

// Option configures optional search behavior.
// Use with FindPath(width, height, walls, start, end, opts...).
type Option func(*Options)

// Options holds configurable parameters for one search call.
type Options struct {
	// LexicographicTies, when true, breaks equal-f frontier ties by the
	// canonical Cell order (X first, then Y) instead of leaving the order
	// to the heap. Use it when traces must be reproducible across runs.
	LexicographicTies bool
}

// DefaultOptions returns an Options struct with heap-artifact tie-breaking,
// matching the historical behavior of the search.
func DefaultOptions() Options {
	return Options{
		LexicographicTies: false,
	}
}

// WithLexicographicTies returns an Option that enables the canonical
// secondary frontier key for deterministic exploration order.
func WithLexicographicTies() Option {
	return func(o *Options) {
		o.LexicographicTies = true
	}
}

// Result captures the outcome of one search call.
type Result struct {
	// Path is one shortest start→end path: first element start, last
	// element end, consecutive cells grid-adjacent with no wall between
	// them. Nil when Found is false.
	Path []grid.Cell

	// Found reports whether end is reachable from start through passages.
	// An unreachable end is an expected outcome, not an error.
	Found bool

	// Explored records every finalized cell in finalization order.
	// It is populated regardless of success and contains no duplicates;
	// when Found is true its last element is the end cell.
	Explored []grid.Cell
}

// ExploredSet returns the trace as an unordered membership set, for
// consumers that only need to test whether a cell was finalized.
// Complexity: O(n).
func (r *Result) ExploredSet() map[grid.Cell]struct{} {
	set := make(map[grid.Cell]struct{}, len(r.Explored))
	for _, c := range r.Explored {
		set[c] = struct{}{}
	}

	return set
}

// Cost returns the path length in edges, or -1 when no path was found.
// Complexity: O(1).
func (r *Result) Cost() int {
	if !r.Found {
		return -1
	}

	return len(r.Path) - 1
}
