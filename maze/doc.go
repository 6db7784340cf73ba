// Package maze generates perfect mazes on rectangular grids using
// randomized depth-first carving with backtracking.
//
// What:
//
//   - Generate(width, height, opts...) returns a grid.WallSet whose passage
//     graph (the complement of the wall set over adjacent cell pairs) is a
//     spanning tree: connected, acyclic, exactly one simple path between any
//     two cells.
//   - Carving starts fully walled, walks from (0,0) depth-first with the
//     four directions shuffled uniformly per cell, and removes the wall in
//     front of every first visit.
//   - The walk uses an explicit frame stack, so grids far larger than the
//     call stack could support are carved safely.
//
// Why:
//
//   - Game levels and search benchmarks need topologies with a unique
//     solution corridor; a spanning tree guarantees exactly that.
//   - Fixtures for pathfinding tests need reproducible topologies: seed the
//     generator and the wall set is identical on every run.
//
// Determinism:
//
//   - WithSeed(s): same seed and dimensions ⇒ identical WallSet on every
//     call within this implementation.
//   - WithRand(r): inject a *rand.Rand stream (it is consumed; do not share
//     one stream across goroutines).
//   - Neither option: a fresh non-reproducible stream per call.
//
// Complexity:
//
//   - Time: O(W×H) — every cell is visited exactly once, each visit shuffles
//     four directions.
//   - Memory: O(W×H) for the visited set and the frame stack.
//
// Errors:
//
//   - grid.ErrBadDimensions: width or height is not positive.
package maze
