// Package astar implements A* shortest-path search on maze grids.
//
// Overview:
//
//   - FindPath computes one shortest path (by edge count, all passages cost
//     1) between two cells of a width×height grid whose topology is given by
//     a grid.WallSet, and records the complete exploration trace: every cell
//     in the exact order the search finalized it.
//   - The heuristic is the Manhattan distance to the end cell — admissible
//     and consistent on 4-directional unit-cost grids, so the returned path
//     length equals the true shortest-path distance.
//   - The frontier is a binary min-heap ordered by f = g + h, with the
//     “lazy decrease-key” strategy: improved keys push duplicates, and a
//     finalized-skip guard discards stale pops.
//
// Result contract:
//
//   - Found=true: Path runs from start to end, consecutive cells adjacent
//     and never separated by a wall.
//   - Found=false: Path is nil. This is a normal return, not an error —
//     hand-built wall sets may be intentionally disconnected. Explored holds
//     the trace either way.
//
// Tie-breaking:
//
//   - Cells with equal f pop in an order that is an artifact of the binary
//     heap: consistent within this implementation, but unspecified.
//   - WithLexicographicTies() switches to a documented canonical secondary
//     key (Cell order: X first, then Y) when a reproducible exploration
//     order matters, e.g. for recorded traces in fixtures.
//
// Performance and complexity:
//
//   - Time:  O(E log V) with V = W×H and E ≤ 4V.
//   - Space: O(V) for scores, parents and the finalized set; O(E) worst-case
//     heap entries under lazy decrease-key.
//
// Error handling (sentinel errors):
//
//   - grid.ErrBadDimensions (wrapped): width or height not positive.
//   - ErrOutOfBounds: start or end lies outside the grid.
//
// Thread safety:
//
//   - All per-call state lives inside FindPath; the WallSet is never
//     mutated, so one wall set may serve any number of concurrent calls.
package astar
