// Package grid defines the data model shared by maze generation and
// pathfinding: Cell, Wall, WallSet and the Grid descriptor.
//
// What:
//
//   - Cell is one grid position (X, Y); a comparable value type with a total
//     order (X first, then Y) used for wall canonicalization.
//   - Wall is a canonical unordered pair of adjacent cells; NewWall stores
//     the pair in Cell order at construction, so {A,B} and {B,A} hash and
//     compare identically and lookups never re-sort.
//   - WallSet is the complete set of present walls defining a maze topology.
//     A wall present in the set means no passage between its two cells.
//   - Grid describes a width×height board and owns the adjacency rule:
//     a candidate neighbor is traversable when it is in bounds and the
//     canonical wall between it and the cell is absent from the WallSet.
//
// Why:
//
//   - Maze carving and A* search must agree on exactly one adjacency rule;
//     keeping it here removes any chance of drift between the two.
//   - Renderers consume the WallSet as plain data and derive their own
//     presentation from it.
//
// Complexity:
//
//   - All Cell/Wall operations: O(1).
//   - WallSet lookups: O(1) average; Walls(): O(n log n) for the sorted view.
//   - Grid.FullWallSet: O(W×H).
//
// Errors:
//
//   - ErrBadDimensions: width or height is not positive.
//   - ErrNotAdjacent: a wall query on cells with Manhattan distance ≠ 1.
package grid
