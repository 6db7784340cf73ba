// Package mazepath is a small, focused toolkit for perfect-maze generation
// and shortest-path search on rectangular grids.
//
// 🚀 What is mazepath?
//
//	A pure-Go, zero-dependency kernel that brings together:
//		• grid/  — the shared data model: Cell, Wall, WallSet and the Grid descriptor
//		• maze/  — a randomized depth-first maze carver producing perfect mazes
//		• astar/ — A* shortest-path search with a full exploration trace
//
// ✨ Why choose mazepath?
//
//   - Minimal API, clear naming, value types everywhere
//   - Deterministic when seeded, reproducible test fixtures
//   - Pure Go – no cgo, no hidden deps
//   - Renderer-agnostic: the wall set and the search result are plain data,
//     ready for any text, 2D or 3D presentation layer
//
// The two products every consumer builds on:
//
//   - grid.WallSet — the maze topology (present wall ⇒ no passage)
//   - astar.Result — one shortest path plus the ordered exploration trace
//
// Quick ASCII example (3×2 maze, walls drawn, path marked by *):
//
//	+---+---+---+
//	| *   *     |
//	+---+   +---+
//	|     *   * |
//	+---+---+---+
//
// Dive into examples/ for a runnable corner-to-corner demo.
//
//	go get github.com/katalvlaran/mazepath
package mazepath
