package maze_test

import (
	"testing"

	"github.com/katalvlaran/mazepath/maze"
)

// BenchmarkGenerate measures carving a 100×100 maze with a fixed seed.
// Complexity: O(W×H) per iteration.
func BenchmarkGenerate(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := maze.Generate(100, 100, maze.WithSeed(42)); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}

// BenchmarkGenerate_Large carves a 500×500 maze; the explicit frame stack
// keeps depth W×H walks off the call stack.
func BenchmarkGenerate_Large(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := maze.Generate(500, 500, maze.WithSeed(42)); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}
