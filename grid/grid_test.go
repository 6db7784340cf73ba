package grid_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/mazepath/grid"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects non-positive dimensions.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
	}{
		{"ZeroWidth", 0, 5},
		{"ZeroHeight", 5, 0},
		{"NegativeWidth", -1, 5},
		{"NegativeHeight", 5, -3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.width, tc.height)
			if !errors.Is(err, grid.ErrBadDimensions) {
				t.Errorf("New(%d,%d) error = %v; want ErrBadDimensions", tc.width, tc.height, err)
			}
		})
	}
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.New(3, 2)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	valid := []grid.Cell{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}}
	for _, c := range valid {
		if !g.InBounds(c) {
			t.Errorf("InBounds(%v)=false; want true", c)
		}
	}
	invalid := []grid.Cell{{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: -1}}
	for _, c := range invalid {
		if g.InBounds(c) {
			t.Errorf("InBounds(%v)=true; want false", c)
		}
	}
}

// TestInteriorWallCount checks the 2WH−W−H edge capacity formula.
func TestInteriorWallCount(t *testing.T) {
	cases := []struct {
		w, h, want int
	}{
		{1, 1, 0},
		{2, 1, 1},
		{1, 4, 3},
		{5, 5, 40},
		{10, 7, 123},
	}
	for _, tc := range cases {
		g, err := grid.New(tc.w, tc.h)
		if err != nil {
			t.Fatalf("New(%d,%d) error: %v", tc.w, tc.h, err)
		}
		if got := g.InteriorWallCount(); got != tc.want {
			t.Errorf("InteriorWallCount(%d×%d) = %d; want %d", tc.w, tc.h, got, tc.want)
		}
	}
}

// TestFullWallSet verifies the fully-walled start state has every interior
// edge exactly once.
func TestFullWallSet(t *testing.T) {
	g, err := grid.New(4, 3)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	ws := g.FullWallSet()
	if ws.Len() != g.InteriorWallCount() {
		t.Fatalf("FullWallSet len = %d; want %d", ws.Len(), g.InteriorWallCount())
	}
	// Every listed wall joins adjacent, in-bounds cells.
	for _, w := range ws.Walls() {
		if w.A.Manhattan(w.B) != 1 {
			t.Errorf("wall %v joins non-adjacent cells", w)
		}
		if !g.InBounds(w.A) || !g.InBounds(w.B) {
			t.Errorf("wall %v leaves the grid", w)
		}
	}
}

// TestPassableNeighbors checks the shared adjacency rule: in-bounds filtering
// plus wall filtering.
func TestPassableNeighbors(t *testing.T) {
	g, err := grid.New(3, 3)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	// Empty wall set: corner has two neighbors, center has four.
	open := grid.NewWallSet()
	if got := g.PassableNeighbors(open, grid.Cell{X: 0, Y: 0}); len(got) != 2 {
		t.Errorf("corner neighbors = %v; want 2 cells", got)
	}
	if got := g.PassableNeighbors(open, grid.Cell{X: 1, Y: 1}); len(got) != 4 {
		t.Errorf("center neighbors = %v; want 4 cells", got)
	}

	// Wall east of the center removes exactly that candidate.
	blocked := grid.NewWallSet()
	blocked.Add(grid.NewWall(grid.Cell{X: 1, Y: 1}, grid.Cell{X: 2, Y: 1}))
	got := g.PassableNeighbors(blocked, grid.Cell{X: 1, Y: 1})
	if len(got) != 3 {
		t.Fatalf("blocked center neighbors = %v; want 3 cells", got)
	}
	for _, nb := range got {
		if nb == (grid.Cell{X: 2, Y: 1}) {
			t.Errorf("neighbor %v should be walled off", nb)
		}
	}
}
