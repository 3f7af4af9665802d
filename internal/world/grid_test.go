package world

import (
	"math"
	"slices"
	"strings"
	"testing"
)

func TestIsWithinBounds(t *testing.T) {
	g := New(5, 6)
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, false},
		{0, 3, false},
		{4, 3, false},
		{2, 0, false},
		{2, 5, false},
		{1, 1, true},
		{3, 4, true},
		{-1, 2, false},
		{5, 2, false},
	}
	for _, tt := range tests {
		if got := g.IsWithinBounds(tt.x, tt.y); got != tt.want {
			t.Errorf("IsWithinBounds(%d,%d) = %t, want %t", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestNeighborsOrder(t *testing.T) {
	g := New(5, 5)

	got := g.Neighbors(Pos(2, 2))
	want := []Position{{3, 2}, {1, 2}, {2, 3}, {2, 1}}
	if !slices.Equal(got, want) {
		t.Errorf("Neighbors((2,2)) = %v, want %v", got, want)
	}

	// Perimeter cells are filtered out, order of the rest is kept.
	got = g.Neighbors(Pos(1, 1))
	want = []Position{{2, 1}, {1, 2}}
	if !slices.Equal(got, want) {
		t.Errorf("Neighbors((1,1)) = %v, want %v", got, want)
	}
}

func TestDiagonals(t *testing.T) {
	g := New(5, 5)

	got := g.Diagonals(Pos(2, 2))
	want := []Position{{3, 3}, {1, 1}, {1, 3}, {3, 1}}
	if !slices.Equal(got, want) {
		t.Errorf("Diagonals((2,2)) = %v, want %v", got, want)
	}

	got = g.Diagonals(Pos(1, 1))
	want = []Position{{2, 2}}
	if !slices.Equal(got, want) {
		t.Errorf("Diagonals((1,1)) = %v, want %v", got, want)
	}
}

func TestDistances(t *testing.T) {
	a, b := Pos(0, 0), Pos(3, 4)
	if d := Distance(a, b); math.Abs(d-5) > 1e-9 {
		t.Errorf("Distance = %v, want 5", d)
	}
	if d := RectilinearDistance(a, b); d != 7 {
		t.Errorf("RectilinearDistance = %v, want 7", d)
	}
	if d := Distance(Pos(1, 1), Pos(0, 0)); math.Abs(d-math.Sqrt2) > 1e-9 {
		t.Errorf("Distance = %v, want sqrt(2)", d)
	}
	if d := RectilinearDistance(Pos(1, 1), Pos(0, 0)); d != 2 {
		t.Errorf("RectilinearDistance = %v, want 2", d)
	}
}

func TestAssignPositionOutOfBoundsIsNoop(t *testing.T) {
	g := New(5, 5)
	for _, p := range []Position{{0, 0}, {0, 2}, {4, 4}, {2, 4}, {-1, 2}, {9, 9}} {
		g.assignPosition(p, NewTile(Open, TypeRoom))
	}
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			if g.IsOpen(Pos(x, y)) {
				t.Errorf("(%d,%d) was opened", x, y)
			}
		}
	}
}

func TestAssignArea(t *testing.T) {
	g := New(8, 8)
	// Corners given in either order cover the same half-open rectangle.
	g.assignArea(Pos(4, 5), Pos(2, 2), NewTile(Open, TypeRoom))

	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			inside := x >= 2 && x < 4 && y >= 2 && y < 5
			if got := g.Type(Pos(x, y)) == TypeRoom; got != inside {
				t.Errorf("(%d,%d) room = %t, want %t", x, y, got, inside)
			}
		}
	}

	// A degenerate axis still covers one cell.
	g.assignArea(Pos(6, 6), Pos(6, 6), NewTile(Open, TypeHallway))
	if g.Type(Pos(6, 6)) != TypeHallway {
		t.Error("degenerate area did not cover its corner")
	}
}

func TestGenerateNoise(t *testing.T) {
	g := New(20, 30, WithSeed(7))
	g.GenerateNoise()

	open := 0
	for x := 0; x < g.Height(); x++ {
		for y := 0; y < g.Width(); y++ {
			tile := g.Tile(Pos(x, y))
			if tile.Type != TypeNone {
				t.Fatalf("noise set a type at (%d,%d)", x, y)
			}
			if tile.IsOpen() {
				if !g.IsWithinBounds(x, y) {
					t.Fatalf("noise opened perimeter cell (%d,%d)", x, y)
				}
				open++
			}
		}
	}

	interior := 18 * 28
	if open == 0 || open == interior {
		t.Errorf("expected a mix of open and closed tiles, got %d/%d open", open, interior)
	}
}

func TestGenerateStartAndGoal(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := New(4, 4, WithSeed(seed))
		g.GenerateStartAndGoal()

		start, ok := g.Start()
		if !ok {
			t.Fatal("start not recorded")
		}
		goal, _ := g.Goal()
		if start == goal {
			t.Fatalf("seed %d: start and goal share %v", seed, start)
		}
		if g.Type(start) != TypeStart || !g.IsOpen(start) {
			t.Errorf("seed %d: start tile = %+v", seed, g.Tile(start))
		}
		if g.Type(goal) != TypeGoal || !g.IsOpen(goal) {
			t.Errorf("seed %d: goal tile = %+v", seed, g.Tile(goal))
		}
	}
}

func TestStartAndGoalNotSetOnFreshGrid(t *testing.T) {
	g := New(10, 10)
	if _, ok := g.Start(); ok {
		t.Error("fresh grid reports a start")
	}
	if _, ok := g.Goal(); ok {
		t.Error("fresh grid reports a goal")
	}
}

func TestString(t *testing.T) {
	g := New(3, 4)
	want := strings.Repeat("####\n", 3)
	if got := g.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	g = New(5, 5)
	g.assignPosition(Pos(2, 2), NewTile(Open, TypeRoomCenter))
	if lines := strings.Split(g.String(), "\n"); lines[2] != "##+##" {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestTileOutsideGrid(t *testing.T) {
	g := New(5, 5)
	if got := g.Tile(Pos(-1, 7)); got != (Tile{}) {
		t.Errorf("Tile outside grid = %+v", got)
	}
}
