package world

import (
	"math"
	"testing"
)

func constField(height, width int, v float64) costField {
	f := newCostField(height, width)
	for x := range f {
		for y := range f[x] {
			f[x][y] = v
		}
	}
	return f
}

func TestConvolveTopLeft(t *testing.T) {
	g := New(4, 4)
	out := g.convolve(constField(4, 4, 1), onesKernel(2, 2), AnchorTopLeft, 0, 0)

	tests := []struct {
		x, y int
		want float64
	}{
		{0, 0, 4},
		{2, 2, 4},
		{3, 0, 2}, // last row only sees one kernel row
		{0, 3, 2},
		{3, 3, 1},
	}
	for _, tt := range tests {
		if got := out[tt.x][tt.y]; got != tt.want {
			t.Errorf("out[%d][%d] = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestConvolveTopLeftPadding(t *testing.T) {
	g := New(6, 6)

	out := g.convolve(constField(6, 6, 1), onesKernel(2, 2), AnchorTopLeft, 1, 1)
	if out[2][2] != 16 {
		t.Errorf("padded interior = %v, want 16", out[2][2])
	}
	// The padding ring above and left of (0,0) falls outside the field.
	if out[0][0] != 9 {
		t.Errorf("padded corner = %v, want 9", out[0][0])
	}

	out = g.convolve(constField(6, 6, 1), onesKernel(2, 2), AnchorTopLeft, 1, 0)
	if out[2][2] != 4 {
		t.Errorf("zero padding = %v, want 4", out[2][2])
	}
}

func TestConvolveCenter(t *testing.T) {
	g := New(5, 5)
	field := newCostField(5, 5)
	field[2][2] = 1

	out := g.convolve(field, hallwayKernel, AnchorCenter, 0, 0)

	tests := []struct {
		x, y int
		want float64
	}{
		{2, 2, 1},
		{1, 2, 2.0 / 8},
		{2, 3, 2.0 / 8},
		{1, 1, 1.0 / 8},
		{3, 3, 1.0 / 8},
		{0, 0, 0},
		{4, 2, 0},
	}
	for _, tt := range tests {
		if got := out[tt.x][tt.y]; math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("out[%d][%d] = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestConvolveRecordsScratchCost(t *testing.T) {
	g := New(4, 5)
	out := g.convolve(constField(4, 5, 1), onesKernel(1, 2), AnchorTopLeft, 0, 0)

	for x := 0; x < 4; x++ {
		for y := 0; y < 5; y++ {
			if got := g.CostAt(Pos(x, y)); got != out[x][y] {
				t.Errorf("CostAt(%d,%d) = %v, want %v", x, y, got, out[x][y])
			}
		}
	}
	// Scratch costs never change opacity or type.
	if g.IsOpen(Pos(1, 1)) || g.Type(Pos(1, 1)) != TypeNone {
		t.Error("convolution changed a tile's opacity or type")
	}
}

func TestConvolveCenterRejectsEvenKernel(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an even center anchored kernel")
		}
	}()
	g := New(4, 4)
	g.convolve(newCostField(4, 4), onesKernel(2, 2), AnchorCenter, 0, 0)
}

func TestPadKernelCopies(t *testing.T) {
	kernel := onesKernel(1, 1)
	padded := padKernel(kernel, 2, 7)

	if len(kernel) != 1 || len(kernel[0]) != 1 {
		t.Fatal("padKernel modified its input")
	}
	if len(padded) != 5 || len(padded[0]) != 5 {
		t.Fatalf("padded size = %dx%d, want 5x5", len(padded), len(padded[0]))
	}
	if padded[2][2] != 1 || padded[0][0] != 7 || padded[4][2] != 7 {
		t.Errorf("unexpected padded kernel %v", padded)
	}
}

func TestCostBuilders(t *testing.T) {
	g := New(6, 6)
	g.assignPosition(Pos(1, 1), NewTile(Open, TypeNone))
	g.assignPosition(Pos(1, 2), NewTile(Open, TypeRoom))
	g.assignPosition(Pos(1, 3), NewTile(Open, TypeHallway))
	g.assignPosition(Pos(1, 4), NewTile(Open, TypeRoomCenter))

	room := g.roomCosts()
	for _, tt := range []struct {
		p    Position
		want float64
	}{
		{Pos(1, 1), 1},
		{Pos(1, 2), 4},
		{Pos(1, 3), 2},
		{Pos(1, 4), 11},
		{Pos(2, 2), 0},
	} {
		if got := room.at(tt.p); got != tt.want {
			t.Errorf("roomCosts%v = %v, want %v", tt.p, got, tt.want)
		}
	}

	hall := g.hallwayCosts()
	for _, tt := range []struct {
		p    Position
		want float64
	}{
		{Pos(1, 1), 0},
		{Pos(1, 2), 1},
		{Pos(1, 3), -1},
		{Pos(1, 4), 0},
	} {
		if got := hall.at(tt.p); got != tt.want {
			t.Errorf("hallwayCosts%v = %v, want %v", tt.p, got, tt.want)
		}
	}

	dist := g.distanceCosts(Pos(2, 2), nil)
	if dist.at(Pos(2, 2)) != 0 || dist.at(Pos(5, 0)) != 5 {
		t.Errorf("rectilinear distance field wrong: %v", dist)
	}
	euclid := g.distanceCosts(Pos(0, 0), Distance)
	if math.Abs(euclid.at(Pos(3, 4))-5) > 1e-9 {
		t.Errorf("euclidean distance field wrong: %v", euclid.at(Pos(3, 4)))
	}
}
