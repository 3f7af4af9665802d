package world

import (
	"fmt"
	"math"
)

// Position is a grid coordinate. X indexes the height axis and Y the width
// axis; (0,0) is the top left corner.
type Position struct {
	X, Y int
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// String formats the position as (x,y).
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns the component-wise sum of p and q.
func (p Position) Add(q Position) Position {
	return Position{X: p.X + q.X, Y: p.Y + q.Y}
}

// DistanceFunc measures the distance between two positions.
type DistanceFunc func(a, b Position) float64

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Position) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// RectilinearDistance returns the taxicab distance between a and b.
func RectilinearDistance(a, b Position) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
}

// Order matters: tie-breaking downstream picks the first cheapest neighbor.
var neighborOffsets = [4]Position{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

var diagonalOffsets = [4]Position{{1, 1}, {-1, -1}, {-1, 1}, {1, -1}}
