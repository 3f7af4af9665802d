package world

import (
	"fmt"
	"math"
	"strings"
)

// DescentPolicy selects the walk used for direct hallways.
type DescentPolicy int

const (
	// DescentGreedy never revisits a cell and breaks ties at random.
	DescentGreedy DescentPolicy = iota
	// DescentWandering injects lateral detours and backs out of two-cell
	// oscillations.
	DescentWandering
)

// String returns the policy name.
func (p DescentPolicy) String() string {
	if p == DescentWandering {
		return "wandering"
	}
	return "greedy"
}

// ParseDescentPolicy converts a name such as "greedy" into a DescentPolicy.
func ParseDescentPolicy(s string) (DescentPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "greedy":
		return DescentGreedy, nil
	case "wandering", "wander":
		return DescentWandering, nil
	default:
		return DescentGreedy, fmt.Errorf("unknown descent policy %q", s)
	}
}

const (
	defaultMeanderFactor = 10

	// maxDetour bounds the lateral length of a single detour.
	maxDetour = 10
	// detourCost is added to every cell a detour walks over.
	detourCost = 2
	// diagonalCost is added around the detour's end to keep hallways single
	// width.
	diagonalCost = 1
	// minStraightRun is the number of plain steps required between detours.
	minStraightRun = 4
)

// findPathWandering descends a private copy of field from start. Every step
// takes the cheapest axis neighbor, visited or not. With probability
// meanderFactor percent, once the path is long enough and enough plain
// steps have passed, it first walks a random lateral detour. When the next
// step would undo the previous one it drops a growing number of trailing
// cells instead. It returns nil if no zero-cost cell is reached within
// height × width iterations.
func (g *Grid) findPathWandering(field costField, start Position, meanderFactor int) []Position {
	costs := field.clone()
	w := &wanderWalk{path: []Position{start}}

	for i := 0; i < g.height*g.width; i++ {
		if len(w.path) > minStraightRun && w.plainSteps > minStraightRun &&
			g.rng.Float64()*100 < float64(meanderFactor) {
			w.plainSteps = 0
			w.path = g.detour(costs, w.path)
		}

		current := w.path[len(w.path)-1]
		if costs.at(current) == 0 {
			return w.path
		}

		neighbors := g.Neighbors(current)
		if len(neighbors) == 0 {
			return nil
		}
		next := neighbors[0]
		for _, n := range neighbors[1:] {
			if costs.at(n) < costs.at(next) {
				next = n
			}
		}
		w.step(next)
	}

	if costs.at(w.path[len(w.path)-1]) == 0 {
		return w.path
	}
	return nil
}

// wanderWalk is the state of a wandering descent.
type wanderWalk struct {
	path []Position
	// plainSteps counts steps since the last detour or back-out. It goes
	// negative after a back-out to delay the next detour.
	plainSteps int
	// backtracks counts consecutive back-outs.
	backtracks int
}

// step appends next to the path. If next would undo the previous step, it
// drops minStraightRun+k trailing cells instead on the k-th consecutive
// back-out, always keeping the start.
func (w *wanderWalk) step(next Position) {
	if len(w.path) > 3 && next == w.path[len(w.path)-2] {
		drop := min(minStraightRun+w.backtracks, len(w.path)-1)
		w.plainSteps = -w.backtracks - minStraightRun
		w.backtracks++
		w.path = w.path[:len(w.path)-drop]
		return
	}
	w.backtracks = 0
	w.plainSteps++
	w.path = append(w.path, next)
}

// detour extends path sideways relative to its last step by up to maxDetour
// cells, raising the cost of every cell it covers and of the diagonals
// around its new tail.
func (g *Grid) detour(costs costField, path []Position) []Position {
	tail := path[len(path)-1]
	prev := path[len(path)-2]
	step := Position{X: tail.X - prev.X, Y: tail.Y - prev.Y}

	if abs(step.X)+abs(step.Y) == 1 {
		span := int(math.Round((g.rng.Float64() - 0.5) * 2 * maxDetour))
		var lateral Position
		if step.X != 0 {
			lateral = Position{Y: sign(span)}
		} else {
			lateral = Position{X: sign(span)}
		}
		for k := 0; k < abs(span); k++ {
			next := tail.Add(lateral)
			if !g.inBounds(next) {
				break
			}
			tail = next
			costs[tail.X][tail.Y] += detourCost
			path = append(path, tail)
		}
	}

	for _, d := range g.Diagonals(path[len(path)-1]) {
		costs[d.X][d.Y] += diagonalCost
	}
	return path
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
