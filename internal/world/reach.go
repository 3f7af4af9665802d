package world

import "github.com/zyedidia/generic/mapset"

// Reachable returns every open position connected to from through open axis
// neighbors. The set is empty if from itself is closed.
func (g *Grid) Reachable(from Position) mapset.Set[Position] {
	visited := mapset.New[Position]()
	if !g.IsOpen(from) {
		return visited
	}

	queue := []Position{from}
	visited.Put(from)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbors(current) {
			if visited.Has(n) || !g.IsOpen(n) {
				continue
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}
	return visited
}

// Connected reports whether all positions lie in one open region.
func (g *Grid) Connected(positions ...Position) bool {
	if len(positions) == 0 {
		return true
	}
	region := g.Reachable(positions[0])
	for _, p := range positions {
		if !region.Has(p) {
			return false
		}
	}
	return true
}

// RoomsConnected reports whether every room center can reach every other.
func (g *Grid) RoomsConnected() bool {
	centers := make([]Position, len(g.rooms))
	for i, r := range g.rooms {
		centers[i] = r.Center
	}
	return g.Connected(centers...)
}
