package world

// costField is a height × width matrix of per-cell costs. Lower is preferred.
type costField [][]float64

func newCostField(height, width int) costField {
	field := make(costField, height)
	for x := range field {
		field[x] = make([]float64, width)
	}
	return field
}

func (c costField) at(p Position) float64 {
	return c[p.X][p.Y]
}

func (c costField) clone() costField {
	out := make(costField, len(c))
	for x := range c {
		out[x] = append([]float64(nil), c[x]...)
	}
	return out
}

// add adds other to c element-wise.
func (c costField) add(other costField) {
	for x := range c {
		for y := range c[x] {
			c[x][y] += other[x][y]
		}
	}
}

// Room cost weights. Existing room centers are avoided hardest, plain open
// floor only mildly.
const (
	roomCostOpen       = 1
	roomCostRoom       = 3
	roomCostHallway    = 1
	roomCostRoomCenter = 10

	hallwayCostRoom    = 1
	hallwayCostHallway = -1
)

// roomCosts scores every cell for room placement.
func (g *Grid) roomCosts() costField {
	costs := newCostField(g.height, g.width)
	for x := range costs {
		for y := range costs[x] {
			tile := g.tiles[x][y]
			if tile.Opacity == Open {
				costs[x][y] += roomCostOpen
			}
			switch tile.Type {
			case TypeRoom:
				costs[x][y] += roomCostRoom
			case TypeHallway:
				costs[x][y] += roomCostHallway
			case TypeRoomCenter:
				costs[x][y] += roomCostRoomCenter
			}
		}
	}
	return costs
}

// hallwayCosts scores every cell for hallway carving. Extending a hallway is
// cheaper than cutting through a room.
func (g *Grid) hallwayCosts() costField {
	costs := newCostField(g.height, g.width)
	for x := range costs {
		for y := range costs[x] {
			switch g.tiles[x][y].Type {
			case TypeRoom:
				costs[x][y] += hallwayCostRoom
			case TypeHallway:
				costs[x][y] += hallwayCostHallway
			}
		}
	}
	return costs
}

// distanceCosts holds distance(goal, cell) for every cell. A nil distance
// function means rectilinear distance.
func (g *Grid) distanceCosts(goal Position, distance DistanceFunc) costField {
	if distance == nil {
		distance = RectilinearDistance
	}
	costs := newCostField(g.height, g.width)
	for x := range costs {
		for y := range costs[x] {
			costs[x][y] = distance(goal, Position{X: x, Y: y})
		}
	}
	return costs
}
