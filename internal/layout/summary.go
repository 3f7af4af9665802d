package layout

import (
	"fmt"
	"strings"

	"github.com/samdwyer/mazegen/internal/world"
)

// Summary counts what a layout contains.
type Summary struct {
	Height, Width int
	Rooms         int
	// OverlappingRooms counts room pairs whose footprints share cells.
	// Placement only avoids overlap, so crowded grids can have some.
	OverlappingRooms int
	Open             int
	Types            map[world.TileType]int

	RoomsConnected bool
	// EndpointsConnected is false when no start and goal were placed.
	EndpointsConnected bool
}

// Summarize inspects a finished grid.
func Summarize(grid *world.Grid) Summary {
	rooms := grid.Rooms()
	s := Summary{
		Height: grid.Height(),
		Width:  grid.Width(),
		Rooms:  len(rooms),
		Types:  make(map[world.TileType]int),
	}
	for i := range rooms {
		for j := i + 1; j < len(rooms); j++ {
			if rooms[i].Intersects(rooms[j]) {
				s.OverlappingRooms++
			}
		}
	}
	for x := 0; x < grid.Height(); x++ {
		for y := 0; y < grid.Width(); y++ {
			tile := grid.Tile(world.Pos(x, y))
			if tile.IsOpen() {
				s.Open++
			}
			if tile.Type != world.TypeNone {
				s.Types[tile.Type]++
			}
		}
	}

	s.RoomsConnected = grid.RoomsConnected()
	start, ok := grid.Start()
	if ok {
		goal, _ := grid.Goal()
		s.EndpointsConnected = grid.Connected(start, goal)
	}
	return s
}

// String renders the summary on one line.
func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dx%d, %d rooms, %d open", s.Height, s.Width, s.Rooms, s.Open)
	if s.OverlappingRooms > 0 {
		fmt.Fprintf(&b, ", %d overlapping", s.OverlappingRooms)
	}
	for _, t := range []world.TileType{world.TypeRoom, world.TypeRoomCenter, world.TypeHallway, world.TypeStart, world.TypeGoal} {
		if n := s.Types[t]; n > 0 {
			fmt.Fprintf(&b, ", %s=%d", t, n)
		}
	}
	fmt.Fprintf(&b, ", rooms connected=%t", s.RoomsConnected)
	return b.String()
}
