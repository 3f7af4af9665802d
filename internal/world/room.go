package world

// Room is a rectangular open area placed on the grid.
type Room struct {
	TopLeft       Position
	Height, Width int
	// Center is the anchor tile used as the endpoint of inter-room hallways.
	Center Position
	// BottomRight is exclusive: the footprint spans [TopLeft, BottomRight).
	BottomRight Position
	Connected   bool
	// SortOrder is the distance of Center from the origin, set when rooms
	// are interconnected.
	SortOrder float64
}

// newRoom clamps height and width so the room never leaves a gridHeight ×
// gridWidth grid.
func newRoom(topLeft Position, height, width, gridHeight, gridWidth int) Room {
	height = min(height, gridHeight-topLeft.X)
	width = min(width, gridWidth-topLeft.Y)
	return Room{
		TopLeft: topLeft,
		Height:  height,
		Width:   width,
		Center: Position{
			X: topLeft.X + height/2,
			Y: topLeft.Y + width/2,
		},
		BottomRight: Position{
			X: topLeft.X + height,
			Y: topLeft.Y + width,
		},
	}
}

// Contains returns true if p lies inside the room's footprint.
func (r Room) Contains(p Position) bool {
	return p.X >= r.TopLeft.X && p.X < r.BottomRight.X &&
		p.Y >= r.TopLeft.Y && p.Y < r.BottomRight.Y
}

// Intersects returns true if this room's footprint overlaps other's.
func (r Room) Intersects(other Room) bool {
	return r.TopLeft.X < other.BottomRight.X &&
		r.BottomRight.X > other.TopLeft.X &&
		r.TopLeft.Y < other.BottomRight.Y &&
		r.BottomRight.Y > other.TopLeft.Y
}
