// Package world provides the layout synthesis engine: a tile grid, cost
// fields over it, room placement and hallway carving.
package world

// Opacity describes whether a tile blocks traversal and placement.
type Opacity int

const (
	// Closed blocks traversal. It is the zero value so fresh tiles are closed.
	Closed Opacity = iota
	// Open permits traversal.
	Open
)

// String returns the opacity name.
func (o Opacity) String() string {
	if o == Open {
		return "open"
	}
	return "closed"
}

// TileType is the semantic role of a tile, independent of its opacity.
type TileType int

const (
	TypeNone TileType = iota
	TypeStart
	TypeGoal
	TypePath
	TypeRoom
	TypeRoomCenter
	TypeHallway
)

var tileTypeNames = [...]string{
	TypeNone:       "none",
	TypeStart:      "start",
	TypeGoal:       "goal",
	TypePath:       "path",
	TypeRoom:       "room",
	TypeRoomCenter: "roomCenter",
	TypeHallway:    "hallway",
}

// String returns the tile type name.
func (t TileType) String() string {
	if t < 0 || int(t) >= len(tileTypeNames) {
		return "unknown"
	}
	return tileTypeNames[t]
}

// Tile is the content of a single grid cell.
type Tile struct {
	Opacity Opacity
	Type    TileType
	// Cost is a scratch value written by the convolution step. It is
	// informational only.
	Cost float64
}

// NewTile returns a tile with the given opacity and type and zero cost.
func NewTile(opacity Opacity, typ TileType) Tile {
	return Tile{Opacity: opacity, Type: typ}
}

// IsOpen returns true if the tile can be walked on.
func (t Tile) IsOpen() bool {
	return t.Opacity == Open
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	if t.Opacity == Closed && t.Type == TypeNone {
		return '#'
	}
	switch t.Type {
	case TypeStart:
		return 'S'
	case TypeGoal:
		return 'G'
	case TypePath:
		return '*'
	case TypeRoomCenter:
		return '+'
	case TypeHallway:
		return ','
	default:
		if t.Opacity == Closed {
			return '#'
		}
		return '.'
	}
}

// mergeTile returns the tile that results from writing incoming over existing.
//
// An unspecified type never erases an existing one, and a hallway never
// downgrades an already typed cell. Start and goal are permanent. A positive
// existing cost survives unless incoming carries its own positive cost.
func mergeTile(existing, incoming Tile) Tile {
	merged := incoming
	if incoming.Type == TypeNone || (incoming.Type == TypeHallway && existing.Type != TypeNone) {
		merged.Type = existing.Type
	}
	if existing.Type == TypeStart || existing.Type == TypeGoal {
		merged.Type = existing.Type
	}
	if existing.Cost > 0 && incoming.Cost <= 0 {
		merged.Cost = existing.Cost
	}
	return merged
}
