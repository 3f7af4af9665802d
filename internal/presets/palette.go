package presets

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazegen/internal/world"
)

// Palette maps tile roles to hex colors.
type Palette struct {
	Closed     string `yaml:"closed"`
	Open       string `yaml:"open"`
	Room       string `yaml:"room"`
	RoomCenter string `yaml:"roomCenter"`
	Hallway    string `yaml:"hallway"`
	Path       string `yaml:"path"`
	Start      string `yaml:"start"`
	Goal       string `yaml:"goal"`
}

type paletteFile struct {
	Palette Palette `yaml:"palette"`
}

// LoadPalette loads the tile palette from the embedded palette.yaml file.
func LoadPalette() (Palette, error) {
	file, err := Load[paletteFile]("palette.yaml")
	if err != nil {
		return Palette{}, err
	}
	return file.Palette, nil
}

// Hex returns the hex color for a tile.
func (p Palette) Hex(tile world.Tile) string {
	switch tile.Type {
	case world.TypeStart:
		return p.Start
	case world.TypeGoal:
		return p.Goal
	case world.TypePath:
		return p.Path
	case world.TypeRoom:
		return p.Room
	case world.TypeRoomCenter:
		return p.RoomCenter
	case world.TypeHallway:
		return p.Hallway
	}
	if tile.IsOpen() {
		return p.Open
	}
	return p.Closed
}

// TCellColor returns the tile's color as a tcell.Color.
func (p Palette) TCellColor(tile world.Tile) tcell.Color {
	color, err := ParseHexColor(p.Hex(tile))
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// ParseHexColor converts a palette entry such as "#5FAFD7" to a tcell
// color. The leading '#' is optional; exactly six hex digits are required.
func ParseHexColor(hex string) (tcell.Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return tcell.ColorDefault, fmt.Errorf("palette color %q: want 6 hex digits", hex)
	}
	rgb, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("palette color %q: %w", hex, err)
	}
	return tcell.NewHexColor(int32(rgb)), nil
}
