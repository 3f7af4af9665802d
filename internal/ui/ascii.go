package ui

import (
	"bufio"
	"io"

	"github.com/gookit/color"

	"github.com/samdwyer/mazegen/internal/presets"
	"github.com/samdwyer/mazegen/internal/world"
)

// WriteASCII writes one line per grid row. Tiles are colored from palette
// when colorize is set, whatever the terminal reports; the color level is
// raised to true color for the duration of the call.
func WriteASCII(w io.Writer, grid *world.Grid, palette presets.Palette, colorize bool) error {
	if colorize {
		enabled := color.Enable
		color.Enable = true
		level := color.ForceOpenColor()
		defer func() {
			color.ForceSetColorLevel(level)
			color.Enable = enabled
		}()
	}

	bw := bufio.NewWriter(w)
	for x := 0; x < grid.Height(); x++ {
		for y := 0; y < grid.Width(); y++ {
			tile := grid.Tile(world.Pos(x, y))
			if colorize {
				bw.WriteString(color.HEX(palette.Hex(tile)).Sprint(string(tile.Rune())))
				continue
			}
			bw.WriteRune(tile.Rune())
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
