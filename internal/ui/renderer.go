package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/samdwyer/mazegen/internal/presets"
	"github.com/samdwyer/mazegen/internal/world"
)

// Renderer handles drawing a layout to the screen.
type Renderer struct {
	screen  *Screen
	palette presets.Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette presets.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the grid with the player on top. Grid rows map to screen
// rows and grid columns to screen columns.
func (r *Renderer) Render(grid *world.Grid, player *Player) {
	r.screen.Clear()

	for x := 0; x < grid.Height(); x++ {
		for y := 0; y < grid.Width(); y++ {
			tile := grid.Tile(world.Pos(x, y))
			style := tcell.StyleDefault.Foreground(r.palette.TCellColor(tile))
			r.screen.SetCell(x, y, tile.Rune(), style)
		}
	}

	if player != nil {
		playerStyle := tcell.StyleDefault.
			Foreground(tcell.ColorYellow).
			Bold(true)
		r.screen.SetCell(player.Pos.X, player.Pos.Y, player.Symbol, playerStyle)
	}
}

// RenderMessage writes msg on the given screen row, cut to the screen
// width.
func (r *Renderer) RenderMessage(msg string, row int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	col := 0
	for _, ch := range runewidth.Truncate(msg, r.screen.Cols(), "…") {
		r.screen.SetCell(row, col, ch, style)
		col += runewidth.RuneWidth(ch)
	}
}

// Show flushes the frame.
func (r *Renderer) Show() {
	r.screen.Show()
}
