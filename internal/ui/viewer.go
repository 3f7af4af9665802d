package ui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazegen/internal/layout"
	"github.com/samdwyer/mazegen/internal/world"
)

// Player is a marker walked over a finished grid.
type Player struct {
	Pos    world.Position
	Symbol rune
}

// NewPlayer creates a player at p.
func NewPlayer(p world.Position) *Player {
	return &Player{Pos: p, Symbol: '@'}
}

// TryMove moves the player by (dx, dy) if the target is an open interior
// tile and reports whether it moved.
func (p *Player) TryMove(grid *world.Grid, dx, dy int) bool {
	next := p.Pos.Add(world.Pos(dx, dy))
	if !grid.IsWithinBounds(next.X, next.Y) || !grid.IsOpen(next) {
		return false
	}
	p.Pos = next
	return true
}

// spawnPosition picks the start tile, else the first room center, else the
// middle of the grid.
func spawnPosition(grid *world.Grid) world.Position {
	if start, ok := grid.Start(); ok {
		return start
	}
	if rooms := grid.Rooms(); len(rooms) > 0 {
		return rooms[0].Center
	}
	return world.Pos(grid.Height()/2, grid.Width()/2)
}

// GenerateFunc produces a new layout.
type GenerateFunc func(ctx context.Context) (*layout.Result, error)

// Viewer shows layouts and lets the user walk them or roll new ones.
type Viewer struct {
	screen   *Screen
	renderer *Renderer
	generate GenerateFunc
	result   *layout.Result
	player   *Player
	message  string
	running  bool
}

// NewViewer creates a viewer drawing on screen.
func NewViewer(screen *Screen, renderer *Renderer, generate GenerateFunc) *Viewer {
	return &Viewer{
		screen:   screen,
		renderer: renderer,
		generate: generate,
		running:  true,
	}
}

// Run generates the first layout and loops until the user quits.
func (v *Viewer) Run(ctx context.Context) error {
	defer v.screen.Close()

	if err := v.regenerate(ctx); err != nil {
		return err
	}

	for v.running {
		v.draw()

		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if err := v.handleKey(ctx, ev); err != nil {
				return err
			}
		case *tcell.EventResize:
			v.screen.Sync()
		case nil:
			v.running = false
		}
	}
	return nil
}

// statusRows is the number of text rows drawn under the grid.
const statusRows = 2

func (v *Viewer) draw() {
	grid := v.result.Grid
	v.renderer.Render(grid, v.player)

	msg := v.message
	if !v.screen.Fits(grid.Height(), grid.Width(), statusRows) {
		msg = fmt.Sprintf("terminal too small for %dx%d, enlarge it", grid.Height(), grid.Width())
	}
	row := max(min(grid.Height(), v.screen.Rows()-statusRows), 0)
	v.renderer.RenderMessage(msg, row)
	v.renderer.RenderMessage("arrows: move  r: new layout  q: quit", row+1)
	v.renderer.Show()
}

func (v *Viewer) regenerate(ctx context.Context) error {
	result, err := v.generate(ctx)
	if err != nil {
		return fmt.Errorf("generate layout: %w", err)
	}
	v.result = result
	v.player = NewPlayer(spawnPosition(result.Grid))
	v.message = fmt.Sprintf("seed %d: %s", result.Seed, result.Summary)
	return nil
}

// handleKey processes keyboard input.
func (v *Viewer) handleKey(ctx context.Context, ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false
	case tcell.KeyUp:
		v.move(-1, 0)
	case tcell.KeyDown:
		v.move(1, 0)
	case tcell.KeyLeft:
		v.move(0, -1)
	case tcell.KeyRight:
		v.move(0, 1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			v.running = false
		case 'r', 'R':
			return v.regenerate(ctx)
		}
	}
	return nil
}

// move steps the player; x is the row axis.
func (v *Viewer) move(dx, dy int) {
	grid := v.result.Grid
	if !v.player.TryMove(grid, dx, dy) {
		return
	}
	if goal, ok := grid.Goal(); ok && v.player.Pos == goal {
		v.message = "goal reached, press r for a new layout"
	}
}
