// Package ui draws finished layouts, either interactively with tcell or as
// plain or colored text.
package ui

import "github.com/gdamore/tcell/v2"

// Screen is a terminal addressed in grid order: row first, then column.
type Screen struct {
	term tcell.Screen
}

// NewScreen opens the controlling terminal.
func NewScreen() (*Screen, error) {
	term, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newScreen(term)
}

func newScreen(term tcell.Screen) (*Screen, error) {
	if err := term.Init(); err != nil {
		return nil, err
	}
	term.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	term.HideCursor()
	term.Clear()
	return &Screen{term: term}, nil
}

// Close restores the terminal.
func (s *Screen) Close() { s.term.Fini() }

// PollEvent blocks until the next key, resize or interrupt.
func (s *Screen) PollEvent() tcell.Event { return s.term.PollEvent() }

// Clear blanks the back buffer.
func (s *Screen) Clear() { s.term.Clear() }

// Show flushes the back buffer.
func (s *Screen) Show() { s.term.Show() }

// Sync repaints everything, e.g. after a resize.
func (s *Screen) Sync() { s.term.Sync() }

// SetCell draws ch at (row, col). Cells off screen are ignored.
func (s *Screen) SetCell(row, col int, ch rune, style tcell.Style) {
	s.term.SetContent(col, row, ch, nil, style)
}

// Rows returns the terminal height.
func (s *Screen) Rows() int {
	_, rows := s.term.Size()
	return rows
}

// Cols returns the terminal width.
func (s *Screen) Cols() int {
	cols, _ := s.term.Size()
	return cols
}

// Fits reports whether a grid of the given size plus extra status rows is
// fully visible.
func (s *Screen) Fits(height, width, statusRows int) bool {
	cols, rows := s.term.Size()
	return height+statusRows <= rows && width <= cols
}
