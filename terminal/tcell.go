package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// TcellSurface draws through a tcell Screen.
// tcell drops cells outside the screen, so out-of-range writes are silent.
type TcellSurface struct {
	screen tcell.Screen
	style  tcell.Style
	col    int
	row    int
}

// NewTcell adapts an initialized tcell screen
func NewTcell(screen tcell.Screen) *TcellSurface {
	return &TcellSurface{
		screen: screen,
		style:  tcell.StyleDefault,
	}
}

// Screen returns the wrapped tcell screen
func (s *TcellSurface) Screen() tcell.Screen {
	return s.screen
}

// MoveCursor implements Surface
func (s *TcellSurface) MoveCursor(col, row int) error {
	if s.screen == nil {
		return ErrClosed
	}
	if err := checkPosition(col, row); err != nil {
		return fmt.Errorf("move to (%d, %d): %w", col, row, err)
	}
	s.col, s.row = col, row
	return nil
}

// Write implements Surface
func (s *TcellSurface) Write(text string) error {
	if s.screen == nil {
		return ErrClosed
	}
	for _, r := range text {
		s.screen.SetContent(s.col, s.row, r, nil, s.style)
		s.col++
	}
	return nil
}

// Flush implements Surface
func (s *TcellSurface) Flush() error {
	if s.screen == nil {
		return ErrClosed
	}
	s.screen.Show()
	return nil
}

// Clear implements Surface
func (s *TcellSurface) Clear() error {
	if s.screen == nil {
		return ErrClosed
	}
	s.screen.Clear()
	s.col, s.row = 0, 0
	return nil
}

// Close finalizes the tcell screen; later calls return ErrClosed
func (s *TcellSurface) Close() {
	if s.screen == nil {
		return
	}
	s.screen.Fini()
	s.screen = nil
}
