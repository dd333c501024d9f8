package terminal

import "errors"

// ErrInvalidPosition is returned when the cursor is moved to a negative cell
var ErrInvalidPosition = errors.New("terminal: cursor position out of range")

// ErrClosed is returned by surfaces used after their backing screen was released
var ErrClosed = errors.New("terminal: surface closed")

// Surface is a cursor-addressed character grid
type Surface interface {
	// MoveCursor positions the virtual cursor (0-indexed column, row)
	MoveCursor(col, row int) error

	// Write prints s starting at the cursor and advances it by one cell per rune
	Write(s string) error

	// Flush makes buffered writes visible
	Flush() error

	// Clear blanks the whole screen
	Clear() error
}

func checkPosition(col, row int) error {
	if col < 0 || row < 0 {
		return ErrInvalidPosition
	}
	return nil
}
