package terminal

import (
	"bufio"
	"fmt"
	"io"
)

// Pre-allocated ANSI sequence fragments
var (
	csi      = []byte("\x1b[")
	csiClear = []byte("\x1b[2J\x1b[H")
	csiSGR0  = []byte("\x1b[0m")
	csiRIS   = []byte("\x1bc") // Reset to Initial State (emergency)

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// Screen modes
	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	// DECAWM: ?7l keeps the cursor at the right edge instead of scrolling on the bottom-right cell
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")
)

// writeInt writes a non-negative integer without allocation
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	w.Write(buf[i:])
}

// writeCursorPos writes cursor positioning sequence (0-indexed input)
func writeCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csi)
	writeInt(w, y+1)
	w.WriteByte(';')
	writeInt(w, x+1)
	w.WriteByte('H')
}

// ANSISurface writes CSI cursor addressing and text to an io.Writer.
// Output is buffered until Flush.
type ANSISurface struct {
	w *bufio.Writer
}

// NewANSI wraps w in a 128KB output buffer
func NewANSI(w io.Writer) *ANSISurface {
	return &ANSISurface{w: bufio.NewWriterSize(w, 131072)}
}

// MoveCursor implements Surface
func (s *ANSISurface) MoveCursor(col, row int) error {
	if err := checkPosition(col, row); err != nil {
		return fmt.Errorf("move to (%d, %d): %w", col, row, err)
	}
	writeCursorPos(s.w, col, row)
	return s.err()
}

// Write implements Surface
func (s *ANSISurface) Write(text string) error {
	s.w.WriteString(text)
	return s.err()
}

// Flush implements Surface
func (s *ANSISurface) Flush() error {
	return s.w.Flush()
}

// Clear implements Surface; the clear is flushed immediately
func (s *ANSISurface) Clear() error {
	s.w.Write(csiClear)
	return s.w.Flush()
}

// writeRaw queues control bytes that are not part of the drawn content
func (s *ANSISurface) writeRaw(p []byte) error {
	s.w.Write(p)
	return s.err()
}

// err reports the sticky error of the underlying bufio.Writer; an empty write returns it
func (s *ANSISurface) err() error {
	_, err := s.w.Write(nil)
	return err
}
