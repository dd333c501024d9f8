package terminal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Screen owns the tty for a full-screen program: raw mode, alternate screen,
// hidden cursor, auto-wrap off. Drawing goes through the embedded ANSISurface.
type Screen struct {
	*ANSISurface

	backend Backend

	mu          sync.Mutex
	initialized bool
}

// NewScreen creates a Screen on stdin/stdout
func NewScreen() *Screen {
	return newScreen(newBackend())
}

func newScreen(b Backend) *Screen {
	return &Screen{
		ANSISurface: NewANSI(b),
		backend:     b,
	}
}

// Init enters raw mode and sets up the alternate screen
func (s *Screen) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := s.backend.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}

	for _, seq := range [][]byte{csiAltScreenEnter, csiCursorHide, csiAutoWrapOff} {
		if err := s.writeRaw(seq); err != nil {
			s.backend.Fini()
			return fmt.Errorf("terminal init: %w", err)
		}
	}
	if err := s.Clear(); err != nil {
		s.backend.Fini()
		return fmt.Errorf("terminal init: %w", err)
	}

	s.initialized = true
	return nil
}

// Fini restores terminal state. Safe to call multiple times
func (s *Screen) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	s.writeRaw(csiSGR0)
	s.writeRaw(csiAutoWrapOn)
	s.writeRaw(csiCursorShow)
	s.writeRaw(csiAltScreenExit)
	s.Flush()

	s.backend.Fini()
	s.initialized = false
}

// Size returns current terminal dimensions, 80x24 when unknown
func (s *Screen) Size() (width, height int) {
	w, h := s.backend.Size()
	if w <= 0 || h <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return w, h
}

// EmergencyReset restores a sane terminal from a crash context.
// Best effort: write errors are ignored.
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
