// Package render draws a window tree onto a terminal surface.
//
// A pass validates the tree, resolves every window to absolute cells with
// Layout, then paints each window as border, title, content, in paint order,
// and flushes once. The first surface error aborts the pass.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/lixenwraith/termwin/layout"
	"github.com/lixenwraith/termwin/terminal"
	"github.com/lixenwraith/termwin/window"
)

// ErrNilWindow is returned when Draw is called without a root window
var ErrNilWindow = errors.New("render: nil root window")

// Renderer paints window trees onto one surface
type Renderer struct {
	surface terminal.Surface
	border  lipgloss.Border
	logger  *zap.Logger
}

// Option configures a Renderer
type Option func(*Renderer)

// WithLineType selects one of the built-in border glyph sets
func WithLineType(lt LineType) Option {
	return func(r *Renderer) {
		r.border = lt.Border()
	}
}

// WithBorder uses a custom glyph set; only corners, Top, Bottom, Left and Right are read
func WithBorder(b lipgloss.Border) Option {
	return func(r *Renderer) {
		r.border = b
	}
}

// WithLogger traces resolved frames at debug level
func WithLogger(logger *zap.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a renderer drawing double-line borders
func New(surface terminal.Surface, opts ...Option) *Renderer {
	r := &Renderer{
		surface: surface,
		border:  LineDouble.Border(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DrawTree draws root onto surface with default options
func DrawTree(surface terminal.Surface, root *window.Window) error {
	return New(surface).Draw(root)
}

// Draw paints the whole tree and flushes the surface once.
// Geometry is validated before the first write, so an invalid tree leaves the
// surface untouched.
func (r *Renderer) Draw(root *window.Window) error {
	if root == nil {
		return ErrNilWindow
	}
	if err := root.Validate(); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	frames := Layout(root)
	for _, f := range frames {
		if err := r.drawFrame(f); err != nil {
			r.logger.Debug("draw aborted", zap.String("title", f.Window.Title()), zap.Error(err))
			return err
		}
	}

	if err := r.surface.Flush(); err != nil {
		return fmt.Errorf("render: flush: %w", err)
	}
	r.logger.Debug("tree drawn", zap.Int("windows", len(frames)))
	return nil
}

// Redraw clears the surface and draws the tree, for animation frames where
// windows may have moved
func (r *Renderer) Redraw(root *window.Window) error {
	if err := r.surface.Clear(); err != nil {
		return fmt.Errorf("render: clear: %w", err)
	}
	return r.Draw(root)
}

func (r *Renderer) drawFrame(f Frame) error {
	w := f.Window
	opts := w.Options()

	r.logger.Debug("window resolved",
		zap.String("title", w.Title()),
		zap.Int("depth", f.Depth),
		zap.Int("x", f.X),
		zap.Int("y", f.Y),
		zap.Int("width", w.Width),
		zap.Int("height", w.Height),
	)

	if opts.RenderBorder {
		if err := r.drawBorder(f.X, f.Y, w.Width, w.Height); err != nil {
			return err
		}
		if title := w.Title(); title != "" {
			if err := r.put(f.X+2, f.Y, " "+title+" "); err != nil {
				return err
			}
		}
	}

	if opts.RenderContent {
		if err := r.drawContent(f); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) drawBorder(x, y, width, height int) error {
	b := r.border
	right, bottom := x+width-1, y+height-1

	corners := [...]struct {
		x, y  int
		glyph string
	}{
		{x, y, b.TopLeft},
		{right, y, b.TopRight},
		{x, bottom, b.BottomLeft},
		{right, bottom, b.BottomRight},
	}
	for _, c := range corners {
		if err := r.put(c.x, c.y, c.glyph); err != nil {
			return err
		}
	}

	for col := x + 1; col < right; col++ {
		if err := r.put(col, y, b.Top); err != nil {
			return err
		}
		if err := r.put(col, bottom, b.Bottom); err != nil {
			return err
		}
	}

	for row := y + 1; row < bottom; row++ {
		if err := r.put(x, row, b.Left); err != nil {
			return err
		}
		if err := r.put(right, row, b.Right); err != nil {
			return err
		}
	}
	return nil
}

// drawContent wraps the text into the content rectangle and places the text
// block vertically against the interior height
func (r *Renderer) drawContent(f Frame) error {
	w := f.Window
	if strings.TrimSpace(w.Text()) == "" {
		return nil
	}

	placements, err := layout.Wrap(w.Text(), w.ContentWidth())
	if err != nil {
		return fmt.Errorf("render: content of %q: %w", w.Title(), err)
	}

	opts := w.Options()
	textHeight := placements[len(placements)-1].DY + 1
	left := f.X + opts.TextInset()
	top := opts.TextVertical.Place(f.Y+1, 0, w.Height-2, textHeight)

	for _, p := range placements {
		if err := r.put(left+p.DX, top+p.DY, p.Word); err != nil {
			return err
		}
	}
	return nil
}

// put is one move-then-write pair
func (r *Renderer) put(col, row int, s string) error {
	if err := r.surface.MoveCursor(col, row); err != nil {
		return fmt.Errorf("render: move cursor to (%d, %d): %w", col, row, err)
	}
	if err := r.surface.Write(s); err != nil {
		return fmt.Errorf("render: write at (%d, %d): %w", col, row, err)
	}
	return nil
}
