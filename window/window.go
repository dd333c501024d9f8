// Package window is the data model of the layout engine: a tree of rectangular
// windows, each owning its children outright.
package window

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/termwin/layout"
)

// Minimum outer size of a bordered window: two frame cells plus one content cell
const (
	MinBorderWidth  = 4
	MinBorderHeight = 3
)

// Window is a node in the window tree.
// X and Y are relative to the parent's interior origin and only used when the
// matching axis alignment is None. Width and Height include the border.
// Geometry fields may be mutated directly between frames.
type Window struct {
	X, Y          int
	Width, Height int

	title    string
	text     string
	children []*Window
	options  Options
}

// New creates a window with default options
func New(x, y, width, height int, title, text string) *Window {
	return &Window{
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		title:   title,
		text:    text,
		options: DefaultOptions(),
	}
}

// Title returns the border title, empty for none
func (w *Window) Title() string { return w.title }

// SetTitle replaces the border title
func (w *Window) SetTitle(title string) { w.title = title }

// Text returns the body text
func (w *Window) Text() string { return w.text }

// SetTextContent replaces the body text; it is reflowed on the next draw
func (w *Window) SetTextContent(text string) { w.text = text }

// Options returns a copy of the rendering options
func (w *Window) Options() Options { return w.options }

// SetOptions replaces the rendering options
func (w *Window) SetOptions(opts Options) { w.options = opts }

// AddChild appends child as the topmost window; the tree takes ownership.
// A nil child, w itself, or an ancestor of w is ignored since it would close a
// cycle. Attaching one window under two parents is caught by Validate.
func (w *Window) AddChild(child *Window) {
	if child == nil || child.contains(w) {
		return
	}
	w.children = append(w.children, child)
}

// contains reports whether target is w or a descendant of w
func (w *Window) contains(target *Window) bool {
	found := false
	w.Walk(func(win *Window, _ int) bool {
		if win == target {
			found = true
		}
		return !found
	})
	return found
}

// Children returns the children in paint order.
// Elements may be mutated; the slice itself must not be reordered.
func (w *Window) Children() []*Window {
	return w.children
}

// ContentWidth is the wrapping width available to the text
func (w *Window) ContentWidth() int {
	return w.Width - 2*w.options.TextInset()
}

// FitText sizes the window around its text. Height follows the wrapped line
// count; when the text fits on one line the width shrinks to hug it too.
// Width acts as the maximum width.
// Text without words yields height 2. The size is still applied, but a
// bordered window then reports the height error here instead of at draw time.
func (w *Window) FitText() error {
	lines, err := layout.TextHeight(w.text, w.ContentWidth())
	if err != nil {
		return &GeometryError{Title: w.title, Field: "content width", Value: w.ContentWidth(), Min: 1}
	}

	w.Height = lines + 2
	if lines == 1 {
		w.Width = len(w.text) + 4
	}
	if w.options.RenderBorder && w.Height < MinBorderHeight {
		return &GeometryError{Title: w.title, Field: "height", Value: w.Height, Min: MinBorderHeight}
	}
	return nil
}

// Walk visits the subtree in paint order; returning false skips a node's children
func (w *Window) Walk(fn func(win *Window, depth int) bool) {
	w.walk(fn, 0)
}

func (w *Window) walk(fn func(win *Window, depth int) bool, depth int) {
	if !fn(w, depth) {
		return
	}
	for _, child := range w.children {
		child.walk(fn, depth+1)
	}
}

// Validate checks the minimum-size invariants for the whole subtree and
// returns the first violation as a *GeometryError
func (w *Window) Validate() error {
	return w.validate("root", make(map[*Window]string))
}

func (w *Window) validate(path string, seen map[*Window]string) error {
	if first, ok := seen[w]; ok {
		return fmt.Errorf("window %s %q: already attached at %s: %w", path, w.title, first, ErrShared)
	}
	seen[w] = path

	fail := func(field string, value, min int) error {
		return &GeometryError{Path: path, Title: w.title, Field: field, Value: value, Min: min}
	}

	switch {
	case w.X < 0:
		return fail("x", w.X, 0)
	case w.Y < 0:
		return fail("y", w.Y, 0)
	case w.Width < 0:
		return fail("width", w.Width, 0)
	case w.Height < 0:
		return fail("height", w.Height, 0)
	case w.options.TextPadding < 0:
		return fail("text padding", w.options.TextPadding, 0)
	}

	if w.options.RenderBorder {
		if w.Width < MinBorderWidth {
			return fail("width", w.Width, MinBorderWidth)
		}
		if w.Height < MinBorderHeight {
			return fail("height", w.Height, MinBorderHeight)
		}
	}

	if w.options.RenderContent && w.hasWords() {
		if cw := w.ContentWidth(); cw < 1 {
			return fail("content width", cw, 1)
		}
	}

	for i, child := range w.children {
		if err := child.validate(path+"/"+strconv.Itoa(i), seen); err != nil {
			return err
		}
	}
	return nil
}

func (w *Window) hasWords() bool {
	return strings.TrimSpace(w.text) != ""
}
