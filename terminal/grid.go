package terminal

import "strings"

// Op is one recorded Write: the text and the cell it started at
type Op struct {
	Col, Row int
	Text     string
}

// Grid is an in-memory Surface. Cells outside the grid are not stored, but
// every write is still recorded in the op log.
type Grid struct {
	width  int
	height int
	lines  [][]rune

	cursorX, cursorY int

	ops     []Op
	flushes int
	clears  int
}

// NewGrid creates a blank grid with the given dimensions
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Resize(width, height)
	return g
}

// Width returns the grid width
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height
func (g *Grid) Height() int {
	return g.height
}

// Resize resizes the grid, preserving existing content where possible
func (g *Grid) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	lines := make([][]rune, height)
	for y := range lines {
		lines[y] = make([]rune, width)
		for x := range lines[y] {
			if y < g.height && x < g.width {
				lines[y][x] = g.lines[y][x]
			} else {
				lines[y][x] = ' '
			}
		}
	}

	g.lines = lines
	g.width = width
	g.height = height
}

// MoveCursor implements Surface
func (g *Grid) MoveCursor(col, row int) error {
	if err := checkPosition(col, row); err != nil {
		return err
	}
	g.cursorX, g.cursorY = col, row
	return nil
}

// Write implements Surface
func (g *Grid) Write(s string) error {
	g.ops = append(g.ops, Op{Col: g.cursorX, Row: g.cursorY, Text: s})
	for _, r := range s {
		g.set(g.cursorX, g.cursorY, r)
		g.cursorX++
	}
	return nil
}

// Flush implements Surface
func (g *Grid) Flush() error {
	g.flushes++
	return nil
}

// Clear implements Surface; the op log is kept
func (g *Grid) Clear() error {
	for y := range g.lines {
		for x := range g.lines[y] {
			g.lines[y][x] = ' '
		}
	}
	g.cursorX, g.cursorY = 0, 0
	g.clears++
	return nil
}

func (g *Grid) set(x, y int, r rune) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return
	}
	g.lines[y][x] = r
}

// Rune returns the rune at (x, y) and whether the cell exists
func (g *Grid) Rune(x, y int) (rune, bool) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return 0, false
	}
	return g.lines[y][x], true
}

// Row returns row y as a string, empty when out of range
func (g *Grid) Row(y int) string {
	if y < 0 || y >= g.height {
		return ""
	}
	return string(g.lines[y])
}

// String returns all rows joined by newlines, trailing spaces trimmed
func (g *Grid) String() string {
	var b strings.Builder
	for y := range g.lines {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.TrimRight(string(g.lines[y]), " "))
	}
	return b.String()
}

// Ops returns every write recorded since creation or the last Reset
func (g *Grid) Ops() []Op {
	return g.ops
}

// Flushes returns how many times Flush was called
func (g *Grid) Flushes() int {
	return g.flushes
}

// Clears returns how many times Clear was called
func (g *Grid) Clears() int {
	return g.clears
}

// Reset blanks the grid and forgets recorded ops and counters
func (g *Grid) Reset() {
	g.Clear()
	g.ops = nil
	g.flushes = 0
	g.clears = 0
}
