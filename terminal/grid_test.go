package terminal

import (
	"errors"
	"testing"
)

func TestNewGrid(t *testing.T) {
	g := NewGrid(10, 3)

	if g.Width() != 10 || g.Height() != 3 {
		t.Fatalf("Expected 10x3, got %dx%d", g.Width(), g.Height())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 10; x++ {
			r, ok := g.Rune(x, y)
			if !ok || r != ' ' {
				t.Errorf("Expected blank cell at (%d, %d), got %q", x, y, r)
			}
		}
	}
	if _, ok := g.Rune(10, 0); ok {
		t.Error("Expected Rune to fail for x out of bounds")
	}
	if _, ok := g.Rune(0, -1); ok {
		t.Error("Expected Rune to fail for negative y")
	}
}

func TestGrid_WriteAdvancesCursor(t *testing.T) {
	g := NewGrid(10, 2)

	g.MoveCursor(2, 1)
	g.Write("ab")
	g.Write("═c")

	if got := g.Row(1); got != "  ab═c    " {
		t.Errorf("Expected row %q, got %q", "  ab═c    ", got)
	}

	ops := g.Ops()
	if len(ops) != 2 {
		t.Fatalf("Expected 2 ops, got %d", len(ops))
	}
	if ops[1] != (Op{Col: 4, Row: 1, Text: "═c"}) {
		t.Errorf("Expected second op at (4,1), got %+v", ops[1])
	}
}

func TestGrid_OutOfBoundsDroppedButRecorded(t *testing.T) {
	g := NewGrid(4, 2)

	g.MoveCursor(2, 0)
	g.Write("xyz")
	g.MoveCursor(0, 5)
	g.Write("gone")

	if got := g.Row(0); got != "  xy" {
		t.Errorf("Expected overflow to be dropped, got %q", got)
	}
	if len(g.Ops()) != 2 {
		t.Errorf("Expected both writes recorded, got %d", len(g.Ops()))
	}
	if err := g.MoveCursor(-1, 0); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("Expected ErrInvalidPosition, got %v", err)
	}
}

func TestGrid_StringAndClear(t *testing.T) {
	g := NewGrid(5, 3)
	g.MoveCursor(0, 0)
	g.Write("ab")
	g.MoveCursor(1, 2)
	g.Write("c")
	g.Flush()

	if got := g.String(); got != "ab\n\n c" {
		t.Errorf("Expected %q, got %q", "ab\n\n c", got)
	}
	if g.Flushes() != 1 {
		t.Errorf("Expected 1 flush, got %d", g.Flushes())
	}

	g.Clear()
	if got := g.String(); got != "\n\n" {
		t.Errorf("Expected blank grid after Clear, got %q", got)
	}
	if g.Clears() != 1 || len(g.Ops()) != 2 {
		t.Errorf("Expected clear counted and ops kept, got clears=%d ops=%d", g.Clears(), len(g.Ops()))
	}

	g.Reset()
	if len(g.Ops()) != 0 || g.Flushes() != 0 || g.Clears() != 0 {
		t.Error("Expected Reset to forget ops and counters")
	}
}

func TestGrid_Resize(t *testing.T) {
	g := NewGrid(3, 1)
	g.MoveCursor(0, 0)
	g.Write("abc")

	g.Resize(5, 2)
	if g.Row(0) != "abc  " || g.Row(1) != "     " {
		t.Errorf("Expected content preserved on grow, got %q / %q", g.Row(0), g.Row(1))
	}

	g.Resize(2, 1)
	if g.Row(0) != "ab" {
		t.Errorf("Expected content truncated on shrink, got %q", g.Row(0))
	}
}
