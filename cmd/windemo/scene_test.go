package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/termwin/render"
	"github.com/lixenwraith/termwin/terminal"
)

func TestScene_DrawsAtDefaultSize(t *testing.T) {
	s, err := newScene(80, 24, 1)
	require.NoError(t, err)

	grid := terminal.NewGrid(80, 24)
	require.NoError(t, render.DrawTree(grid, s.root))

	assert.Equal(t, 1, grid.Flushes())
	r, _ := grid.Rune(0, 0)
	assert.Equal(t, '╔', r)
	// status anchored at 1 + 80 - 26 - 2 = 53, 1 + 24 - 5 - 2 = 18
	r, _ = grid.Rune(53, 18)
	assert.Equal(t, '╔', r)
	assert.Equal(t, 3, s.label.Height)
}

func TestScene_StepBounces(t *testing.T) {
	s, err := newScene(40, 20, 1)
	require.NoError(t, err)
	span := 40 - 2 - s.mover.Width

	s.step(0)
	assert.Equal(t, 0, s.mover.X)
	s.step(span)
	assert.Equal(t, span, s.mover.X)
	s.step(span + 3)
	assert.Equal(t, span-3, s.mover.X)
	s.step(2 * span)
	assert.Equal(t, 0, s.mover.X)
}

func TestScene_StepNarrowRoot(t *testing.T) {
	s, err := newScene(20, 10, 1)
	require.NoError(t, err)
	s.step(7)
	assert.Equal(t, 0, s.mover.X)
}

func TestScene_ResizeRedraw(t *testing.T) {
	s, err := newScene(80, 24, 0)
	require.NoError(t, err)
	s.resize(100, 30)

	grid := terminal.NewGrid(100, 30)
	r := render.New(grid, render.WithLineType(render.LineSingle))
	require.NoError(t, r.Redraw(s.root))

	corner, _ := grid.Rune(99, 29)
	assert.Equal(t, '┘', corner)
}

func TestScene_PaddingTooLarge(t *testing.T) {
	s, err := newScene(80, 24, 12)
	require.NoError(t, err)
	assert.Error(t, render.DrawTree(terminal.NewGrid(80, 24), s.root))
}

func TestScene_LabelFitsWithPadding(t *testing.T) {
	s, err := newScene(80, 24, 3)
	require.NoError(t, err)

	// "sized to fit its text" is 21 bytes: one line, width 21 + 4
	assert.Equal(t, 25, s.label.Width)
	assert.Equal(t, 3, s.label.Height)

	grid := terminal.NewGrid(80, 24)
	require.NoError(t, render.DrawTree(grid, s.root))

	// Label sits at interior origin (1,1) + relative (1,0)
	rows := []rune(grid.Row(3))
	assert.Equal(t, "╚═══════════════════════╝", string(rows[2:27]), "bottom border intact")
}
