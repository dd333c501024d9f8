package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/lixenwraith/termwin/config"
	"github.com/lixenwraith/termwin/render"
	"github.com/lixenwraith/termwin/terminal"
)

type tickMsg time.Time

// model drives the scene from bubbletea. View renders the tree into a Grid
// and hands its text to the program, which owns the terminal.
type model struct {
	scene    *scene
	grid     *terminal.Grid
	renderer *render.Renderer
	interval time.Duration
	frame    int
	frames   int
	err      error
}

func newModel(cfg *config.Config, logger *zap.Logger, width, height int) (*model, error) {
	s, err := newScene(width, height, cfg.Padding)
	if err != nil {
		return nil, err
	}
	grid := terminal.NewGrid(width, height)
	return &model{
		scene:    s,
		grid:     grid,
		renderer: render.New(grid, render.WithLineType(cfg.LineStyle()), render.WithLogger(logger)),
		interval: frameInterval(cfg.FPS),
		frames:   cfg.Frames,
	}, nil
}

func (m *model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *model) Init() tea.Cmd {
	return m.tick()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.scene.resize(msg.Width, msg.Height)
		m.grid.Resize(msg.Width, msg.Height)
	case tickMsg:
		m.frame++
		if m.frames > 0 && m.frame >= m.frames {
			return m, tea.Quit
		}
		m.scene.step(m.frame)
		return m, m.tick()
	}
	return m, nil
}

func (m *model) View() string {
	if m.err != nil {
		return m.err.Error() + "\n"
	}
	// Reset drops the previous frame's op log along with its cells
	m.grid.Reset()
	if err := m.renderer.Draw(m.scene.root); err != nil {
		m.err = err
		return err.Error() + "\n"
	}
	return m.grid.String()
}

func runTea(cfg *config.Config, logger *zap.Logger) error {
	w, h := terminal.DetectSize()
	m, err := newModel(cfg, logger, w, h)
	if err != nil {
		return err
	}
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	return final.(*model).err
}
