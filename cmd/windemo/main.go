package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/termwin/config"
	"github.com/lixenwraith/termwin/logging"
	"github.com/lixenwraith/termwin/render"
	"github.com/lixenwraith/termwin/terminal"
)

func main() {
	configPath := flag.String("config", "", "Path to a .toml or .yaml config file")
	backend := flag.String("backend", "", "Output backend: ansi, tcell or tea")
	frames := flag.Int("frames", -1, "Frames to draw before exiting, 0 runs until quit")
	fps := flag.Int("fps", 0, "Frames per second")
	line := flag.String("line", "", "Border line type: double, single, rounded, heavy, ascii, hidden")
	debugFlag := flag.Bool("debug", false, "Enable debug logging to logs/")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "windemo: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg, *backend, *frames, *fps, *line, *debugFlag)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "windemo: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(logging.Config{
		Debug: cfg.Debug,
		Dir:   cfg.LogDir,
		File:  logging.DefaultFile,
		Level: cfg.LogLevel,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "windemo: %v\n", err)
		os.Exit(1)
	}

	err = run(cfg, logger.Logger)
	logger.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "windemo: %v\n", err)
		os.Exit(1)
	}
}

// applyFlags overrides loaded config with flags that were set
func applyFlags(cfg *config.Config, backend string, frames, fps int, line string, debugOn bool) {
	if backend != "" {
		cfg.Backend = backend
	}
	if frames >= 0 {
		cfg.Frames = frames
	}
	if fps > 0 {
		cfg.FPS = fps
	}
	if line != "" {
		cfg.LineType = line
	}
	if debugOn {
		cfg.Debug = true
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	logger.Info("starting", zap.String("backend", cfg.Backend), zap.Int("fps", cfg.FPS), zap.String("line", cfg.LineType))

	switch cfg.Backend {
	case "tcell":
		return runTcell(cfg, logger)
	case "tea":
		return runTea(cfg, logger)
	default:
		return runANSI(cfg, logger)
	}
}

func frameInterval(fps int) time.Duration {
	return time.Second / time.Duration(fps)
}

func runANSI(cfg *config.Config, logger *zap.Logger) error {
	screen := terminal.NewScreen()
	if err := screen.Init(); err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "panic: %v\n%s", r, debug.Stack())
			os.Exit(2)
		}
	}()
	defer screen.Fini()

	w, h := screen.Size()
	s, err := newScene(w, h, cfg.Padding)
	if err != nil {
		return err
	}
	r := render.New(screen, render.WithLineType(cfg.LineStyle()), render.WithLogger(logger))

	// Raw mode delivers keys as bytes: q, Esc and Ctrl-C quit
	quit := make(chan struct{})
	go func() {
		buf := make([]byte, 16)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				close(quit)
				return
			}
			for _, b := range buf[:n] {
				if b == 'q' || b == 0x1b || b == 0x03 {
					close(quit)
					return
				}
			}
		}
	}()

	ticker := time.NewTicker(frameInterval(cfg.FPS))
	defer ticker.Stop()

	for frame := 0; cfg.Frames == 0 || frame < cfg.Frames; frame++ {
		s.resize(screen.Size())
		s.step(frame)
		if err := r.Redraw(s.root); err != nil {
			return err
		}

		select {
		case <-quit:
			return nil
		case <-ticker.C:
		}
	}
	return nil
}

func runTcell(cfg *config.Config, logger *zap.Logger) error {
	ts, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell: %w", err)
	}
	if err := ts.Init(); err != nil {
		return fmt.Errorf("tcell: %w", err)
	}
	surface := terminal.NewTcell(ts)
	defer surface.Close()

	w, h := ts.Size()
	s, err := newScene(w, h, cfg.Padding)
	if err != nil {
		return err
	}
	r := render.New(surface, render.WithLineType(cfg.LineStyle()), render.WithLogger(logger))

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := ts.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval(cfg.FPS))
	defer ticker.Stop()

	for frame := 0; cfg.Frames == 0 || frame < cfg.Frames; frame++ {
		s.step(frame)
		if err := r.Redraw(s.root); err != nil {
			return err
		}

	wait:
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return nil
				}
				switch ev := ev.(type) {
				case *tcell.EventKey:
					if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
						return nil
					}
				case *tcell.EventResize:
					ts.Sync()
					s.resize(ev.Size())
				}
			case <-ticker.C:
				break wait
			}
		}
	}
	return nil
}
