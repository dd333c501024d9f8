package main

import (
	"github.com/lixenwraith/termwin/layout"
	"github.com/lixenwraith/termwin/window"
)

// scene is the demo window tree plus handles to the windows it animates
type scene struct {
	root  *window.Window
	mover *window.Window
	label *window.Window
}

func newScene(width, height, padding int) (*scene, error) {
	root := window.New(0, 0, width, height, "windemo", "q or Esc quits. The tree is cleared and redrawn every frame.")

	centered := window.New(0, 0, 34, 7, "centered", "Centered on both axes of the root interior.")
	withAlign(centered, layout.AlignCenter(0), layout.AlignCenter(0))

	status := window.New(0, 0, 26, 5, "status", "Anchored bottom right.")
	withAlign(status, layout.AlignMax(0), layout.AlignMax(0))

	label := window.New(1, 0, 40, 1, "", "sized to fit its text")

	mover := window.New(0, 3, 26, 10, "mover", "Slides across the root.")
	nested := window.New(2, 2, 20, 5, "nested", "middle")
	nestedOpts := nested.Options()
	nestedOpts.TextVertical = layout.AlignCenter(0)
	nested.SetOptions(nestedOpts)
	mover.AddChild(nested)

	root.AddChild(centered)
	root.AddChild(status)
	root.AddChild(label)
	root.AddChild(mover)

	root.Walk(func(w *window.Window, _ int) bool {
		opts := w.Options()
		opts.TextPadding = padding
		w.SetOptions(opts)
		return true
	})

	// Fitting depends on padding, so it runs after padding is applied
	if err := label.FitText(); err != nil {
		return nil, err
	}

	return &scene{root: root, mover: mover, label: label}, nil
}

func withAlign(w *window.Window, h, v layout.Alignment) {
	opts := w.Options()
	opts.Horizontal = h
	opts.Vertical = v
	w.SetOptions(opts)
}

// resize matches the root to the terminal
func (s *scene) resize(width, height int) {
	s.root.Width = width
	s.root.Height = height
}

// step moves the mover along a back-and-forth path across the root interior
func (s *scene) step(frame int) {
	span := s.root.Width - 2 - s.mover.Width
	if span <= 0 {
		s.mover.X = 0
		return
	}
	pos := frame % (2 * span)
	if pos > span {
		pos = 2*span - pos
	}
	s.mover.X = pos
}
