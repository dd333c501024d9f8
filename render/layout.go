package render

import "github.com/lixenwraith/termwin/window"

// Frame is a window with its resolved absolute top-left cell
type Frame struct {
	Window *window.Window
	X, Y   int
	Depth  int
}

// Layout resolves every window in the tree to absolute coordinates.
// Frames come back in paint order: each parent before its children,
// siblings in insertion order. The root resolves against itself at (0, 0).
func Layout(root *window.Window) []Frame {
	if root == nil {
		return nil
	}
	var frames []Frame
	arrange(root, 0, 0, root.Width, root.Height, 0, &frames)
	return frames
}

func arrange(w *window.Window, originX, originY, parentW, parentH, depth int, frames *[]Frame) {
	opts := w.Options()
	x := opts.Horizontal.Resolve(originX, w.X, parentW, w.Width)
	y := opts.Vertical.Resolve(originY, w.Y, parentH, w.Height)

	*frames = append(*frames, Frame{Window: w, X: x, Y: y, Depth: depth})

	// Children are positioned against the interior, one cell in from the frame
	for _, child := range w.Children() {
		arrange(child, x+1, y+1, w.Width, w.Height, depth+1, frames)
	}
}
