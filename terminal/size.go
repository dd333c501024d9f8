package terminal

import (
	"os"
	"strconv"
)

// Fallback dimensions when nothing better is known
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// DetectSize returns the terminal dimensions.
// It tries the tty on stdout first, then COLUMNS/LINES, then 80x24.
func DetectSize() (width, height int) {
	if w, h := getTerminalSize(int(os.Stdout.Fd())); w > 0 && h > 0 {
		return w, h
	}
	return sizeFromEnv(os.Getenv("COLUMNS"), os.Getenv("LINES"))
}

func sizeFromEnv(cols, lines string) (width, height int) {
	if w, err := strconv.Atoi(cols); err == nil && w > 0 {
		width = w
	}
	if h, err := strconv.Atoi(lines); err == nil && h > 0 {
		height = h
	}

	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}
	return width, height
}
