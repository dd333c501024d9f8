//go:build !unix

package terminal

import (
	"errors"
	"os"

	"golang.org/x/term"
)

type fallbackBackend struct{}

func newBackend() Backend {
	return fallbackBackend{}
}

func (fallbackBackend) Init() error {
	return errors.New("raw terminal mode is not supported on this platform")
}

func (fallbackBackend) Fini() {}

func (fallbackBackend) Size() (int, int) {
	return getTerminalSize(int(os.Stdout.Fd()))
}

func (fallbackBackend) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

func getTerminalSize(fd int) (int, int) {
	w, h, err := term.GetSize(fd)
	if err != nil {
		return 0, 0
	}
	return w, h
}
