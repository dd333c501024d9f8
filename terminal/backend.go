package terminal

// Backend abstracts the platform-specific part of owning a tty
type Backend interface {
	// Init enters raw mode
	Init() error

	// Fini restores the saved terminal mode. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// Write writes raw bytes to the terminal output
	Write(p []byte) (int, error)
}
