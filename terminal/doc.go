// Package terminal provides the character-cell surfaces the window renderer draws on.
//
// Surface is the whole contract: move a virtual cursor, write text at it,
// flush buffered output, clear the screen. Implementations:
//   - ANSISurface: buffered CSI sequences to any io.Writer
//   - TcellSurface: adapter over a gdamore/tcell Screen
//   - Grid: in-memory cell grid that records every write, used by tests and
//     by string-based front ends
//
// Screen manages raw mode and the alternate screen buffer around an
// ANSISurface for programs that own the tty directly.
package terminal
