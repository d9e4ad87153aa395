package cli

import (
	"io"
	"os"

	"golang.org/x/term"
)

// isTerminalFd is a test seam for term.IsTerminal.
var isTerminalFd = term.IsTerminal

// isTerminal reports whether r is an interactive terminal. Prompts are only
// printed for terminals so that piped scripts get clean output.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isTerminalFd(int(f.Fd()))
}
