package shell

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// clearSequence moves the cursor home and erases the screen.
const clearSequence = "\033[H\033[2J"

// clearConsole clears the terminal behind w. Writers that are not a terminal
// are left untouched so piped output stays clean.
func clearConsole(w io.Writer) {
	if isTerminal(w) {
		fmt.Fprint(w, clearSequence)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
