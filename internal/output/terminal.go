package output

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether the file is attached to a terminal. Color
// output is disabled automatically when it is not.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
