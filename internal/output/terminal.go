package output

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ColorEnabled reports whether colored output should be written to w.
//
// NO_COLOR disables color and FORCE_COLOR enables it; otherwise color is
// used only when w is a terminal.
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return checkIsTerminal(f)
}

// checkIsTerminal checks if the file is a terminal, including Cygwin/MSYS ptys.
func checkIsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
