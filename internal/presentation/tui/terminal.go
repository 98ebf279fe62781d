package tui

import (
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Profile picks the color profile for a color mode ("auto", "always" or "never").
// In auto mode, colors are used only when out is a terminal.
func Profile(mode string, out io.Writer) termenv.Profile {
	switch strings.ToLower(mode) {
	case "never":
		return termenv.Ascii
	case "always":
		return termenv.ANSI256
	}
	if !IsTerminal(out) {
		return termenv.Ascii
	}
	return termenv.NewOutput(out).EnvColorProfile()
}
