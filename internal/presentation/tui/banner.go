package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the title banner using the given color profile.
func PrintBanner(w io.Writer, p termenv.Profile, version string) {
	lines := []struct {
		text  string
		color string
	}{
		{"  _   _                   _ ", "#818cf8"},
		{" | | | | __ _ _ __   ___ (_)", "#a78bfa"},
		{" | |_| |/ _` | '_ \\ / _ \\| |", "#c084fc"},
		{" |  _  | (_| | | | | (_) | |", "#e879f9"},
		{" |_| |_|\\__,_|_| |_|\\___/|_|", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	if version != "" {
		fmt.Fprintln(w, p.String("  Tower of Hanoi v"+version).Faint())
	}
	fmt.Fprintln(w)
}
