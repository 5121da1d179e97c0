package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the magazine banner followed by the version line.
func PrintBanner(w io.Writer, version string) {
	p := termenv.EnvColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{`  _ __ ___   __ _  __ _  __ _ _____ _ __   ___ `, "#818cf8"},
		{` | '_ ' _ \ / _' |/ _' |/ _' |_  / | '_ \ / _ \`, "#a78bfa"},
		{` | | | | | | (_| | (_| | (_| |/ /| | | | |  __/`, "#c084fc"},
		{` |_| |_| |_|\__,_|\__, |\__,_/___|_|_| |_|\___|`, "#e879f9"},
		{`                  |___/                        `, "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	if version != "" {
		fmt.Fprintln(w, termenv.String("  pushdown automaton simulator v"+version).Faint())
	}
	fmt.Fprintln(w)
}
