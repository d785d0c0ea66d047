// Package cli — style.go provides the styled text helpers for human-readable
// output. Styling is applied only when stdout is a terminal and NO_COLOR is
// unset; JSON mode never goes through these helpers.
package cli

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles for the text output. Kept minimal: a bold label, a highlighted
// path, a dim note, and the assembled command line.
var (
	labelStyle   = lipgloss.NewStyle().Bold(true)
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	commandStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// colorOnce caches the terminal detection; the answer cannot change within
// one process run.
var (
	colorOnce    sync.Once
	colorAllowed bool
)

// colorEnabled reports whether styled output should be used: stdout must be
// a terminal (or a Cygwin pty) and the NO_COLOR convention must not be set.
func colorEnabled() bool {
	colorOnce.Do(func() {
		if os.Getenv("NO_COLOR") != "" {
			return
		}
		fd := os.Stdout.Fd()
		colorAllowed = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	})
	return colorAllowed
}

func styleLabel(s string) string {
	if colorEnabled() {
		return labelStyle.Render(s)
	}
	return s
}

func stylePath(s string) string {
	if colorEnabled() {
		return pathStyle.Render(s)
	}
	return s
}

func styleDim(s string) string {
	if colorEnabled() {
		return dimStyle.Render(s)
	}
	return s
}

func styleCommand(s string) string {
	if colorEnabled() {
		return commandStyle.Render(s)
	}
	return s
}
