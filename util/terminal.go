// Package util holds small helpers shared across the module.
package util

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether fd is attached to a terminal.
func IsTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// TerminalWidth returns the column width of the terminal attached to
// stdout, or fallback when stdout is not a terminal or the size cannot be
// determined.
func TerminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return fallback
	}

	return width
}
