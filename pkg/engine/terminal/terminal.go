// Package terminal reports terminal geometry for text frontends.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// LeftPad returns the number of spaces needed to centre content of the
// given visible width in a line of lineWidth columns.
func LeftPad(lineWidth, contentWidth int) int {
	if contentWidth >= lineWidth {
		return 0
	}
	return (lineWidth - contentWidth) / 2
}
