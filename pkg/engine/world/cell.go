// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

import "fmt"

// Cell is the value stored in a single grid tile.
type Cell int

// Cell values as they appear in maze data
const (
	Open Cell = 0
	Wall Cell = 1
)

// IsOpen returns true if the cell can be walked on
func (c Cell) IsOpen() bool {
	return c == Open
}

// String returns the string representation of a cell
func (c Cell) String() string {
	switch c {
	case Open:
		return "Open"
	case Wall:
		return "Wall"
	default:
		return fmt.Sprintf("Cell(%d)", int(c))
	}
}
