package world

import "fmt"

// Position is a grid coordinate. X is the column, Y is the row.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Step returns the position one cell away in the given direction.
// An invalid direction returns p unchanged.
func (p Position) Step(dir Direction) Position {
	rowDelta, colDelta := dir.Delta()
	return Position{X: p.X + colDelta, Y: p.Y + rowDelta}
}

// String returns the position as "(x,y)"
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction represents a cardinal direction
type Direction int

// Direction constants, clockwise from North
const (
	North Direction = iota
	East
	South
	West
)

var directionNames = [...]string{"North", "East", "South", "West"}

// row, col offsets indexed by Direction; rows grow downwards
var directionDeltas = [...][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

func (d Direction) String() string {
	if !d.IsValid() {
		return "Unknown"
	}
	return directionNames[d]
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	if !d.IsValid() {
		return 0, 0
	}
	return directionDeltas[d][0], directionDeltas[d][1]
}
