package world

import (
	"errors"
	"fmt"
)

// Grid validation errors
var (
	ErrEmptyGrid   = errors.New("grid has no cells")
	ErrRaggedRows  = errors.New("rows differ in length")
	ErrInvalidCell = errors.New("cell value must be 0 or 1")
	ErrOpenBorder  = errors.New("border cell is not a wall")
)

// Grid represents a maze with encapsulated cell storage.
// A Grid is immutable once built; callers only read it.
type Grid struct {
	name  string
	cells [][]Cell
	rows  int
	cols  int
}

// FromRows builds a grid from rows of raw cell values. The input is copied.
// The rows must be rectangular and contain only 0 and 1.
func FromRows(name string, rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	cols := len(rows[0])
	cells := make([][]Cell, len(rows))
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(row), cols, ErrRaggedRows)
		}
		cells[r] = make([]Cell, cols)
		for c, v := range row {
			cell := Cell(v)
			if cell != Open && cell != Wall {
				return nil, fmt.Errorf("row %d col %d value %d: %w", r, c, v, ErrInvalidCell)
			}
			cells[r][c] = cell
		}
	}

	return &Grid{name: name, cells: cells, rows: len(rows), cols: cols}, nil
}

// MustFromRows is FromRows for fixtures known to be valid; it panics otherwise
func MustFromRows(name string, rows [][]int) *Grid {
	g, err := FromRows(name, rows)
	if err != nil {
		panic(err)
	}
	return g
}

// Name returns the maze name
func (g *Grid) Name() string {
	return g.name
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// IsPlayablePosition checks if a position is inside the 1-cell border
func (g *Grid) IsPlayablePosition(row, col int) bool {
	return row >= 1 && row < g.rows-1 && col >= 1 && col < g.cols-1
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(row, col int) bool {
	return g.IsValidPosition(row, col) && !g.IsPlayablePosition(row, col)
}

// GetCell returns the cell at the given row and column.
// Anything outside the grid reads as Wall.
func (g *Grid) GetCell(row, col int) Cell {
	if !g.IsValidPosition(row, col) {
		return Wall
	}
	return g.cells[row][col]
}

// At returns the cell under a position
func (g *Grid) At(p Position) Cell {
	return g.GetCell(p.Y, p.X)
}

// IsOpen reports whether the position is inside the grid and walkable
func (g *Grid) IsOpen(p Position) bool {
	return g.At(p).IsOpen()
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(row, col int, cell Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.cells[row][col])
		}
	}
}

// OpenCount returns the number of walkable cells
func (g *Grid) OpenCount() int {
	n := 0
	g.ForEachCell(func(_, _ int, cell Cell) {
		if cell.IsOpen() {
			n++
		}
	})
	return n
}

// Values returns a copy of the grid as raw 0/1 rows
func (g *Grid) Values() [][]int {
	out := make([][]int, g.rows)
	for row := range out {
		out[row] = make([]int, g.cols)
		for col := range out[row] {
			out[row][col] = int(g.cells[row][col])
		}
	}
	return out
}

// Validate checks that every perimeter cell is a wall. The walled border is
// what keeps a one-step move from ever leaving the grid.
func (g *Grid) Validate() error {
	if g.rows <= 0 || g.cols <= 0 {
		return ErrEmptyGrid
	}

	var err error
	g.ForEachCell(func(row, col int, cell Cell) {
		if err == nil && g.IsOnPerimeter(row, col) && cell != Wall {
			err = fmt.Errorf("row %d col %d: %w", row, col, ErrOpenBorder)
		}
	})
	return err
}
