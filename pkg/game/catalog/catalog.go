// Package catalog holds the ordered list of mazes played round by round.
// Mazes are data, loaded from a text file and validated once at load time;
// nothing downstream re-checks them.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"mazeescape/pkg/engine/world"
)

// Start is the fixed cell every round begins on.
var Start = world.Position{X: 1, Y: 1}

// Catalog load errors
var (
	ErrNoMazes       = errors.New("catalog contains no mazes")
	ErrMissingHeader = errors.New("row appears before any maze header")
	ErrMissingName   = errors.New("maze header has no name")
	ErrDuplicateName = errors.New("maze name already used")
	ErrEmptyMaze     = errors.New("maze has no rows")
	ErrTooSmall      = errors.New("maze must be at least 3x3")
	ErrNoOpenCell    = errors.New("maze has no open cell")
	ErrStartBlocked  = errors.New("start cell is a wall")

	// Shape errors come from the grid itself
	ErrRaggedRows  = world.ErrRaggedRows
	ErrInvalidCell = world.ErrInvalidCell
	ErrOpenBorder  = world.ErrOpenBorder
)

//go:embed data/mazes.txt
var bundled []byte

// Catalog is an immutable, ordered, non-empty list of validated mazes.
// It is safe for concurrent use.
type Catalog struct {
	mazes []*world.Grid
}

// New builds a catalog from already constructed grids, validating each one.
func New(mazes ...*world.Grid) (*Catalog, error) {
	if len(mazes) == 0 {
		return nil, ErrNoMazes
	}
	for _, m := range mazes {
		if err := validate(m); err != nil {
			return nil, fmt.Errorf("maze %q: %w", m.Name(), err)
		}
	}
	return &Catalog{mazes: append([]*world.Grid(nil), mazes...)}, nil
}

// Default returns the catalog bundled with the binary.
func Default() (*Catalog, error) {
	return LoadBytes(bundled)
}

// Len returns the number of mazes
func (c *Catalog) Len() int {
	return len(c.mazes)
}

// Index returns the 0-based catalog index played in the given 1-based round.
// Rounds cycle through the catalog; rounds below 1 wrap the same way.
func (c *Catalog) Index(round int) int {
	n := len(c.mazes)
	i := (round - 1) % n
	if i < 0 {
		i += n
	}
	return i
}

// At returns the maze played in the given 1-based round
func (c *Catalog) At(round int) *world.Grid {
	return c.mazes[c.Index(round)]
}

// Names lists maze names in play order
func (c *Catalog) Names() []string {
	names := make([]string, len(c.mazes))
	for i, m := range c.mazes {
		names[i] = m.Name()
	}
	return names
}

// GoalPosition returns the open cell nearest the bottom-right corner: rows are
// scanned from last to first and, within a row, columns from last to first.
// A maze without open cells yields (1,1).
func GoalPosition(maze *world.Grid) world.Position {
	for y := maze.Rows() - 1; y >= 0; y-- {
		for x := maze.Cols() - 1; x >= 0; x-- {
			p := world.Position{X: x, Y: y}
			if maze.IsOpen(p) {
				return p
			}
		}
	}
	return Start
}

func validate(m *world.Grid) error {
	if m.Rows() < 3 || m.Cols() < 3 {
		return fmt.Errorf("%dx%d: %w", m.Cols(), m.Rows(), ErrTooSmall)
	}
	if err := m.Validate(); err != nil {
		return err
	}
	if m.OpenCount() == 0 {
		return ErrNoOpenCell
	}
	if !m.IsOpen(Start) {
		return fmt.Errorf("%v: %w", Start, ErrStartBlocked)
	}
	return nil
}
