// Package devtools provides developer tools for checking maze catalogs.
package devtools

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"mazeescape/pkg/engine/input"
	"mazeescape/pkg/engine/world"
	"mazeescape/pkg/game/catalog"
)

// cellSymbol returns the symbol for a cell with the start and goal overlaid
func cellSymbol(maze *world.Grid, p, goal world.Position) rune {
	switch {
	case p == catalog.Start:
		return 'S'
	case p == goal:
		return 'G'
	case maze.IsOpen(p):
		return '.'
	default:
		return '#'
	}
}

// writeMazeGrid writes the maze one row per line
func writeMazeGrid(w io.Writer, maze *world.Grid, goal world.Position) {
	for row := 0; row < maze.Rows(); row++ {
		var line strings.Builder
		for col := 0; col < maze.Cols(); col++ {
			line.WriteRune(cellSymbol(maze, world.Position{X: col, Y: row}, goal))
		}
		fmt.Fprintln(w, line.String())
	}
}

// DumpCatalog writes every maze in play order with its size, goal and a
// drawing. The format is meant for people checking a catalog file.
func DumpCatalog(w io.Writer, c *catalog.Catalog) {
	fmt.Fprintln(w, "=== MAZE CATALOG ===")
	fmt.Fprintf(w, "mazes: %d\n", c.Len())
	fmt.Fprintln(w, "coordinate_system: x,y (0-based, x=column, y=row)")
	fmt.Fprintln(w, "legend: # = wall  . = open  S = start  G = goal")

	for i := 0; i < c.Len(); i++ {
		maze := c.At(i + 1)
		goal := catalog.GoalPosition(maze)

		fmt.Fprintln(w)
		fmt.Fprintf(w, "--- Maze %d: %s ---\n", i+1, maze.Name())
		fmt.Fprintf(w, "size: %dx%d\n", maze.Cols(), maze.Rows())
		fmt.Fprintf(w, "open_cells: %d\n", maze.OpenCount())
		fmt.Fprintf(w, "start: %v\n", catalog.Start)
		fmt.Fprintf(w, "goal: %v\n", goal)
		if goal == catalog.Start {
			fmt.Fprintln(w, "warning: the goal is the start; the first key press completes the round")
		}
		writeMazeGrid(w, maze, goal)
	}
}

// DumpBindings writes each action with the keys bound to it
func DumpBindings(w io.Writer) {
	byAction := input.GetBindingsByAction()
	actions := make([]input.Action, 0, len(byAction))
	for act := range byAction {
		actions = append(actions, act)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	for _, act := range actions {
		fmt.Fprintf(w, "%-12s %s\n", input.ActionName(act)+":", strings.Join(byAction[act], ", "))
	}
}
