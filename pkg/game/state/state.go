package state

import (
	"time"

	"mazeescape/pkg/engine/world"
)

const maxMessages = 5

// Game is the single state record for a play session. Only the gameplay
// controller writes to it; renderers read it from RenderFrame.
type Game struct {
	Round     int // 1-based
	MazeIndex int
	Maze      *world.Grid

	Player world.Position
	Goal   world.Position

	ElapsedSeconds int
	Complete       bool

	// TickAccum holds time not yet counted as a whole elapsed second
	TickAccum time.Duration

	// AdvancePending is set while a completed round waits to advance;
	// AdvanceIn is the time left before it does.
	AdvancePending bool
	AdvanceIn      time.Duration

	Messages []string

	QuitRequested bool
}

// NewGame creates a new game instance on round 1. The controller fills in the maze.
func NewGame() *Game {
	return &Game{
		Round:    1,
		Messages: make([]string, 0),
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// Snapshot is a read-only copy of the state that is safe to hand to another
// goroutine or encode onto the wire.
type Snapshot struct {
	Round          int            `json:"round"`
	MazeIndex      int            `json:"mazeIndex"`
	MazeName       string         `json:"mazeName"`
	Maze           [][]int        `json:"maze"`
	Player         world.Position `json:"player"`
	Goal           world.Position `json:"goal"`
	ElapsedSeconds int            `json:"elapsedSeconds"`
	Complete       bool           `json:"complete"`
	Messages       []string       `json:"messages"`
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Round:          g.Round,
		MazeIndex:      g.MazeIndex,
		Player:         g.Player,
		Goal:           g.Goal,
		ElapsedSeconds: g.ElapsedSeconds,
		Complete:       g.Complete,
		Messages:       append([]string(nil), g.Messages...),
	}
	if g.Maze != nil {
		s.MazeName = g.Maze.Name()
		s.Maze = g.Maze.Values()
	}
	return s
}
