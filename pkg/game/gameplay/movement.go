package gameplay

import (
	log "github.com/sirupsen/logrus"

	"mazeescape/pkg/engine/world"
)

// CanEnter checks if the player can stand on the given position.
// Positions outside the maze read as walls.
func (c *Controller) CanEnter(p world.Position) bool {
	return c.game.Maze != nil && c.game.Maze.IsOpen(p)
}

// Move tries to step the player one cell in dir and reports whether the
// player moved. Input is ignored while the round is complete. Arriving on
// the goal completes the round and schedules the advancement.
func (c *Controller) Move(dir world.Direction) bool {
	g := c.game
	if g.Complete || !dir.IsValid() {
		return false
	}

	moved := false
	if next := g.Player.Step(dir); c.CanEnter(next) {
		g.Player = next
		moved = true
	}

	if g.Player == g.Goal {
		c.completeRound()
	}
	return moved
}

// completeRound freezes the timer and arms the advancement countdown
func (c *Controller) completeRound() {
	g := c.game
	g.Complete = true
	g.TickAccum = 0
	g.AdvancePending = true
	g.AdvanceIn = AdvanceDelay

	logMessage(g, "ROUND_FINISHED", g.Round, g.ElapsedSeconds)
	c.log.WithFields(log.Fields{
		"round":   g.Round,
		"maze":    g.Maze.Name(),
		"seconds": g.ElapsedSeconds,
	}).Info("Round complete")
}
