// Package gameplay provides core game logic: the round lifecycle, player
// movement, the elapsed-time counter and the loop that feeds them.
package gameplay

import (
	"time"

	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"mazeescape/pkg/game/catalog"
	"mazeescape/pkg/game/state"
)

const (
	// TickInterval is how much play time one elapsed second represents
	TickInterval = time.Second

	// AdvanceDelay is how long a completed round stays on screen before the next one starts
	AdvanceDelay = time.Second
)

// Controller owns a game state record and is the only thing that changes it.
// It is not safe for concurrent use; Run serialises all access on one goroutine.
type Controller struct {
	catalog *catalog.Catalog
	game    *state.Game
	log     *log.Entry
}

// NewController creates a game on round 1 of the catalog.
// A nil logger uses the logrus standard logger.
func NewController(c *catalog.Catalog, logger *log.Entry) *Controller {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	ctrl := &Controller{
		catalog: c,
		game:    state.NewGame(),
		log:     logger,
	}
	ctrl.startRound(1)
	logMessage(ctrl.game, "ROUND_STARTED", 1)
	return ctrl
}

// Game returns the live state. Callers must treat it as read-only.
func (c *Controller) Game() *state.Game {
	return c.game
}

// startRound puts the state at the beginning of the given round in one step,
// so the maze, goal and player are never out of step with each other
func (c *Controller) startRound(round int) {
	g := c.game
	g.Round = round
	g.MazeIndex = c.catalog.Index(round)
	g.Maze = c.catalog.At(round)
	g.Player = catalog.Start
	g.Goal = catalog.GoalPosition(g.Maze)
	g.ElapsedSeconds = 0
	g.TickAccum = 0
	g.Complete = false
	g.AdvancePending = false
	g.AdvanceIn = 0
}

// AdvanceRound moves on to the next maze in the catalog
func (c *Controller) AdvanceRound() {
	finished := c.game.Round
	c.startRound(finished + 1)

	logMessage(c.game, "ROUND_STARTED", c.game.Round)
	c.log.WithFields(log.Fields{
		"round": c.game.Round,
		"maze":  c.game.Maze.Name(),
	}).Info("Round started")
}

// Restart returns to round 1 from any state. A round advancement that is
// still waiting is dropped.
func (c *Controller) Restart() {
	dropped := c.game.AdvancePending
	c.startRound(1)

	c.game.ClearMessages()
	logMessage(c.game, "RESTARTED")
	c.log.WithField("droppedAdvance", dropped).Info("Game restarted")
}

// Update feeds elapsed play time into the state. While a round is active the
// elapsed-seconds counter grows by one per TickInterval; once the round is
// complete the counter stops and the pending advancement counts down instead.
// Time left over when a round advances is not carried into the next round.
func (c *Controller) Update(dt time.Duration) {
	if dt <= 0 {
		return
	}
	g := c.game

	if g.AdvancePending {
		g.AdvanceIn -= dt
		if g.AdvanceIn <= 0 {
			c.AdvanceRound()
		}
		return
	}

	if g.Complete {
		return
	}

	g.TickAccum += dt
	for g.TickAccum >= TickInterval {
		g.TickAccum -= TickInterval
		g.ElapsedSeconds++
	}
}

// dynamicGet is used for translation lookups whose arguments fill a
// translated format. A function variable keeps go vet from reading the key
// itself as the format string.
var dynamicGet = gotext.Get

// logMessage adds a translated message to the game's message log
func logMessage(g *state.Game, key string, a ...any) {
	g.AddMessage(dynamicGet(key, a...))
}
