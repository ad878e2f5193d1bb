package gameplay

import (
	engineinput "mazeescape/pkg/engine/input"
	"mazeescape/pkg/engine/world"
)

// intentDirections maps movement actions to directions
var intentDirections = map[engineinput.Action]world.Direction{
	engineinput.ActionMoveNorth: world.North,
	engineinput.ActionMoveSouth: world.South,
	engineinput.ActionMoveWest:  world.West,
	engineinput.ActionMoveEast:  world.East,
}

// ProcessIntent handles a high-level input intent from the tiered input system.
func (c *Controller) ProcessIntent(intent engineinput.Intent) {
	switch intent.Action {
	case engineinput.ActionNone:
		return

	case engineinput.ActionRestart:
		c.Restart()
		return

	case engineinput.ActionQuit:
		c.game.QuitRequested = true
		return
	}

	if dir, ok := intentDirections[intent.Action]; ok {
		c.Move(dir)
	}
}
