package gameplay

import (
	"context"
	"time"

	"mazeescape/pkg/engine/input"
	"mazeescape/pkg/game/state"
)

// DefaultFrameInterval is how often the loop feeds time to the controller
// and redraws when no input arrives
const DefaultFrameInterval = 50 * time.Millisecond

// Frontend is the part of a renderer the loop needs
type Frontend interface {
	RenderFrame(g *state.Game)
	Intents() <-chan input.Intent
}

// Run is the game loop. It owns ctrl for its whole lifetime: intents from the
// frontend and ticks from a ticker are applied one at a time on this
// goroutine, and every change is handed back to the frontend.
//
// Run returns nil when the player quits or the frontend closes its intent
// channel, and ctx.Err() when ctx ends.
func Run(ctx context.Context, ctrl *Controller, f Frontend, frame time.Duration) error {
	if frame <= 0 {
		frame = DefaultFrameInterval
	}
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	intents := f.Intents()
	last := time.Now()
	f.RenderFrame(ctrl.Game())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case intent, ok := <-intents:
			if !ok {
				return nil
			}
			ctrl.ProcessIntent(intent)

		case now := <-ticker.C:
			ctrl.Update(now.Sub(last))
			last = now
		}

		f.RenderFrame(ctrl.Game())

		if ctrl.Game().QuitRequested {
			return nil
		}
	}
}
