package gameplay

import (
	"context"
	"sync"
	"testing"
	"time"

	engineinput "mazeescape/pkg/engine/input"
	"mazeescape/pkg/engine/world"
	"mazeescape/pkg/game/state"
)

// fakeFrontend records every frame it is handed
type fakeFrontend struct {
	intents chan engineinput.Intent

	mu     sync.Mutex
	frames []state.Snapshot
}

func newFakeFrontend() *fakeFrontend {
	return &fakeFrontend{intents: make(chan engineinput.Intent, 16)}
}

func (f *fakeFrontend) RenderFrame(g *state.Game) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.frames = append(f.frames, g.Snapshot())
}

func (f *fakeFrontend) Intents() <-chan engineinput.Intent {
	return f.intents
}

func (f *fakeFrontend) lastFrame(t *testing.T) state.Snapshot {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.frames) == 0 {
		t.Fatal("no frames rendered")
	}
	return f.frames[len(f.frames)-1]
}

func runAsync(ctx context.Context, ctrl *Controller, f Frontend) <-chan error {
	done := make(chan error, 1)
	go func() { done <- Run(ctx, ctrl, f, 5*time.Millisecond) }()
	return done
}

func waitRun(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
		return nil
	}
}

func TestRun_AppliesIntentsUntilQuit(t *testing.T) {
	ctrl, _ := newTestController(t)
	f := newFakeFrontend()

	f.intents <- engineinput.Intent{Action: engineinput.ActionMoveSouth}
	f.intents <- engineinput.Intent{Action: engineinput.ActionMoveSouth}
	f.intents <- engineinput.Intent{Action: engineinput.ActionQuit}

	if err := waitRun(t, runAsync(context.Background(), ctrl, f)); err != nil {
		t.Fatalf("Run() = %v, want nil", err)
	}
	if got := f.lastFrame(t).Player; got != (world.Position{X: 1, Y: 3}) {
		t.Errorf("last frame Player = %v, want (1,3)", got)
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	ctrl, _ := newTestController(t)
	f := newFakeFrontend()
	ctx, cancel := context.WithCancel(context.Background())

	done := runAsync(ctx, ctrl, f)
	cancel()
	if err := waitRun(t, done); err != context.Canceled {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}
}

func TestRun_StopsWhenIntentsClose(t *testing.T) {
	ctrl, _ := newTestController(t)
	f := newFakeFrontend()
	close(f.intents)

	if err := waitRun(t, runAsync(context.Background(), ctrl, f)); err != nil {
		t.Errorf("Run() = %v, want nil", err)
	}
	if got := f.lastFrame(t).Round; got != 1 {
		t.Errorf("initial frame Round = %d, want 1", got)
	}
}
