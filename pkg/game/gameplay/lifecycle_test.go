package gameplay

import (
	"strings"
	"testing"
	"time"

	engineinput "mazeescape/pkg/engine/input"
	"mazeescape/pkg/engine/world"
	"mazeescape/pkg/game/catalog"
)

func TestUpdate_CountsWholeSeconds(t *testing.T) {
	ctrl, _ := newTestController(t)

	ctrl.Update(400 * time.Millisecond)
	ctrl.Update(400 * time.Millisecond)
	if got := ctrl.Game().ElapsedSeconds; got != 0 {
		t.Errorf("after 0.8s: ElapsedSeconds = %d, want 0", got)
	}
	ctrl.Update(400 * time.Millisecond)
	if got := ctrl.Game().ElapsedSeconds; got != 1 {
		t.Errorf("after 1.2s: ElapsedSeconds = %d, want 1", got)
	}
	ctrl.Update(2 * time.Second)
	if got := ctrl.Game().ElapsedSeconds; got != 3 {
		t.Errorf("after 3.2s: ElapsedSeconds = %d, want 3", got)
	}
}

func TestUpdate_IgnoresNonPositive(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctrl.Update(0)
	ctrl.Update(-time.Hour)
	if g := ctrl.Game(); g.ElapsedSeconds != 0 || g.TickAccum != 0 {
		t.Errorf("ElapsedSeconds = %d TickAccum = %v, want 0", g.ElapsedSeconds, g.TickAccum)
	}
}

func TestUpdate_TimerStopsWhenComplete(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctrl.Update(5 * time.Second)
	walk(t, ctrl, firstMazeRoute)

	ctrl.Update(900 * time.Millisecond)
	if got := ctrl.Game().ElapsedSeconds; got != 5 {
		t.Errorf("ElapsedSeconds while complete = %d, want 5", got)
	}
	if !strings.Contains(ctrl.Game().Messages[len(ctrl.Game().Messages)-1], "5s") {
		t.Errorf("last message = %q, want the finishing time", ctrl.Game().Messages[len(ctrl.Game().Messages)-1])
	}
}

func TestUpdate_LeftoverTimeNotCarried(t *testing.T) {
	ctrl, _ := newTestController(t)
	walk(t, ctrl, firstMazeRoute)

	ctrl.Update(AdvanceDelay + 3*time.Second)
	g := ctrl.Game()
	if g.Round != 2 || g.ElapsedSeconds != 0 {
		t.Errorf("Round = %d ElapsedSeconds = %d, want round 2 at 0s", g.Round, g.ElapsedSeconds)
	}
}

func assertRestarted(t *testing.T, ctrl *Controller, c *catalog.Catalog) {
	t.Helper()
	g := ctrl.Game()
	if g.Round != 1 || g.MazeIndex != 0 || g.Maze != c.At(1) {
		t.Errorf("Round = %d MazeIndex = %d, want round 1 on the first maze", g.Round, g.MazeIndex)
	}
	if g.Player != catalog.Start {
		t.Errorf("Player = %v, want %v", g.Player, catalog.Start)
	}
	if want := catalog.GoalPosition(c.At(1)); g.Goal != want {
		t.Errorf("Goal = %v, want %v", g.Goal, want)
	}
	if g.ElapsedSeconds != 0 || g.Complete || g.AdvancePending {
		t.Errorf("ElapsedSeconds = %d Complete = %v AdvancePending = %v, want an active round at 0s",
			g.ElapsedSeconds, g.Complete, g.AdvancePending)
	}
}

func TestRestart_FromAnyState(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, ctrl *Controller)
	}{
		{"fresh", func(t *testing.T, ctrl *Controller) {}},
		{"mid round", func(t *testing.T, ctrl *Controller) {
			ctrl.Update(7 * time.Second)
			walk(t, ctrl, firstMazeRoute[:5])
		}},
		{"completing", func(t *testing.T, ctrl *Controller) {
			walk(t, ctrl, firstMazeRoute)
		}},
		{"later round", func(t *testing.T, ctrl *Controller) {
			ctrl.AdvanceRound()
			ctrl.AdvanceRound()
			ctrl.AdvanceRound()
			ctrl.Update(2 * time.Second)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, c := newTestController(t)
			tt.setup(t, ctrl)
			ctrl.Restart()
			assertRestarted(t, ctrl, c)

			// restarting twice changes nothing further
			ctrl.Restart()
			assertRestarted(t, ctrl, c)
		})
	}
}

// A restart inside the one-second window must not be followed by the old advancement.
func TestRestart_DropsPendingAdvance(t *testing.T) {
	ctrl, c := newTestController(t)
	walk(t, ctrl, firstMazeRoute)
	ctrl.Update(500 * time.Millisecond)

	ctrl.Restart()
	ctrl.Update(AdvanceDelay)
	ctrl.Update(AdvanceDelay)

	g := ctrl.Game()
	if g.Round != 1 || g.Maze != c.At(1) {
		t.Errorf("Round = %d, want 1 after the old advancement would have fired", g.Round)
	}
	if g.ElapsedSeconds != 2 {
		t.Errorf("ElapsedSeconds = %d, want 2 (the restarted round keeps counting)", g.ElapsedSeconds)
	}
}

func TestProcessIntent(t *testing.T) {
	ctrl, c := newTestController(t)

	ctrl.ProcessIntent(engineinput.Intent{Action: engineinput.ActionNone})
	if ctrl.Game().Player != catalog.Start {
		t.Errorf("ActionNone moved the player to %v", ctrl.Game().Player)
	}

	ctrl.ProcessIntent(engineinput.Intent{Action: engineinput.ActionMoveSouth})
	if want := (world.Position{X: 1, Y: 2}); ctrl.Game().Player != want {
		t.Errorf("after MoveSouth: Player = %v, want %v", ctrl.Game().Player, want)
	}

	ctrl.ProcessIntent(engineinput.Intent{Action: engineinput.ActionRestart})
	assertRestarted(t, ctrl, c)

	if ctrl.Game().QuitRequested {
		t.Fatal("QuitRequested set before quitting")
	}
	ctrl.ProcessIntent(engineinput.Intent{Action: engineinput.ActionQuit})
	if !ctrl.Game().QuitRequested {
		t.Error("ActionQuit did not set QuitRequested")
	}
}

func TestMessages_FormatTranslatedArguments(t *testing.T) {
	ctrl, _ := newTestController(t)
	if got := ctrl.Game().Messages; len(got) != 1 || got[0] != "ROUND{Round 1}: reach the GOAL{goal} in the bottom corner." {
		t.Fatalf("Messages = %q, want the round 1 start message", got)
	}

	ctrl.Update(3 * time.Second)
	walk(t, ctrl, firstMazeRoute)
	ctrl.Update(AdvanceDelay)

	want := []string{
		"ROUND{Round 1}: reach the GOAL{goal} in the bottom corner.",
		"ROUND{Round 1} cleared in TIME{3s}.",
		"ROUND{Round 2}: reach the GOAL{goal} in the bottom corner.",
	}
	got := ctrl.Game().Messages
	if len(got) != len(want) {
		t.Fatalf("Messages = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Messages[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
