package ebiten

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "mazeescape/pkg/engine/input"
)

// Update handles input (Ebiten interface). Game logic lives in the game
// loop; this only turns key and mouse state into intents.
func (e *EbitenRenderer) Update() error {
	if e.closed.Load() {
		return ebiten.Termination
	}

	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		e.log.Infof("Main window opened successfully (%dx%d)", w, h)
	}

	if intent := e.checkRestartButton(); intent.Action != engineinput.ActionNone {
		e.sendIntent(intent)
	} else if intent := e.checkInput(); intent.Action != engineinput.ActionNone {
		e.sendIntent(intent)
	}

	return nil
}

// sendIntent queues an intent without ever blocking the Ebiten goroutine
func (e *EbitenRenderer) sendIntent(intent engineinput.Intent) {
	select {
	case e.inputChan <- intent:
	default:
		// Channel full, drop input
	}
}

// shouldRepeatKey reports whether a held key should fire this frame:
// once on press, then after keyRepeatInitialDelay every keyRepeatInterval.
func (e *EbitenRenderer) shouldRepeatKey(isPressed func() bool, code string) bool {
	now := time.Now().UnixMilli()

	e.keyRepeatStateMutex.Lock()
	defer e.keyRepeatStateMutex.Unlock()

	state, exists := e.keyRepeatState[code]
	if !isPressed() {
		delete(e.keyRepeatState, code)
		return false
	}

	if !exists {
		e.keyRepeatState[code] = keyRepeatInfo{firstPressed: now, lastRepeat: now}
		return true
	}

	if now-state.firstPressed >= keyRepeatInitialDelay && now-state.lastRepeat >= keyRepeatInterval {
		state.lastRepeat = now
		e.keyRepeatState[code] = state
		return true
	}
	return false
}

// arrowKeys maps Ebiten keys to the binding codes the input layer knows
var arrowKeys = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
}

// keyboardIntent runs a key code through the input layers
func keyboardIntent(code string) engineinput.Intent {
	return engineinput.Resolve(engineinput.RawInput{
		Device:    engineinput.DeviceKeyboard,
		Code:      code,
		Timestamp: time.Now(),
	})
}

// checkInput checks the keyboard and returns the corresponding Intent
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	for _, k := range arrowKeys {
		key := k.key
		if e.shouldRepeatKey(func() bool { return ebiten.IsKeyPressed(key) }, k.code) {
			return keyboardIntent(k.code)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return keyboardIntent("r")
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return keyboardIntent("quit")
	}

	return engineinput.Intent{Action: engineinput.ActionNone}
}

// checkRestartButton handles hover and clicks on the restart button
func (e *EbitenRenderer) checkRestartButton() engineinput.Intent {
	// Draw and Update share the Ebiten goroutine, so no lock is needed here
	x, y := ebiten.CursorPosition()
	e.restartHover = image.Pt(x, y).In(e.restartButton)

	if e.restartHover && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return engineinput.Resolve(engineinput.RawInput{
			Device:    engineinput.DeviceMouse,
			Code:      "restart",
			Timestamp: time.Now(),
		})
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// Layout returns the logical screen size for the current maze (Ebiten
// interface). Ebiten scales it to fit the window.
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	snap := e.currentSnapshot()
	rows, cols := defaultRows, defaultCols
	if snap.valid && len(snap.Maze) > 0 {
		rows, cols = len(snap.Maze), len(snap.Maze[0])
	}
	l := computeLayout(rows, cols, e.tileSize)
	e.windowWidth, e.windowHeight = l.width, l.height
	return l.width, l.height
}
