package ebiten

import (
	"image"

	"mazeescape/pkg/game/state"
)

// Maze size assumed before the first frame arrives
const (
	defaultRows = 10
	defaultCols = 10
)

// RenderFrame captures a snapshot of the game state for the next Draw call.
// It is called from the game loop goroutine.
func (e *EbitenRenderer) RenderFrame(g *state.Game) {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()

	if g == nil || g.Maze == nil {
		e.snapshot.valid = false
		return
	}

	e.snapshot = renderSnapshot{
		valid:    true,
		Snapshot: g.Snapshot(),
	}
}

// currentSnapshot returns a copy of the latest snapshot
func (e *EbitenRenderer) currentSnapshot() renderSnapshot {
	e.snapshotMutex.RLock()
	defer e.snapshotMutex.RUnlock()
	return e.snapshot
}

// defaultWindowSize is the window size for a maze of the default size
func defaultWindowSize() (int, int) {
	l := computeLayout(defaultRows, defaultCols, tileSize)
	return l.width, l.height
}

// computeLayout places the page elements top to bottom: title, controls,
// round, time, completion banner, board, restart button and the latest
// message. The banner row
// is reserved even when empty so the board never jumps.
func computeLayout(rows, cols, tile int) frameLayout {
	if rows <= 0 || cols <= 0 {
		rows, cols = defaultRows, defaultCols
	}

	var l frameLayout
	l.boardW = cols*tile + boardBorder*2
	l.boardH = rows*tile + boardBorder*2

	l.width = l.boardW + pageMargin*2
	if l.width < minPageWidth {
		l.width = minPageWidth
	}

	y := pageMargin
	l.titleY = y
	y += int(titleFontSize) + lineGap*2
	l.controlsY = y
	y += int(uiFontSize) + lineGap*2
	l.roundY = y
	y += int(uiFontSize) + lineGap
	l.timeY = y
	y += int(uiFontSize) + lineGap*2
	l.bannerY = y
	y += int(bannerSize) + lineGap*2

	l.boardX = (l.width - l.boardW) / 2
	l.boardY = y
	y += l.boardH + buttonGap

	buttonH := int(uiFontSize) + buttonPadY*2 + buttonBorder*2
	buttonW := buttonPadX*2 + buttonBorder*2 + int(uiFontSize)*5
	bx := (l.width - buttonW) / 2
	l.button = image.Rect(bx, y, bx+buttonW, y+buttonH)
	y += buttonH + lineGap*2
	l.messageY = y
	y += int(uiFontSize) + pageMargin

	l.height = y
	return l
}

// cellOrigin returns the top-left pixel of the cell at row, col
func (l frameLayout) cellOrigin(row, col, tile int) (int, int) {
	return l.boardX + boardBorder + col*tile, l.boardY + boardBorder + row*tile
}
