package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"mazeescape/pkg/engine/world"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	snap := e.currentSnapshot()
	if !snap.valid || e.sansFontSource == nil || len(snap.Maze) == 0 {
		// Can't draw without valid snapshot or fonts
		return
	}

	l := computeLayout(len(snap.Maze), len(snap.Maze[0]), e.tileSize)
	e.restartButton = l.button

	e.drawCenteredText(screen, gotext.Get("TITLE"), l.titleY, colorText, e.getTitleFontFace())
	e.drawCenteredText(screen, gotext.Get("CONTROLS"), l.controlsY, colorText, e.getSansFontFace())
	e.drawCenteredText(screen, dynamicGet("ROUND", snap.Round), l.roundY, colorText, e.getSansFontFace())
	e.drawCenteredText(screen, dynamicGet("TIME", snap.ElapsedSeconds), l.timeY, colorText, e.getSansFontFace())

	if snap.Complete {
		e.drawCenteredText(screen, dynamicGet("ROUND_COMPLETE", snap.Round), l.bannerY, colorBanner, e.getBannerFontFace())
	}

	e.drawBoard(screen, &snap, l)
	e.drawRestartButton(screen, l)

	if n := len(snap.Messages); n > 0 {
		e.drawCenteredSegments(screen, parseMarkup(snap.Messages[n-1]), l.messageY, e.getSansFontFace())
	}
}

// drawBoard draws the bordered maze with the player and goal markers
func (e *EbitenRenderer) drawBoard(screen *ebiten.Image, snap *renderSnapshot, l frameLayout) {
	vector.DrawFilledRect(screen, float32(l.boardX), float32(l.boardY),
		float32(l.boardW), float32(l.boardH), colorBoardBorder, false)
	vector.DrawFilledRect(screen, float32(l.boardX+boardBorder), float32(l.boardY+boardBorder),
		float32(l.boardW-boardBorder*2), float32(l.boardH-boardBorder*2), colorBoard, false)

	for row, cells := range snap.Maze {
		for col, v := range cells {
			if world.Cell(v).IsOpen() {
				continue
			}
			x, y := l.cellOrigin(row, col, e.tileSize)
			e.drawWall(screen, x, y)
		}
	}

	// The goal goes on top so it stays visible when the player reaches it
	e.drawMarker(screen, l, snap.Player, colorPlayer)
	e.drawMarker(screen, l, snap.Goal, colorGoal)
}

// drawWall draws one wall tile with its thin outline
func (e *EbitenRenderer) drawWall(screen *ebiten.Image, x, y int) {
	vector.DrawFilledRect(screen, float32(x), float32(y),
		float32(e.tileSize), float32(e.tileSize), colorWallBorder, false)
	vector.DrawFilledRect(screen, float32(x+wallBorder), float32(y+wallBorder),
		float32(e.tileSize-wallBorder*2), float32(e.tileSize-wallBorder*2), colorWall, false)
}

// drawMarker draws a square centered in the cell at p
func (e *EbitenRenderer) drawMarker(screen *ebiten.Image, l frameLayout, p world.Position, col color.Color) {
	x, y := l.cellOrigin(p.Y, p.X, e.tileSize)
	offset := (e.tileSize - markerSize) / 2
	vector.DrawFilledRect(screen, float32(x+offset), float32(y+offset),
		float32(markerSize), float32(markerSize), col, false)
}

// drawRestartButton draws the restart control
func (e *EbitenRenderer) drawRestartButton(screen *ebiten.Image, l frameLayout) {
	b := l.button
	fill := colorButton
	if e.restartHover {
		fill = colorButtonHover
	}

	vector.DrawFilledRect(screen, float32(b.Min.X), float32(b.Min.Y),
		float32(b.Dx()), float32(b.Dy()), colorButtonBorder, false)
	vector.DrawFilledRect(screen, float32(b.Min.X+buttonBorder), float32(b.Min.Y+buttonBorder),
		float32(b.Dx()-buttonBorder*2), float32(b.Dy()-buttonBorder*2), fill, false)

	face := e.getSansFontFace()
	label := gotext.Get("RESTART")
	w := e.getTextWidthWithFace(label, face)
	x := b.Min.X + (b.Dx()-int(w))/2
	y := b.Min.Y + buttonBorder + buttonPadY
	e.drawText(screen, label, x, y, colorText, face)
}
