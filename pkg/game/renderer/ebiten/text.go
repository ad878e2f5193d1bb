package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"

	"mazeescape/pkg/game/renderer"
)

// dynamicGet is used for translation lookups with arguments.
// A function variable keeps go vet from treating keys as format strings.
var dynamicGet = gotext.Get

// styleColors maps markup styles to colors
var styleColors = map[renderer.TextStyle]color.Color{
	renderer.StyleNormal: colorText,
	renderer.StyleTitle:  colorText,
	renderer.StyleSubtle: colorSubtle,
	renderer.StylePlayer: colorPlayer,
	renderer.StyleGoal:   colorGoal,
	renderer.StyleRound:  colorBanner,
	renderer.StyleTime:   colorBanner,
	renderer.StyleBanner: colorBanner,
	renderer.StyleAction: colorText,
}

// textSegment represents a segment of text with a specific color
type textSegment struct {
	text  string
	color color.Color
}

// parseMarkup turns a marked-up message into colored segments
func parseMarkup(msg string) []textSegment {
	var segments []textSegment
	for _, seg := range renderer.ParseMarkup(msg) {
		col, ok := styleColors[seg.Style]
		if !ok {
			col = colorText
		}
		segments = append(segments, textSegment{text: seg.Text, color: col})
	}
	return segments
}

// drawText draws str with its top-left corner at x, y
func (e *EbitenRenderer) drawText(screen *ebiten.Image, str string, x, y int, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, face, op)
}

// drawCenteredText draws str centered horizontally on the screen
func (e *EbitenRenderer) drawCenteredText(screen *ebiten.Image, str string, y int, col color.Color, face *text.GoTextFace) {
	w := e.getTextWidthWithFace(str, face)
	x := (screen.Bounds().Dx() - int(w)) / 2
	e.drawText(screen, str, x, y, col, face)
}

// drawCenteredSegments draws colored segments as one centered line
func (e *EbitenRenderer) drawCenteredSegments(screen *ebiten.Image, segments []textSegment, y int, face *text.GoTextFace) {
	total := 0.0
	for _, seg := range segments {
		total += e.getTextWidthWithFace(seg.text, face)
	}
	x := float64(screen.Bounds().Dx()-int(total)) / 2
	for _, seg := range segments {
		e.drawText(screen, seg.text, int(x), y, seg.color, face)
		x += e.getTextWidthWithFace(seg.text, face)
	}
}

// getTextWidthWithFace returns the width of str drawn in face
func (e *EbitenRenderer) getTextWidthWithFace(str string, face *text.GoTextFace) float64 {
	w, _ := text.Measure(str, face, 0)
	return w
}
