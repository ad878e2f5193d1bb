// Package tui renders Maze Escape as coloured text in a raw-mode terminal.
package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"mazeescape/pkg/engine/input"
	"mazeescape/pkg/engine/terminal"
	"mazeescape/pkg/engine/world"
	"mazeescape/pkg/game/renderer"
	"mazeescape/pkg/game/state"
)

// Cell glyphs. Every cell is two columns wide so the board looks square.
const (
	IconWall   = "██"
	IconOpen   = "  "
	IconPlayer = "██"
	IconGoal   = "██"
)

// dynamicGet is used for runtime translation key lookups with arguments.
// A function variable keeps go vet from treating keys as format strings.
var dynamicGet = gotext.Get

// ANSI control sequences
const (
	seqClear      = "\x1b[H\x1b[2J"
	seqHideCursor = "\x1b[?25l"
	seqShowCursor = "\x1b[?25h"
)

var _ renderer.Renderer = (*TUIRenderer)(nil)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	in  *os.File
	out io.Writer

	colorTitle  color.Style
	colorSubtle color.Style
	colorWall   color.Style
	colorOpen   color.Style
	colorPlayer color.Style
	colorGoal   color.Style
	colorRound  color.Style
	colorTime   color.Style
	colorBanner color.Style
	colorAction color.Style

	intents chan input.Intent
	cancel  context.CancelFunc
	restore func()

	// lastFrame is skipped when unchanged so idle ticks do not flicker
	lastFrame string
	mu        sync.Mutex

	log *log.Entry
}

// New creates a new TUI renderer reading keys from in and drawing to out.
// A nil logger uses the standard logger.
func New(in *os.File, out io.Writer, logger *log.Entry) *TUIRenderer {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	return &TUIRenderer{
		in:      in,
		out:     out,
		intents: make(chan input.Intent, 16),
		log:     logger.WithField("renderer", "tui"),
	}
}

// Init sets up colours, puts the terminal in raw mode and starts reading keys
func (t *TUIRenderer) Init() error {
	t.initStyles()

	if t.in != nil && terminal.IsTerminal(t.in) {
		restore, err := input.EnterRawMode(t.in)
		if err != nil {
			return fmt.Errorf("enter raw mode: %w", err)
		}
		t.restore = restore
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	if t.in != nil {
		go t.readKeys(ctx)
	}

	fmt.Fprint(t.out, seqHideCursor)
	return nil
}

// initStyles sets the colour for every text style
func (t *TUIRenderer) initStyles() {
	t.colorTitle = color.Style{color.FgWhite, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray}
	t.colorWall = color.Style{color.FgGray}
	t.colorOpen = color.Style{color.BgBlack}
	t.colorPlayer = color.Style{color.FgBlue, color.OpBold}
	t.colorGoal = color.Style{color.FgYellow, color.OpBold}
	t.colorRound = color.Style{color.FgCyan, color.OpBold}
	t.colorTime = color.Style{color.FgCyan}
	t.colorBanner = color.Style{color.FgYellow, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta, color.OpBold}
}

// readKeys decodes terminal input into intents until the input ends or
// Close is called, then closes the intent channel.
func (t *TUIRenderer) readKeys(ctx context.Context) {
	raw := make(chan input.RawInput)
	go func() {
		defer close(raw)
		if err := input.DecodeKeys(ctx, t.in, raw); err != nil && ctx.Err() == nil {
			t.log.WithError(err).Warn("Reading keys failed")
		}
	}()

	defer close(t.intents)
	for ev := range raw {
		intent := input.Resolve(ev)
		if intent.Action == input.ActionNone {
			continue
		}
		select {
		case t.intents <- intent:
		case <-ctx.Done():
			return
		}
	}
}

// Intents returns the channel decoded key presses arrive on
func (t *TUIRenderer) Intents() <-chan input.Intent {
	return t.intents
}

// Close stops reading keys and restores the terminal
func (t *TUIRenderer) Close() {
	if t.cancel != nil {
		t.cancel()
	}
	fmt.Fprint(t.out, seqShowCursor)
	if t.restore != nil {
		t.restore()
		t.restore = nil
	}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastFrame = ""
	fmt.Fprint(t.out, seqClear)
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleTitle:
		return t.colorTitle.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleOpen:
		return t.colorOpen.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleGoal:
		return t.colorGoal.Sprint(text)
	case renderer.StyleRound:
		return t.colorRound.Sprint(text)
	case renderer.StyleTime:
		return t.colorTime.Sprint(text)
	case renderer.StyleBanner:
		return t.colorBanner.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	default:
		return text
	}
}

// FormatText translates msg, fills in args and applies its markup
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	if len(args) > 0 {
		msg = dynamicGet(msg, args...)
	}
	return renderer.Render(msg, t.StyleText)
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	width, _ := terminal.GetSize()
	frame := t.frame(g, width)

	t.mu.Lock()
	defer t.mu.Unlock()
	if frame == t.lastFrame {
		return
	}
	t.lastFrame = frame
	// Raw mode needs explicit carriage returns
	fmt.Fprint(t.out, seqClear+strings.ReplaceAll(frame, "\n", "\r\n"))
}

// frame lays out one screen: heading, controls, round and time, the
// completion banner, the board, the restart hint and the message log.
func (t *TUIRenderer) frame(g *state.Game, width int) string {
	if g == nil || g.Maze == nil {
		return ""
	}

	var b strings.Builder
	center := func(s string) {
		pad := terminal.LeftPad(width, len([]rune(color.ClearCode(s))))
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(s)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	center(t.colorTitle.Sprint(gotext.Get("TITLE")))
	center(t.colorSubtle.Sprint(gotext.Get("CONTROLS_TERMINAL")))
	b.WriteString("\n")
	center(t.colorRound.Sprint(dynamicGet("ROUND", g.Round)))
	center(t.colorTime.Sprint(dynamicGet("TIME", g.ElapsedSeconds)))
	b.WriteString("\n")

	if g.Complete {
		center(t.colorBanner.Sprint(dynamicGet("ROUND_COMPLETE", g.Round)))
	} else {
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for row := 0; row < g.Maze.Rows(); row++ {
		var line strings.Builder
		for col := 0; col < g.Maze.Cols(); col++ {
			line.WriteString(t.renderCell(g, world.Position{X: col, Y: row}))
		}
		center(line.String())
	}

	b.WriteString("\n")
	center(t.FormatText("[ACTION{R}] GT{RESTART}"))
	t.writeMessages(&b, g, width)

	return b.String()
}

// renderCell returns the glyph for one board cell. The goal wins over the
// player so it stays visible on the winning move.
func (t *TUIRenderer) renderCell(g *state.Game, p world.Position) string {
	switch {
	case p == g.Goal:
		return t.colorGoal.Sprint(IconGoal)
	case p == g.Player:
		return t.colorPlayer.Sprint(IconPlayer)
	case g.Maze.IsOpen(p):
		return t.colorOpen.Sprint(IconOpen)
	default:
		return t.colorWall.Sprint(IconWall)
	}
}

// writeMessages renders the messages log pane
func (t *TUIRenderer) writeMessages(b *strings.Builder, g *state.Game, width int) {
	label := " " + gotext.Get("MESSAGES") + " "
	labelLen := len([]rune(label))
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - labelLen
	if rightLen < 1 {
		rightLen = 1
	}

	b.WriteString("\n")
	b.WriteString(t.colorSubtle.Sprint(strings.Repeat("─", sideLen) + label + strings.Repeat("─", rightLen)))
	b.WriteString("\n")
	for _, msg := range g.Messages {
		b.WriteString("  " + t.FormatText(msg) + "\n")
	}
}
