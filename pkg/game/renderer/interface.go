// Package renderer defines the contract between the game loop and its
// presentation backends, plus the message markup they share.
package renderer

import (
	"mazeescape/pkg/engine/input"
	"mazeescape/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleTitle
	StyleSubtle
	StyleWall
	StyleOpen
	StylePlayer
	StyleGoal
	StyleRound
	StyleTime
	StyleBanner
	StyleAction
)

// Renderer defines the interface for game rendering backends.
// Implementations push player intents on the channel returned by Intents and
// draw whatever state the game loop hands to RenderFrame. They never mutate
// the game state themselves.
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, terminal mode)
	Init() error

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame: maze, markers, round,
	// time, completion banner and restart control
	RenderFrame(g *state.Game)

	// Intents delivers high-level input as it happens
	Intents() <-chan input.Intent

	// StyleText applies a style to text and returns the styled string
	// For TUI this applies ANSI colors, for GUI it may return the text unchanged
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string
}
