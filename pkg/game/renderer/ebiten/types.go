// Package ebiten provides an Ebiten-based 2D graphical renderer for Maze Escape.
package ebiten

import (
	"image"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	log "github.com/sirupsen/logrus"

	engineinput "mazeescape/pkg/engine/input"
	"mazeescape/pkg/game/state"
)

// renderSnapshot holds a consistent copy of game state for drawing.
// The game loop writes it from its own goroutine; Draw reads it on Ebiten's.
type renderSnapshot struct {
	valid bool
	state.Snapshot
}

// frameLayout is where everything goes for a maze of a given size
type frameLayout struct {
	width, height  int
	titleY         int
	controlsY      int
	roundY         int
	timeY          int
	bannerY        int
	boardX, boardY int
	boardW, boardH int
	button         image.Rectangle
	messageY       int
}

// keyRepeatInfo tracks the repeat state for a key or button
type keyRepeatInfo struct {
	firstPressed int64 // Timestamp when first pressed (milliseconds)
	lastRepeat   int64 // Timestamp when last repeat event was sent (milliseconds)
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Pixel size of one maze cell
	tileSize int

	// Logical screen size for the current maze
	windowWidth  int
	windowHeight int

	// Font sources for text rendering
	sansFontSource     *text.GoTextFaceSource
	sansBoldFontSource *text.GoTextFaceSource

	// Cached font faces, keyed by size
	faces map[faceKey]*text.GoTextFace

	// Latest snapshot from RenderFrame
	snapshot      renderSnapshot
	snapshotMutex sync.RWMutex

	// Input channel for communication between Ebiten and game loop
	inputChan chan engineinput.Intent

	// Key repeat state tracking, keyed by binding code
	keyRepeatState      map[string]keyRepeatInfo
	keyRepeatStateMutex sync.Mutex

	// Restart button bounds from the last Draw; read by Update
	restartButton image.Rectangle
	restartHover  bool

	// Set by Close; the next Update ends the Ebiten loop
	closed atomic.Bool

	// Flag to track if we've logged window opening
	windowOpenedLogged bool

	log *log.Entry
}
