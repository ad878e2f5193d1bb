package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	engineinput "mazeescape/pkg/engine/input"
	"mazeescape/pkg/game/renderer"
)

var _ renderer.Renderer = (*EbitenRenderer)(nil)

// Intents queued between two game loop reads; extra key repeats are dropped
const inputBuffer = 16

// New creates a new Ebiten renderer. A nil logger uses the standard logger.
func New(logger *log.Entry) *EbitenRenderer {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	w, h := defaultWindowSize()
	return &EbitenRenderer{
		tileSize:       tileSize,
		windowWidth:    w,
		windowHeight:   h,
		faces:          make(map[faceKey]*text.GoTextFace),
		inputChan:      make(chan engineinput.Intent, inputBuffer),
		keyRepeatState: make(map[string]keyRepeatInfo),
		log:            logger.WithField("renderer", "ebiten"),
	}
}

// Init loads fonts and sets up the window. It must be called before Run.
func (e *EbitenRenderer) Init() error {
	if err := e.loadFonts(); err != nil {
		return err
	}
	ebiten.SetWindowTitle(gotext.Get("TITLE"))
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return nil
}

// Clear forgets the last frame; the next Draw paints only the background
func (e *EbitenRenderer) Clear() {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()
	e.snapshot = renderSnapshot{}
}

// Intents returns the channel Update pushes player input on
func (e *EbitenRenderer) Intents() <-chan engineinput.Intent {
	return e.inputChan
}

// StyleText returns text unchanged; colors are applied while drawing
func (e *EbitenRenderer) StyleText(s string, style renderer.TextStyle) string {
	return s
}

// FormatText formats a message and strips its markup
func (e *EbitenRenderer) FormatText(msg string, args ...any) string {
	if len(args) > 0 {
		msg = dynamicGet(msg, args...)
	}
	return renderer.StripMarkup(msg)
}

// Close makes the next Update end the Ebiten loop, so Run returns
func (e *EbitenRenderer) Close() {
	e.closed.Store(true)
}

// Run starts the Ebiten game loop and blocks until the window closes.
// Ebiten needs the main goroutine, so the game loop runs elsewhere.
func (e *EbitenRenderer) Run() error {
	err := ebiten.RunGame(e)
	if err == ebiten.Termination {
		return nil
	}
	return err
}
