package web

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"mazeescape/pkg/engine/input"
	"mazeescape/pkg/game/gameplay"
	"mazeescape/pkg/game/state"
)

const writeWait = 5 * time.Second

// Client message types
const (
	MessageKey     = "key"
	MessageRestart = "restart"
)

// ClientMessage is what the page sends: a key press by its DOM key name,
// or a click on the restart button.
type ClientMessage struct {
	Type string `json:"type"`
	Key  string `json:"key,omitempty"`
}

// session is the gameplay frontend for one websocket connection
type session struct {
	conn    *websocket.Conn
	intents chan input.Intent
	cancel  context.CancelFunc

	// lastFrame is the last frame sent; unchanged frames are not resent
	lastFrame []byte

	log *log.Entry
}

// runSession plays one game over conn until the client goes away or ctx ends
func (s *Server) runSession(ctx context.Context, conn *websocket.Conn) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger := s.log.WithField("session", uuid.NewString())
	sess := &session{
		conn:    conn,
		intents: make(chan input.Intent, 16),
		cancel:  cancel,
		log:     logger,
	}
	go sess.readLoop(ctx)

	logger.Info("Session started")
	ctrl := gameplay.NewController(s.catalog, logger)
	if err := gameplay.Run(ctx, ctrl, sess, s.frame); err != nil && ctx.Err() == nil {
		logger.WithError(err).Warn("Session ended with error")
	}
	logger.WithField("round", ctrl.Game().Round).Info("Session ended")
}

// Intents returns the intents decoded from client messages
func (ss *session) Intents() <-chan input.Intent {
	return ss.intents
}

// RenderFrame sends the state to the client as JSON. A failed write ends
// the session.
func (ss *session) RenderFrame(g *state.Game) {
	data, err := json.Marshal(g.Snapshot())
	if err != nil {
		ss.log.WithError(err).Error("Encoding frame failed")
		return
	}
	if bytes.Equal(data, ss.lastFrame) {
		return
	}

	_ = ss.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := ss.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		ss.log.WithError(err).Warn("Writing frame failed")
		ss.cancel()
		return
	}
	ss.lastFrame = data
}

// readLoop turns client messages into intents. It closes the intent
// channel when the connection fails, which ends the game loop.
func (ss *session) readLoop(ctx context.Context) {
	defer close(ss.intents)
	for {
		var msg ClientMessage
		if err := ss.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) && ctx.Err() == nil {
				ss.log.WithError(err).Warn("Reading message failed")
			}
			return
		}

		intent := clientIntent(msg)
		if intent.Action == input.ActionNone {
			ss.log.WithField("message", msg).Debug("Ignoring message")
			continue
		}

		select {
		case ss.intents <- intent:
		case <-ctx.Done():
			return
		}
	}
}

// clientIntent maps a client message to an intent. Key messages only move;
// restart has its own message type and browsers quit by closing the page.
func clientIntent(msg ClientMessage) input.Intent {
	var code string
	switch msg.Type {
	case MessageKey:
		code = input.BrowserCode(msg.Key)
	case MessageRestart:
		code = "restart"
	}
	if code == "" {
		return input.Intent{Action: input.ActionNone}
	}

	return input.Resolve(input.RawInput{
		Device:    input.DeviceBrowser,
		Code:      code,
		Timestamp: time.Now(),
	})
}
