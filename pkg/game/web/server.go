// Package web serves Maze Escape to browsers. Every websocket connection
// plays its own independent game; sessions share only the maze catalog.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"mazeescape/pkg/game/catalog"
)

// Routes
const (
	URIIndex  = "/"
	URIPlay   = "/play"
	URIHealth = "/healthz"
)

const shutdownTimeout = 5 * time.Second

//go:embed static/index.html
var static embed.FS

// Server routes HTTP requests and runs one game session per websocket
type Server struct {
	router   *way.Router
	upgrader *websocket.Upgrader
	catalog  *catalog.Catalog
	frame    time.Duration
	sessions atomic.Int64
	log      *log.Entry
}

// NewServer creates a server playing mazes from c. frame is the game loop
// tick for each session. A nil logger uses the standard logger.
func NewServer(c *catalog.Catalog, frame time.Duration, logger *log.Entry) *Server {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	s := &Server{
		upgrader: &websocket.Upgrader{},
		catalog:  c,
		frame:    frame,
		log:      logger.WithField("component", "web"),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", URIIndex, s.handleIndex)
	s.router.HandleFunc("GET", URIPlay, s.handlePlay)
	s.router.HandleFunc("GET", URIHealth, s.handleHealth)
}

// ServeHTTP makes Server an http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx ends. Cancelling ctx also ends
// every running session.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.WithError(err).Warn("Shutdown did not complete")
		}
	}()

	s.log.Infof("Listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := static.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":   "ok",
		"mazes":    s.catalog.Len(),
		"sessions": s.sessions.Load(),
	})
}

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response
		s.log.WithError(err).Warn("Websocket upgrade failed")
		return
	}
	defer conn.Close()

	s.sessions.Add(1)
	defer s.sessions.Add(-1)

	s.runSession(r.Context(), conn)
}
