// Package server provides the HTTP server for the Kalari motion game.
// It exposes the renderer boundary: health, level info, restart, the MJPEG
// camera stream, and the WebSocket scene feed the browser compositor draws.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ayusman/kalari/internal/arena"
	"github.com/ayusman/kalari/internal/capture"
)

// Config holds the server configuration.
type Config struct {
	StaticDir string
	Session   *arena.Session
	Camera    capture.Camera
	// Restart is invoked by POST /api/restart to begin a new round.
	Restart func()
}

// Server represents the HTTP server for the Kalari application.
type Server struct {
	config Config
	mux    *http.ServeMux
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	if s.config.Session != nil {
		s.mux.HandleFunc("/api/level", s.handleLevel)
		s.mux.Handle("/api/scene", NewSceneHandler(s.config.Session))
	}

	if s.config.Restart != nil {
		s.mux.HandleFunc("/api/restart", s.handleRestart)
	}

	// Register camera stream endpoint if Camera is configured
	if s.config.Camera != nil {
		s.mux.Handle("/api/stream", NewStreamHandler(s.config.Camera))
	}

	// Serve static files if StaticDir is configured
	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(s.start)

	response := map[string]interface{}{
		"status": "ok",
		"phase":  string(s.currentPhase()),
		"uptime": uptime.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

func (s *Server) currentPhase() arena.Phase {
	if s.config.Session == nil {
		return arena.PhaseMenu
	}
	return s.config.Session.Phase()
}

// handleLevel handles GET requests to /api/level, returning the currently
// loaded level vocabulary.
func (s *Server) handleLevel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	level := s.config.Session.Level()
	if level == nil {
		http.Error(w, "No level loaded", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(level); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// handleRestart handles POST requests to /api/restart.
func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.config.Restart()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "restarting"})
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
