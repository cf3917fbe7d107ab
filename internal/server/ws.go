package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/ayusman/kalari/internal/arena"
	"github.com/gorilla/websocket"
)

// SceneBroadcastInterval matches the simulation tick so every connected
// renderer sees each frame of the scene.
const SceneBroadcastInterval = 33 * time.Millisecond

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// SceneHandler broadcasts per-tick scene snapshots via WebSocket.
type SceneHandler struct {
	session *arena.Session
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex
}

// NewSceneHandler creates a new SceneHandler fed by the given session.
func NewSceneHandler(session *arena.Session) *SceneHandler {
	h := &SceneHandler{
		session: session,
		clients: make(map[*websocket.Conn]bool),
	}
	go h.broadcast()
	return h
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *SceneHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	// Keep connection alive by reading messages
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// broadcast sends scene snapshots to all connected clients.
func (h *SceneHandler) broadcast() {
	ticker := time.NewTicker(SceneBroadcastInterval)
	defer ticker.Stop()

	for range ticker.C {
		h.mu.RLock()
		if len(h.clients) == 0 {
			h.mu.RUnlock()
			continue
		}
		h.mu.RUnlock()

		snap := h.session.Snapshot()
		msg, err := json.Marshal(snap)
		if err != nil {
			continue
		}

		h.mu.RLock()
		for conn := range h.clients {
			conn.WriteMessage(websocket.TextMessage, msg)
		}
		h.mu.RUnlock()
	}
}
