// Package live pushes validation updates to connected editor panels over
// WebSocket, so inline badges refresh as the watched document changes.
package live

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/stencil-design/stencil/pattern"
)

// Update is one message pushed to connected panels.
type Update struct {
	Type      string             `json:"type"`                // "report" or "error"
	Document  string             `json:"document,omitempty"`  // Source document path, when watching files
	Timestamp int64              `json:"timestamp"`           // Unix milliseconds
	Report    *pattern.Report    `json:"report,omitempty"`    // Present for "report" updates
	Error     string             `json:"error,omitempty"`     // Present for "error" updates
	Instances []pattern.Instance `json:"instances,omitempty"` // Detected instances, when available
}

// Hub fans validation updates out to WebSocket subscribers.
type Hub struct {
	logger     *zap.Logger
	broadcast  chan *Update
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	done       chan struct{}
	closeOnce  sync.Once

	mu          sync.RWMutex
	connections map[*websocket.Conn]bool

	upgrader websocket.Upgrader
}

// NewHub creates a hub and starts its connection loop.
func NewHub(logger *zap.Logger) *Hub {
	h := &Hub{
		logger:      logger,
		broadcast:   make(chan *Update, 64),
		register:    make(chan *websocket.Conn),
		unregister:  make(chan *websocket.Conn),
		done:        make(chan struct{}),
		connections: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				// Editor panels connect from the local machine only.
				return strings.HasPrefix(origin, "http://localhost") ||
					strings.HasPrefix(origin, "http://127.0.0.1") ||
					strings.HasPrefix(origin, "vscode-webview://")
			},
		},
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case <-h.done:
			h.mu.Lock()
			for conn := range h.connections {
				conn.Close()
			}
			h.connections = make(map[*websocket.Conn]bool)
			h.mu.Unlock()
			return

		case conn := <-h.register:
			h.mu.Lock()
			h.connections[conn] = true
			total := len(h.connections)
			h.mu.Unlock()
			h.logger.Info("live client connected", zap.Int("total", total))

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.connections[conn]; ok {
				delete(h.connections, conn)
				conn.Close()
			}
			total := len(h.connections)
			h.mu.Unlock()
			h.logger.Info("live client disconnected", zap.Int("total", total))

		case update := <-h.broadcast:
			h.sendToAll(update)
		}
	}
}

func (h *Hub) sendToAll(update *Update) {
	payload, err := json.Marshal(update)
	if err != nil {
		h.logger.Error("marshal live update", zap.Error(err))
		return
	}

	h.mu.RLock()
	var failed []*websocket.Conn
	for conn := range h.connections {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			failed = append(failed, conn)
		}
	}
	h.mu.RUnlock()

	for _, conn := range failed {
		select {
		case h.unregister <- conn:
		case <-h.done:
			return
		}
	}
}

// Publish queues an update for all connected clients. Drops the update when
// the queue is full rather than blocking a validation pass.
func (h *Hub) Publish(update *Update) {
	if update.Timestamp == 0 {
		update.Timestamp = time.Now().UnixMilli()
	}
	select {
	case h.broadcast <- update:
	default:
		h.logger.Warn("live update dropped, broadcast queue full")
	}
}

// PublishReport broadcasts a validation report for the given document path.
func (h *Hub) PublishReport(document string, report pattern.Report, instances []pattern.Instance) {
	h.Publish(&Update{
		Type:      "report",
		Document:  document,
		Report:    &report,
		Instances: instances,
	})
}

// PublishError broadcasts a watcher or load failure.
func (h *Hub) PublishError(document string, err error) {
	h.Publish(&Update{
		Type:     "error",
		Document: document,
		Error:    err.Error(),
	})
}

// Handler upgrades an HTTP request to a WebSocket subscription.
func (h *Hub) Handler(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", zap.Error(err))
		return
	}

	select {
	case h.register <- conn:
	case <-h.done:
		conn.Close()
		return
	}

	// Reader loop: the protocol is push-only, but reading detects closes.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				select {
				case h.unregister <- conn:
				case <-h.done:
				}
				return
			}
		}
	}()
}

// Close shuts the hub down and disconnects all clients.
func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}
