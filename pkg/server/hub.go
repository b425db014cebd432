package server

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Event is a server-push notification telling clients to refetch their
// design after it changed underneath them (AI edits, imports, undo).
type Event struct {
	Type      string `json:"type"`
	SessionID string `json:"sessionId,omitempty"`
}

// EventDesignChanged signals that a session's design was replaced or
// mutated server-side.
const EventDesignChanged = "design-changed"

const (
	// eventBuffer is how many pending events a client may fall behind
	// before it is dropped.
	eventBuffer = 16
	// writeWait bounds a single WebSocket write.
	writeWait = 10 * time.Second
)

// Hub fans events out to all connected WebSocket clients. Each client gets
// a buffered send queue drained by its own writer goroutine, so a stalled
// peer never blocks Broadcast or the HTTP handlers calling it; clients that
// cannot keep up are dropped.
type Hub struct {
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[*websocket.Conn]chan Event
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		conns: make(map[*websocket.Conn]chan Event),
	}
}

func (h *Hub) handleEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	send := make(chan Event, eventBuffer)
	h.mu.Lock()
	h.conns[conn] = send
	h.mu.Unlock()

	// Writer: owns all writes to the connection. It exits when remove
	// closes the send channel or when the peer stops reading.
	go func() {
		for ev := range send {
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(ev); err != nil {
				slog.Debug("dropping event client", "error", err)
				h.remove(conn)
				return
			}
		}
	}()

	// Drain inbound frames until the peer goes away; the feed is one-way.
	go func() {
		defer h.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Broadcast queues an event for every connected client. Clients whose queue
// is full are disconnected rather than backing up the broadcaster.
func (h *Hub) Broadcast(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn, send := range h.conns {
		select {
		case send <- ev:
		default:
			slog.Debug("dropping slow event client")
			h.removeLocked(conn)
		}
	}
}

// ClientCount returns the number of connected event clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(conn)
}

// removeLocked closes the connection and its send queue exactly once; both
// the reader and writer goroutines funnel through it.
func (h *Hub) removeLocked(conn *websocket.Conn) {
	if send, ok := h.conns[conn]; ok {
		delete(h.conns, conn)
		conn.Close()
		close(send)
	}
}
