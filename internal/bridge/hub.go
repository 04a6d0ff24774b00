// Package bridge publishes board changes to the local network. A
// websocket hub fans committed events out to any listener (a second
// screen, a logger, another board), and mDNS makes the hub
// discoverable without typing addresses.
package bridge

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans one event stream out to every connected websocket client.
// It is write-only: incoming frames are drained solely to detect a
// closed peer.
type Hub struct {
	upgrader websocket.Upgrader

	mu    sync.RWMutex
	conns map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Local-network tool, no origin policy to enforce.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		conns: make(map[*websocket.Conn]bool),
	}
}

// Handler upgrades incoming requests and registers the peer until it
// disconnects.
func (h *Hub) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("[bridge] upgrade from %s failed: %v", r.RemoteAddr, err)
			return
		}
		h.add(conn)
		go h.drain(conn)
	})
}

func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	h.conns[conn] = true
	h.mu.Unlock()
	log.Printf("[bridge] peer connected: %s", conn.RemoteAddr())
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
	conn.Close()
	log.Printf("[bridge] peer disconnected: %s", conn.RemoteAddr())
}

// drain reads and discards frames until the peer goes away.
func (h *Hub) drain(conn *websocket.Conn) {
	defer h.remove(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Broadcast sends v as one JSON message to every peer. A peer that
// cannot be written to is dropped on the spot.
func (h *Hub) Broadcast(v interface{}) {
	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.conns))
	for conn := range h.conns {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(v); err != nil {
			log.Printf("[bridge] dropping peer %s: %v", conn.RemoteAddr(), err)
			h.remove(conn)
		}
	}
}

// PeerCount reports the number of connected listeners.
func (h *Hub) PeerCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Close disconnects every peer.
func (h *Hub) Close() {
	h.mu.Lock()
	conns := h.conns
	h.conns = make(map[*websocket.Conn]bool)
	h.mu.Unlock()
	for conn := range conns {
		conn.Close()
	}
}
