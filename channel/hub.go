// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package channel

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/gorilla/websocket"
)

// Event is the wire format for every broadcast message.
type Event struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// Publisher is the one method handlers need from the hub. Fire-and-forget:
// no acknowledgment, no retry, no history for late subscribers.
type Publisher interface {
	Publish(event string, payload any)
}

// Hub fans every published event out to all connected websocket clients.
// The client set is owned by the Run goroutine; register, unregister, and
// broadcast are the only ways to touch it, so Publish is safe from any
// goroutine (HTTP handlers and the scheduler alike).
type Hub struct {
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	clients    map[*client]struct{}
	count      atomic.Int64

	upgrader websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, 16),
		clients:    make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The REST API is open to any origin; the socket matches.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Run owns the subscriber set until ctx is cancelled. Publish and ServeWS
// must not be called before Run is started.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.count.Store(int64(len(h.clients)))
		case c := <-h.unregister:
			h.drop(c)
		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// A stalled client must not block the publish path.
					h.drop(c)
				}
			}
		case <-ctx.Done():
			for c := range h.clients {
				h.drop(c)
			}
			return
		}
	}
}

func (h *Hub) drop(c *client) {
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.count.Store(int64(len(h.clients)))
}

// Publish marshals the event and queues it for every current subscriber.
// Events published from a single goroutine reach each subscriber in
// publish order.
func (h *Hub) Publish(event string, payload any) {
	raw, err := json.Marshal(Event{Event: event, Payload: payload})
	if err != nil {
		slog.Error("failed to encode broadcast event", "event", event, "error", err)
		return
	}
	h.broadcast <- raw
}

// ClientCount reports the number of connected subscribers.
func (h *Hub) ClientCount() int {
	return int(h.count.Load())
}

// ServeWS handles GET /ws by upgrading the connection and subscribing it.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("failed to upgrade websocket", "error", err)
		return
	}

	c := &client{hub: h, conn: conn, send: make(chan []byte, 32)}
	h.register <- c

	go c.writePump()
	go c.readPump()
}
