// This file is part of Ticcore.
//
// Ticcore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Ticcore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Ticcore.  If not, see <https://www.gnu.org/licenses/>.

package netsession

import (
	"context"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/jetsetilly/ticcore/logger"
)

// the number of messages that can be waiting to be broadcast. messages are
// dropped if the hub falls behind
const broadcastQueue = 64

// Hub maintains the set of connected clients and broadcasts messages to them.
type Hub struct {
	crit    sync.Mutex
	clients map[*Client]bool

	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client

	// closed when Run() returns
	done chan struct{}

	upgrader websocket.Upgrader
}

// NewHub is the preferred method of initialisation for the Hub type.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, broadcastQueue),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},
	}
}

// Run the hub until the context is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.crit.Lock()
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			h.crit.Unlock()
			logger.Log(logger.Allow, "netsession", "hub stopped")
			return

		case c := <-h.register:
			h.crit.Lock()
			h.clients[c] = true
			h.crit.Unlock()
			logger.Logf(logger.Allow, "netsession", "spectator connected (%s)", c.conn.RemoteAddr())

		case c := <-h.unregister:
			h.crit.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				logger.Logf(logger.Allow, "netsession", "spectator disconnected (%s)", c.conn.RemoteAddr())
			}
			h.crit.Unlock()

		case msg := <-h.broadcast:
			h.crit.Lock()
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					delete(h.clients, c)
					close(c.send)
					logger.Logf(logger.Allow, "netsession", "spectator too slow (%s)", c.conn.RemoteAddr())
				}
			}
			h.crit.Unlock()
		}
	}
}

// Broadcast a message to every client. Returns false if the message was
// dropped. Never blocks.
func (h *Hub) Broadcast(msg []byte) bool {
	select {
	case h.broadcast <- msg:
		return true
	default:
		return false
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.crit.Lock()
	defer h.crit.Unlock()
	return len(h.clients)
}

// ServeHTTP implements the http.Handler interface. The request is upgraded to
// a websocket connection and a new client is registered with the hub.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Logf(logger.Allow, "netsession", "upgrade: %v", err)
		return
	}

	c := newClient(h, conn)
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}
