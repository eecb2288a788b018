package notification

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/fkhayef/partymatch/internal/group"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 4096
)

// Hub delivers push events to the WebSocket connections of each profile.
// A profile may hold several connections; each gets every event.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*client]struct{}

	sendBuffer   int
	pingInterval time.Duration
	logger       *slog.Logger
}

type client struct {
	profileID string
	conn      *websocket.Conn
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

// NewHub creates a hub. sendBuffer bounds the frames queued per connection.
func NewHub(logger *slog.Logger, sendBuffer int, pingInterval time.Duration) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		clients:      make(map[string]map[*client]struct{}),
		sendBuffer:   sendBuffer,
		pingInterval: pingInterval,
		logger:       logger.With("module", "socket"),
	}
}

// Send encodes evt and queues it for profileID. It never blocks.
func (h *Hub) Send(profileID string, evt group.Event) {
	frame, err := group.EncodeEvent(evt)
	if err != nil {
		h.logger.Error("Failed to encode event", "type", evt.Type(), "error", err)
		return
	}
	if !h.Deliver(profileID, frame) {
		h.logger.Debug("Event dropped", "type", evt.Type(), "profile", profileID)
	}
}

// Deliver queues an encoded frame on every connection of profileID and
// reports whether at least one connection accepted it.
func (h *Hub) Deliver(profileID string, frame []byte) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := false
	for c := range h.clients[profileID] {
		select {
		case c.send <- frame:
			delivered = true
		default:
			h.logger.Warn("Send queue full, dropping frame", "profile", profileID)
		}
	}
	return delivered
}

// Connected returns the number of open connections for profileID
func (h *Hub) Connected(profileID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[profileID])
}

// Serve registers conn for profileID and pumps it until the peer goes away.
// It blocks for the lifetime of the connection.
func (h *Hub) Serve(profileID string, conn *websocket.Conn) {
	c := &client{
		profileID: profileID,
		conn:      conn,
		send:      make(chan []byte, h.sendBuffer),
		done:      make(chan struct{}),
	}
	h.register(c)
	defer h.unregister(c)

	go h.writePump(c)
	h.readPump(c)
}

// Close disconnects every client
func (h *Hub) Close() {
	h.mu.Lock()
	var all []*client
	for _, set := range h.clients {
		for c := range set {
			all = append(all, c)
		}
	}
	h.mu.Unlock()

	for _, c := range all {
		c.stop()
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.clients[c.profileID]
	if !ok {
		set = make(map[*client]struct{})
		h.clients[c.profileID] = set
	}
	set[c] = struct{}{}

	h.logger.Info("Client connected", "profile", c.profileID, "connections", len(set))
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if set, ok := h.clients[c.profileID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.profileID)
		}
	}
	h.mu.Unlock()

	c.stop()
	h.logger.Info("Client disconnected", "profile", c.profileID)
}

func (c *client) stop() {
	c.closeOnce.Do(func() { close(c.done) })
}

// readPump discards client frames; it exists to observe pongs and closure
func (h *Hub) readPump(c *client) {
	pongWait := 2 * h.pingInterval

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Debug("WebSocket closed", "profile", c.profileID, "error", err)
			}
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(h.pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case frame := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				h.logger.Debug("Write failed", "profile", c.profileID, "error", err)
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			c.conn.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait),
			)
			return
		}
	}
}
