package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/amterp/swatch/internal/locale"
	"github.com/amterp/swatch/internal/log"
	"github.com/amterp/swatch/internal/model"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Remote hosts may be served from any origin
	},
}

// WebSocketHub manages picker sessions and broadcasts palette changes.
type WebSocketHub struct {
	mu       sync.RWMutex
	clients  map[*WebSocketClient]bool
	palettes PaletteSource
	defaults SessionOptions
}

// WebSocketClient is a connection and the session it drives.
type WebSocketClient struct {
	hub     *WebSocketHub
	conn    *websocket.Conn
	send    chan []byte
	session *Session
}

// WebSocketMessage is the JSON message sent to clients.
type WebSocketMessage struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// NewWebSocketHub creates a hub whose sessions read palettes from palettes
// and start from defaults.
func NewWebSocketHub(palettes PaletteSource, defaults SessionOptions) *WebSocketHub {
	return &WebSocketHub{
		clients:  make(map[*WebSocketClient]bool),
		palettes: palettes,
		defaults: defaults,
	}
}

// OnFileChange implements FileWatcherSubscriber.
func (h *WebSocketHub) OnFileChange(change FileChange) {
	h.broadcastMessage(WebSocketMessage{Type: ServerFileChange, Data: change})

	if change.Kind != FileChangeKindPalettes {
		return
	}

	views, err := h.palettes.List()
	if err != nil {
		log.Warn("failed to reload palettes", zap.Error(err))
		h.broadcastMessage(WebSocketMessage{
			Type: ServerError,
			Data: map[string]string{"message": err.Error()},
		})
		return
	}

	for _, client := range h.snapshot() {
		if s := client.session; s != nil {
			s.Dispatch(s.Reload)
		}
	}
	h.broadcastMessage(WebSocketMessage{Type: ServerPalettesChanged, Data: views})
}

func (h *WebSocketHub) broadcastMessage(msg WebSocketMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Error("failed to marshal message", zap.String("type", msg.Type), zap.Error(err))
		return
	}
	h.broadcast(data)
}

// broadcast sends a message to all connected clients.
func (h *WebSocketHub) broadcast(data []byte) {
	for _, client := range h.snapshot() {
		h.trySend(client, data)
	}
}

func (h *WebSocketHub) snapshot() []*WebSocketClient {
	h.mu.RLock()
	defer h.mu.RUnlock()
	clients := make([]*WebSocketClient, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	return clients
}

// trySend attempts to send data to a client, handling the case where
// the client's channel was closed between snapshot and send.
func (h *WebSocketHub) trySend(client *WebSocketClient, data []byte) {
	defer func() {
		// Channel was closed by removeClient; client already cleaned up.
		_ = recover()
	}()

	select {
	case client.send <- data:
	default:
		// Client buffer full, close it
		h.removeClient(client)
	}
}

func (h *WebSocketHub) addClient(client *WebSocketClient) {
	h.mu.Lock()
	h.clients[client] = true
	h.mu.Unlock()
}

func (h *WebSocketHub) removeClient(client *WebSocketClient) {
	h.mu.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
		if client.session != nil {
			client.session.Stop()
		}
	}
	h.mu.Unlock()
}

// sessionOptions reads per-connection overrides from the query string:
// type, color, label, rtl, locale, grid_input.
func (h *WebSocketHub) sessionOptions(q url.Values) SessionOptions {
	opts := h.defaults
	if t := q.Get("type"); t != "" {
		opts.Palette = model.PaletteType(t)
	}
	if c := q.Get("color"); c != "" {
		opts.Color = c
	}
	if l := q.Get("label"); l != "" {
		opts.Label = l
	}
	if tag := q.Get("locale"); tag != "" {
		opts.RTL = locale.IsRightToLeft(tag)
	}
	if rtl, err := strconv.ParseBool(q.Get("rtl")); err == nil {
		opts.RTL = rtl
	}
	if gi, err := strconv.ParseBool(q.Get("grid_input")); err == nil {
		opts.GridInput = gi
	}
	return opts
}

// ServeWS upgrades the request and starts a picker session.
func (h *WebSocketHub) ServeWS(w http.ResponseWriter, r *http.Request) {
	client := &WebSocketClient{
		hub:  h,
		send: make(chan []byte, 256),
	}

	session, err := NewSession(h.palettes, h.sessionOptions(r.URL.Query()), client.enqueue)
	if err != nil {
		Error(w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	client.conn = conn
	client.session = session

	h.addClient(client)
	log.Debug("session opened", zap.String("session", session.ID), zap.String("palette", string(session.palette)))

	go client.writePump()
	go session.Run()
	go client.readPump()

	session.Dispatch(session.Hello)
}

// enqueue marshals msg onto the client's send buffer.
func (c *WebSocketClient) enqueue(msg WebSocketMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Error("failed to marshal message", zap.String("type", msg.Type), zap.Error(err))
		return
	}
	c.hub.trySend(c, data)
}

// readPump decodes client messages and hands them to the session goroutine.
func (c *WebSocketClient) readPump() {
	defer func() {
		// Closing send signals writePump to exit; writePump closes the connection.
		c.hub.removeClient(c)
		log.Debug("session closed", zap.String("session", c.session.ID))
	}()

	c.conn.SetReadLimit(4096)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn("websocket read error", zap.Error(err))
			}
			break
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s := c.session
			s.Dispatch(func() { s.emitError("invalid message: " + err.Error()) })
			continue
		}
		s := c.session
		if !s.Dispatch(func() { s.Handle(msg) }) {
			break
		}
	}
}

// writePump writes messages to the WebSocket connection.
func (c *WebSocketClient) writePump() {
	ticker := time.NewTicker(30 * time.Second) // Ping interval
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				// Hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			// One frame per message so every frame is a complete JSON document.
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

			n := len(c.send)
			for i := 0; i < n; i++ {
				queuedMsg, ok := <-c.send
				if !ok {
					return
				}
				if err := c.conn.WriteMessage(websocket.TextMessage, queuedMsg); err != nil {
					return
				}
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *WebSocketHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
