package stream

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
)

// handleUpgrade serves the /ws route. Requests that do not ask for an
// upgrade are rejected with 400; accepted connections are registered and
// handed to a per-connection read loop.
func (s *Server) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	if !headerContainsToken(r.Header, "Connection", "upgrade") {
		http.Error(w, "websocket upgrade required", http.StatusBadRequest)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	conn.SetReadLimit(s.config.MaxMessageSize)

	c := s.addClient(conn)
	go s.readLoop(c)
}

// readLoop drains one connection until it closes. Text, binary, and
// continuation payloads all go through the same JSON decode path; pings
// are answered with an echoing pong by the connection's default ping
// handler; a close frame or transport error removes the client.
func (s *Server) readLoop(c *client) {
	defer s.removeClient(c)

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure) {
				s.logger.Debug("viewer read error", "connection_id", c.id, "error", err)
			}
			return
		}
		s.handleMessage(c, msg)
	}
}

// handleMessage decodes one client payload. Malformed JSON and unknown
// event types are dropped without closing the connection.
func (s *Server) handleMessage(c *client, payload []byte) {
	var msg clientMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		s.logger.Debug("dropping malformed message", "connection_id", c.id, "error", err)
		s.metrics.messagesDropped.Inc()
		return
	}
	if msg.Type != "event" {
		return
	}

	// Frame acknowledgment: a latency-stats sink, never queued.
	if msg.EventType == "frameid" {
		s.mu.Lock()
		c.lastAck = msg.FrameID
		c.hasAck = true
		s.mu.Unlock()
		return
	}

	ev, ok := decodeEvent(&msg)
	if !ok {
		s.logger.Debug("dropping unknown event type", "connection_id", c.id, "eventType", msg.EventType)
		s.metrics.messagesDropped.Inc()
		return
	}

	s.mu.Lock()
	s.events = append(s.events, ev)
	s.mu.Unlock()
	s.metrics.eventsDecoded.Inc()
}

// headerContainsToken reports whether a comma-separated header includes
// the token, matching case-insensitively. Browsers send values such as
// "keep-alive, Upgrade".
func headerContainsToken(h http.Header, name, token string) bool {
	for _, value := range h.Values(name) {
		for _, part := range strings.Split(value, ",") {
			if strings.EqualFold(strings.TrimSpace(part), token) {
				return true
			}
		}
	}
	return false
}
