package stream

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
)

// dispatchLoop is the frame broadcast driver. A single goroutine acquires
// the server mutex once per tick and hands ready frames to each client's
// write pump; no socket I/O happens under the mutex.
func (s *Server) dispatchLoop() {
	ticker := time.NewTicker(s.config.DispatchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.broadcast()
		case <-s.done:
			return
		}
	}
}

// broadcast runs the catch-up loop for every connected client. A client
// whose cursor is pending starts reading only once the ring holds exactly
// one frame; afterwards it is driven until it reaches the write cursor.
// Frames are enqueued without blocking: a client whose queue is full keeps
// its cursor and resumes on a later tick, so one stalled viewer never
// delays the tick, the producer, or other viewers.
func (s *Server) broadcast() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.clients {
		if c.readIdx == cursorPending {
			if s.ring.writeIdx != 1 {
				continue
			}
			c.readIdx = 0
		}

	catchup:
		for c.readIdx != s.ring.writeIdx {
			slot := &s.ring.slots[c.readIdx]
			select {
			case c.send <- outFrame{payload: slot.payload, meta: slot.meta}:
				c.readIdx = (c.readIdx + 1) % ringSize
			default:
				// Queue full. The cursor stays put; a viewer that is
				// merely slow catches up or laps, and one whose socket
				// has wedged fails its write deadline in the pump.
				break catchup
			}
		}
	}
}

// writePump drains one client's outbound queue, writing the metadata text
// message followed by the binary payload. Runs on its own goroutine per
// connection; both writes carry a deadline so a viewer that stops reading
// errors out here without touching the dispatch tick. The pump exits when
// a write fails or removeClient closes the queue.
func (s *Server) writePump(c *client) {
	for out := range c.send {
		text, err := json.Marshal(newFrameMetadata(out.meta))
		if err != nil {
			continue
		}

		deadline := time.Now().Add(s.config.WriteTimeout)

		c.conn.SetWriteDeadline(deadline)
		if err := c.conn.WriteMessage(websocket.TextMessage, text); err != nil {
			s.failSend(c, err)
			return
		}

		c.conn.SetWriteDeadline(deadline)
		if err := c.conn.WriteMessage(websocket.BinaryMessage, out.payload); err != nil {
			s.failSend(c, err)
			return
		}

		s.mu.Lock()
		s.framesSent++
		s.bytesSent += uint64(len(text) + len(out.payload))
		s.mu.Unlock()

		s.metrics.framesSent.Inc()
		s.metrics.bytesSent.Add(float64(len(text) + len(out.payload)))
	}
}

// failSend closes the connection after a failed frame write; the client's
// read loop observes the close and removes it from the registry.
func (s *Server) failSend(c *client, err error) {
	s.logger.Debug("frame send failed", "connection_id", c.id, "error", err)
	s.metrics.sendErrors.Inc()
	c.conn.Close()
}
