package stream

import (
	"github.com/gorilla/websocket"
)

// sendQueueSize bounds each client's outbound frame queue. One full ring
// of backlog; a viewer further behind than that waits on its cursor and
// laps like any other lagging reader.
const sendQueueSize = ringSize

// outFrame is one frame handed from the dispatch loop to a client's write
// pump. The payload slice is immutable once pushed into the ring.
type outFrame struct {
	payload []byte
	meta    frameMeta
}

// client is one connected viewer: its WebSocket handle, its read cursor
// into the frame ring, and the outbound queue its write pump drains. All
// fields except conn and send operations are guarded by the server mutex.
type client struct {
	// id is unique for the lifetime of the server; ids are never reused.
	id uint64

	conn *websocket.Conn

	// send carries frames to the write pump. Enqueued by the dispatch
	// loop under the server mutex, closed by removeClient under the same
	// mutex.
	send chan outFrame

	// readIdx is the next ring slot to deliver, or cursorPending before
	// the first dispatch observes a produced frame.
	readIdx uint32

	// lastAck is the newest frame id the viewer acknowledged. Recorded
	// for latency statistics; nothing is paced on it yet.
	lastAck uint64
	hasAck  bool
}

// addClient registers a freshly upgraded connection, assigns its
// connection id, and starts its write pump.
func (s *Server) addClient(conn *websocket.Conn) *client {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextConnID++
	c := &client{
		id:      s.nextConnID,
		conn:    conn,
		send:    make(chan outFrame, sendQueueSize),
		readIdx: cursorPending,
	}
	s.clients[c.id] = c
	s.metrics.clientsConnected.Inc()
	go s.writePump(c)

	s.logger.Info("viewer connected", "connection_id", c.id, "viewers", len(s.clients))
	return c
}

// removeClient erases the connection, discards its cursor, and closes its
// outbound queue so the write pump exits. Safe to call more than once for
// the same client.
func (s *Server) removeClient(c *client) {
	s.mu.Lock()
	if _, ok := s.clients[c.id]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.clients, c.id)
	close(c.send)
	remaining := len(s.clients)
	s.mu.Unlock()

	s.metrics.clientsConnected.Dec()
	c.conn.Close()

	s.logger.Info("viewer disconnected", "connection_id", c.id, "viewers", remaining)
}
