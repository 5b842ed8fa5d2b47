package stream

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/openvdb/nanovdb-editor-server/pkg/input"
)

// Server is a streaming server instance. It owns the frame ring, the
// client registry, and the input event queue; a single mutex serializes
// access from the producer thread, the per-connection read loops and write
// pumps, and the dispatch loop. Socket writes happen on the pumps, outside
// the mutex. Create with New, tear down with Close.
type Server struct {
	config   *Config
	logger   *slog.Logger
	upgrader websocket.Upgrader

	httpServer *http.Server
	port       int

	mu         sync.Mutex
	ring       frameRing
	clients    map[uint64]*client
	events     []input.Event
	nextConnID uint64

	framesPushed uint64
	framesSent   uint64
	bytesSent    uint64

	metrics *metrics
	done    chan struct{}
	closed  atomic.Bool
}

// New binds a listener and starts serving. When the configured port is
// taken, the next port is tried, up to Config.MaxAttempts consecutive
// ports; each failed bind is logged at ERROR. Port reports the port that
// actually bound. Returns an error wrapping ErrBindFailed when every
// attempt fails.
func New(config *Config) (*Server, error) {
	if config == nil {
		config = DefaultConfig()
	} else {
		config = config.Clone()
	}
	config.fillDefaults()

	s := &Server{
		config:  config,
		logger:  config.Logger.With("component", "stream"),
		clients: make(map[uint64]*client),
		metrics: newMetrics(config.MetricsRegistry),
		done:    make(chan struct{}),
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  config.ReadBufferSize,
		WriteBufferSize: config.WriteBufferSize,
		CheckOrigin:     config.CheckOrigin,
	}

	handler := s.buildHandler()

	attempts := config.MaxAttempts
	if config.Port == 0 {
		attempts = 1
	}

	port := config.Port
	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		ln, err := net.Listen("tcp", net.JoinHostPort(config.Address, strconv.Itoa(port)))
		if err != nil {
			s.logger.Error("error starting server",
				"address", config.Address, "port", port, "error", err)
			lastErr = err
			port++
			continue
		}

		s.port = ln.Addr().(*net.TCPAddr).Port
		s.httpServer = &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
				s.logger.Error("serve error", "error", err)
			}
		}()
		go s.dispatchLoop()

		s.logger.Info("server created", "address", config.Address, "port", s.port)
		return s, nil
	}

	s.logger.Error("server create failed", "attempts", attempts)
	return nil, fmt.Errorf("%w after %d attempts: %v", ErrBindFailed, attempts, lastErr)
}

// Port returns the bound port. It differs from Config.Port when bind
// retries advanced it or when Config.Port was 0.
func (s *Server) Port() int {
	if s == nil {
		return 0
	}
	return s.port
}

// Addr returns the bound address in host:port form.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return net.JoinHostPort(s.config.Address, strconv.Itoa(s.port))
}

// PushH264 copies one encoded frame into the ring and stamps it with the
// next frame id. The caller may reuse or free its buffer immediately;
// delivery happens on the dispatch loop, never on the producer thread.
// Calling on a nil or closed server is a no-op.
func (s *Server) PushH264(payload []byte, width, height uint32) {
	if s == nil || s.closed.Load() {
		return
	}

	s.mu.Lock()
	s.ring.push(payload, width, height)
	s.framesPushed++
	s.mu.Unlock()

	s.metrics.framesPushed.Inc()
}

// PopEvent returns the next decoded input event in arrival order. When the
// queue is empty it returns (nil, false) — unless no viewer is connected
// either, in which case it returns a synthetic input.Inactive so callers
// can tell "nothing yet" from "nobody watching". Never blocks.
func (s *Server) PopEvent() (input.Event, bool) {
	if s == nil || s.closed.Load() {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.events) == 0 {
		if len(s.clients) == 0 {
			return input.Inactive{}, true
		}
		return nil, false
	}

	ev := s.events[0]
	s.events[0] = nil
	s.events = s.events[1:]
	if len(s.events) == 0 {
		s.events = nil
	}
	return ev, true
}

// WaitUntilActive blocks until a viewer connects or the probe reports a
// non-zero count, polling every 10 ms. A nil probe checks only the client
// registry. Returns early when ctx is done or the server closes. Producers
// call this to park expensive GPU work while nobody is watching.
func (s *Server) WaitUntilActive(ctx context.Context, probe func() int) {
	if s == nil {
		return
	}

	s.logger.Debug("stream going inactive")
	for {
		s.mu.Lock()
		active := len(s.clients) > 0
		s.mu.Unlock()

		if !active && probe != nil && probe() != 0 {
			active = true
		}
		if active {
			s.logger.Debug("stream going active")
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-s.done:
			return
		case <-time.After(10 * time.Millisecond):
		}
	}
}

// Close stops the dispatch loop, shuts the HTTP server down, closes every
// viewer connection, and clears the registry. Closing a nil or already
// closed server is a no-op.
func (s *Server) Close() error {
	if s == nil || !s.closed.CompareAndSwap(false, true) {
		return nil
	}

	close(s.done)

	// Hijacked WebSocket connections are not covered by Shutdown; close
	// them so their read loops exit, and close their outbound queues so
	// their write pumps exit.
	s.mu.Lock()
	for _, c := range s.clients {
		c.conn.Close()
		close(c.send)
	}
	s.clients = make(map[uint64]*client)
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("shutdown error", "error", err)
		return err
	}

	s.logger.Info("server stopped")
	return nil
}
