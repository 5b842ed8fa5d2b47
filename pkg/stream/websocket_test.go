package stream

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/openvdb/nanovdb-editor-server/pkg/input"
)

// bareServer builds a Server without binding sockets, for exercising the
// message path directly.
func bareServer(t *testing.T) *Server {
	t.Helper()

	cfg := DefaultConfig()
	cfg.MetricsRegistry = prometheus.NewRegistry()
	cfg.fillDefaults()

	return &Server{
		config:  cfg,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		clients: make(map[uint64]*client),
		metrics: newMetrics(cfg.MetricsRegistry),
		done:    make(chan struct{}),
	}
}

func TestHandleMessageQueuesEvents(t *testing.T) {
	s := bareServer(t)
	c := &client{id: 1}

	s.handleMessage(c, []byte(`{"type":"event","eventType":"mousemove","x":1,"y":2}`))
	s.handleMessage(c, []byte(`{"type":"event","eventType":"mousedown","button":0}`))

	if len(s.events) != 2 {
		t.Fatalf("queued %d events, want 2", len(s.events))
	}
	if _, ok := s.events[0].(input.MouseMove); !ok {
		t.Errorf("first event = %T, want MouseMove", s.events[0])
	}
	if _, ok := s.events[1].(input.MouseDown); !ok {
		t.Errorf("second event = %T, want MouseDown", s.events[1])
	}
}

func TestHandleMessageMalformed(t *testing.T) {
	s := bareServer(t)
	c := &client{id: 1}

	s.handleMessage(c, []byte(`{not json`))
	s.handleMessage(c, []byte(``))
	s.handleMessage(c, []byte(`42`))

	if len(s.events) != 0 {
		t.Errorf("malformed payloads queued %d events", len(s.events))
	}
}

func TestHandleMessageNonEventType(t *testing.T) {
	s := bareServer(t)
	c := &client{id: 1}

	s.handleMessage(c, []byte(`{"type":"hello","eventType":"mousemove","x":1,"y":2}`))
	s.handleMessage(c, []byte(`{"type":"event","eventType":"gamepad"}`))

	if len(s.events) != 0 {
		t.Errorf("queued %d events, want 0", len(s.events))
	}
}

// frameid acknowledgments are recorded on the client, not queued.
func TestHandleMessageFrameAck(t *testing.T) {
	s := bareServer(t)
	c := &client{id: 1}

	s.handleMessage(c, []byte(`{"type":"event","eventType":"frameid","frameid":17}`))

	if len(s.events) != 0 {
		t.Errorf("acknowledgment queued %d events, want 0", len(s.events))
	}
	if !c.hasAck || c.lastAck != 17 {
		t.Errorf("lastAck = (%v, %d), want (true, 17)", c.hasAck, c.lastAck)
	}
}

// Event arrival order is preserved across clients.
func TestHandleMessageOrdering(t *testing.T) {
	s := bareServer(t)
	a := &client{id: 1}
	b := &client{id: 2}

	s.handleMessage(a, []byte(`{"type":"event","eventType":"resize","width":1,"height":1}`))
	s.handleMessage(b, []byte(`{"type":"event","eventType":"resize","width":2,"height":2}`))
	s.handleMessage(a, []byte(`{"type":"event","eventType":"resize","width":3,"height":3}`))

	for i, want := range []uint32{1, 2, 3} {
		rs, ok := s.events[i].(input.Resize)
		if !ok {
			t.Fatalf("event %d = %T, want Resize", i, s.events[i])
		}
		if rs.Width != want {
			t.Errorf("event %d width = %d, want %d", i, rs.Width, want)
		}
	}
}

func TestHeaderContainsToken(t *testing.T) {
	h := http.Header{}
	h.Set("Connection", "keep-alive, Upgrade")

	if !headerContainsToken(h, "Connection", "upgrade") {
		t.Error("should match Upgrade token case-insensitively in a list")
	}
	if headerContainsToken(h, "Connection", "close") {
		t.Error("should not match absent token")
	}

	h.Set("Connection", "keep-alive")
	if headerContainsToken(h, "Connection", "upgrade") {
		t.Error("should not match without the token")
	}
}
