package stream

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the server's Prometheus collectors.
type metrics struct {
	framesPushed     prometheus.Counter
	framesSent       prometheus.Counter
	bytesSent        prometheus.Counter
	eventsDecoded    prometheus.Counter
	messagesDropped  prometheus.Counter
	sendErrors       prometheus.Counter
	clientsConnected prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		framesPushed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "nanovdb",
			Subsystem: "stream",
			Name:      "frames_pushed_total",
			Help:      "Encoded frames pushed into the ring by the producer",
		}),
		framesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "nanovdb",
			Subsystem: "stream",
			Name:      "frames_sent_total",
			Help:      "Frames delivered to viewers (metadata plus payload pairs)",
		}),
		bytesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "nanovdb",
			Subsystem: "stream",
			Name:      "bytes_sent_total",
			Help:      "Bytes written to viewers across all connections",
		}),
		eventsDecoded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "nanovdb",
			Subsystem: "stream",
			Name:      "events_decoded_total",
			Help:      "Input events decoded from viewer messages",
		}),
		messagesDropped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "nanovdb",
			Subsystem: "stream",
			Name:      "messages_dropped_total",
			Help:      "Viewer messages dropped as malformed or unknown",
		}),
		sendErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "nanovdb",
			Subsystem: "stream",
			Name:      "send_errors_total",
			Help:      "Frame writes that failed and closed the connection",
		}),
		clientsConnected: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "nanovdb",
			Subsystem: "stream",
			Name:      "viewers_connected",
			Help:      "Currently connected viewers",
		}),
	}
}

// Stats is a point-in-time snapshot of server activity.
type Stats struct {
	// Viewers is the number of connected clients.
	Viewers int

	// FramesPushed counts producer pushes since start.
	FramesPushed uint64

	// FramesSent counts frames delivered across all viewers.
	FramesSent uint64

	// BytesSent counts wire bytes delivered across all viewers.
	BytesSent uint64

	// PendingEvents is the current input queue depth.
	PendingEvents int

	// LastAck maps connection id to the newest frame id that viewer
	// acknowledged. Connections that never acknowledged are absent.
	LastAck map[uint64]uint64
}

// Stats returns a snapshot of server activity.
func (s *Server) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{
		Viewers:       len(s.clients),
		FramesPushed:  s.framesPushed,
		FramesSent:    s.framesSent,
		BytesSent:     s.bytesSent,
		PendingEvents: len(s.events),
		LastAck:       make(map[uint64]uint64),
	}
	for id, c := range s.clients {
		if c.hasAck {
			st.LastAck[id] = c.lastAck
		}
	}
	return st
}
