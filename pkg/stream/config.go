package stream

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Config holds configuration for the streaming server. Zero-value fields
// are filled from DefaultConfig by New.
type Config struct {
	// Address is the interface to bind. Default: "127.0.0.1".
	Address string

	// Port is the first port to try. New advances the port by one for
	// each failed bind, up to MaxAttempts. A Port of 0 asks the kernel
	// for a free port and disables retries.
	Port int

	// MaxAttempts is the number of consecutive ports to try.
	// Clamped into [1, 65535]. Default: 1.
	MaxAttempts int

	// Logger receives server logs. Default: slog.Default().
	Logger *slog.Logger

	// ReadBufferSize is the WebSocket read buffer size. Default: 4096.
	ReadBufferSize int

	// WriteBufferSize is the WebSocket write buffer size. Default: 4096.
	WriteBufferSize int

	// MaxMessageSize is the largest incoming WebSocket message accepted.
	// Default: 64KB.
	MaxMessageSize int64

	// WriteTimeout bounds every frame write to a client. A stalled viewer
	// fails its write and is disconnected rather than blocking a dispatch
	// tick. Default: 10 seconds.
	WriteTimeout time.Duration

	// DispatchInterval is the cadence of the frame dispatch loop.
	// Default: 5 milliseconds.
	DispatchInterval time.Duration

	// ShutdownTimeout bounds graceful shutdown in Close.
	// Default: 5 seconds.
	ShutdownTimeout time.Duration

	// CheckOrigin validates the Origin header on upgrade. The default
	// accepts any origin; the viewer page is served from this host and
	// the server carries no credentials worth forging.
	CheckOrigin func(r *http.Request) bool

	// Middleware wraps the HTTP surface, outermost first.
	Middleware []func(http.Handler) http.Handler

	// MetricsRegistry receives the server's Prometheus collectors.
	// Default: a private registry, so multiple servers in one process do
	// not collide. Pass prometheus.DefaultRegisterer to export globally.
	MetricsRegistry prometheus.Registerer
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Address:          "127.0.0.1",
		Port:             8080,
		MaxAttempts:      1,
		Logger:           slog.Default(),
		ReadBufferSize:   4096,
		WriteBufferSize:  4096,
		MaxMessageSize:   64 * 1024,
		WriteTimeout:     10 * time.Second,
		DispatchInterval: 5 * time.Millisecond,
		ShutdownTimeout:  5 * time.Second,
		CheckOrigin:      func(r *http.Request) bool { return true },
	}
}

// fillDefaults replaces unset fields with defaults, leaving set fields
// untouched.
func (c *Config) fillDefaults() {
	defaults := DefaultConfig()
	if c.Address == "" {
		c.Address = defaults.Address
	}
	if c.Logger == nil {
		c.Logger = defaults.Logger
	}
	if c.ReadBufferSize == 0 {
		c.ReadBufferSize = defaults.ReadBufferSize
	}
	if c.WriteBufferSize == 0 {
		c.WriteBufferSize = defaults.WriteBufferSize
	}
	if c.MaxMessageSize == 0 {
		c.MaxMessageSize = defaults.MaxMessageSize
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = defaults.WriteTimeout
	}
	if c.DispatchInterval == 0 {
		c.DispatchInterval = defaults.DispatchInterval
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = defaults.ShutdownTimeout
	}
	if c.CheckOrigin == nil {
		c.CheckOrigin = defaults.CheckOrigin
	}
	if c.MetricsRegistry == nil {
		c.MetricsRegistry = prometheus.NewRegistry()
	}
	// Always try at least once; there are only 65535 ports anyway.
	if c.MaxAttempts < 1 {
		c.MaxAttempts = 1
	}
	if c.MaxAttempts > 65535 {
		c.MaxAttempts = 65535
	}
}

// Clone returns a copy of the Config.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}
