package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/openvdb/nanovdb-editor-server/pkg/input"
	"github.com/openvdb/nanovdb-editor-server/pkg/middleware"
	"github.com/openvdb/nanovdb-editor-server/pkg/stream"
)

func serveCmd() *cobra.Command {
	var (
		address     string
		port        int
		maxAttempts int
		metricsAddr string
		inputPath   string
		fps         int
		loop        bool
		logLevel    string
		trace       bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the streaming server",
		Long: `Run the streaming server and stream an Annex-B H.264 source.

Frames are split on start codes and pushed at the configured rate. With no
--input the server runs empty: the viewer page and input decoding still
work, which is enough to exercise the HTTP and WebSocket surface.

The PORT environment variable (or a .env file) overrides the default port
when --port is not given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil {
				slog.Debug("no .env file found, using environment variables")
			}
			setupLogger(logLevel)

			if !cmd.Flags().Changed("port") {
				if env := os.Getenv("PORT"); env != "" {
					if p, err := strconv.Atoi(env); err == nil {
						port = p
					}
				}
			}

			registry := prometheus.NewRegistry()
			mws := []func(http.Handler) http.Handler{
				middleware.Prometheus(middleware.WithRegistry(registry)),
			}
			if trace {
				mws = append(mws, middleware.OpenTelemetry())
			}

			srv, err := stream.New(&stream.Config{
				Address:         address,
				Port:            port,
				MaxAttempts:     maxAttempts,
				Logger:          slog.Default(),
				Middleware:      mws,
				MetricsRegistry: registry,
			})
			if err != nil {
				return err
			}
			defer srv.Close()

			slog.Info("viewer available", "url", "http://"+srv.Addr()+"/")

			if metricsAddr != "" {
				go serveMetrics(metricsAddr, registry)
			}

			ctx, stop := signal.NotifyContext(context.Background(),
				os.Interrupt, syscall.SIGTERM)
			defer stop()

			if inputPath != "" {
				go streamFile(ctx, srv, inputPath, fps, loop)
			}
			go drainEvents(ctx, srv)

			<-ctx.Done()
			slog.Info("shutting down")
			return srv.Close()
		},
	}

	cmd.Flags().StringVar(&address, "address", "127.0.0.1", "Interface to bind")
	cmd.Flags().IntVar(&port, "port", 8080, "First port to try")
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", 4, "Consecutive ports to try")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. 127.0.0.1:9090)")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Annex-B H.264 file to stream (\"-\" for stdin)")
	cmd.Flags().IntVar(&fps, "fps", 30, "Frame rate for the streamed source")
	cmd.Flags().BoolVar(&loop, "loop", false, "Restart the source when it ends")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&trace, "trace", false, "Enable OpenTelemetry request tracing")

	return cmd
}

func setupLogger(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}

func serveMetrics(addr string, registry *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	slog.Info("metrics listening", "address", addr)
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("metrics server error", "error", err)
	}
}

// streamFile pushes the source at the configured rate. It parks on
// WaitUntilActive while no viewer is connected so an idle server does no
// work, matching how the editor gates its render loop.
func streamFile(ctx context.Context, srv *stream.Server, path string, fps int, loop bool) {
	if fps <= 0 {
		fps = 30
	}
	interval := time.Second / time.Duration(fps)

	for {
		nals, width, height, err := loadAnnexB(path)
		if err != nil {
			slog.Error("cannot read source", "path", path, "error", err)
			return
		}
		slog.Info("streaming source", "path", path, "units", len(nals), "fps", fps)

		ticker := time.NewTicker(interval)
		for _, nal := range nals {
			srv.WaitUntilActive(ctx, nil)
			select {
			case <-ctx.Done():
				ticker.Stop()
				return
			case <-ticker.C:
				srv.PushH264(nal, width, height)
			}
		}
		ticker.Stop()

		if !loop {
			return
		}
	}
}

// drainEvents consumes decoded viewer input. The standalone host has no
// editor to forward input to, so events are logged at debug level.
func drainEvents(ctx context.Context, srv *stream.Server) {
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for {
				ev, ok := srv.PopEvent()
				if !ok {
					break
				}
				if _, inactive := ev.(input.Inactive); inactive {
					break
				}
				slog.Debug("viewer event", "event", ev)
			}
		}
	}
}
