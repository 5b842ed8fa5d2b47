// Command nanovdb-server hosts the NanoVDB editor streaming server as a
// standalone process: it serves the embedded browser viewer, streams an
// Annex-B H.264 source to connected viewers, and exposes Prometheus
// metrics. In the editor itself the server runs embedded via pkg/stream;
// this binary exists for development and soak testing of the streaming
// path without a GPU.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "nanovdb-server",
		Short: "Remote streaming server for the NanoVDB editor",
		Long: `nanovdb-server hosts the NanoVDB editor streaming endpoint.

It serves the embedded browser viewer over HTTP, upgrades viewers to
WebSocket, broadcasts encoded video frames on a 5 ms cadence, and decodes
viewer input events. Frames are read from an Annex-B H.264 file (or stdin)
so the streaming path can be exercised without the editor's GPU pipeline.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
