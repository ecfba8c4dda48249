package cmd

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rxscan/rxscan/internal/barcode"
	"github.com/rxscan/rxscan/internal/lookup"
	"github.com/rxscan/rxscan/internal/server"
)

// serveCmd starts the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API for decoding and scanning",
	Long: `Start an HTTP server exposing the decode pipeline and GS1 parser.

Endpoints:
  POST /v1/decode   - decode an uploaded image to a raw payload
  POST /v1/scan     - decode and parse into a structured record
  GET  /v1/scan/ws  - websocket variant streaming per-strategy progress
  GET  /health      - health check
  GET  /metrics     - Prometheus metrics

Examples:
  rxscan serve
  rxscan serve --host 0.0.0.0 --port 3000`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		if cmd.Flags().Changed("host") {
			cfg.Server.Host, _ = cmd.Flags().GetString("host")
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port, _ = cmd.Flags().GetInt("port")
		}

		client := lookup.NewClient(cfg.Lookup.BaseURL, time.Duration(cfg.Lookup.TimeoutSec)*time.Second)
		srv := server.New(cfg, barcode.NewBackend(), client)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().String("host", "localhost", "host interface to bind")
	serveCmd.Flags().Int("port", 8080, "port to listen on")
	rootCmd.AddCommand(serveCmd)
}
