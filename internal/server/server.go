// Package server exposes the decode pipeline and GS1 parser over HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rxscan/rxscan/internal/barcode"
	"github.com/rxscan/rxscan/internal/config"
	"github.com/rxscan/rxscan/internal/decode"
	"github.com/rxscan/rxscan/internal/lookup"
)

// Server wires the decode pipeline, GS1 parsing and the drug-database
// lookup behind a REST + websocket surface.
type Server struct {
	host        string
	port        int
	corsOrigin  string
	maxUploadMB int64
	timeout     time.Duration
	shutdown    time.Duration

	backend   barcode.Backend
	decodeCfg decode.Config
	lookups   *lookup.Client

	httpServer *http.Server
}

// New builds a server from configuration. The lookup client may be
// nil, in which case scan requests cannot chase NDCs.
func New(cfg *config.Config, backend barcode.Backend, lookups *lookup.Client) *Server {
	s := &Server{
		host:        cfg.Server.Host,
		port:        cfg.Server.Port,
		corsOrigin:  cfg.Server.CORSOrigin,
		maxUploadMB: cfg.Server.MaxUploadMB,
		timeout:     time.Duration(cfg.Server.TimeoutSec) * time.Second,
		shutdown:    time.Duration(cfg.Server.ShutdownTimeout) * time.Second,
		backend:     backend,
		decodeCfg: decode.Config{
			TryHarder:  cfg.Decode.TryHarder,
			MaxSymbols: cfg.Decode.MaxSymbols,
		},
		lookups: lookups,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.corsMiddleware(s.healthHandler))
	mux.HandleFunc("/v1/decode", s.corsMiddleware(s.decodeHandler))
	mux.HandleFunc("/v1/scan", s.corsMiddleware(s.scanHandler))
	mux.HandleFunc("/v1/scan/ws", s.scanWebSocketHandler)
	mux.Handle("/metrics", promhttp.Handler())

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.host, s.port),
		Handler:      mux,
		ReadTimeout:  s.timeout,
		WriteTimeout: s.timeout,
	}
	return s
}

// newPipeline builds a per-request pipeline so each request can attach
// its own observer without sharing state.
func (s *Server) newPipeline(opts ...decode.Option) *decode.Pipeline {
	return decode.New(s.backend, s.decodeCfg, opts...)
}

// Addr returns the listen address.
func (s *Server) Addr() string { return s.httpServer.Addr }

// Handler returns the root handler (used by httptest).
func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

// Start runs the server until the context is cancelled, then shuts
// down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdown)
	defer cancel()
	slog.Info("shutting down http server")
	return s.httpServer.Shutdown(shutdownCtx)
}
