package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/rxscan/rxscan/internal/decode"
)

// upgrader builds a websocket upgrader bound to this server's origin
// policy, so the websocket and REST surfaces enforce the same
// server.cors_origin setting.
func (s *Server) upgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.allowOrigin,
	}
}

// allowOrigin mirrors the CORS middleware: "*" admits everything,
// otherwise the Origin header must match the configured origin.
// Requests without an Origin header (non-browser clients) pass.
func (s *Server) allowOrigin(r *http.Request) bool {
	if s.corsOrigin == "*" {
		return true
	}
	origin := r.Header.Get("Origin")
	return origin == "" || origin == s.corsOrigin
}

// scanWebSocketHandler streams per-strategy progress while a scan
// runs, then the final parsed record. The client sends exactly one
// ScanRequest and reads ProgressMessages until "completed" or "error".
func (s *Server) scanWebSocketHandler(w http.ResponseWriter, r *http.Request) {
	upgrader := s.upgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}
	defer func() { _ = conn.Close() }()

	websocketConnections.Inc()
	defer websocketConnections.Dec()

	slog.Info("websocket connection established", "remote_addr", r.RemoteAddr)

	var req ScanRequest
	if err := conn.ReadJSON(&req); err != nil {
		_ = conn.WriteJSON(ProgressMessage{Type: "error", Error: "invalid request"})
		return
	}

	p := s.newPipeline(decode.WithObserver(func(ev decode.Event) {
		observeAttempt(ev.Strategy, ev.Valid, ev.Err != nil)
		_ = conn.WriteJSON(ProgressMessage{
			Type:     "attempt",
			Strategy: ev.Strategy,
			Index:    ev.Index,
			Total:    ev.Total,
			Valid:    ev.Valid,
		})
	}))

	out, err := p.DecodeBytes(r.Context(), req.Image)
	if err != nil {
		msg := "decode failed"
		if errors.Is(err, decode.ErrNoSymbol) {
			msg = "no valid data matrix symbol found"
		}
		_ = conn.WriteJSON(ProgressMessage{Type: "error", Error: msg})
		return
	}

	resp := s.buildScanResponse(r.Context(), out, req.Lookup)
	_ = conn.WriteJSON(ProgressMessage{Type: "completed", Result: &resp})
}
