package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/rxscan/rxscan/internal/decode"
	"github.com/rxscan/rxscan/internal/gs1"
	"github.com/rxscan/rxscan/internal/lookup"
)

// healthHandler returns server health status.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status: "healthy",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

// decodeHandler runs the cascade on an uploaded image and returns the
// raw payload.
func (s *Server) decodeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	out, err := s.runCascade(r, data)
	if err != nil {
		s.writeDecodeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, DecodeResponse{
		Payload:  out.Payload,
		Strategy: out.Strategy,
		Attempts: out.Attempts,
	})
}

// scanHandler decodes and parses an uploaded image, optionally chasing
// the derived NDC against the drug database.
func (s *Server) scanHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	out, err := s.runCascade(r, data)
	if err != nil {
		s.writeDecodeError(w, err)
		return
	}

	resp := s.buildScanResponse(r.Context(), out, r.FormValue("lookup") == "true")
	s.writeJSON(w, http.StatusOK, resp)
}

// buildScanResponse parses the payload and optionally resolves drugs.
func (s *Server) buildScanResponse(ctx context.Context, out decode.Outcome, withLookup bool) ScanResponse {
	rec, parseErr := gs1.Parse(out.Payload)
	resp := ScanResponse{
		Record:   rec,
		Strategy: out.Strategy,
		Attempts: out.Attempts,
	}
	if parseErr != nil {
		resp.ParseNote = parseErr.Error()
	}

	if withLookup && s.lookups != nil && rec.NDC != "" {
		drugs, err := s.lookups.Lookup(ctx, rec.NDC)
		switch {
		case errors.Is(err, lookup.ErrNoMatch):
			// A miss is not an error for the scan itself.
		case err != nil:
			slog.Warn("drug lookup failed", "ndc", rec.NDC, "error", err)
		default:
			resp.Drugs = drugs
		}
	}
	return resp
}

// readUpload extracts the uploaded image from the multipart form.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	maxBytes := s.maxUploadMB * 1024 * 1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(maxBytes); err != nil {
		s.writeError(w, "Failed to parse form data", http.StatusBadRequest)
		return nil, false
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		s.writeError(w, "Missing 'image' form file", http.StatusBadRequest)
		return nil, false
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, "Failed to read upload", http.StatusBadRequest)
		return nil, false
	}
	uploadSizeBytes.Observe(float64(len(data)))
	return data, true
}

// runCascade executes the decode pipeline with metrics observation.
func (s *Server) runCascade(r *http.Request, data []byte) (decode.Outcome, error) {
	timer := time.Now()
	p := s.newPipeline(decode.WithObserver(func(ev decode.Event) {
		observeAttempt(ev.Strategy, ev.Valid, ev.Err != nil)
	}))

	out, err := p.DecodeBytes(r.Context(), data)
	decodeDuration.Observe(time.Since(timer).Seconds())

	switch {
	case err == nil:
		decodeRequestsTotal.WithLabelValues("succeeded").Inc()
	case errors.Is(err, decode.ErrNoSymbol):
		decodeRequestsTotal.WithLabelValues("exhausted").Inc()
	default:
		decodeRequestsTotal.WithLabelValues("error").Inc()
	}
	return out, err
}

// writeDecodeError maps cascade errors onto HTTP statuses: an
// unreadable upload is a client problem, an exhausted cascade is
// reported as unprocessable content.
func (s *Server) writeDecodeError(w http.ResponseWriter, err error) {
	var pe *decode.ProcessingError
	switch {
	case errors.Is(err, decode.ErrNoSymbol):
		s.writeError(w, "No valid Data Matrix symbol found", http.StatusUnprocessableEntity)
	case errors.As(err, &pe):
		s.writeError(w, fmt.Sprintf("Unreadable image: %v", pe.Err), http.StatusBadRequest)
	default:
		s.writeError(w, "Decode failed", http.StatusInternalServerError)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, msg string, status int) {
	s.writeJSON(w, status, ErrorResponse{Error: msg})
}
