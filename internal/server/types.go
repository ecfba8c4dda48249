package server

import (
	"github.com/rxscan/rxscan/internal/gs1"
	"github.com/rxscan/rxscan/internal/lookup"
)

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// DecodeResponse is returned by POST /v1/decode.
type DecodeResponse struct {
	Payload  string `json:"payload"`
	Strategy string `json:"strategy"`
	Attempts int    `json:"attempts"`
}

// ScanResponse is returned by POST /v1/scan.
type ScanResponse struct {
	Record    gs1.Record          `json:"record"`
	Strategy  string              `json:"strategy"`
	Attempts  int                 `json:"attempts"`
	ParseNote string              `json:"parse_note,omitempty"`
	Drugs     []lookup.DrugRecord `json:"drugs,omitempty"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ProgressMessage is streamed over the scan websocket while the
// cascade runs.
type ProgressMessage struct {
	Type     string        `json:"type"` // "attempt", "completed", "error"
	Strategy string        `json:"strategy,omitempty"`
	Index    int           `json:"index,omitempty"`
	Total    int           `json:"total,omitempty"`
	Valid    bool          `json:"valid,omitempty"`
	Result   *ScanResponse `json:"result,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// ScanRequest is the single message a websocket client sends: the
// image bytes (base64 in JSON) and whether to chase the NDC.
type ScanRequest struct {
	Image  []byte `json:"image"`
	Lookup bool   `json:"lookup,omitempty"`
}
