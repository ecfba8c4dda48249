// Package gs1 parses GS1 Application Identifier payloads from
// pharmaceutical Data Matrix symbols into structured records.
package gs1

// Record holds the typed fields extracted from a GS1 payload.
// All fields except Raw are optional; presence depends on which
// Application Identifiers appeared in the payload.
type Record struct {
	// Raw is the payload string exactly as decoded from the symbol.
	Raw string `json:"raw"`

	// GTIN is the 14-digit Global Trade Item Number (AI 01).
	GTIN string `json:"gtin,omitempty"`

	// NDC is the National Drug Code derived from the GTIN, in
	// LLLLL-PPPP-SS form. Never set independently of GTIN.
	NDC string `json:"ndc,omitempty"`

	// ExpirationRaw is the 6-digit YYMMDD expiration date (AI 17).
	ExpirationRaw string `json:"expiration_raw,omitempty"`

	// Expiration is the human-readable date derived from ExpirationRaw.
	Expiration string `json:"expiration,omitempty"`

	// Lot is the lot/batch number (AI 10).
	Lot string `json:"lot,omitempty"`

	// SerialNumber (AI 21) is part of the record shape but is not
	// populated by this parser; see the dispatch table in scanner.go.
	SerialNumber string `json:"serial_number,omitempty"`
}

// HasIdentifiers reports whether the record carries at least one
// typed field beyond the raw payload.
func (r Record) HasIdentifiers() bool {
	return r.GTIN != "" || r.ExpirationRaw != "" || r.Lot != ""
}
