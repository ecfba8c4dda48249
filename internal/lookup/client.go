// Package lookup queries a drug database (openFDA NDC directory style)
// for the record behind a derived National Drug Code.
package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL points at the public openFDA NDC directory endpoint.
const DefaultBaseURL = "https://api.fda.gov/drug/ndc.json"

// ErrNoMatch reports that every fallback query came back empty.
var ErrNoMatch = errors.New("lookup: no drug record matches the ndc")

// DrugRecord is one entry from the NDC directory.
type DrugRecord struct {
	ProductNDC  string `json:"product_ndc"`
	GenericName string `json:"generic_name"`
	BrandName   string `json:"brand_name"`
	LabelerName string `json:"labeler_name"`
	DosageForm  string `json:"dosage_form"`
}

type searchResponse struct {
	Results []DrugRecord `json:"results"`
}

// Client performs NDC lookups with a fixed fallback query sequence.
type Client struct {
	baseURL string
	hc      *http.Client
	logger  *slog.Logger
}

// NewClient builds a lookup client. An empty baseURL selects the
// public openFDA endpoint.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: timeout},
		logger:  slog.Default(),
	}
}

// Lookup resolves an NDC in LLLLL-PPPP-SS form against the directory.
// Queries are tried in a fixed order, stopping at the first non-empty
// result list:
//
//  1. the exact package NDC
//  2. labeler + product with the package code stripped
//  3. a labeler-prefix wildcard
//
// A miss on every query returns ErrNoMatch.
func (c *Client) Lookup(ctx context.Context, ndc string) ([]DrugRecord, error) {
	for _, q := range fallbackQueries(ndc) {
		records, err := c.search(ctx, q)
		if err != nil {
			return nil, err
		}
		if len(records) > 0 {
			c.logger.Debug("ndc lookup matched", "query", q, "records", len(records))
			return records, nil
		}
		c.logger.Debug("ndc lookup query empty, falling back", "query", q)
	}
	return nil, ErrNoMatch
}

// fallbackQueries expands an NDC into its search terms, most specific
// first.
func fallbackQueries(ndc string) []string {
	queries := []string{fmt.Sprintf("package_ndc:%q", ndc)}
	parts := strings.Split(ndc, "-")
	if len(parts) == 3 {
		queries = append(queries,
			fmt.Sprintf("product_ndc:%q", parts[0]+"-"+parts[1]),
			fmt.Sprintf("product_ndc:%s-*", parts[0]),
		)
	}
	return queries
}

func (c *Client) search(ctx context.Context, query string) ([]DrugRecord, error) {
	u := c.baseURL + "?search=" + url.QueryEscape(query) + "&limit=10"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("lookup: building request: %w", err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lookup: querying drug database: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	// The directory answers 404 for an empty result set.
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("lookup: drug database returned status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("lookup: decoding response: %w", err)
	}
	return body.Results, nil
}
