// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package feedly queries the Feedly API for trending topics and for the
// articles that mention them.
// Implements: prd002-trend-discovery (R1-R4);
//
//	prd003-article-search (R1-R5);
//	docs/ARCHITECTURE § Trend Discovery, § Article Search.
package feedly

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pdiddy/trend-report/internal/httputil"
)

// Client calls the Feedly API. HTTPClient may be nil, in which case
// http.DefaultClient is used.
type Client struct {
	HTTPClient *http.Client

	// APIKey is sent as a bearer credential on every request.
	APIKey string
}

// postJSON marshals body and POSTs it to rawURL with the standard Feedly
// headers. Requests are retried on HTTP 429 via httputil.DoWithRetry.
// The caller owns the returned response body.
func (c *Client) postJSON(ctx context.Context, rawURL string, body any, userAgent string) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("User-Agent", userAgent)

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	return httputil.DoWithRetry(ctx, client, req, 0)
}

// Query layer JSON structures shared by trend discovery and article search.
type queryLayer struct {
	Parts    []queryPart `json:"parts,omitempty"`
	Salience string      `json:"salience,omitempty"`
	Type     string      `json:"type,omitempty"`
	Negate   bool        `json:"negate,omitempty"`
}

type queryPart struct {
	ID   string `json:"id,omitempty"`
	Text string `json:"text,omitempty"`
}
