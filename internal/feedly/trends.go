// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feedly

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pdiddy/trend-report/pkg/types"
)

// trendsAPIBase is the Feedly trend discovery endpoint. Declared as a var so
// tests can substitute an httptest server.
var trendsAPIBase = "https://api.feedly.com/v3/ml/trend-discovery/trends"

const (
	trendCount  = 20
	trendSort   = "-growth"
	trendPeriod = "Last30Days"
)

// Trends asks Feedly for the currently trending topics around cfg.NLPID
// (R1.1-R1.3). Results keep the API's order, which is descending growth per
// the sort parameter. An empty list is not an error: it means there is
// nothing to report on.
func (c *Client) Trends(ctx context.Context, cfg types.FeedlyConfig) ([]types.Trend, error) {
	body := trendsRequest{
		Filters: []trendFilter{
			{Type: "growth", Values: []string{"Exploding", "Surging", "Growing"}},
			{Type: "size", Values: []string{"Mainstream", "Known", "Niche"}},
			// Empty slice, not nil: the industry filter must serialize as
			// [] rather than null.
			{Type: "industry", Values: []string{}},
		},
		Period: trendPeriod,
		SearchLayers: []queryLayer{
			{Parts: []queryPart{{ID: cfg.NLPID}}},
		},
	}

	params := url.Values{
		"count": {fmt.Sprintf("%d", trendCount)},
		"sort":  {trendSort},
	}

	resp, err := c.postJSON(ctx, trendsAPIBase+"?"+params.Encode(), body, cfg.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("Feedly trends request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("Feedly trends API returned HTTP %d: %s", resp.StatusCode, string(detail))
	}

	var tr trendsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("parsing trends response: %w", err)
	}
	return tr.Trends, nil
}

// Feedly trend discovery API JSON structures.
type trendsRequest struct {
	Filters      []trendFilter `json:"filters"`
	Period       string        `json:"period"`
	SearchLayers []queryLayer  `json:"searchLayers"`
}

type trendFilter struct {
	Type   string   `json:"type"`
	Values []string `json:"values"`
}

type trendsResponse struct {
	Trends []types.Trend `json:"trends"`
}
