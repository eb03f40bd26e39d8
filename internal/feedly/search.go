// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feedly

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pdiddy/trend-report/pkg/types"
)

// searchAPIBase is the Feedly article search endpoint. Declared as a var so
// tests can substitute an httptest server.
var searchAPIBase = "https://api.feedly.com/v3/search/contents"

// searchPageSize is the number of articles requested per page (R2.2).
const searchPageSize = 100

// allTopicsBucket is the source searched for every trend: Feedly's full
// public corpus rather than a personal feed.
var allTopicsBucket = sourceItem{
	ID:          "discovery:all-topics",
	Label:       "All Feedly Sources",
	Tier:        "tier3",
	Type:        "publicationBucket",
	Description: "Millions of news sites, blogs, trade magazines, subreddits, newsletters, and more",
}

// SearchArticles fetches every article that mentions any of the aliases,
// following continuation tokens until the result set is exhausted (R2.1-R2.4).
// newerThan bounds the window in epoch milliseconds; a negative value is an
// offset from now, and 0 leaves the window unbounded. Reddit posts are
// excluded at the query level. Articles are returned in arrival order,
// without deduplication.
//
// A page failure is not fatal: a warning goes to w and the articles
// collected so far are returned, so one bad page costs the tail of the
// result set rather than the whole trend (R5.1).
func (c *Client) SearchArticles(ctx context.Context, aliases []string, newerThan int64, cfg types.FeedlyConfig, w io.Writer) []types.Article {
	parts := make([]queryPart, len(aliases))
	for i, alias := range aliases {
		parts[i] = queryPart{Text: alias}
	}

	body := searchRequest{
		Layers: []queryLayer{
			{Parts: parts, Salience: "mention", Type: "matches"},
			{Negate: true, Parts: []queryPart{{Text: "site:reddit.com"}}, Salience: "mention", Type: "matches"},
		},
		Source: searchSource{Items: []sourceItem{allTopicsBucket}},
	}

	var articles []types.Article
	continuation := ""

	for page := 1; ; page++ {
		params := url.Values{"count": {strconv.Itoa(searchPageSize)}}
		if newerThan != 0 {
			params.Set("newerThan", strconv.FormatInt(newerThan, 10))
		}
		if continuation != "" {
			params.Set("continuation", continuation)
		}

		sr, err := c.searchPage(ctx, params, body, cfg)
		if err != nil {
			fmt.Fprintf(w, "warning: search page %d failed: %v\n", page, err)
			return articles
		}

		articles = append(articles, sr.Items...)

		// No token means the result set is exhausted. A repeated token
		// would refetch the same page forever, so stop on that too (R2.4).
		if sr.Continuation == "" || sr.Continuation == continuation {
			return articles
		}
		continuation = sr.Continuation

		if cfg.PageDelay > 0 {
			time.Sleep(cfg.PageDelay)
		}
	}
}

// searchPage executes a single search request and decodes one page.
func (c *Client) searchPage(ctx context.Context, params url.Values, body searchRequest, cfg types.FeedlyConfig) (searchResponse, error) {
	resp, err := c.postJSON(ctx, searchAPIBase+"?"+params.Encode(), body, cfg.UserAgent)
	if err != nil {
		return searchResponse{}, fmt.Errorf("Feedly search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(resp.Body)
		return searchResponse{}, fmt.Errorf("Feedly search API returned HTTP %d: %s", resp.StatusCode, string(detail))
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return searchResponse{}, fmt.Errorf("parsing search response: %w", err)
	}
	return sr, nil
}

// Feedly search API JSON structures.
type searchRequest struct {
	Layers []queryLayer `json:"layers"`
	Source searchSource `json:"source"`
}

type searchSource struct {
	Items []sourceItem `json:"items"`
}

type sourceItem struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Tier        string `json:"tier"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

type searchResponse struct {
	Items        []types.Article `json:"items"`
	Continuation string          `json:"continuation"`
}
