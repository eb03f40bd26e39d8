// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the trend-report pipeline.
// Implements: prd002-trend-discovery (Trend, R2.1);
//
//	prd003-article-search (Article, R3.1-R3.3);
//	prd004-classification (ClassifiedArticle, R1.1-R1.5);
//	prd005-report (SummaryRow, TrendSheet, Report, R2.1-R2.4).
//
// See docs/ARCHITECTURE.md § Pipeline Interface, § Data Structures.
package types

import "encoding/json"

// Trend is one trending topic returned by Feedly trend discovery.
// Per prd002-trend-discovery R2.1, order follows the API response
// (descending growth upstream).
type Trend struct {
	// Label is the display name of the trend.
	Label string `json:"label" yaml:"label"`

	// Aliases lists alternate names for the trend, most canonical first.
	// Used as the article search terms.
	Aliases []string `json:"aliases" yaml:"aliases"`
}

// Link is one alternate location for an article.
type Link struct {
	Href string `json:"href" yaml:"href"`
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

// ContentBlock is an HTML content fragment attached to an article.
type ContentBlock struct {
	Content   string `json:"content" yaml:"content"`
	Direction string `json:"direction,omitempty" yaml:"direction,omitempty"`
}

// Entity is an NLP annotation (business event or common topic) Feedly
// attached to an article.
type Entity struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Article is a raw article record from Feedly search. Upstream records are
// loosely structured: every field is optional, and an absent field decodes to
// its zero value rather than failing the record. Per prd003-article-search R3.1.
type Article struct {
	// ID is the Feedly entry id.
	ID string `json:"id" yaml:"id"`

	// Title is the article headline.
	Title string `json:"title" yaml:"title"`

	// CanonicalURL is the publisher's canonical location, when known.
	CanonicalURL string `json:"canonicalUrl" yaml:"canonicalUrl"`

	// Alternate lists fallback locations, first entry preferred.
	Alternate []Link `json:"alternate" yaml:"alternate"`

	// FullContent is the complete article HTML, when Feedly captured it.
	FullContent string `json:"fullContent" yaml:"fullContent"`

	// Content is the feed-provided HTML body.
	Content ContentBlock `json:"content" yaml:"content"`

	// Summary is the feed-provided HTML summary.
	Summary ContentBlock `json:"summary" yaml:"summary"`

	// BusinessEvents lists Feedly NLP business event annotations.
	BusinessEvents []Entity `json:"businessEvents" yaml:"businessEvents"`

	// CommonTopics lists Feedly NLP topic annotations.
	CommonTopics []Entity `json:"commonTopics" yaml:"commonTopics"`

	// Crawled is the crawl time in epoch milliseconds. Kept as a json.Number
	// so a record with no crawl time still decodes; conversion to a display
	// string is deferred to classification. Per prd004-classification R1.3.
	Crawled json.Number `json:"crawled" yaml:"crawled"`
}
