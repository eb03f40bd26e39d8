// Package extract derives report fields from raw Feedly articles: canonical
// URLs, readable text, display timestamps, and category membership.
// Implements: prd004-classification (R1-R3);
//
//	docs/ARCHITECTURE § Classification.
package extract

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/pdiddy/trend-report/pkg/types"
)

// Category labels reported in the type column and counted in the summary.
const (
	CategoryRegulatory = "Regulatory"
	CategoryExpert     = "Expert Mentions"
	CategoryConference = "Conferences"
)

// Feedly NLP ids that map annotations to report categories (R2.1-R2.3).
var regulatoryIDs = []string{
	"nlp/f/businessEvent/regulatory-changes",
	"nlp/f/businessEvent/regulatory-approvals",
}

const (
	conferenceID = "nlp/f/businessEvent/participation-in-an-event"
	expertID     = "nlp/f/topic/6001"
)

// tagRe matches one HTML tag, opening or closing.
var tagRe = regexp.MustCompile(`(?i)</?[^>]+>`)

// StripTags reduces an HTML fragment to plain text: tags become spaces,
// newlines and carriage returns become spaces, doubled spaces collapse, and
// the result is trimmed. Collapsing is a single pass, so a run of three or
// more spaces keeps a residual space (R1.4).
func StripTags(html string) string {
	if html == "" {
		return ""
	}
	s := tagRe.ReplaceAllString(html, " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "  ", " ")
	return strings.TrimSpace(s)
}

// URL picks the best location for an article: the canonical URL when
// present, otherwise the first alternate link (R1.1).
func URL(a types.Article) string {
	if a.CanonicalURL != "" {
		return a.CanonicalURL
	}
	if len(a.Alternate) > 0 {
		return a.Alternate[0].Href
	}
	return ""
}

// Content returns the article's readable text: the first non-empty of full
// content, body, and summary, tag-stripped (R1.2). Precedence is decided on
// the raw HTML, so a candidate that strips to nothing is not replaced by a
// later one.
func Content(a types.Article) string {
	if a.FullContent != "" {
		return StripTags(a.FullContent)
	}
	if a.Content.Content != "" {
		return StripTags(a.Content.Content)
	}
	if a.Summary.Content != "" {
		return StripTags(a.Summary.Content)
	}
	return ""
}

// HumanDate formats an epoch-millisecond timestamp as "2006-01-02 15:04:05"
// in UTC. A missing or malformed crawl time formats as "" (R1.3).
func HumanDate(ms json.Number) string {
	n, err := ms.Int64()
	if err != nil {
		return ""
	}
	return time.UnixMilli(n).UTC().Format("2006-01-02 15:04:05")
}

// Categories returns the distinct categories an article belongs to, in the
// order its annotations match: business events first (regulatory, then
// conference, per event), then topics (expert mentions). One article can
// belong to several categories (R2.4).
func Categories(a types.Article) []string {
	var cats []string
	for _, be := range a.BusinessEvents {
		for _, id := range regulatoryIDs {
			if be.ID == id {
				cats = append(cats, CategoryRegulatory)
			}
		}
		if be.ID == conferenceID {
			cats = append(cats, CategoryConference)
		}
	}
	for _, topic := range a.CommonTopics {
		if topic.ID == expertID {
			cats = append(cats, CategoryExpert)
		}
	}
	return dedup(cats)
}

// dedup removes repeated labels, keeping first occurrences in order.
func dedup(labels []string) []string {
	seen := make(map[string]bool, len(labels))
	var out []string
	for _, l := range labels {
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}

// TypeLabel joins the article's categories with ", " for display. Articles
// matching no category get "".
func TypeLabel(a types.Article) string {
	return strings.Join(Categories(a), ", ")
}

// Classify projects a raw article onto the flat record used for worksheet
// rows (R1.1-R1.5, R3.1).
func Classify(a types.Article) types.ClassifiedArticle {
	return types.ClassifiedArticle{
		ID:      a.ID,
		Title:   a.Title,
		Crawled: HumanDate(a.Crawled),
		URL:     URL(a),
		Content: Content(a),
		Type:    TypeLabel(a),
	}
}
