// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ClassifiedArticle is the flattened, display-ready projection of an Article.
// All fields are plain strings or already-formatted values, ready to become a
// worksheet row. Per prd004-classification R1.1-R1.5.
type ClassifiedArticle struct {
	// ID is the Feedly entry id, carried through unchanged.
	ID string `json:"id" yaml:"id"`

	// Title is the article headline, carried through unchanged.
	Title string `json:"title" yaml:"title"`

	// Crawled is the crawl time formatted "YYYY-MM-DD HH:MM:SS" in UTC, or ""
	// when the raw record had no usable timestamp.
	Crawled string `json:"crawled" yaml:"crawled"`

	// URL is the canonical URL, falling back to the first alternate link.
	URL string `json:"url" yaml:"url"`

	// Content is the tag-stripped article text.
	Content string `json:"content" yaml:"content"`

	// Type is the comma-joined category membership ("Regulatory",
	// "Expert Mentions", "Conferences"), or "" when none apply.
	Type string `json:"type" yaml:"type"`
}

// SummaryRow is one row of the report's Summary sheet: per-trend article and
// category counts. Per prd005-report R2.2.
type SummaryRow struct {
	// Aliases is the trend's search terms joined with ", ".
	Aliases string `json:"aliases" yaml:"aliases"`

	// TotalArticles is the number of articles found for the trend.
	TotalArticles int `json:"total_articles" yaml:"total_articles"`

	// Regulatory counts articles whose type includes "Regulatory".
	Regulatory int `json:"regulatory" yaml:"regulatory"`

	// ExpertMentions counts articles whose type includes "Expert Mentions".
	ExpertMentions int `json:"expert_mentions" yaml:"expert_mentions"`

	// Conferences counts articles whose type includes "Conferences".
	Conferences int `json:"conferences" yaml:"conferences"`
}

// TrendSheet is one per-trend worksheet: a sanitized sheet name plus the
// classified articles in arrival order.
type TrendSheet struct {
	// Name is the worksheet name, already sanitized for xlsx.
	Name string `json:"name" yaml:"name"`

	// Articles holds the classified rows for the sheet.
	Articles []ClassifiedArticle `json:"articles" yaml:"articles"`
}

// Report is the assembled multi-trend report. Summary and Sheets are
// index-aligned: Summary[i] describes Sheets[i], and Summary[i].TotalArticles
// equals len(Sheets[i].Articles). Per prd005-report R2.1-R2.4.
type Report struct {
	// Summary holds one row per processed trend.
	Summary []SummaryRow `json:"summary" yaml:"summary"`

	// Sheets holds one worksheet per processed trend, same order as Summary.
	Sheets []TrendSheet `json:"sheets" yaml:"sheets"`
}
