package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "trend-report/0.1"). Per prd002-trend-discovery R4.3.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FeedlyConfig holds settings for the stages that call the Feedly API
// (trend discovery and article search).
// Per prd002-trend-discovery R1.1-R1.4, prd003-article-search R4.1-R4.2.
type FeedlyConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey is the Feedly API token, sent as a bearer credential.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// NLPID is the Feedly NLP topic id that seeds trend discovery
	// (default "nlp/f/topic/1874").
	NLPID string `json:"nlp_id" yaml:"nlp_id"`

	// PageDelay is the delay between consecutive search result pages (default 1s).
	PageDelay time.Duration `json:"page_delay" yaml:"page_delay"`
}

// ReportConfig holds settings for report assembly and serialization.
// Per prd005-report R1.1-R1.3.
type ReportConfig struct {
	// NumTrends is the number of discovered trends to report on (default 1).
	NumTrends int `json:"num_trends" yaml:"num_trends"`

	// DaysAgo is the size of the article search window in days (default 90).
	DaysAgo int `json:"days_ago" yaml:"days_ago"`

	// TrendDelay is the delay between consecutive trend searches (default 2s).
	TrendDelay time.Duration `json:"trend_delay" yaml:"trend_delay"`

	// OutputPath is the workbook file to write (default "article_details.xlsx").
	OutputPath string `json:"output_path" yaml:"output_path"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Feedly FeedlyConfig `json:"feedly" yaml:"feedly"`
	Report ReportConfig `json:"report" yaml:"report"`
}
