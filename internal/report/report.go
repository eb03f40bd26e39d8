// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report assembles per-trend article reports and serializes them as
// an xlsx workbook with a YAML run manifest.
// Implements: prd005-report (R1-R4);
//
//	docs/ARCHITECTURE § Report.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pdiddy/trend-report/internal/extract"
	"github.com/pdiddy/trend-report/pkg/types"
)

// msPerDay converts the days_ago setting into a newerThan offset.
const msPerDay = 24 * 60 * 60 * 1000

// Searcher fetches the articles for one set of search terms. The Feedly
// client implements it; tests substitute a fake.
type Searcher interface {
	SearchArticles(ctx context.Context, aliases []string, newerThan int64, cfg types.FeedlyConfig, w io.Writer) []types.Article
}

// BuildResult holds the assembled report and batch statistics.
type BuildResult struct {
	Report    types.Report
	Processed int
	Skipped   int
}

// Total returns the number of trends considered.
func (r BuildResult) Total() int {
	return r.Processed + r.Skipped
}

// NewerThan returns the search window for daysAgo as a negative epoch
// millisecond offset, or 0 when daysAgo is 0 (unbounded).
func NewerThan(daysAgo int) int64 {
	return -int64(daysAgo) * msPerDay
}

// Build assembles the report for the first cfg.Report.NumTrends trends,
// printing per-trend status and returning a summary (R1.1-R1.4). Trends
// without search terms and trends with no articles are skipped: they appear
// in neither the summary nor the sheets (R1.3). A delay is applied between
// consecutive trend searches (R1.4).
func Build(ctx context.Context, trends []types.Trend, s Searcher, cfg types.PipelineConfig, w io.Writer) BuildResult {
	newerThan := NewerThan(cfg.Report.DaysAgo)
	fmt.Fprintf(w, "Searching for articles newer than %d days ago (newerThan: %d)\n", cfg.Report.DaysAgo, newerThan)

	if cfg.Report.NumTrends < len(trends) {
		trends = trends[:cfg.Report.NumTrends]
	}

	var result BuildResult
	for i, trend := range trends {
		if i > 0 && cfg.Report.TrendDelay > 0 {
			time.Sleep(cfg.Report.TrendDelay)
		}

		aliases := trend.Aliases
		label := strings.TrimSpace(trend.Label)
		if len(aliases) == 0 {
			fmt.Fprintf(w, "No aliases found for trend #%d. Using label %q as search term.\n", i+1, label)
			if label != "" {
				aliases = []string{label}
			}
		}
		if len(aliases) == 0 {
			fmt.Fprintf(w, "No label or aliases for trend #%d. Skipping.\n", i+1)
			if raw, err := json.MarshalIndent(trend, "", "  "); err == nil {
				fmt.Fprintf(w, "Trend record: %s\n", raw)
			}
			result.Skipped++
			continue
		}

		fmt.Fprintf(w, "\nProcessing trend #%d: %s\n", i+1, aliases[0])
		articles := s.SearchArticles(ctx, aliases, newerThan, cfg.Feedly, w)
		if len(articles) == 0 {
			fmt.Fprintf(w, "No articles found for trend #%d (%s). Skipping this trend in summary and sheets.\n", i+1, aliases[0])
			result.Skipped++
			continue
		}
		fmt.Fprintf(w, "Found %d article(s) for %s\n", len(articles), aliases[0])

		row := types.SummaryRow{
			Aliases:       strings.Join(aliases, ", "),
			TotalArticles: len(articles),
		}
		rows := make([]types.ClassifiedArticle, len(articles))
		for j, a := range articles {
			rows[j] = extract.Classify(a)
			if strings.Contains(rows[j].Type, extract.CategoryRegulatory) {
				row.Regulatory++
			}
			if strings.Contains(rows[j].Type, extract.CategoryExpert) {
				row.ExpertMentions++
			}
			if strings.Contains(rows[j].Type, extract.CategoryConference) {
				row.Conferences++
			}
		}

		result.Report.Summary = append(result.Report.Summary, row)
		result.Report.Sheets = append(result.Report.Sheets, types.TrendSheet{
			Name:     SanitizeSheetName(aliases[0]),
			Articles: rows,
		})
		result.Processed++
	}

	fmt.Fprintf(w, "\nReport summary: %d trend(s) processed, %d skipped\n", result.Processed, result.Skipped)
	return result
}

// maxSheetName is the xlsx worksheet name length limit.
const maxSheetName = 31

// sheetNameSanitizer removes the characters xlsx forbids in sheet names.
var sheetNameSanitizer = strings.NewReplacer(
	"[", "", "]", "", ":", "", "*", "", "?", "", "/", "", "\\", "",
)

// SanitizeSheetName makes name safe for use as a worksheet name: forbidden
// characters are removed and the result is truncated to 31 runes (R2.3).
// Distinct trends can sanitize to the same name; the workbook writer
// resolves that by overwriting (R3.4).
func SanitizeSheetName(name string) string {
	r := []rune(sheetNameSanitizer.Replace(name))
	if len(r) > maxSheetName {
		r = r[:maxSheetName]
	}
	return string(r)
}
