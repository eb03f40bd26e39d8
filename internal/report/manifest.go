// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/trend-report/pkg/types"
)

// Manifest is the on-disk record of one report run: the parameters that
// produced the workbook and the per-trend totals. The researcher can see
// what a workbook contains without opening it, and compare runs over time.
// Implements: prd005-report R4.1-R4.3.
type Manifest struct {
	Run      RunParams      `yaml:"run"`
	Workbook string         `yaml:"workbook"`
	Trends   []TrendSummary `yaml:"trends"`
}

// RunParams stores the settings that produced the report.
type RunParams struct {
	NumTrends int       `yaml:"num_trends"`
	DaysAgo   int       `yaml:"days_ago"`
	NLPID     string    `yaml:"nlp_id"`
	NewerThan int64     `yaml:"newer_than"`
	Timestamp time.Time `yaml:"timestamp"`
}

// TrendSummary stores one processed trend's sheet name and counts.
type TrendSummary struct {
	Sheet          string `yaml:"sheet"`
	Aliases        string `yaml:"aliases"`
	TotalArticles  int    `yaml:"total_articles"`
	Regulatory     int    `yaml:"regulatory"`
	ExpertMentions int    `yaml:"expert_mentions"`
	Conferences    int    `yaml:"conferences"`
}

// NewManifest builds the manifest for an assembled report.
func NewManifest(r types.Report, cfg types.PipelineConfig, workbook string) Manifest {
	m := Manifest{
		Run: RunParams{
			NumTrends: cfg.Report.NumTrends,
			DaysAgo:   cfg.Report.DaysAgo,
			NLPID:     cfg.Feedly.NLPID,
			NewerThan: NewerThan(cfg.Report.DaysAgo),
			Timestamp: time.Now().UTC(),
		},
		Workbook: workbook,
	}
	for i, row := range r.Summary {
		m.Trends = append(m.Trends, TrendSummary{
			Sheet:          r.Sheets[i].Name,
			Aliases:        row.Aliases,
			TotalArticles:  row.TotalArticles,
			Regulatory:     row.Regulatory,
			ExpertMentions: row.ExpertMentions,
			Conferences:    row.Conferences,
		})
	}
	return m
}

// WriteManifest saves the manifest as YAML.
func WriteManifest(path string, m Manifest) error {
	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadManifest loads a previously written manifest.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}

// ManifestPath derives the manifest location from the workbook path by
// swapping the extension for .yaml.
func ManifestPath(workbook string) string {
	return strings.TrimSuffix(workbook, filepath.Ext(workbook)) + ".yaml"
}
