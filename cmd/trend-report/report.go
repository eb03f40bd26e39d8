package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/trend-report/internal/config"
	"github.com/pdiddy/trend-report/internal/feedly"
	"github.com/pdiddy/trend-report/internal/report"
)

func init() {
	rootCmd.Flags().String("output", "", "workbook path (default article_details.xlsx)")
	rootCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	rootCmd.Flags().Duration("page-delay", 0, "pause between search result pages (default 1s)")
	rootCmd.Flags().Duration("trend-delay", 0, "pause between consecutive trends (default 2s)")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(viper.GetViper(), loadedSecrets)
	if err != nil {
		return err
	}

	// Flags refine the resolved config; zero means keep the configured value.
	if timeout, _ := cmd.Flags().GetDuration("timeout"); timeout != 0 {
		cfg.Feedly.Timeout = timeout
	}
	if pageDelay, _ := cmd.Flags().GetDuration("page-delay"); pageDelay != 0 {
		cfg.Feedly.PageDelay = pageDelay
	}
	if trendDelay, _ := cmd.Flags().GetDuration("trend-delay"); trendDelay != 0 {
		cfg.Report.TrendDelay = trendDelay
	}
	if output, _ := cmd.Flags().GetString("output"); output != "" {
		cfg.Report.OutputPath = output
	}

	client := &feedly.Client{
		HTTPClient: &http.Client{Timeout: cfg.Feedly.Timeout},
		APIKey:     cfg.Feedly.APIKey,
	}
	ctx := context.Background()

	fmt.Println("Loading config and trends...")
	trends, err := client.Trends(ctx, cfg.Feedly)
	if err != nil {
		return err
	}
	if len(trends) == 0 {
		fmt.Println("No trends found.")
		return nil
	}

	result := report.Build(ctx, trends, client, cfg, os.Stdout)

	fmt.Printf("\nWriting article details to %s...\n", cfg.Report.OutputPath)
	if err := report.WriteWorkbook(result.Report, cfg.Report.OutputPath); err != nil {
		return err
	}

	manifest := report.NewManifest(result.Report, cfg, cfg.Report.OutputPath)
	if err := report.WriteManifest(report.ManifestPath(cfg.Report.OutputPath), manifest); err != nil {
		fmt.Fprintf(os.Stderr, "warning: writing run manifest: %v\n", err)
	}

	fmt.Printf("Done! Output written to %s\n", cfg.Report.OutputPath)
	return nil
}
