// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the trend-report CLI.
// Implements: prd001-config, prd002-trend-discovery, prd003-article-search,
//             prd004-classification, prd005-report (CLI surface).
// See docs/ARCHITECTURE § Pipeline Interface, § Project Structure.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/trend-report/internal/config"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the trend-report CLI. A bare invocation
// performs a complete run: trend discovery, article search, classification,
// and the xlsx report.
var rootCmd = &cobra.Command{
	Use:   "trend-report",
	Short: "Build an xlsx report of the articles behind emerging Feedly trends",
	Long: `trend-report discovers emerging trends through the Feedly trend-discovery
API, collects the recent articles mentioning each trend, classifies them by
business event, and writes a multi-sheet xlsx workbook: a Summary sheet with
per-trend counts plus one article-detail sheet per trend.

Running trend-report with no subcommand performs a complete run. Use the
trends subcommand to preview discovered trends without building a report.`,
	RunE: runReport,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := config.LoadSecrets(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./config.yaml or ~/.config/trend-report/config.yaml)")
}

func initConfig() {
	// A local .env can hold TREND_REPORT_* overrides for development runs.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "trend-report"))
		}
	}

	viper.SetEnvPrefix("TREND_REPORT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
