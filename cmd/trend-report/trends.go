package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/trend-report/internal/config"
	"github.com/pdiddy/trend-report/internal/feedly"
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "List emerging trends without building a report",
	Long: `Trends queries the Feedly trend-discovery API and prints the discovered
trends with their aliases, ranked by growth. No articles are fetched and
no workbook is written.`,
	RunE: runTrends,
}

func init() {
	trendsCmd.Flags().Bool("json", false, "output trends as JSON")

	rootCmd.AddCommand(trendsCmd)
}

func runTrends(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(viper.GetViper(), loadedSecrets)
	if err != nil {
		return err
	}

	client := &feedly.Client{
		HTTPClient: &http.Client{Timeout: cfg.Feedly.Timeout},
		APIKey:     cfg.Feedly.APIKey,
	}

	trends, err := client.Trends(context.Background(), cfg.Feedly)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(trends)
	}

	if len(trends) == 0 {
		fmt.Println("No trends found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-30s  %s\n", "Rank", "Label", "Aliases")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 70))
	for i, tr := range trends {
		label := tr.Label
		if len(label) > 30 {
			label = label[:27] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-30s  %s\n", i+1, label, strings.Join(tr.Aliases, ", "))
	}

	fmt.Fprintf(os.Stdout, "\n%d trend(s)\n", len(trends))
	return nil
}
