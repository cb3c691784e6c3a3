package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gyeh/datenorm/internal/exitcode"
	"github.com/gyeh/datenorm/internal/ingest"
	"github.com/gyeh/datenorm/internal/logging"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run format detection and stats (no writes)",
	RunE:  runPlan,
}

func init() {
	f := planCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to Parquet file (required)")
	f.StringVar(&cfg.Output, "output", "text", "Report format: text or json")
	_ = planCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
	if err := checkOutput(cfg.Output); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	res, err := ingest.Plan(log, &cfg)
	if err != nil {
		exitPipeline(log, err, "plan failed")
	}

	if cfg.Output == "json" {
		return writeJSON(os.Stdout, res)
	}

	fmt.Println("=== datenorm plan ===")
	fmt.Printf("File:       %s\n", res.FilePath)
	fmt.Printf("SHA-256:    %s\n", res.FileSHA256)
	fmt.Printf("Total rows: %d\n", res.TotalRows)
	fmt.Printf("Format:     %s\n", res.Format)
	fmt.Printf("Conclusive: %t\n", res.Conclusive)
	fmt.Printf("Sampled:    %d rows\n", res.Sampled)
	fmt.Println()
	fmt.Printf("Valid:      %d\n", res.Valid)
	fmt.Printf("Rejected:   %d\n", res.Rejected)

	orders := make([]string, 0, len(res.Orders))
	for o := range res.Orders {
		orders = append(orders, o)
	}
	sort.Strings(orders)
	fmt.Println("\nField orders (sampled):")
	for _, o := range orders {
		fmt.Printf("  %-10s %d\n", o, res.Orders[o])
	}

	if len(res.Examples) > 0 {
		fmt.Println("\nRejected examples:")
		for _, ex := range res.Examples {
			fmt.Printf("  row %-8d %q\n", ex.Row, ex.Raw)
		}
	}
	return nil
}
