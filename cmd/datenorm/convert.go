package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/gyeh/datenorm/internal/exitcode"
	"github.com/gyeh/datenorm/internal/ingest"
	"github.com/gyeh/datenorm/internal/logging"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Normalize a Parquet file of dates into a new Parquet file (no database)",
	RunE:  runConvert,
}

func init() {
	f := convertCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to input Parquet file (required)")
	f.StringVar(&cfg.OutPath, "out", "", "Path to output Parquet file (required)")
	_ = convertCmd.MarkFlagRequired("file")
	_ = convertCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	summary, err := ingest.Convert(ctx, log, &cfg)
	if err != nil {
		exitPipeline(log, err, "convert failed")
	}

	fmt.Printf("Convert complete: %d rows written to %s, %d valid, %d rejected, format %s (%.1fs)\n",
		summary.RowsWritten, cfg.OutPath, summary.RowsValid, summary.RowsRejected, summary.Format, summary.DurationTotal.Seconds())
	if summary.RowsRejected > 0 {
		os.Exit(exitcode.PartialSuccess)
	}
	return nil
}
