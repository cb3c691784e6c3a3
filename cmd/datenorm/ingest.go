package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/gyeh/datenorm/internal/db"
	"github.com/gyeh/datenorm/internal/exitcode"
	"github.com/gyeh/datenorm/internal/ingest"
	"github.com/gyeh/datenorm/internal/logging"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Normalize a Parquet file of dates and load it into the database",
	RunE:  runIngest,
}

func init() {
	f := ingestCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to Parquet file (required)")
	f.BoolVar(&cfg.Force, "force", false, "Reload even if the file SHA is already complete")
	_ = ingestCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cfg.ValidateWithDSN(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	summary, err := ingest.Run(ctx, pool, log, &cfg)
	if err != nil {
		pool.Close()
		exitPipeline(log, err, "ingest failed")
	}

	fmt.Printf("Ingest complete: %d rows staged, %d valid, %d rejected, format %s (%.1fs)\n",
		summary.RowsWritten, summary.RowsValid, summary.RowsRejected, summary.Format, summary.DurationTotal.Seconds())
	if summary.RowsRejected > 0 {
		pool.Close()
		os.Exit(exitcode.PartialSuccess)
	}
	return nil
}
