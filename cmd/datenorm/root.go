package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/datenorm/internal/config"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "datenorm",
	Short: "Normalize loosely formatted dates to ISO-8601",
	Long: "Guesses the field order and separators of free-form date and date-time strings " +
		"and rewrites them as YYYY-MM-DDTHH:MM:SS.mmmZ, standalone or in bulk from Parquet into Postgres.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfg.ConfigPath == "" {
			return nil
		}
		return cfg.LoadFromFile(cfg.ConfigPath)
	},
}

func init() {
	if err := cfg.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "datenorm: %v\n", err)
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", cfg.DSN, "Postgres connection string (or set DATABASE_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text or json")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	pf.StringVar(&cfg.ConfigPath, "config", "", "YAML file with date format settings")
	pf.StringVar(&cfg.Order, "order", "", "Field order: auto, ymd, dmy or mdy")
	pf.StringVar(&cfg.Separator, "separator", "", "Date separator, or \"none\" for fixed-width digits (requires --order)")
	pf.StringVar(&cfg.TimeSeparator, "time-separator", "", "Time separator (sniffed when empty)")
	pf.StringVar(&cfg.Ambiguity, "ambiguity", "", "Dates valid both ways: day-first, month-first or reject")
	pf.BoolVar(&cfg.DateOnly, "date-only", false, "Emit YYYY-MM-DD and ignore any time component")
	pf.IntVar(&cfg.SampleSize, "sample-size", 0, "Rows sampled for format detection (default 1000)")
}
