package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/datenorm/internal/exitcode"
	"github.com/gyeh/datenorm/internal/ingest"
	"github.com/gyeh/datenorm/internal/logging"
	"github.com/gyeh/datenorm/internal/normalize"
)

var detectCmd = &cobra.Command{
	Use:   "detect [value...]",
	Short: "Detect one date format for a Parquet file, arguments, or stdin lines",
	RunE:  runDetect,
}

func init() {
	f := detectCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Parquet file to sample instead of arguments")
	f.StringVar(&cfg.Output, "output", "text", "Output format: text or json")
	rootCmd.AddCommand(detectCmd)
}

type detectResult struct {
	Format     string `json:"format"`
	Order      string `json:"order"`
	Separator  string `json:"separator"`
	Conclusive bool   `json:"conclusive"`
}

func runDetect(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	if err := checkOutput(cfg.Output); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	var res detectResult
	if cfg.FilePath != "" {
		if err := cfg.Validate(); err != nil {
			log.Error().Err(err).Msg("config validation failed")
			os.Exit(exitcode.UsageError)
		}
		// Detection must not be short-circuited by an explicit format.
		cfg.Order, cfg.Separator = "", ""
		in, err := ingest.Inspect(log, &cfg)
		if err != nil {
			log.Error().Err(err).Msg("detect failed")
			os.Exit(exitcode.ValidationError)
		}
		res = newDetectResult(in.Rules.Normalizer.Options, in.Conclusive)
	} else {
		inputs := args
		if len(inputs) == 0 {
			var err error
			if inputs, err = readLines(os.Stdin); err != nil {
				log.Error().Err(err).Msg("read stdin failed")
				os.Exit(exitcode.UsageError)
			}
		}
		for i := range inputs {
			inputs[i] = normalize.Fold(inputs[i])
		}
		opts, ok := normalize.Detector{Fallback: normalize.DefaultOptions()}.Detect(inputs)
		res = newDetectResult(&opts, ok)
	}

	if cfg.Output == "json" {
		return writeJSON(os.Stdout, res)
	}
	fmt.Printf("%s (conclusive: %t)\n", res.Format, res.Conclusive)
	return nil
}

func newDetectResult(opts *normalize.FormatOptions, conclusive bool) detectResult {
	if opts == nil || !conclusive {
		return detectResult{Format: "unknown"}
	}
	res := detectResult{Format: opts.String(), Order: opts.Order.String(), Conclusive: true}
	if opts.Fixed() {
		res.Separator = "none"
	} else {
		res.Separator = string(opts.Separator)
	}
	return res
}
