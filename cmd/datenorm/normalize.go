package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/datenorm/internal/exitcode"
	"github.com/gyeh/datenorm/internal/logging"
	"github.com/gyeh/datenorm/internal/normalize"
)

var detectFirst bool

var normalizeCmd = &cobra.Command{
	Use:   "normalize [value...]",
	Short: "Normalize date strings given as arguments or one per line on stdin",
	RunE:  runNormalize,
}

func init() {
	f := normalizeCmd.Flags()
	f.StringVar(&cfg.Output, "output", "text", "Output format: text or json")
	f.BoolVar(&detectFirst, "detect", false, "Detect one format from all inputs before normalizing")
	rootCmd.AddCommand(normalizeCmd)
}

// normalizeResult is one line of normalize output.
type normalizeResult struct {
	Input      string `json:"input"`
	Normalized string `json:"normalized,omitempty"`
	Order      string `json:"order,omitempty"`
	Valid      bool   `json:"valid"`
}

func runNormalize(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	n, err := cfg.Normalizer()
	if err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
	if err := checkOutput(cfg.Output); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	inputs := args
	if len(inputs) == 0 {
		if inputs, err = readLines(os.Stdin); err != nil {
			log.Error().Err(err).Msg("read stdin failed")
			os.Exit(exitcode.UsageError)
		}
	}

	folded := make([]string, len(inputs))
	for i, in := range inputs {
		folded[i] = normalize.Fold(in)
	}

	if detectFirst && n.Options == nil {
		opts, ok := normalize.Detector{Fallback: normalize.DefaultOptions()}.Detect(folded)
		if ok {
			n.Options = &opts
			log.Info().Str("format", opts.String()).Msg("format detected")
		} else {
			log.Warn().Msg("no input had an unambiguous date format, guessing each value")
		}
	}

	results := make([]normalizeResult, len(inputs))
	rejected := 0
	for i, in := range inputs {
		res := normalizeResult{Input: in}
		if cfg.DateOnly {
			res.Normalized, res.Valid = n.Date(folded[i])
		} else {
			res.Normalized, res.Valid = n.DateTime(folded[i])
		}
		if res.Valid {
			date, _, _ := normalize.SplitDateTime(folded[i])
			if opts, ok := n.Resolve(date); ok {
				res.Order = opts.Order.String()
			}
		} else {
			rejected++
			log.Warn().Int("line", i+1).Str("value", in).Msg("value rejected")
		}
		results[i] = res
	}

	if cfg.Output == "json" {
		if err := writeJSON(os.Stdout, results); err != nil {
			return err
		}
	} else {
		w := bufio.NewWriter(os.Stdout)
		for _, res := range results {
			fmt.Fprintln(w, res.Normalized)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	if rejected > 0 {
		os.Exit(exitcode.PartialSuccess)
	}
	return nil
}

// readLines returns the non-empty lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}
