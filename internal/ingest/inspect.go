package ingest

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/gyeh/datenorm/internal/config"
	"github.com/gyeh/datenorm/internal/model"
	"github.com/gyeh/datenorm/internal/normalize"
	"github.com/gyeh/datenorm/internal/parquetio"
)

// formatPerValue describes a run where every value is guessed on its own.
const formatPerValue = "auto (per value)"

// Inspection is everything learned about a file before any row is written.
type Inspection struct {
	FilePath   string
	FileSHA256 string
	FileSize   int64
	NumRows    int64
	Rules      Rules
	// Format is a human-readable form of the applied date format.
	Format string
	// Conclusive is true when the format was configured or detected from an
	// unambiguous sample.
	Conclusive bool
	Duration   time.Duration
}

// Inspect hashes and validates the file and settles the date format. An
// explicitly configured format is used as-is; otherwise up to cfg.Samples()
// rows are run through the format detector. When no sample is conclusive,
// each value is guessed individually under the configured ambiguity policy.
func Inspect(log zerolog.Logger, cfg *config.Config) (*Inspection, error) {
	start := time.Now()

	n, err := cfg.Normalizer()
	if err != nil {
		return nil, fmt.Errorf("inspect config: %w", err)
	}

	sha, err := normalize.FileHash(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("inspect hash: %w", err)
	}
	stat, err := os.Stat(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("inspect stat: %w", err)
	}

	schema, err := parquetio.ReadSchema(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("inspect open: %w", err)
	}
	if err := parquetio.ValidateSchema(schema); err != nil {
		return nil, fmt.Errorf("inspect validate: %w", err)
	}

	reader, err := parquetio.Open[model.SourceRow](cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("inspect open: %w", err)
	}
	defer reader.Close()

	in := &Inspection{
		FilePath:   cfg.FilePath,
		FileSHA256: sha,
		FileSize:   stat.Size(),
		NumRows:    reader.NumRows(),
		Rules:      Rules{Normalizer: n, DateOnly: cfg.DateOnly},
	}

	if n.Options != nil {
		in.Format = n.Options.String()
		in.Conclusive = true
	} else {
		sample, err := reader.ReadN(cfg.Samples())
		if err != nil {
			return nil, fmt.Errorf("inspect sample: %w", err)
		}
		opts, ok := DetectFormat(sample)
		if ok {
			in.Rules.Normalizer.Options = &opts
			in.Format = opts.String()
			in.Conclusive = true
		} else {
			in.Format = formatPerValue
			log.Warn().
				Int("sampled", len(sample)).
				Msg("no sample had an unambiguous date format, guessing each value")
		}
	}

	in.Duration = time.Since(start)
	log.Info().
		Str("file", cfg.FilePath).
		Str("sha256", sha).
		Int64("rows", in.NumRows).
		Str("format", in.Format).
		Bool("conclusive", in.Conclusive).
		Dur("duration", in.Duration).
		Msg("inspection complete")

	return in, nil
}

// DetectFormat runs the elimination detector over sampled rows. ok is false
// when no row fixed the format.
func DetectFormat(rows []model.SourceRow) (normalize.FormatOptions, bool) {
	d := normalize.Detector{Fallback: normalize.DefaultOptions()}
	return normalize.DetectFunc(d, rows, func(r model.SourceRow) (string, bool) {
		if r.Value == nil {
			return "", false
		}
		return normalize.Fold(*r.Value), true
	})
}

// separatorLabel renders a separator for storage; fixed-width is "none".
func separatorLabel(opts *normalize.FormatOptions) *string {
	if opts == nil {
		return nil
	}
	s := "none"
	if !opts.Fixed() {
		s = string(opts.Separator)
	}
	return &s
}

func orderLabel(opts *normalize.FormatOptions) *string {
	if opts == nil {
		return nil
	}
	s := opts.Order.String()
	return &s
}
