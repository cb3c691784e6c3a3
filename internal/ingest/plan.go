package ingest

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyeh/datenorm/internal/config"
	"github.com/gyeh/datenorm/internal/model"
	"github.com/gyeh/datenorm/internal/parquetio"
)

// maxRejectedExamples caps the rejected values a plan reports.
const maxRejectedExamples = 10

// PlanResult is the dry-run report for a file.
type PlanResult struct {
	FilePath   string            `json:"file"`
	FileSHA256 string            `json:"sha256"`
	TotalRows  int64             `json:"total_rows"`
	Format     string            `json:"format"`
	Conclusive bool              `json:"conclusive"`
	Sampled    int               `json:"sampled"`
	Valid      int               `json:"valid"`
	Rejected   int               `json:"rejected"`
	Orders     map[string]int    `json:"orders"`
	Examples   []RejectedExample `json:"rejected_examples,omitempty"`
}

// RejectedExample is one value from the sample that failed normalization.
type RejectedExample struct {
	Row int64  `json:"row"`
	Raw string `json:"raw"`
}

// Plan inspects the file and normalizes the detection sample without writing
// anything, reporting how the full run would treat it.
func Plan(log zerolog.Logger, cfg *config.Config) (*PlanResult, error) {
	in, err := Inspect(log, cfg)
	if err != nil {
		return nil, &PipelineError{Phase: "inspect", Err: err}
	}

	reader, err := parquetio.Open[model.SourceRow](in.FilePath)
	if err != nil {
		return nil, &PipelineError{Phase: "plan", Err: err}
	}
	defer reader.Close()

	sample, err := reader.ReadN(cfg.Samples())
	if err != nil {
		return nil, &PipelineError{Phase: "plan", Err: err}
	}

	res := &PlanResult{
		FilePath:   in.FilePath,
		FileSHA256: in.FileSHA256,
		TotalRows:  in.NumRows,
		Format:     in.Format,
		Conclusive: in.Conclusive,
		Sampled:    len(sample),
		Orders:     make(map[string]int),
	}
	for i := range sample {
		row := ToNormalizedRow(&sample[i], in.Rules, uuid.Nil, 0, int64(i+1))
		res.Orders[row.FieldOrder]++
		if row.Valid {
			res.Valid++
			continue
		}
		res.Rejected++
		if len(res.Examples) < maxRejectedExamples {
			ex := RejectedExample{Row: row.RowNumber}
			if row.Raw != nil {
				ex.Raw = *row.Raw
			}
			res.Examples = append(res.Examples, ex)
		}
	}

	log.Info().
		Int("sampled", res.Sampled).
		Int("valid", res.Valid).
		Int("rejected", res.Rejected).
		Msg("plan complete")

	return res, nil
}
