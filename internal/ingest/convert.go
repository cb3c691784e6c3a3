package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyeh/datenorm/internal/config"
	"github.com/gyeh/datenorm/internal/model"
	"github.com/gyeh/datenorm/internal/parquetio"
)

// Convert normalizes every value of cfg.FilePath and writes the results to
// cfg.OutPath as NormalizedRow Parquet. No database is involved.
func Convert(ctx context.Context, log zerolog.Logger, cfg *config.Config) (*model.RunSummary, error) {
	totalStart := time.Now()

	in, err := Inspect(log, cfg)
	if err != nil {
		return nil, &PipelineError{Phase: "inspect", Err: err}
	}

	summary := &model.RunSummary{
		FilePath:       in.FilePath,
		FileSHA256:     in.FileSHA256,
		Format:         in.Format,
		Conclusive:     in.Conclusive,
		DurationDetect: in.Duration,
	}

	stageStart := time.Now()
	if err := convertRows(ctx, log, in, cfg.OutPath, summary); err != nil {
		return nil, &PipelineError{Phase: "convert", Err: err}
	}
	summary.DurationStage = time.Since(stageStart)
	summary.DurationTotal = time.Since(totalStart)

	log.Info().
		Str("out", cfg.OutPath).
		Int64("rows_read", summary.RowsRead).
		Int64("rows_valid", summary.RowsValid).
		Int64("rows_rejected", summary.RowsRejected).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("convert complete")

	return summary, nil
}

func convertRows(ctx context.Context, log zerolog.Logger, in *Inspection, outPath string, summary *model.RunSummary) error {
	reader, err := parquetio.Open[model.SourceRow](in.FilePath)
	if err != nil {
		return err
	}
	defer reader.Close()

	writer, err := parquetio.Create[model.NormalizedRow](outPath)
	if err != nil {
		return err
	}

	batch := make([]model.NormalizedRow, 0, readBatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		err := writer.Write(batch)
		batch = batch[:0]
		return err
	}

	err = eachNormalized(ctx, reader, in.Rules, uuid.Nil, 0, func(row *model.NormalizedRow) error {
		summary.RowsRead++
		if row.Valid {
			summary.RowsValid++
		} else {
			summary.RowsRejected++
			log.Debug().Int64("row", row.RowNumber).Msg("value rejected")
		}
		batch = append(batch, *row)
		if len(batch) == cap(batch) {
			return flush()
		}
		return nil
	})
	if err == nil {
		err = flush()
	}
	if err != nil {
		writer.Close()
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}
	summary.RowsWritten = writer.Written()
	if summary.RowsWritten != summary.RowsRead {
		return fmt.Errorf("wrote %d of %d rows", summary.RowsWritten, summary.RowsRead)
	}
	return nil
}
