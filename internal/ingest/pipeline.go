package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/datenorm/internal/config"
	"github.com/gyeh/datenorm/internal/model"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the full ingest pipeline: preflight → stage → finalize, with
// cleanup of the batch if staging or finalize fails.
func Run(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, cfg *config.Config) (*model.RunSummary, error) {
	totalStart := time.Now()

	// Phase 1: Preflight
	log.Info().Str("file", cfg.FilePath).Msg("starting preflight")
	pf, err := Preflight(ctx, pool, log, cfg)
	if err != nil {
		return nil, &PipelineError{Phase: "preflight", Err: err}
	}

	summary := &model.RunSummary{
		FilePath:       pf.FilePath,
		FileSHA256:     pf.FileSHA256,
		SourceFileID:   pf.SourceFileID,
		BatchID:        pf.BatchID.String(),
		Format:         pf.Format,
		Conclusive:     pf.Conclusive,
		DurationDetect: pf.Duration,
	}

	if pf.AlreadyLoaded {
		log.Info().
			Int64("source_file_id", pf.SourceFileID).
			Str("sha256", pf.FileSHA256).
			Msg("file already loaded, skipping (use --force to reload)")
		summary.DurationTotal = time.Since(totalStart)
		return summary, nil
	}

	// Phase 2: Stage
	log.Info().Msg("starting staging")
	if err := UpdateStatus(ctx, pool, pf.SourceFileID, StatusStaging); err != nil {
		return nil, &PipelineError{Phase: "stage", Err: err}
	}

	res, err := Stage(ctx, pool, log, pf)
	if err != nil {
		fail(pool, log, pf)
		return nil, &PipelineError{Phase: "stage", Err: err}
	}

	if err := UpdateStatus(ctx, pool, pf.SourceFileID, StatusStaged); err != nil {
		return nil, &PipelineError{Phase: "stage", Err: err}
	}

	// Phase 3: Finalize
	log.Info().Msg("finalizing")
	finalizeDur, err := Finalize(ctx, pool, log, pf.SourceFileID, res)
	if err != nil {
		fail(pool, log, pf)
		return nil, &PipelineError{Phase: "finalize", Err: err}
	}

	summary.RowsRead = res.RowsRead
	summary.RowsValid = res.RowsValid
	summary.RowsRejected = res.RowsRejected
	summary.RowsWritten = res.RowsStaged
	summary.DurationStage = res.Duration
	summary.DurationFinalize = finalizeDur
	summary.DurationTotal = time.Since(totalStart)

	log.Info().
		Int64("rows_read", summary.RowsRead).
		Int64("rows_valid", summary.RowsValid).
		Int64("rows_rejected", summary.RowsRejected).
		Str("format", summary.Format).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("ingest pipeline complete")

	return summary, nil
}

// fail marks the file failed and removes the batch. It runs on a fresh
// context so a cancelled run still cleans up after itself.
func fail(pool *pgxpool.Pool, log zerolog.Logger, pf *PreflightResult) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := UpdateStatus(ctx, pool, pf.SourceFileID, StatusFailed); err != nil {
		log.Warn().Err(err).Msg("marking file failed (non-fatal)")
	}
	if err := Cleanup(ctx, pool, log, pf.BatchID); err != nil {
		log.Warn().Err(err).Msg("staging cleanup failed (non-fatal)")
	}
}
