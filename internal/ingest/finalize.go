package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	embedsql "github.com/gyeh/datenorm/internal/sql"
)

// Finalize records the row counts, marks the file complete, and runs ANALYZE
// on the staging table.
func Finalize(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, sourceFileID int64, res *StageResult) (time.Duration, error) {
	start := time.Now()

	if _, err := pool.Exec(ctx, embedsql.FinalizeSourceFile,
		sourceFileID, res.RowsRead, res.RowsValid, res.RowsRejected,
	); err != nil {
		return 0, fmt.Errorf("finalize source file: %w", err)
	}
	log.Info().Int64("source_file_id", sourceFileID).Msg("source file complete")

	if _, err := pool.Exec(ctx, "ANALYZE datenorm.stage_values"); err != nil {
		return 0, fmt.Errorf("analyze staging: %w", err)
	}
	log.Info().Msg("ANALYZE complete")

	return time.Since(start), nil
}
