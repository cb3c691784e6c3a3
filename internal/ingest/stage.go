package ingest

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/gyeh/datenorm/internal/db"
	"github.com/gyeh/datenorm/internal/model"
	"github.com/gyeh/datenorm/internal/parquetio"
	embedsql "github.com/gyeh/datenorm/internal/sql"
)

const readBatchSize = 1024

// StageResult holds metrics from the staging phase.
type StageResult struct {
	RowsRead     int64
	RowsValid    int64
	RowsRejected int64
	RowsStaged   int64
	Duration     time.Duration
}

// Stage streams rows from the Parquet file, normalizes them, and COPY-loads
// them into datenorm.stage_values via a channel-backed CopyFromSource.
// Rejected values are staged too, with valid = false.
func Stage(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, pf *PreflightResult) (*StageResult, error) {
	start := time.Now()

	reader, err := parquetio.Open[model.SourceRow](pf.FilePath)
	if err != nil {
		return nil, fmt.Errorf("stage open: %w", err)
	}
	defer reader.Close()

	ch := make(chan *model.NormalizedRow, readBatchSize)
	g, gctx := errgroup.WithContext(ctx)

	var res StageResult

	// Producer: read Parquet, normalize, push to channel.
	g.Go(func() error {
		defer close(ch)
		return eachNormalized(gctx, reader, pf.Rules, pf.BatchID, pf.SourceFileID, func(row *model.NormalizedRow) error {
			res.RowsRead++
			if row.Valid {
				res.RowsValid++
			} else {
				res.RowsRejected++
				log.Debug().Int64("row", row.RowNumber).Msg("value rejected")
			}
			select {
			case ch <- row:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	})

	// Consumer: COPY from channel into the staging table.
	g.Go(func() error {
		n, err := pool.CopyFrom(gctx,
			pgx.Identifier{"datenorm", "stage_values"},
			model.StagingColumns(),
			db.NewChannelSource[*model.NormalizedRow](gctx, ch),
		)
		if err != nil {
			return fmt.Errorf("stage copy: %w", err)
		}
		res.RowsStaged = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	res.Duration = time.Since(start)
	log.Info().
		Int64("rows_read", res.RowsRead).
		Int64("rows_staged", res.RowsStaged).
		Int64("rows_rejected", res.RowsRejected).
		Str("duration", res.Duration.String()).
		Float64("rows_per_sec", float64(res.RowsStaged)/res.Duration.Seconds()).
		Msg("staging complete")

	return &res, nil
}

// eachNormalized reads every row of reader in batches and hands the
// normalized result to fn. Row numbers start at 1.
func eachNormalized(ctx context.Context, reader *parquetio.Reader[model.SourceRow], rules Rules, batchID uuid.UUID, sourceFileID int64, fn func(*model.NormalizedRow) error) error {
	buf := make([]model.SourceRow, readBatchSize)
	var rowNum int64
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, readErr := reader.Read(buf)
		for i := 0; i < n; i++ {
			rowNum++
			if err := fn(ToNormalizedRow(&buf[i], rules, batchID, sourceFileID, rowNum)); err != nil {
				return err
			}
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return fmt.Errorf("read parquet at row %d: %w", rowNum, readErr)
		}
	}
}

// UpdateStatus updates the source_files status.
func UpdateStatus(ctx context.Context, pool *pgxpool.Pool, sourceFileID int64, status string) error {
	_, err := pool.Exec(ctx, embedsql.UpdateStatus, sourceFileID, status)
	return err
}
