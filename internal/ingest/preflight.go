package ingest

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/datenorm/internal/config"
	embedsql "github.com/gyeh/datenorm/internal/sql"
)

// Source file statuses recorded in datenorm.source_files.
const (
	StatusPending  = "pending"
	StatusStaging  = "staging"
	StatusStaged   = "staged"
	StatusComplete = "complete"
	StatusFailed   = "failed"
)

// PreflightResult holds all context resolved during the preflight phase.
type PreflightResult struct {
	*Inspection
	// SourceFileID is the datenorm.source_files key, inserted or looked up by
	// sha256.
	SourceFileID int64
	// BatchID tags the staged rows of this run for cleanup.
	BatchID uuid.UUID
	// AlreadyLoaded is true when the file's sha256 is already complete in the
	// DB and force mode is off.
	AlreadyLoaded bool
}

// Preflight inspects the file and registers it in datenorm.source_files.
func Preflight(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, cfg *config.Config) (*PreflightResult, error) {
	in, err := Inspect(log, cfg)
	if err != nil {
		return nil, err
	}

	id, alreadyLoaded, err := registerSourceFile(ctx, pool, in, cfg.Force)
	if err != nil {
		return nil, fmt.Errorf("preflight register file: %w", err)
	}

	return &PreflightResult{
		Inspection:    in,
		SourceFileID:  id,
		BatchID:       uuid.New(),
		AlreadyLoaded: alreadyLoaded,
	}, nil
}

func registerSourceFile(ctx context.Context, pool *pgxpool.Pool, in *Inspection, force bool) (int64, bool, error) {
	opts := in.Rules.Normalizer.Options

	var id int64
	err := pool.QueryRow(ctx, embedsql.RegisterSourceFile,
		filepath.Base(in.FilePath),
		in.FileSHA256,
		in.FileSize,
		orderLabel(opts),
		separatorLabel(opts),
		in.Conclusive,
	).Scan(&id)
	if err == nil {
		return id, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, false, fmt.Errorf("register source file: %w", err)
	}

	// ON CONFLICT DO NOTHING returned no row: the file is known.
	var status string
	if err := pool.QueryRow(ctx, embedsql.LookupSourceFile, in.FileSHA256).Scan(&id, &status); err != nil {
		return 0, false, fmt.Errorf("lookup existing source file: %w", err)
	}
	if !force && status == StatusComplete {
		return id, true, nil
	}

	if _, err := pool.Exec(ctx, embedsql.DeleteSourceFileRows, id); err != nil {
		return 0, false, fmt.Errorf("delete previous rows: %w", err)
	}
	if _, err := pool.Exec(ctx, embedsql.ResetSourceFile, id, orderLabel(opts), separatorLabel(opts), in.Conclusive); err != nil {
		return 0, false, fmt.Errorf("reset source file: %w", err)
	}
	return id, false, nil
}
