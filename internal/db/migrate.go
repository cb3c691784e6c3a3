package db

import (
	"context"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	embedsql "github.com/gyeh/datenorm/internal/sql"
)

// ApplyMigrations runs the embedded SQL migrations in filename order, skipping
// any already recorded in datenorm.schema_migrations.
func ApplyMigrations(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger) error {
	entries, err := fs.ReadDir(embedsql.Migrations, "migrations")
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	if _, err := pool.Exec(ctx, embedsql.CreateMigrationsTable); err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	applied := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()

		var done bool
		if err := pool.QueryRow(ctx, embedsql.MigrationApplied, name).Scan(&done); err != nil {
			return fmt.Errorf("check migration %s: %w", name, err)
		}
		if done {
			log.Debug().Str("migration", name).Msg("migration already applied")
			continue
		}

		data, err := fs.ReadFile(embedsql.Migrations, "migrations/"+name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}

		log.Info().Str("migration", name).Msg("applying migration")
		if _, err := pool.Exec(ctx, string(data)); err != nil {
			return fmt.Errorf("execute migration %s: %w", name, err)
		}
		if _, err := pool.Exec(ctx, embedsql.RecordMigration, name); err != nil {
			return fmt.Errorf("record migration %s: %w", name, err)
		}
		applied++
	}

	log.Info().Int("applied", applied).Int("total", len(entries)).Msg("migrations up to date")
	return nil
}
