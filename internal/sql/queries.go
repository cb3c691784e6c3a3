package sql

import (
	"embed"
)

// Migrations holds the schema DDL applied by db.ApplyMigrations.
//
//go:embed migrations/*.sql
var Migrations embed.FS

//go:embed queries/create_migrations_table.sql
var CreateMigrationsTable string

//go:embed queries/migration_applied.sql
var MigrationApplied string

//go:embed queries/record_migration.sql
var RecordMigration string

//go:embed queries/register_source_file.sql
var RegisterSourceFile string

//go:embed queries/lookup_source_file.sql
var LookupSourceFile string

//go:embed queries/reset_source_file.sql
var ResetSourceFile string

//go:embed queries/update_status.sql
var UpdateStatus string

//go:embed queries/finalize_source_file.sql
var FinalizeSourceFile string

//go:embed queries/delete_staging_batch.sql
var DeleteStagingBatch string

//go:embed queries/delete_source_file_rows.sql
var DeleteSourceFileRows string
