package model

import (
	"time"

	"github.com/google/uuid"
)

// NormalizedRow is the output of normalizing one SourceRow. It is written to
// Parquet by convert and COPY-loaded into datenorm.stage_values by ingest.
type NormalizedRow struct {
	BatchID      uuid.UUID `parquet:"-"`
	SourceFileID int64     `parquet:"-"`

	RowNumber   int64   `parquet:"row_number"`
	SourceRowID *int64  `parquet:"source_row_id,optional"`
	Raw         *string `parquet:"raw,optional"`

	// Normalized is YYYY-MM-DDTHH:MM:SS.mmmZ, or nil if the value was rejected.
	Normalized *string    `parquet:"normalized,optional"`
	Timestamp  *time.Time `parquet:"-"`
	FieldOrder string     `parquet:"field_order"`
	// Valid is false when normalization or calendar construction failed.
	Valid   bool   `parquet:"valid"`
	RowHash []byte `parquet:"row_hash"`
}

// StagingColumns returns the ordered column names for COPY into datenorm.stage_values.
func StagingColumns() []string {
	return []string{
		"batch_id",
		"source_file_id",
		"row_number",
		"source_row_id",
		"raw",
		"normalized",
		"value_ts",
		"field_order",
		"valid",
		"row_hash",
	}
}

// CopyValues returns the row values in the same order as StagingColumns(),
// suitable for pgx CopyFromSource.
func (r *NormalizedRow) CopyValues() []any {
	return []any{
		r.BatchID,
		r.SourceFileID,
		r.RowNumber,
		r.SourceRowID,
		r.Raw,
		r.Normalized,
		r.Timestamp,
		r.FieldOrder,
		r.Valid,
		r.RowHash,
	}
}
