package model

// SourceRow mirrors the Parquet input schema: one loosely formatted
// date or date-time string per row.
type SourceRow struct {
	RowID *int64  `parquet:"row_id,optional"`
	Value *string `parquet:"value,optional"`
}

