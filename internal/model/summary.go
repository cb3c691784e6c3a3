package model

import "time"

// RunSummary captures metrics from a single ingest or convert run.
type RunSummary struct {
	FilePath     string
	FileSHA256   string
	SourceFileID int64
	BatchID      string

	// Format is the date format applied to every row, e.g. "dmy '/'".
	Format     string
	Conclusive bool

	RowsRead     int64
	RowsValid    int64
	RowsRejected int64
	RowsWritten  int64

	DurationDetect   time.Duration
	DurationStage    time.Duration
	DurationFinalize time.Duration
	DurationTotal    time.Duration
}
