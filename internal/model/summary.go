package model

import "time"

// ImportSummary captures metrics from a single roster import run.
type ImportSummary struct {
	FilePath      string
	FileSHA256    string
	ImportBatchID string
	RowsRead      int64
	RowsImported  int64
	RowsRejected  int64
	DurationRead  time.Duration
	DurationMap   time.Duration
	DurationTotal time.Duration
}
