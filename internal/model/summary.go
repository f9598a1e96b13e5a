package model

import "time"

// ReportSummary captures metrics from a single report run.
type ReportSummary struct {
	RunID             string
	LogDir            string
	FilesDiscovered   int
	RecordsParsed     int
	Rows              int
	SnapshotPath      string
	SpreadsheetPath   string
	DurationParse     time.Duration
	DurationNormalize time.Duration
	DurationWrite     time.Duration
	DurationTotal     time.Duration
}
