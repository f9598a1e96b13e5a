package model

import "time"

// PurgeRow is one fully typed row of the aggregated purge report, keyed by
// user. Field order matches the presentation order of the report columns.
type PurgeRow struct {
	User string

	DurationSeconds uint64

	RemovedFiles uint64
	RemovedBytes uint64
	KeptFiles    uint64
	KeptBytes    uint64

	FailedRemovedFiles uint64
	FailedRemovedBytes uint64

	// Derived: removed + failed + kept
	TotalFiles uint64
	TotalBytes uint64

	// Non-regular-file counts
	Directories uint64
	Symlinks    uint64
	Unknown     uint64

	PercentFilesRemoved float64
	PercentBytesRemoved float64

	PrePurgeAvgFileSize  float64
	PurgedAvgFileSize    float64
	PostPurgeAvgFileSize float64

	RemovalBasisTime time.Time
	CurrentTime      time.Time
	FinishTime       time.Time

	PurgeSuccess bool
	DryRun       bool
}

// PurgeReport is the aggregated table, one row per user, sorted ascending
// by user. Immutable once built; a new run produces a new report.
type PurgeReport struct {
	Rows []PurgeRow
}

// IndexName is the header label of the row key column.
const IndexName = "user"

// ColumnNames returns the report column names (excluding the user index)
// in presentation order.
func ColumnNames() []string {
	return []string{
		"duration_seconds",
		"removed_files",
		"removed_bytes",
		"kept_files",
		"kept_bytes",
		"failed_removed_files",
		"failed_removed_bytes",
		"total_files",
		"total_bytes",
		"directories",
		"symlinks",
		"unknown",
		"percent_files_removed",
		"percent_bytes_removed",
		"pre_purge_avg_file_size",
		"purged_avg_file_size",
		"post_purge_avg_file_size",
		"removal_basis_time",
		"current_time",
		"finish_time",
		"purge_success",
		"dry_run",
	}
}
