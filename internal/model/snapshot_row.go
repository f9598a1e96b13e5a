package model

import "time"

// SnapshotRow mirrors the Parquet schema of the report snapshot. Timestamps
// are stored as unix seconds so a write/read cycle reproduces the report
// exactly, bit for bit.
type SnapshotRow struct {
	User string `parquet:"user"`

	DurationSeconds uint64 `parquet:"duration_seconds"`

	RemovedFiles uint64 `parquet:"removed_files"`
	RemovedBytes uint64 `parquet:"removed_bytes"`
	KeptFiles    uint64 `parquet:"kept_files"`
	KeptBytes    uint64 `parquet:"kept_bytes"`

	FailedRemovedFiles uint64 `parquet:"failed_removed_files"`
	FailedRemovedBytes uint64 `parquet:"failed_removed_bytes"`

	TotalFiles uint64 `parquet:"total_files"`
	TotalBytes uint64 `parquet:"total_bytes"`

	Directories uint64 `parquet:"directories"`
	Symlinks    uint64 `parquet:"symlinks"`
	Unknown     uint64 `parquet:"unknown"`

	PercentFilesRemoved float64 `parquet:"percent_files_removed"`
	PercentBytesRemoved float64 `parquet:"percent_bytes_removed"`

	PrePurgeAvgFileSize  float64 `parquet:"pre_purge_avg_file_size"`
	PurgedAvgFileSize    float64 `parquet:"purged_avg_file_size"`
	PostPurgeAvgFileSize float64 `parquet:"post_purge_avg_file_size"`

	RemovalBasisTime int64 `parquet:"removal_basis_time"`
	CurrentTime      int64 `parquet:"current_time"`
	FinishTime       int64 `parquet:"finish_time"`

	PurgeSuccess bool `parquet:"purge_success"`
	DryRun       bool `parquet:"dry_run"`
}

// NewSnapshotRow converts a typed report row into its Parquet representation.
func NewSnapshotRow(r PurgeRow) SnapshotRow {
	return SnapshotRow{
		User:                 r.User,
		DurationSeconds:      r.DurationSeconds,
		RemovedFiles:         r.RemovedFiles,
		RemovedBytes:         r.RemovedBytes,
		KeptFiles:            r.KeptFiles,
		KeptBytes:            r.KeptBytes,
		FailedRemovedFiles:   r.FailedRemovedFiles,
		FailedRemovedBytes:   r.FailedRemovedBytes,
		TotalFiles:           r.TotalFiles,
		TotalBytes:           r.TotalBytes,
		Directories:          r.Directories,
		Symlinks:             r.Symlinks,
		Unknown:              r.Unknown,
		PercentFilesRemoved:  r.PercentFilesRemoved,
		PercentBytesRemoved:  r.PercentBytesRemoved,
		PrePurgeAvgFileSize:  r.PrePurgeAvgFileSize,
		PurgedAvgFileSize:    r.PurgedAvgFileSize,
		PostPurgeAvgFileSize: r.PostPurgeAvgFileSize,
		RemovalBasisTime:     r.RemovalBasisTime.Unix(),
		CurrentTime:          r.CurrentTime.Unix(),
		FinishTime:           r.FinishTime.Unix(),
		PurgeSuccess:         r.PurgeSuccess,
		DryRun:               r.DryRun,
	}
}

// PurgeRow converts a Parquet snapshot row back into a typed report row.
func (s SnapshotRow) PurgeRow() PurgeRow {
	return PurgeRow{
		User:                 s.User,
		DurationSeconds:      s.DurationSeconds,
		RemovedFiles:         s.RemovedFiles,
		RemovedBytes:         s.RemovedBytes,
		KeptFiles:            s.KeptFiles,
		KeptBytes:            s.KeptBytes,
		FailedRemovedFiles:   s.FailedRemovedFiles,
		FailedRemovedBytes:   s.FailedRemovedBytes,
		TotalFiles:           s.TotalFiles,
		TotalBytes:           s.TotalBytes,
		Directories:          s.Directories,
		Symlinks:             s.Symlinks,
		Unknown:              s.Unknown,
		PercentFilesRemoved:  s.PercentFilesRemoved,
		PercentBytesRemoved:  s.PercentBytesRemoved,
		PrePurgeAvgFileSize:  s.PrePurgeAvgFileSize,
		PurgedAvgFileSize:    s.PurgedAvgFileSize,
		PostPurgeAvgFileSize: s.PostPurgeAvgFileSize,
		RemovalBasisTime:     time.Unix(s.RemovalBasisTime, 0).UTC(),
		CurrentTime:          time.Unix(s.CurrentTime, 0).UTC(),
		FinishTime:           time.Unix(s.FinishTime, 0).UTC(),
		PurgeSuccess:         s.PurgeSuccess,
		DryRun:               s.DryRun,
	}
}
