package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/OpenClemson/orangefs-purge/internal/logparse"
	"github.com/OpenClemson/orangefs-purge/internal/model"
)

// requiredFields is every key a summary record must carry before
// normalization. The *_str trio are human-readable duplicates of the
// integer timestamps; they are required to be present but dropped unused.
var requiredFields = []string{
	"directory",
	"current_time",
	"current_time_str",
	"removal_basis_time",
	"removal_basis_time_str",
	"finish_time",
	"finish_time_str",
	"duration_seconds",
	"removed_bytes",
	"removed_files",
	"failed_removed_bytes",
	"failed_removed_files",
	"kept_bytes",
	"kept_files",
	"directories",
	"symlinks",
	"unknown",
	"percent_bytes_removed",
	"percent_files_removed",
	"pre_purge_avg_file_size",
	"post_purge_avg_file_size",
	"purged_avg_file_size",
	"dry_run",
	"purge_success",
}

// Build merges parsed log records into a single typed report: it derives the
// user key from the directory field, coerces every column to its schema type,
// computes the derived totals, and sorts rows by user. Any missing field,
// unparseable value, or overflow aborts the whole report; there is no
// partial result.
func Build(records []logparse.Record, mountPrefix string) (*model.PurgeReport, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no summary records parsed from any log file")
	}

	rows := make([]model.PurgeRow, 0, len(records))
	for _, rec := range records {
		row, err := buildRow(rec, mountPrefix)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].User < rows[j].User })
	return &model.PurgeReport{Rows: rows}, nil
}

func buildRow(rec logparse.Record, mountPrefix string) (model.PurgeRow, error) {
	for _, k := range requiredFields {
		if _, ok := rec.Fields[k]; !ok {
			return model.PurgeRow{}, &SchemaError{Source: rec.Source, Field: k, Reason: "missing required field"}
		}
	}

	dir := rec.Fields["directory"]
	if !strings.HasPrefix(dir, mountPrefix) {
		return model.PurgeRow{}, &SchemaError{
			Source: rec.Source,
			Field:  "directory",
			Reason: fmt.Sprintf("value %q does not start with mount prefix %q", dir, mountPrefix),
		}
	}
	user := strings.TrimPrefix(dir, mountPrefix)

	c := coercer{rec: rec}
	row := model.PurgeRow{
		User:                 user,
		DurationSeconds:      c.uint64Field("duration_seconds"),
		RemovedFiles:         c.uint64Field("removed_files"),
		RemovedBytes:         c.uint64Field("removed_bytes"),
		KeptFiles:            c.uint64Field("kept_files"),
		KeptBytes:            c.uint64Field("kept_bytes"),
		FailedRemovedFiles:   c.uint64Field("failed_removed_files"),
		FailedRemovedBytes:   c.uint64Field("failed_removed_bytes"),
		Directories:          c.uint64Field("directories"),
		Symlinks:             c.uint64Field("symlinks"),
		Unknown:              c.uint64Field("unknown"),
		PercentFilesRemoved:  c.float64Field("percent_files_removed"),
		PercentBytesRemoved:  c.float64Field("percent_bytes_removed"),
		PrePurgeAvgFileSize:  c.float64Field("pre_purge_avg_file_size"),
		PurgedAvgFileSize:    c.float64Field("purged_avg_file_size"),
		PostPurgeAvgFileSize: c.float64Field("post_purge_avg_file_size"),
		RemovalBasisTime:     c.timeField("removal_basis_time"),
		CurrentTime:          c.timeField("current_time"),
		FinishTime:           c.timeField("finish_time"),
		PurgeSuccess:         c.boolField("purge_success"),
		DryRun:               c.boolField("dry_run"),
	}
	if c.err != nil {
		return model.PurgeRow{}, c.err
	}

	var err error
	row.TotalFiles, err = sumChecked(rec, "total_files", row.RemovedFiles, row.FailedRemovedFiles, row.KeptFiles)
	if err != nil {
		return model.PurgeRow{}, err
	}
	row.TotalBytes, err = sumChecked(rec, "total_bytes", row.RemovedBytes, row.FailedRemovedBytes, row.KeptBytes)
	if err != nil {
		return model.PurgeRow{}, err
	}
	return row, nil
}

// coercer converts raw string fields to their schema types, remembering the
// first failure so call sites stay flat.
type coercer struct {
	rec logparse.Record
	err error
}

func (c *coercer) uint64Field(key string) uint64 {
	if c.err != nil {
		return 0
	}
	v, err := strconv.ParseUint(c.rec.Fields[key], 10, 64)
	if err != nil {
		c.fail(key, "not an unsigned integer", c.rec.Fields[key])
		return 0
	}
	return v
}

func (c *coercer) float64Field(key string) float64 {
	if c.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(c.rec.Fields[key], 64)
	if err != nil {
		c.fail(key, "not a float", c.rec.Fields[key])
		return 0
	}
	return v
}

func (c *coercer) boolField(key string) bool {
	if c.err != nil {
		return false
	}
	v, err := strconv.ParseBool(c.rec.Fields[key])
	if err != nil {
		c.fail(key, "not a boolean", c.rec.Fields[key])
		return false
	}
	return v
}

func (c *coercer) timeField(key string) time.Time {
	if c.err != nil {
		return time.Time{}
	}
	secs, err := strconv.ParseUint(c.rec.Fields[key], 10, 63)
	if err != nil {
		c.fail(key, "not a unix timestamp", c.rec.Fields[key])
		return time.Time{}
	}
	return time.Unix(int64(secs), 0).UTC()
}

func (c *coercer) fail(key, reason, value string) {
	c.err = &SchemaError{
		Source: c.rec.Source,
		Field:  key,
		Reason: fmt.Sprintf("%s: %q", reason, value),
	}
}

// sumChecked adds the removed/failed/kept triple, treating 64-bit overflow
// as a schema failure rather than wrapping.
func sumChecked(rec logparse.Record, field string, removed, failed, kept uint64) (uint64, error) {
	s := removed + failed
	if s < removed {
		return 0, overflowErr(rec, field)
	}
	total := s + kept
	if total < s {
		return 0, overflowErr(rec, field)
	}
	return total, nil
}

func overflowErr(rec logparse.Record, field string) error {
	return &SchemaError{Source: rec.Source, Field: field, Reason: "sum overflows 64 bits"}
}
