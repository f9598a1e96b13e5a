package snapshot

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/OpenClemson/orangefs-purge/internal/model"
)

func sampleReport() *model.PurgeReport {
	return &model.PurgeReport{Rows: []model.PurgeRow{
		{
			User:                 "alice",
			DurationSeconds:      500,
			RemovedFiles:         10,
			RemovedBytes:         1048576,
			KeptFiles:            5,
			KeptBytes:            524288,
			FailedRemovedFiles:   1,
			FailedRemovedBytes:   4096,
			TotalFiles:           16,
			TotalBytes:           1576960,
			Directories:          3,
			Symlinks:             1,
			Unknown:              0,
			PercentFilesRemoved:  62.5,
			PercentBytesRemoved:  66.49,
			PrePurgeAvgFileSize:  98560.0,
			PurgedAvgFileSize:    104857.6,
			PostPurgeAvgFileSize: 104857.6,
			RemovalBasisTime:     time.Unix(1455816000, 0).UTC(),
			CurrentTime:          time.Unix(1461000000, 0).UTC(),
			FinishTime:           time.Unix(1461000500, 0).UTC(),
			PurgeSuccess:         true,
			DryRun:               false,
		},
		{
			User:             "bob",
			DurationSeconds:  12,
			KeptFiles:        7,
			KeptBytes:        900,
			TotalFiles:       7,
			TotalBytes:       900,
			RemovalBasisTime: time.Unix(1455816000, 0).UTC(),
			CurrentTime:      time.Unix(1461000000, 0).UTC(),
			FinishTime:       time.Unix(1461000012, 0).UTC(),
			PurgeSuccess:     false,
			DryRun:           true,
		},
	}}
}

func TestWriteRead_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.parquet")
	want := sampleReport()

	if err := Write(path, want); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestWriteRead_PreservesRowOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.parquet")
	if err := Write(path, sampleReport()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got.Rows) != 2 || got.Rows[0].User != "alice" || got.Rows[1].User != "bob" {
		t.Errorf("unexpected row order: %+v", got.Rows)
	}
}

func TestRead_MissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "nope.parquet")); err == nil {
		t.Fatal("expected error for missing snapshot")
	}
}

func TestWrite_EmptyReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.parquet")
	if err := Write(path, &model.PurgeReport{}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("snapshot not created: %v", err)
	}
	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got.Rows) != 0 {
		t.Errorf("expected no rows, got %d", len(got.Rows))
	}
}
