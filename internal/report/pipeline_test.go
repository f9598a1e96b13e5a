package report_test

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/OpenClemson/orangefs-purge/internal/config"
	"github.com/OpenClemson/orangefs-purge/internal/logging"
	"github.com/OpenClemson/orangefs-purge/internal/report"
	"github.com/OpenClemson/orangefs-purge/internal/snapshot"
)

func writeLog(t *testing.T, dir, name string, fields map[string]string, detailLines ...string) {
	t.Helper()
	var b strings.Builder
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for i, k := range keys {
		fmt.Fprintf(&b, "%s\t%s\n", k, fields[k])
		// Intersperse detail lines between summary lines.
		if i < len(detailLines) {
			b.WriteString(detailLines[i] + "\n")
		}
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
}

func userFields(user string) map[string]string {
	return map[string]string{
		"directory":                "/mnt/orangefs/" + user,
		"current_time":             "1461000000",
		"current_time_str":         "Mon Apr 18 17:20:00 2016",
		"removal_basis_time":       "1455816000",
		"removal_basis_time_str":   "Thu Feb 18 17:20:00 2016",
		"finish_time":              "1461000500",
		"finish_time_str":          "Mon Apr 18 17:28:20 2016",
		"duration_seconds":         "500",
		"removed_bytes":            "1048576",
		"removed_files":            "10",
		"failed_removed_bytes":     "0",
		"failed_removed_files":     "0",
		"kept_bytes":               "524288",
		"kept_files":               "5",
		"directories":              "3",
		"symlinks":                 "1",
		"unknown":                  "0",
		"percent_bytes_removed":    "66.7",
		"percent_files_removed":    "66.7",
		"pre_purge_avg_file_size":  "104857.6",
		"post_purge_avg_file_size": "34952.5",
		"purged_avg_file_size":     "104857.6",
		"dry_run":                  "false",
		"purge_success":            "true",
	}
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		LogDir:      t.TempDir(),
		OutDir:      t.TempDir(),
		FileName:    "purge-report",
		MountPrefix: config.DefaultMountPrefix,
		LogFormat:   "json",
	}
}

func TestRun_EndToEnd(t *testing.T) {
	cfg := testConfig(t)
	log := logging.New("json", io.Discard)

	writeLog(t, cfg.LogDir, "bob.log", userFields("bob"))
	writeLog(t, cfg.LogDir, "alice.log", userFields("alice"),
		"K\t/mnt/orangefs/alice/d0/f1", "R\t/mnt/orangefs/alice/f0", "K\t/mnt/orangefs/alice/f2")
	// A detail-only trace file contributes no record.
	os.WriteFile(filepath.Join(cfg.LogDir, "trace.log"), []byte("K\t/mnt/orangefs/carol/f0\nR\t/mnt/orangefs/carol/f1\n"), 0o644)

	summary, err := report.Run(log, cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.FilesDiscovered != 3 {
		t.Errorf("files discovered = %d, want 3", summary.FilesDiscovered)
	}
	if summary.RecordsParsed != 2 {
		t.Errorf("records parsed = %d, want 2", summary.RecordsParsed)
	}
	if summary.Rows != 2 {
		t.Errorf("rows = %d, want 2", summary.Rows)
	}

	rep, err := snapshot.Read(cfg.SnapshotPath())
	if err != nil {
		t.Fatalf("read snapshot back: %v", err)
	}
	if len(rep.Rows) != 2 || rep.Rows[0].User != "alice" || rep.Rows[1].User != "bob" {
		t.Fatalf("unexpected rows: %+v", rep.Rows)
	}
	if rep.Rows[0].TotalFiles != 15 {
		t.Errorf("alice total_files = %d, want 15", rep.Rows[0].TotalFiles)
	}

	if _, err := os.Stat(cfg.SpreadsheetPath()); err != nil {
		t.Errorf("spreadsheet missing: %v", err)
	}
}

func TestRun_NoLogFiles(t *testing.T) {
	cfg := testConfig(t)
	log := logging.New("json", io.Discard)

	_, err := report.Run(log, cfg)
	var pe *report.PhaseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PhaseError, got %v", err)
	}
	if pe.Phase != "discover" {
		t.Errorf("phase = %q, want discover", pe.Phase)
	}
	assertNoOutputs(t, cfg)
}

func TestRun_DetailOnlyLogs(t *testing.T) {
	cfg := testConfig(t)
	log := logging.New("json", io.Discard)
	os.WriteFile(filepath.Join(cfg.LogDir, "trace.log"), []byte("K\t/x\nR\t/y\n"), 0o644)

	_, err := report.Run(log, cfg)
	var pe *report.PhaseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PhaseError, got %v", err)
	}
	if pe.Phase != "normalize" {
		t.Errorf("phase = %q, want normalize", pe.Phase)
	}
	assertNoOutputs(t, cfg)
}

func TestRun_OutputConflict(t *testing.T) {
	cfg := testConfig(t)
	log := logging.New("json", io.Discard)
	writeLog(t, cfg.LogDir, "alice.log", userFields("alice"))

	// Pre-existing snapshot blocks the run before anything is written.
	if err := os.WriteFile(cfg.SnapshotPath(), []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := report.Run(log, cfg)
	var ce *report.ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if ce.Path != cfg.SnapshotPath() {
		t.Errorf("conflict path = %q", ce.Path)
	}

	// The spreadsheet must not have been written, and the old snapshot
	// must be untouched.
	if _, err := os.Stat(cfg.SpreadsheetPath()); !os.IsNotExist(err) {
		t.Errorf("spreadsheet was written despite conflict")
	}
	data, err := os.ReadFile(cfg.SnapshotPath())
	if err != nil || string(data) != "old" {
		t.Errorf("pre-existing snapshot modified: %q, %v", data, err)
	}
}

func TestRun_RunTwiceConflicts(t *testing.T) {
	cfg := testConfig(t)
	log := logging.New("json", io.Discard)
	writeLog(t, cfg.LogDir, "alice.log", userFields("alice"))

	if _, err := report.Run(log, cfg); err != nil {
		t.Fatalf("first run: %v", err)
	}
	_, err := report.Run(log, cfg)
	var ce *report.ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConflictError on second run, got %v", err)
	}
}

func TestRun_SchemaFailureWritesNothing(t *testing.T) {
	cfg := testConfig(t)
	log := logging.New("json", io.Discard)

	fields := userFields("alice")
	fields["removed_files"] = "ten"
	writeLog(t, cfg.LogDir, "alice.log", fields)

	_, err := report.Run(log, cfg)
	var se *report.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	assertNoOutputs(t, cfg)
}

func assertNoOutputs(t *testing.T, cfg *config.Config) {
	t.Helper()
	for _, p := range []string{cfg.SnapshotPath(), cfg.SpreadsheetPath()} {
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			t.Errorf("output %s exists after failed run", p)
		}
	}
}
