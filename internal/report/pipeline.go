package report

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/OpenClemson/orangefs-purge/internal/config"
	"github.com/OpenClemson/orangefs-purge/internal/logparse"
	"github.com/OpenClemson/orangefs-purge/internal/model"
	"github.com/OpenClemson/orangefs-purge/internal/snapshot"
	"github.com/OpenClemson/orangefs-purge/internal/spreadsheet"
)

// Run executes the full report pipeline: discover → parse → normalize →
// conflict guard → write snapshot → write spreadsheet. Any failure aborts
// the run; all validation happens before the first byte is written, so a
// failed run leaves no partial snapshot or spreadsheet behind (the only gap
// is a spreadsheet failure after the snapshot was written, in which case the
// snapshot must be removed before retrying).
func Run(log zerolog.Logger, cfg *config.Config) (*model.ReportSummary, error) {
	totalStart := time.Now()
	runID := uuid.New()
	log = log.With().Str("run_id", runID.String()).Logger()

	// Phase 1: Discover
	log.Info().Str("log_dir", cfg.LogDir).Msg("discovering log files")
	paths, err := logparse.ListLogFiles(cfg.LogDir)
	if err != nil {
		return nil, &PhaseError{Phase: "discover", Err: err}
	}
	if len(paths) == 0 {
		return nil, &PhaseError{Phase: "discover", Err: fmt.Errorf("no %s files found in %s", logparse.LogSuffix, cfg.LogDir)}
	}

	// Phase 2: Parse
	parseStart := time.Now()
	records, err := logparse.ParseFiles(paths)
	if err != nil {
		return nil, &PhaseError{Phase: "parse", Err: err}
	}
	parseDur := time.Since(parseStart)
	log.Info().
		Int("files", len(paths)).
		Int("records", len(records)).
		Dur("duration", parseDur).
		Msg("parse complete")

	// Phase 3: Normalize
	normStart := time.Now()
	rep, err := Build(records, cfg.MountPrefix)
	if err != nil {
		return nil, &PhaseError{Phase: "normalize", Err: err}
	}
	normDur := time.Since(normStart)
	log.Info().
		Int("rows", len(rep.Rows)).
		Str("mount_prefix", cfg.MountPrefix).
		Dur("duration", normDur).
		Msg("normalize complete")

	// Phase 4: Conflict guard. Both paths are checked before either file is
	// written so a conflict never clobbers or half-writes anything.
	snapPath := cfg.SnapshotPath()
	sheetPath := cfg.SpreadsheetPath()
	for _, p := range []string{snapPath, sheetPath} {
		if _, err := os.Stat(p); err == nil {
			return nil, &PhaseError{Phase: "guard", Err: &ConflictError{Path: p}}
		} else if !os.IsNotExist(err) {
			return nil, &PhaseError{Phase: "guard", Err: fmt.Errorf("stat output path: %w", err)}
		}
	}

	// Phase 5: Write
	writeStart := time.Now()
	if err := snapshot.Write(snapPath, rep); err != nil {
		return nil, &PhaseError{Phase: "write", Err: err}
	}
	log.Info().Str("path", snapPath).Msg("snapshot written")

	if err := spreadsheet.Write(sheetPath, rep); err != nil {
		return nil, &PhaseError{Phase: "write", Err: err}
	}
	log.Info().Str("path", sheetPath).Msg("spreadsheet written")
	writeDur := time.Since(writeStart)

	summary := &model.ReportSummary{
		RunID:             runID.String(),
		LogDir:            cfg.LogDir,
		FilesDiscovered:   len(paths),
		RecordsParsed:     len(records),
		Rows:              len(rep.Rows),
		SnapshotPath:      snapPath,
		SpreadsheetPath:   sheetPath,
		DurationParse:     parseDur,
		DurationNormalize: normDur,
		DurationWrite:     writeDur,
		DurationTotal:     time.Since(totalStart),
	}

	log.Info().
		Int("files", summary.FilesDiscovered).
		Int("rows", summary.Rows).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("report pipeline complete")

	return summary, nil
}
