package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenClemson/orangefs-purge/internal/exitcode"
	"github.com/OpenClemson/orangefs-purge/internal/logging"
	"github.com/OpenClemson/orangefs-purge/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report <log_dir> <out_dir> <file_name>",
	Short: "Aggregate purge logs into a snapshot and spreadsheet",
	Long: "Parses every .log file in <log_dir> and writes <out_dir>/<file_name>.parquet " +
		"and <out_dir>/<file_name>.xlsx. Refuses to overwrite existing output files.",
	Args: cobra.ExactArgs(3),
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	log := logging.Setup(cfg.LogFormat)

	cfg.LogDir = args[0]
	cfg.OutDir = args[1]
	cfg.FileName = args[2]

	if configFile != "" {
		if err := cfg.LoadFromFile(configFile); err != nil {
			return fatal(err)
		}
		log = logging.Setup(cfg.LogFormat)
	}
	if err := cfg.Validate(); err != nil {
		return fatal(err)
	}

	summary, err := report.Run(log, &cfg)
	if err != nil {
		log.Error().Err(err).Msg("report failed")
		return fatal(err)
	}

	fmt.Printf("Report complete: %d log files → %d rows → %s, %s (%.1fs)\n",
		summary.FilesDiscovered, summary.Rows,
		summary.SnapshotPath, summary.SpreadsheetPath,
		summary.DurationTotal.Seconds())
	return nil
}

// fatal prints the user-facing error line and exits non-zero. Every failure
// kind shares the same exit code.
func fatal(err error) error {
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	os.Exit(exitcode.Failure)
	return err
}
