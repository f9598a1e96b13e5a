package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenClemson/orangefs-purge/internal/model"
	"github.com/OpenClemson/orangefs-purge/internal/snapshot"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <snapshot>",
	Short: "Reload a report snapshot and print the table",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	rep, err := snapshot.Read(args[0])
	if err != nil {
		return fatal(err)
	}

	fmt.Printf("=== purgereport inspect ===\n")
	fmt.Printf("Snapshot: %s\n", args[0])
	fmt.Printf("Rows:     %d\n", len(rep.Rows))
	fmt.Printf("Columns:  %d (+%s index)\n\n", len(model.ColumnNames()), model.IndexName)

	fmt.Printf("%-16s %12s %14s %12s %14s %8s %8s\n",
		"user", "removed", "removed_bytes", "kept", "kept_bytes", "success", "dry_run")
	for _, r := range rep.Rows {
		fmt.Printf("%-16s %12d %14d %12d %14d %8t %8t\n",
			r.User, r.RemovedFiles, r.RemovedBytes, r.KeptFiles, r.KeptBytes,
			r.PurgeSuccess, r.DryRun)
	}
	return nil
}
