package main

import (
	"github.com/spf13/cobra"

	"github.com/OpenClemson/orangefs-purge/internal/config"
)

var (
	cfg        config.Config
	configFile string
)

var rootCmd = &cobra.Command{
	Use:           "purgereport",
	Short:         "OrangeFS purge log → report converter",
	Long:          "Aggregates per-user orangefs-purge log files into a single typed report, written as a Parquet snapshot plus a formatted xlsx spreadsheet.",
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.MountPrefix, "mount-prefix", config.DefaultMountPrefix, "Mount path stripped from directory fields to derive the user")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&configFile, "config", "", "Optional YAML config file (mount_prefix, log_format)")
}
