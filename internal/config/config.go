package config

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
	"gopkg.in/yaml.v3"
)

// DefaultMountPrefix is the mount path stripped from each record's
// directory field to derive the user name.
const DefaultMountPrefix = "/mnt/orangefs/"

// Extensions of the two generated artifacts.
const (
	SnapshotExt    = ".parquet"
	SpreadsheetExt = ".xlsx"
)

// Config holds all runtime configuration for a purgereport run.
type Config struct {
	LogDir      string
	OutDir      string
	FileName    string
	MountPrefix string `yaml:"mount_prefix"`
	LogFormat   string `yaml:"log_format"` // "text" or "json"
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	MountPrefix string `yaml:"mount_prefix"`
	LogFormat   string `yaml:"log_format"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
// File values override whatever is already set.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if yc.MountPrefix != "" {
		c.MountPrefix = yc.MountPrefix
	}
	if yc.LogFormat != "" {
		c.LogFormat = yc.LogFormat
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("log_format must be %q or %q, got %q", "text", "json", c.LogFormat)
	}
	return nil
}

// SnapshotPath returns the output path of the binary snapshot.
func (c *Config) SnapshotPath() string {
	return filepath.Join(c.OutDir, c.FileName+SnapshotExt)
}

// SpreadsheetPath returns the output path of the spreadsheet.
func (c *Config) SpreadsheetPath() string {
	return filepath.Join(c.OutDir, c.FileName+SpreadsheetExt)
}

// Validate checks the directory arguments and their permissions before any
// processing starts. log_dir must be readable and executable; out_dir must be
// readable, writable, and executable.
func (c *Config) Validate() error {
	if c.FileName == "" {
		return fmt.Errorf("file_name must not be empty")
	}
	if c.MountPrefix == "" {
		return fmt.Errorf("mount prefix must not be empty")
	}
	if err := requireDir(c.LogDir, unix.R_OK|unix.X_OK); err != nil {
		return fmt.Errorf("log_dir: %w", err)
	}
	if err := requireDir(c.OutDir, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return fmt.Errorf("out_dir: %w", err)
	}
	return nil
}

func requireDir(path string, mode uint32) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	if err := unix.Access(path, mode); err != nil {
		return fmt.Errorf("%s: insufficient permissions: %w", path, err)
	}
	return nil
}
