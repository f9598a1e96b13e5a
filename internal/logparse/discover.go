package logparse

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LogSuffix is the file name suffix identifying purge log files.
const LogSuffix = ".log"

// ListLogFiles returns the paths of the log files directly inside dir,
// sorted lexicographically by name. Subdirectories are not descended into.
// An empty result is not an error; the caller decides whether that is fatal.
func ListLogFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list log dir: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), LogSuffix) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	return paths, nil
}
