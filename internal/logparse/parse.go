package logparse

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Per-item detail lines written by the purge process: one "K" (kept) or
// "R" (removed) tag, a tab, then the item path. They are not part of the
// summary record and are skipped by the parser.
const (
	keptLinePrefix    = "K\t"
	removedLinePrefix = "R\t"
)

// Record is the flat summary record parsed from one log file: raw string
// fields keyed by name. Source is the log file path, kept for error
// reporting during normalization.
type Record struct {
	Source string
	Fields map[string]string
}

// ParseFiles parses each log file into a Record. Files whose lines are all
// per-item detail entries yield no record and are skipped; that is normal,
// not an error. An unreadable file is fatal.
func ParseFiles(paths []string) ([]Record, error) {
	records := make([]Record, 0, len(paths))
	for _, p := range paths {
		rec, err := ParseFile(p)
		if err != nil {
			return nil, err
		}
		if rec != nil {
			records = append(records, *rec)
		}
	}
	return records, nil
}

// ParseFile parses a single log file. Every line not tagged as a per-item
// detail entry is split into (key, value) at the first tab, trimmed of
// surrounding whitespace. A repeated key keeps the last value seen, matching
// line order. Returns nil (no record, no error) when the file has no
// summary lines.
func ParseFile(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	fields := make(map[string]string)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, keptLinePrefix) || strings.HasPrefix(line, removedLinePrefix) {
			continue
		}
		line = strings.TrimSpace(line)
		key, value, _ := strings.Cut(line, "\t")
		fields[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file %s: %w", path, err)
	}

	if len(fields) == 0 {
		return nil, nil
	}
	return &Record{Source: path, Fields: fields}, nil
}
