// Package snapshot serializes the purge report to a Parquet file and reads
// it back. The snapshot exists so later analysis can reload the table
// without re-parsing logs; a write/read cycle reproduces the report exactly.
package snapshot

import (
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/OpenClemson/orangefs-purge/internal/model"
)

// Write serializes the report to a Parquet file at path. The path must not
// already exist; the pipeline checks for conflicts before calling.
func Write(path string, rep *model.PurgeReport) error {
	rows := make([]model.SnapshotRow, len(rep.Rows))
	for i, r := range rep.Rows {
		rows[i] = model.NewSnapshotRow(r)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}

	w := parquet.NewGenericWriter[model.SnapshotRow](f)
	if _, err := w.Write(rows); err != nil {
		f.Close()
		return fmt.Errorf("write snapshot rows: %w", err)
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("close snapshot writer: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	return nil
}

// Read loads a snapshot written by Write, restoring rows in stored order.
func Read(path string) (*model.PurgeReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat snapshot: %w", err)
	}
	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("open snapshot parquet: %w", err)
	}

	r := parquet.NewGenericReader[model.SnapshotRow](pf)
	defer r.Close()

	rows := make([]model.PurgeRow, 0, r.NumRows())
	buf := make([]model.SnapshotRow, 256)
	for {
		n, readErr := r.Read(buf)
		for i := 0; i < n; i++ {
			rows = append(rows, buf[i].PurgeRow())
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("read snapshot rows: %w", readErr)
		}
	}
	return &model.PurgeReport{Rows: rows}, nil
}
