// Package spreadsheet renders the purge report as a single-sheet xlsx
// document for human review: one header row, one row per user, auto-sized
// columns, monospace cells so the table stays aligned when reopened.
package spreadsheet

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/OpenClemson/orangefs-purge/internal/model"
)

const (
	// SheetName is the single worksheet holding the report table.
	SheetName = "results"

	fontFamily = "monospace"
	fontSize   = 10

	timeLayout = "2006-01-02 15:04:05"
)

// Write renders the report to an xlsx file at path. The path must not
// already exist; the pipeline checks for conflicts before calling.
func Write(path string, rep *model.PurgeReport) error {
	cells := renderCells(rep)

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	for r, row := range cells {
		for c, val := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("cell name: %w", err)
			}
			if err := f.SetCellStr(SheetName, cell, val); err != nil {
				return fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	// Size each column to its widest cell, header included.
	for c, width := range columnWidths(cells) {
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(SheetName, col, col, float64(width)); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}

	styleID, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Family: fontFamily, Size: fontSize},
	})
	if err != nil {
		return fmt.Errorf("create font style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(cells[0]), len(cells))
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", last, styleID); err != nil {
		return fmt.Errorf("apply font style: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write spreadsheet: %w", err)
	}
	return nil
}

// renderCells builds the full sheet content as strings: header row first,
// then one row per user in report order.
func renderCells(rep *model.PurgeReport) [][]string {
	header := append([]string{model.IndexName}, model.ColumnNames()...)
	cells := make([][]string, 0, 1+len(rep.Rows))
	cells = append(cells, header)
	for _, r := range rep.Rows {
		cells = append(cells, rowCells(r))
	}
	return cells
}

// rowCells renders one row in column order: integers as digits, floats with
// a visible decimal, booleans as words, timestamps as date-time strings.
func rowCells(r model.PurgeRow) []string {
	return []string{
		r.User,
		formatUint(r.DurationSeconds),
		formatUint(r.RemovedFiles),
		formatUint(r.RemovedBytes),
		formatUint(r.KeptFiles),
		formatUint(r.KeptBytes),
		formatUint(r.FailedRemovedFiles),
		formatUint(r.FailedRemovedBytes),
		formatUint(r.TotalFiles),
		formatUint(r.TotalBytes),
		formatUint(r.Directories),
		formatUint(r.Symlinks),
		formatUint(r.Unknown),
		formatFloat(r.PercentFilesRemoved),
		formatFloat(r.PercentBytesRemoved),
		formatFloat(r.PrePurgeAvgFileSize),
		formatFloat(r.PurgedAvgFileSize),
		formatFloat(r.PostPurgeAvgFileSize),
		formatTime(r.RemovalBasisTime),
		formatTime(r.CurrentTime),
		formatTime(r.FinishTime),
		formatBool(r.PurgeSuccess),
		formatBool(r.DryRun),
	}
}

func columnWidths(cells [][]string) []int {
	widths := make([]int, len(cells[0]))
	for _, row := range cells {
		for c, val := range row {
			if len(val) > widths[c] {
				widths[c] = len(val)
			}
		}
	}
	return widths
}

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func formatBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
