package services

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	internalErrors "alfredoptarigan/resume-matcher/internal/errors"
	"alfredoptarigan/resume-matcher/internal/matcher"
)

const (
	ExportCSV  = "csv"
	ExportXLSX = "xlsx"

	exportBaseName = "results_output"
	sheetName      = "Results"
)

type Exporter interface {
	// Export writes results sorted by sortKey and returns the file path.
	// Unknown sort keys fall back to Match_Percentage.
	Export(results []matcher.MatchResult, sortKey string, fileType string) (string, error)
}

type exporter struct {
	exportPath string
}

func NewExporter(exportPath string) Exporter {
	return &exporter{exportPath: exportPath}
}

func (e *exporter) Export(results []matcher.MatchResult, sortKey string, fileType string) (string, error) {
	fileType = strings.ToLower(strings.TrimSpace(fileType))
	if fileType != ExportCSV && fileType != ExportXLSX {
		return "", internalErrors.NewExportTypeError(fileType)
	}

	if err := os.MkdirAll(e.exportPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	sorted := matcher.SortResults(results, matcher.ParseSortKey(sortKey))
	path := filepath.Join(e.exportPath, exportBaseName+"."+fileType)

	var err error
	if fileType == ExportCSV {
		err = writeCSV(path, sorted)
	} else {
		err = writeXLSX(path, sorted)
	}
	if err != nil {
		return "", err
	}

	return path, nil
}

func writeCSV(path string, results []matcher.MatchResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(matcher.Columns()); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, r := range results {
		if err := w.Write(r.Row()); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	return nil
}

func writeXLSX(path string, results []matcher.MatchResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]any, 0, len(matcher.Columns()))
	for _, col := range matcher.Columns() {
		header = append(header, col)
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write xlsx header: %w", err)
	}

	for i, r := range results {
		row := []any{r.Resume}
		for _, key := range matcher.SortKeys() {
			row = append(row, r.Value(key))
		}
		row = append(row, r.Error)

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address xlsx row: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write xlsx row: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save xlsx: %w", err)
	}

	return nil
}
