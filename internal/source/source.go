// Package source loads datasets from CSV and XLSX files.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/xuri/excelize/v2"
)

// ErrNoData is returned when a file holds no header row.
var ErrNoData = errors.New("no data")

// nanValues are the cell texts read as missing values.
var nanValues = []string{"", "NA", "NaN", "<nil>"}

// Load reads the file at path. Files with an .xlsx extension are read as
// spreadsheets (sheet "" picks the first one); anything else as CSV.
func Load(path, sheet string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ReadXLSX(f, sheet)
	}
	return ReadCSV(f)
}

// ReadCSV reads a CSV document whose first line is the header. Column types
// are detected from the values; empty cells are missing.
func ReadCSV(r io.Reader) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(r, dataframe.NaNValues(nanValues))
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to read csv: %w", df.Err)
	}
	return df, nil
}

// ReadXLSX reads one worksheet whose first row is the header. Short rows
// are padded with empty cells.
func ReadXLSX(r io.Reader, sheet string) (dataframe.DataFrame, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return dataframe.DataFrame{}, fmt.Errorf("%w: workbook has no sheets", ErrNoData)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("%w: sheet %q is empty", ErrNoData, sheet)
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	records := make([][]string, len(rows))
	for i, row := range rows {
		records[i] = make([]string, width)
		copy(records[i], row)
	}

	df := dataframe.LoadRecords(records, dataframe.NaNValues(nanValues))
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to load sheet %q: %w", sheet, df.Err)
	}
	return df, nil
}
