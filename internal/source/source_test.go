package source_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/bjaus/framekit/internal/source"
)

func workbook(t *testing.T, rows ...[]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestReadCSV(t *testing.T) {
	t.Parallel()
	df, err := source.ReadCSV(strings.NewReader("color,price\nred,1.5\n,2\nblue,\n"))
	require.NoError(t, err)

	rows, cols := df.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, series.Float, df.Col("price").Type())
	assert.Equal(t, 1.5, df.Col("price").Elem(0).Float())
	assert.True(t, df.Col("color").Elem(1).IsNA())
	assert.True(t, df.Col("price").Elem(2).IsNA())
}

func TestReadCSVMissingMarkers(t *testing.T) {
	t.Parallel()
	df, err := source.ReadCSV(strings.NewReader("v\nNA\nNaN\n1\n"))
	require.NoError(t, err)
	assert.True(t, df.Col("v").Elem(0).IsNA())
	assert.True(t, df.Col("v").Elem(1).IsNA())
	assert.False(t, df.Col("v").Elem(2).IsNA())
}

func TestReadXLSX(t *testing.T) {
	t.Parallel()
	data := workbook(t,
		[]any{"name", "qty"},
		[]any{"a", 2},
		[]any{"b"},
	)

	df, err := source.ReadXLSX(bytes.NewReader(data), "")
	require.NoError(t, err)

	rows, cols := df.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, []string{"name", "qty"}, df.Names())
	assert.Equal(t, "a", df.Col("name").Elem(0).String())
	assert.True(t, df.Col("qty").Elem(1).IsNA())
}

func TestReadXLSXNamedSheet(t *testing.T) {
	t.Parallel()
	data := workbook(t, []any{"x"}, []any{1})

	df, err := source.ReadXLSX(bytes.NewReader(data), "Sheet1")
	require.NoError(t, err)
	assert.Equal(t, 1, df.Nrow())
}

func TestReadXLSXUnknownSheet(t *testing.T) {
	t.Parallel()
	data := workbook(t, []any{"x"}, []any{1})

	_, err := source.ReadXLSX(bytes.NewReader(data), "Missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Missing"`)
}

func TestReadXLSXEmptySheet(t *testing.T) {
	t.Parallel()
	data := workbook(t)

	_, err := source.ReadXLSX(bytes.NewReader(data), "")
	require.ErrorIs(t, err, source.ErrNoData)
}

func TestReadXLSXNotAWorkbook(t *testing.T) {
	t.Parallel()
	_, err := source.ReadXLSX(strings.NewReader("a,b\n1,2\n"), "")
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("a,b\n1,x\n"), 0o600))
	xlsxPath := filepath.Join(dir, "data.XLSX")
	require.NoError(t, os.WriteFile(xlsxPath, workbook(t, []any{"a", "b"}, []any{1, "x"}), 0o600))

	for name, path := range map[string]string{"csv": csvPath, "xlsx": xlsxPath} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			df, err := source.Load(path, "")
			require.NoError(t, err)
			assert.Equal(t, []string{"a", "b"}, df.Names())
			assert.Equal(t, "x", df.Col("b").Elem(0).String())
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	_, err := source.Load(filepath.Join(t.TempDir(), "nope.csv"), "")
	require.ErrorIs(t, err, os.ErrNotExist)
}
