package framekit

import (
	"encoding/csv"
	"io"
)

// writeCSV writes the complete frame; display limits do not apply.
func writeCSV(w io.Writer, f frame, o Options, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	header := f.names
	if o.Index {
		header = append([]string{""}, header...)
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rawRows(f, o.Index) {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func rawRows(f frame, index bool) [][]string {
	rows := make([][]string, f.nrows)
	for r := range f.nrows {
		row := make([]string, 0, f.ncols()+1)
		if index {
			row = append(row, rawCell(r))
		}
		for c := range f.ncols() {
			row = append(row, rawCell(f.cols[c][r]))
		}
		rows[r] = row
	}
	return rows
}
