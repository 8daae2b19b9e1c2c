package framekit

import (
	"fmt"
	"io"
	"strings"
)

var tsvEscaper = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")

// writeTSV writes one line per row with tabs and newlines in cells replaced
// by spaces.
func writeTSV(w io.Writer, f frame, o Options) error {
	header := f.names
	if o.Index {
		header = append([]string{""}, header...)
	}
	if _, err := fmt.Fprintln(w, joinTSV(header)); err != nil {
		return err
	}
	for _, row := range rawRows(f, o.Index) {
		if _, err := fmt.Fprintln(w, joinTSV(row)); err != nil {
			return err
		}
	}
	return nil
}

func joinTSV(cells []string) string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = tsvEscaper.Replace(c)
	}
	return strings.Join(out, "\t")
}
