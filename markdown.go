package framekit

import (
	"fmt"
	"io"
	"strings"
)

// Pipes inside a cell would end it early.
var markdownEscaper = strings.NewReplacer("|", `\|`)

func writeMarkdown(w io.Writer, g grid, o Options) error {
	var header []string
	var aligns []alignment
	if o.Index {
		header = append(header, "")
		aligns = append(aligns, alignLeft)
	}
	for _, h := range g.header {
		header = append(header, markdownEscaper.Replace(h))
		aligns = append(aligns, alignRight)
	}
	rows := make([][]string, len(g.rows))
	for i, src := range g.rows {
		var row []string
		if o.Index {
			row = append(row, g.index[i])
		}
		for _, cell := range src {
			row = append(row, markdownEscaper.Replace(cell))
		}
		rows[i] = row
	}
	if len(header) == 0 {
		return writeFooter(w, g.footer)
	}

	// Minimum width 3 leaves room for alignment markers.
	widths := computeWidths(header, rows)
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	if err := writeMarkdownRow(w, header, widths, aligns); err != nil {
		return err
	}
	sep := make([]string, len(widths))
	for i, width := range widths {
		if aligns[i] == alignRight {
			sep[i] = strings.Repeat("-", width-1) + ":"
		} else {
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return writeFooter(w, g.footer)
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, aligns []alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = alignCell(cells[i], width, aligns[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
