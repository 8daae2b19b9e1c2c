package framekit

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

// alignment controls cell padding direction.
type alignment int

const (
	alignLeft alignment = iota
	alignRight
)

func writeTable(w io.Writer, g grid, o Options) error {
	if len(g.header) == 0 || len(g.rows) == 0 {
		return writeEmptyTable(w, g)
	}

	widths := computeWidths(g.header, g.rows)
	indexWidth := 0
	if o.Index {
		indexWidth = maxWidth(g.index)
	}
	border := o.border()

	for b, block := range splitBlocks(widths, indexWidth, o.Width, border, o.Index) {
		if b > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		header, rows, bw, aligns := sliceBlock(g, block, widths, indexWidth, o.Index)
		var err error
		if border == BorderNone {
			err = renderPlainTable(w, header, rows, bw, aligns)
		} else {
			err = renderBorderedTable(w, header, rows, bw, aligns, borderSets[border])
		}
		if err != nil {
			return err
		}
	}
	return writeFooter(w, g.footer)
}

// writeEmptyTable describes a table with no rows or no columns by listing
// the labels it does have.
func writeEmptyTable(w io.Writer, g grid) error {
	_, err := fmt.Fprintf(w, "Empty DataFrame\nColumns: [%s]\nIndex: [%s]\n",
		strings.Join(g.header, ", "), strings.Join(g.index, ", "))
	if err != nil {
		return err
	}
	return writeFooter(w, g.footer)
}

func writeFooter(w io.Writer, footer string) error {
	if footer == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, "\n%s\n", footer)
	return err
}

func computeWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func maxWidth(cells []string) int {
	n := 0
	for _, c := range cells {
		if w := runewidth.StringWidth(c); w > n {
			n = w
		}
	}
	return n
}

// splitBlocks groups column positions so that each group, printed with the
// index, fits in limit characters. Every group holds at least one column.
// limit <= 0 keeps all columns together.
func splitBlocks(widths []int, indexWidth, limit int, border BorderStyle, index bool) [][]int {
	sep, start := 2, indexWidth
	switch {
	case border != BorderNone:
		sep, start = 3, 1
		if index {
			start += indexWidth + 3
		}
	case !index:
		start = -sep
	}

	var blocks [][]int
	var cur []int
	used := start
	for i, width := range widths {
		if limit > 0 && len(cur) > 0 && used+sep+width > limit {
			blocks = append(blocks, cur)
			cur, used = nil, start
		}
		cur = append(cur, i)
		used += sep + width
	}
	return append(blocks, cur)
}

// sliceBlock extracts the block's columns, prepending the index column.
func sliceBlock(g grid, block []int, widths []int, indexWidth int, index bool) (header []string, rows [][]string, bw []int, aligns []alignment) {
	if index {
		header = append(header, "")
		bw = append(bw, indexWidth)
		aligns = append(aligns, alignLeft)
	}
	for _, c := range block {
		header = append(header, g.header[c])
		bw = append(bw, widths[c])
		aligns = append(aligns, alignRight)
	}
	rows = make([][]string, len(g.rows))
	for i, src := range g.rows {
		var row []string
		if index {
			row = append(row, g.index[i])
		}
		for _, c := range block {
			row = append(row, src[c])
		}
		rows[i] = row
	}
	return header, rows, bw, aligns
}

// --- Plain table (BorderNone) ---

func renderPlainTable(w io.Writer, header []string, rows [][]string, widths []int, aligns []alignment) error {
	if err := writePlainRow(w, header, widths, aligns); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writePlainRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

func writePlainRow(w io.Writer, cells []string, widths []int, aligns []alignment) error {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = alignCell(cells[i], width, aligns[i])
	}
	line := strings.TrimRight(strings.Join(parts, "  "), " ")
	_, err := fmt.Fprintln(w, line)
	return err
}

// --- Bordered table ---

func renderBorderedTable(w io.Writer, header []string, rows [][]string, widths []int, aligns []alignment, bc borderChars) error {
	if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
		return err
	}
	if err := drawBorderedRow(w, header, widths, aligns, bc.vertical); err != nil {
		return err
	}
	if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
		return err
	}
	for _, row := range rows {
		if err := drawBorderedRow(w, row, widths, aligns, bc.vertical); err != nil {
			return err
		}
	}
	return drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawBorderedRow(w io.Writer, cells []string, widths []int, aligns []alignment, vert string) error {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range widths {
		sb.WriteString(" ")
		sb.WriteString(alignCell(cells[i], width, aligns[i]))
		sb.WriteString(" ")
		if i < len(widths)-1 {
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func alignCell(s string, width int, align alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	if align == alignRight {
		return strings.Repeat(" ", pad) + s
	}
	return s + strings.Repeat(" ", pad)
}
