package framekit

import (
	"fmt"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/mattn/go-runewidth"
	"gonum.org/v1/gonum/mat"
)

// frame is the renderer's column-major view of any renderable value.
type frame struct {
	names []string
	cols  [][]any
	nrows int
}

func frameOf(v any) (frame, error) {
	switch t := v.(type) {
	case nil:
		return frame{}, fmt.Errorf("%w: nil value", ErrNotRenderable)
	case dataframe.DataFrame:
		return frameFromDataFrame(t)
	case *dataframe.DataFrame:
		if t == nil {
			return frame{}, fmt.Errorf("%w: nil %T", ErrNotRenderable, t)
		}
		return frameFromDataFrame(*t)
	case series.Series:
		return frameFromSeries(t)
	case *series.Series:
		if t == nil {
			return frame{}, fmt.Errorf("%w: nil %T", ErrNotRenderable, t)
		}
		return frameFromSeries(*t)
	case Array:
		return frameFromArray(t), nil
	case *mat.Dense:
		if t == nil {
			return frame{}, fmt.Errorf("%w: nil %T", ErrNotRenderable, t)
		}
		return frameFromArray(ArrayFromMatrix(t)), nil
	case mat.Matrix:
		return frameFromArray(ArrayFromMatrix(t)), nil
	default:
		return frame{}, fmt.Errorf("%w: %T", ErrNotRenderable, v)
	}
}

func frameFromDataFrame(df dataframe.DataFrame) (frame, error) {
	if df.Err != nil {
		return frame{}, fmt.Errorf("%w: %w", ErrNotRenderable, df.Err)
	}
	f := frame{names: df.Names(), nrows: df.Nrow()}
	f.cols = make([][]any, len(f.names))
	for i, name := range f.names {
		f.cols[i] = seriesValues(df.Col(name))
	}
	return f, nil
}

func frameFromSeries(s series.Series) (frame, error) {
	if s.Err != nil {
		return frame{}, fmt.Errorf("%w: %w", ErrNotRenderable, s.Err)
	}
	return frame{names: []string{s.Name}, cols: [][]any{seriesValues(s)}, nrows: s.Len()}, nil
}

func frameFromArray(a Array) frame {
	f := frame{nrows: a.rows, names: make([]string, a.cols), cols: make([][]any, a.cols)}
	for j := range a.cols {
		f.names[j] = strconv.Itoa(j)
		f.cols[j] = a.Col(j)
	}
	return f
}

// ncols returns the number of columns.
func (f frame) ncols() int { return len(f.names) }

// grid is a frame after elision and cell formatting, ready for a display
// format to lay out.
type grid struct {
	header []string
	index  []string
	rows   [][]string
	footer string
}

const ellipsis = "..."

func buildGrid(f frame, o Options) grid {
	rowIdx, rowsCut := visible(f.nrows, o.MaxRows)
	colIdx, colsCut := visible(f.ncols(), o.MaxColumns)

	g := grid{header: make([]string, len(colIdx))}
	for i, c := range colIdx {
		if c < 0 {
			g.header[i] = ellipsis
			continue
		}
		g.header[i] = f.names[c]
	}

	g.rows = make([][]string, len(rowIdx))
	g.index = make([]string, len(rowIdx))
	for i, r := range rowIdx {
		row := make([]string, len(colIdx))
		if r < 0 {
			g.index[i] = ellipsis
			for j := range row {
				row[j] = ellipsis
			}
			g.rows[i] = row
			continue
		}
		g.index[i] = strconv.Itoa(r)
		for j, c := range colIdx {
			if c < 0 {
				row[j] = ellipsis
				continue
			}
			row[j] = formatCell(f.cols[c][r], o)
		}
		g.rows[i] = row
	}

	if rowsCut || colsCut {
		g.footer = fmt.Sprintf("[%d rows x %d columns]", f.nrows, f.ncols())
	}
	return g
}

// visible returns the positions to show out of n, with -1 standing for the
// elided middle, and whether anything was elided. max <= 0 shows everything.
func visible(n, max int) (positions []int, elided bool) {
	if max <= 0 || n <= max {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out, false
	}
	head, tail := (max+1)/2, max/2
	out := make([]int, 0, max+1)
	for i := range head {
		out = append(out, i)
	}
	out = append(out, -1)
	for i := n - tail; i < n; i++ {
		out = append(out, i)
	}
	return out, true
}

func formatCell(v any, o Options) string {
	var s string
	switch t := v.(type) {
	case nil:
		s = "NaN"
	case float64:
		s = o.Float.format(t)
	case float32:
		s = o.Float.format(float64(t))
	case string:
		s = t
	case fmt.Stringer:
		s = t.String()
	default:
		s = fmt.Sprint(t)
	}
	return truncate(s, o.MaxColWidth)
}

func truncate(s string, max int) string {
	if max <= 0 || runewidth.StringWidth(s) <= max {
		return s
	}
	if max <= len(ellipsis) {
		return runewidth.Truncate(s, max, "")
	}
	return runewidth.Truncate(s, max, ellipsis)
}

// rawCell is the text of v in data formats.
func rawCell(v any) string {
	if isMissing(v) {
		return ""
	}
	switch t := v.(type) {
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32)
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
