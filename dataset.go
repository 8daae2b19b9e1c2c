package framekit

import (
	"fmt"
	"slices"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// selectColumns copies the named columns of df, in the order given, into an
// N×len(columns) array.
func selectColumns(df dataframe.DataFrame, columns []string) (Array, error) {
	if df.Err != nil {
		return Array{}, fmt.Errorf("invalid dataset: %w", df.Err)
	}
	names := df.Names()
	cols := make([][]any, len(columns))
	for i, name := range columns {
		if !slices.Contains(names, name) {
			return Array{}, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
		}
		cols[i] = seriesValues(df.Col(name))
	}
	return arrayFromColumns(df.Nrow(), cols), nil
}

// seriesValues returns the native values of s; missing elements are nil.
func seriesValues(s series.Series) []any {
	out := make([]any, s.Len())
	for i := range out {
		e := s.Elem(i)
		if e.IsNA() {
			continue
		}
		out[i] = e.Val()
	}
	return out
}
