package framekit

import (
	"slices"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/mat"
)

// TextExtractor selects columns as they are, for text vectorizers that
// take raw values.
type TextExtractor struct {
	columns []string
}

// NewTextExtractor returns an extractor for the given columns, in order.
func NewTextExtractor(columns ...string) *TextExtractor {
	return &TextExtractor{columns: slices.Clone(columns)}
}

// Columns returns the selected column names.
func (e *TextExtractor) Columns() []string { return slices.Clone(e.columns) }

// Fit returns e.
func (e *TextExtractor) Fit(dataframe.DataFrame) (Transformer, error) { return e, nil }

// Transform returns an N×len(columns) array of the selected columns with
// row order and value types preserved.
func (e *TextExtractor) Transform(df dataframe.DataFrame) (Array, error) {
	return selectColumns(df, e.columns)
}

// Kind tells downstream stages what a [ColumnExtractor] feeds.
type Kind int

const (
	Categorical Kind = iota + 1 // feeds a one-hot encoder
	Numeric                     // feeds a scaler
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Categorical:
		return "categorical"
	case Numeric:
		return "numeric"
	default:
		return "unknown"
	}
}

// ColumnExtractor selects columns and reshapes them into a single column
// vector, the layout encoders and scalers that handle one feature at a time
// expect.
type ColumnExtractor struct {
	kind    Kind
	columns []string
}

// NewColumnExtractor returns a column-vector extractor tagged with kind.
func NewColumnExtractor(kind Kind, columns ...string) *ColumnExtractor {
	return &ColumnExtractor{kind: kind, columns: slices.Clone(columns)}
}

// NewOHEExtractor returns a [Categorical] column extractor, usually for a
// single column.
func NewOHEExtractor(columns ...string) *ColumnExtractor {
	return NewColumnExtractor(Categorical, columns...)
}

// NewNumberExtractor returns a [Numeric] column extractor.
func NewNumberExtractor(columns ...string) *ColumnExtractor {
	return NewColumnExtractor(Numeric, columns...)
}

// Kind returns the extractor's tag.
func (e *ColumnExtractor) Kind() Kind { return e.kind }

// Columns returns the selected column names.
func (e *ColumnExtractor) Columns() []string { return slices.Clone(e.columns) }

// Fit returns e.
func (e *ColumnExtractor) Fit(dataframe.DataFrame) (Transformer, error) { return e, nil }

// Transform selects the columns and flattens them row by row into an
// (N·k)×1 array; for a single column that is N×1.
func (e *ColumnExtractor) Transform(df dataframe.DataFrame) (Array, error) {
	a, err := selectColumns(df, e.columns)
	if err != nil {
		return Array{}, err
	}
	return a.Reshape(-1, 1)
}

// Dense is Transform followed by [Array.Dense].
func (e *ColumnExtractor) Dense(df dataframe.DataFrame) (*mat.Dense, error) {
	a, err := e.Transform(df)
	if err != nil {
		return nil, err
	}
	return a.Dense()
}
