package framekit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Array is a rectangular grid of values stored in row-major order. Values
// keep the type they had in the source dataset; nil and NaN mark missing
// entries. The zero value is an empty 0×0 array.
type Array struct {
	rows, cols int
	data       []any
}

// NewArray returns a rows×cols array backed by a copy of data.
func NewArray(rows, cols int, data []any) (Array, error) {
	if rows < 0 || cols < 0 || len(data) != rows*cols {
		return Array{}, fmt.Errorf("%w: %d values for %dx%d", ErrShapeMismatch, len(data), rows, cols)
	}
	out := make([]any, len(data))
	copy(out, data)
	return Array{rows: rows, cols: cols, data: out}, nil
}

// ArrayFromRows builds an array from equally long rows.
func ArrayFromRows(rows [][]any) (Array, error) {
	if len(rows) == 0 {
		return Array{}, nil
	}
	cols := len(rows[0])
	data := make([]any, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return Array{}, fmt.Errorf("%w: row %d has %d values, want %d", ErrShapeMismatch, i, len(row), cols)
		}
		data = append(data, row...)
	}
	return Array{rows: len(rows), cols: cols, data: data}, nil
}

// ArrayFromMatrix copies a gonum matrix into an array of float64 values.
func ArrayFromMatrix(m mat.Matrix) Array {
	r, c := m.Dims()
	data := make([]any, 0, r*c)
	for i := range r {
		for j := range c {
			data = append(data, m.At(i, j))
		}
	}
	return Array{rows: r, cols: c, data: data}
}

// arrayFromColumns assembles column slices of length n into an array.
func arrayFromColumns(n int, cols [][]any) Array {
	data := make([]any, n*len(cols))
	for j, col := range cols {
		for i, v := range col {
			data[i*len(cols)+j] = v
		}
	}
	return Array{rows: n, cols: len(cols), data: data}
}

// Dims returns the number of rows and columns.
func (a Array) Dims() (r, c int) { return a.rows, a.cols }

// At returns the value at row i, column j. It panics when out of range.
func (a Array) At(i, j int) any {
	if i < 0 || i >= a.rows || j < 0 || j >= a.cols {
		panic(fmt.Sprintf("framekit: index (%d, %d) out of range for %dx%d array", i, j, a.rows, a.cols))
	}
	return a.data[i*a.cols+j]
}

// Row returns a copy of row i.
func (a Array) Row(i int) []any {
	out := make([]any, a.cols)
	copy(out, a.data[i*a.cols:(i+1)*a.cols])
	return out
}

// Col returns a copy of column j.
func (a Array) Col(j int) []any {
	out := make([]any, a.rows)
	for i := range a.rows {
		out[i] = a.data[i*a.cols+j]
	}
	return out
}

// Rows returns a copy of the array as a slice of rows.
func (a Array) Rows() [][]any {
	out := make([][]any, a.rows)
	for i := range a.rows {
		out[i] = a.Row(i)
	}
	return out
}

// Flatten returns the values in row-major order.
func (a Array) Flatten() []any {
	out := make([]any, len(a.data))
	copy(out, a.data)
	return out
}

// Reshape returns the same values laid out as rows×cols. One dimension may
// be -1, in which case it is inferred from the element count.
func (a Array) Reshape(rows, cols int) (Array, error) {
	n := len(a.data)
	switch {
	case rows == -1 && cols > 0 && n%cols == 0:
		rows = n / cols
	case cols == -1 && rows > 0 && n%rows == 0:
		cols = n / rows
	}
	if rows < 0 || cols < 0 || rows*cols != n {
		return Array{}, fmt.Errorf("%w: cannot reshape %dx%d into %dx%d", ErrShapeMismatch, a.rows, a.cols, rows, cols)
	}
	return Array{rows: rows, cols: cols, data: a.Flatten()}, nil
}

// HStack joins b to the right of a. Both must have the same row count.
func (a Array) HStack(b Array) (Array, error) {
	if a.rows != b.rows {
		return Array{}, fmt.Errorf("%w: cannot stack %d rows beside %d rows", ErrShapeMismatch, b.rows, a.rows)
	}
	cols := a.cols + b.cols
	data := make([]any, 0, a.rows*cols)
	for i := range a.rows {
		data = append(data, a.data[i*a.cols:(i+1)*a.cols]...)
		data = append(data, b.data[i*b.cols:(i+1)*b.cols]...)
	}
	return Array{rows: a.rows, cols: cols, data: data}, nil
}

// Dense converts the array to a gonum matrix. Missing values become NaN;
// any other non-numeric value is an error.
func (a Array) Dense() (*mat.Dense, error) {
	if a.rows == 0 || a.cols == 0 {
		return &mat.Dense{}, nil
	}
	data := make([]float64, len(a.data))
	for k, v := range a.data {
		f, ok := toFloat(v)
		if !ok {
			return nil, fmt.Errorf("%w: %v (%T) at row %d, column %d", ErrNotNumeric, v, v, k/a.cols, k%a.cols)
		}
		data[k] = f
	}
	return mat.NewDense(a.rows, a.cols, data), nil
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case nil:
		return math.NaN(), true
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	default:
		return 0, false
	}
}

func isMissing(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(t)
	case float32:
		return math.IsNaN(float64(t))
	default:
		return false
	}
}
