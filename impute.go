package framekit

import (
	"math"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/mat"
)

// FillValue replaces every missing value an [Imputer] sees.
const FillValue float64 = 0

// Imputer replaces missing values (nil, NaN) with [FillValue]. It works on
// datasets, arrays and gonum matrices and never modifies its input.
type Imputer struct{}

// NewImputer returns a constant-fill imputer.
func NewImputer() *Imputer { return &Imputer{} }

// Fit returns im.
func (im *Imputer) Fit(dataframe.DataFrame) (Transformer, error) { return im, nil }

// FitArray returns im.
func (im *Imputer) FitArray(Array) (ArrayTransformer, error) { return im, nil }

// Transform returns every column of df as an array with missing values
// filled.
func (im *Imputer) Transform(df dataframe.DataFrame) (Array, error) {
	a, err := selectColumns(df, df.Names())
	if err != nil {
		return Array{}, err
	}
	return im.TransformArray(a)
}

// TransformArray returns a copy of a with missing values filled.
func (im *Imputer) TransformArray(a Array) (Array, error) {
	data := a.Flatten()
	for i, v := range data {
		if isMissing(v) {
			data[i] = FillValue
		}
	}
	return Array{rows: a.rows, cols: a.cols, data: data}, nil
}

// TransformMatrix returns a dense copy of m with NaN entries filled.
func (im *Imputer) TransformMatrix(m mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return &mat.Dense{}
	}
	out := mat.DenseCopyOf(m)
	for i := range r {
		for j := range c {
			if math.IsNaN(out.At(i, j)) {
				out.Set(i, j, FillValue)
			}
		}
	}
	return out
}
