package framekit

import "github.com/go-gota/gota/dataframe"

// Transformer is a two-phase pipeline stage over datasets. Fit derives
// whatever parameters the stage needs and returns the fitted stage;
// Transform applies it. Stages in this package are stateless, so Fit returns
// the receiver unchanged.
type Transformer interface {
	Fit(df dataframe.DataFrame) (Transformer, error)
	Transform(df dataframe.DataFrame) (Array, error)
}

// ArrayTransformer is a pipeline stage that consumes the output of a
// previous stage.
type ArrayTransformer interface {
	FitArray(a Array) (ArrayTransformer, error)
	TransformArray(a Array) (Array, error)
}

// FitTransform fits t on df and transforms df with the fitted stage.
func FitTransform(t Transformer, df dataframe.DataFrame) (Array, error) {
	fitted, err := t.Fit(df)
	if err != nil {
		return Array{}, err
	}
	return fitted.Transform(df)
}
