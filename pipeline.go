package framekit

import "github.com/go-gota/gota/dataframe"

type chain struct {
	first Transformer
	steps []ArrayTransformer
}

// Chain returns a stage that runs first on the dataset and passes its
// output through steps in order.
func Chain(first Transformer, steps ...ArrayTransformer) Transformer {
	return &chain{first: first, steps: steps}
}

func (c *chain) Fit(df dataframe.DataFrame) (Transformer, error) {
	first, err := c.first.Fit(df)
	if err != nil {
		return nil, err
	}
	a, err := first.Transform(df)
	if err != nil {
		return nil, err
	}
	steps := make([]ArrayTransformer, len(c.steps))
	for i, step := range c.steps {
		if steps[i], err = step.FitArray(a); err != nil {
			return nil, err
		}
		if i == len(c.steps)-1 {
			break
		}
		if a, err = steps[i].TransformArray(a); err != nil {
			return nil, err
		}
	}
	return &chain{first: first, steps: steps}, nil
}

func (c *chain) Transform(df dataframe.DataFrame) (Array, error) {
	a, err := c.first.Transform(df)
	if err != nil {
		return Array{}, err
	}
	for _, step := range c.steps {
		if a, err = step.TransformArray(a); err != nil {
			return Array{}, err
		}
	}
	return a, nil
}

type union struct {
	parts []Transformer
}

// Union returns a stage whose output is the outputs of parts side by side.
// Every part must produce the same number of rows.
func Union(parts ...Transformer) Transformer {
	return &union{parts: parts}
}

func (u *union) Fit(df dataframe.DataFrame) (Transformer, error) {
	parts := make([]Transformer, len(u.parts))
	for i, p := range u.parts {
		fitted, err := p.Fit(df)
		if err != nil {
			return nil, err
		}
		parts[i] = fitted
	}
	return &union{parts: parts}, nil
}

func (u *union) Transform(df dataframe.DataFrame) (Array, error) {
	out := Array{rows: df.Nrow()}
	for _, p := range u.parts {
		a, err := p.Transform(df)
		if err != nil {
			return Array{}, err
		}
		if out, err = out.HStack(a); err != nil {
			return Array{}, err
		}
	}
	return out, nil
}
