package framekit_test

import (
	"testing"

	"github.com/bjaus/framekit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnionOfChains(t *testing.T) {
	t.Parallel()
	features := framekit.Union(
		framekit.NewOHEExtractor("color"),
		framekit.Chain(framekit.NewNumberExtractor("price"), framekit.NewImputer()),
	)
	got, err := framekit.FitTransform(features, products())
	require.NoError(t, err)
	assert.Equal(t, [][]any{{"red", 1.5}, {"blue", 0.0}, {"red", 3.0}}, got.Rows())
}

func TestUnionShapeMismatch(t *testing.T) {
	t.Parallel()
	features := framekit.Union(
		framekit.NewOHEExtractor("color", "desc"),
		framekit.NewNumberExtractor("qty"),
	)
	_, err := features.Transform(products())
	assert.ErrorIs(t, err, framekit.ErrShapeMismatch)
}

func TestUnionEmpty(t *testing.T) {
	t.Parallel()
	got, err := framekit.Union().Transform(products())
	require.NoError(t, err)
	r, c := got.Dims()
	assert.Equal(t, 3, r)
	assert.Zero(t, c)
}

func TestChainWithoutSteps(t *testing.T) {
	t.Parallel()
	got, err := framekit.Chain(framekit.NewTextExtractor("qty")).Transform(products())
	require.NoError(t, err)
	assert.Equal(t, []any{10, 20, 30}, got.Flatten())
}

func TestChainFitMatchesTransform(t *testing.T) {
	t.Parallel()
	stage := framekit.Chain(framekit.NewTextExtractor("price", "qty"), framekit.NewImputer(), framekit.NewImputer())
	want, err := stage.Transform(products())
	require.NoError(t, err)

	fitted, err := stage.Fit(products())
	require.NoError(t, err)
	got, err := fitted.Transform(products())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCompositionPropagatesErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]framekit.Transformer{
		"chain": framekit.Chain(framekit.NewTextExtractor("nope"), framekit.NewImputer()),
		"union": framekit.Union(framekit.NewOHEExtractor("color"), framekit.NewNumberExtractor("nope")),
	}
	for name, stage := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := stage.Transform(products())
			assert.ErrorIs(t, err, framekit.ErrColumnNotFound)
			_, err = framekit.FitTransform(stage, products())
			assert.ErrorIs(t, err, framekit.ErrColumnNotFound)
		})
	}
}

func TestChainFitRunsFirstStage(t *testing.T) {
	t.Parallel()
	_, err := framekit.Chain(framekit.NewTextExtractor("nope"), framekit.NewImputer()).Fit(products())
	assert.ErrorIs(t, err, framekit.ErrColumnNotFound)
}
