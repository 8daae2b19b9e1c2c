package framekit_test

import (
	"strings"
	"testing"

	"github.com/bjaus/framekit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullOptions(t *testing.T) {
	t.Parallel()
	got := framekit.FullOptions()
	assert.Zero(t, got.MaxRows)
	assert.Zero(t, got.MaxColumns)
	assert.Equal(t, 2000, got.Width)
	assert.Zero(t, got.MaxColWidth)
	assert.Equal(t, framekit.FloatFormat{Precision: 2, MinWidth: 20, Grouping: true}, got.Float)
	assert.Equal(t, framekit.Table, got.Format)
	assert.True(t, got.Index)
}

func TestShortOptions(t *testing.T) {
	t.Parallel()
	got := framekit.ShortOptions()
	assert.Equal(t, 10, got.Width)
	assert.Equal(t, 20, got.MaxColWidth)
}

func TestFullAndShortDifferOnlyInWidthAndTruncation(t *testing.T) {
	t.Parallel()
	full, short := framekit.FullOptions(), framekit.ShortOptions()
	short.Width = full.Width
	short.MaxColWidth = full.MaxColWidth
	assert.Equal(t, full, short)
}

func TestFullKeepsOutputSettings(t *testing.T) {
	t.Parallel()
	base := framekit.DefaultOptions()
	base.Format = framekit.Markdown
	base.Border = framekit.BorderHeavy
	base.Index = false

	got := base.Short()
	assert.Equal(t, framekit.Markdown, got.Format)
	assert.Equal(t, framekit.BorderHeavy, got.Border)
	assert.False(t, got.Index)
	assert.Equal(t, 80, base.Width, "receiver must not change")
}

func TestOptionsValidate(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		mutate  func(*framekit.Options)
		wantErr require.ErrorAssertionFunc
	}{
		"defaults":          {mutate: func(*framekit.Options) {}, wantErr: require.NoError},
		"zero value":        {mutate: func(o *framekit.Options) { *o = framekit.Options{} }, wantErr: require.NoError},
		"negative width":    {mutate: func(o *framekit.Options) { o.Width = -1 }, wantErr: require.Error},
		"negative rows":     {mutate: func(o *framekit.Options) { o.MaxRows = -5 }, wantErr: require.Error},
		"negative colwidth": {mutate: func(o *framekit.Options) { o.MaxColWidth = -1 }, wantErr: require.Error},
		"precision too big": {mutate: func(o *framekit.Options) { o.Float.Precision = 18 }, wantErr: require.Error},
		"unknown format":    {mutate: func(o *framekit.Options) { o.Format = "xml" }, wantErr: require.Error},
		"unknown border":    {mutate: func(o *framekit.Options) { o.Border = "dotted" }, wantErr: require.Error},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			opts := framekit.DefaultOptions()
			tc.mutate(&opts)
			err := opts.Validate()
			tc.wantErr(t, err)
			if err != nil {
				assert.ErrorIs(t, err, framekit.ErrInvalidOptions)
			}
		})
	}
}

func TestOptionsFromEnvDefaults(t *testing.T) {
	got, err := framekit.OptionsFromEnv("FKTEST_UNSET")
	require.NoError(t, err)
	assert.Equal(t, framekit.DefaultOptions(), got)
}

func TestOptionsFromEnv(t *testing.T) {
	t.Setenv("FKTEST_WIDTH", "120")
	t.Setenv("FKTEST_BORDER", "ascii")
	t.Setenv("FKTEST_INDEX", "false")
	t.Setenv("FKTEST_FLOAT_PRECISION", "3")
	t.Setenv("FKTEST_FLOAT_GROUPING", "true")

	got, err := framekit.OptionsFromEnv("FKTEST")
	require.NoError(t, err)

	want := framekit.DefaultOptions()
	want.Width = 120
	want.Border = framekit.BorderASCII
	want.Index = false
	want.Float.Precision = 3
	want.Float.Grouping = true
	assert.Equal(t, want, got)
}

func TestOptionsFromEnvInvalid(t *testing.T) {
	tests := map[string]struct {
		key, value string
	}{
		"not a number":  {key: "FKBAD_MAX_ROWS", value: "many"},
		"out of range":  {key: "FKBAD_MAX_ROWS", value: "-1"},
		"unknown style": {key: "FKBAD_BORDER", value: "dotted"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := framekit.OptionsFromEnv("FKBAD")
			assert.ErrorIs(t, err, framekit.ErrInvalidOptions)
		})
	}
}

func TestLoadOptions(t *testing.T) {
	t.Parallel()
	doc := `
format: markdown
width: 120
border: rounded
`
	got, err := framekit.LoadOptions(strings.NewReader(doc))
	require.NoError(t, err)

	want := framekit.DefaultOptions()
	want.Format = framekit.Markdown
	want.Width = 120
	want.Border = framekit.BorderRounded
	assert.Equal(t, want, got)
}

func TestLoadOptionsEmpty(t *testing.T) {
	t.Parallel()
	got, err := framekit.LoadOptions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, framekit.DefaultOptions(), got)
}

func TestLoadOptionsErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"unknown field": "colour: red\n",
		"bad value":     "width: -3\n",
		"not yaml":      "width: [\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := framekit.LoadOptions(strings.NewReader(doc))
			assert.ErrorIs(t, err, framekit.ErrInvalidOptions)
		})
	}
}
