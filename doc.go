// Package framekit displays tabular data and extracts model features from it.
//
// The package has two independent halves: a renderer for gota dataframes,
// series, [Array] values and gonum matrices, and a set of fit/transform
// stages that pull columns out of a dataframe for a modeling pipeline.
//
// # Display
//
// [Render] writes a value with an explicit [Options] formatting context.
// Options are plain values, so a render never changes any state that
// outlives the call:
//
//	opts := framekit.DefaultOptions()
//	opts.Border = framekit.BorderRounded
//	framekit.Render(os.Stdout, df, opts)
//
// [PrintFull] and [PrintShort] use two fixed constraint sets:
//
//   - full: every row and column, 2000 characters per line, untruncated cells
//   - short: every row and column, 10 characters per line, cells cut at 20
//
// Both print floats comma-grouped with two decimals in a 20 character field.
// A [Printer] carries a writer and base options; its PrintFull and
// PrintShort apply the same overrides to a copy of those options.
//
// Table, Markdown and HTML honour the display limits. CSV, TSV, JSON, JSONL
// and YAML are data formats and always emit the complete dataset.
//
// Options can be loaded from the environment with [OptionsFromEnv] or from
// YAML with [LoadOptions]:
//
//	FRAMEKIT_WIDTH=120 FRAMEKIT_FLOAT_PRECISION=3
//
// # Feature extraction
//
// Every stage implements [Transformer]. Fit is a no-op returning the stage
// itself; Transform reads a dataframe and returns an [Array].
//
//   - [TextExtractor] returns the selected columns as they are (N×k).
//   - [ColumnExtractor] returns them flattened to a column vector (N×1 for
//     one column), tagged [Categorical] by [NewOHEExtractor] or [Numeric] by
//     [NewNumberExtractor].
//   - [Imputer] fills missing values with 0.
//
// [Chain] runs a stage and feeds its output through [ArrayTransformer]
// steps; [Union] puts the outputs of several stages side by side:
//
//	features := framekit.Union(
//		framekit.NewOHEExtractor("color"),
//		framekit.Chain(framekit.NewNumberExtractor("price"), framekit.NewImputer()),
//	)
//	x, err := framekit.FitTransform(features, df)
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrColumnNotFound]: a selected column is missing from the dataset
//   - [ErrNotRenderable]: the value cannot be displayed
//   - [ErrUnsupportedFormat]: unknown format string
//   - [ErrInvalidOptions]: options fail validation
//   - [ErrNotNumeric]: a matrix conversion met a non-numeric value
//   - [ErrShapeMismatch]: arrays with incompatible shapes
package framekit
