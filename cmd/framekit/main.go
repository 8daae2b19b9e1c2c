// Command framekit prints a CSV or XLSX dataset, or the features extracted
// from it.
//
// Usage:
//
//	framekit [flags] FILE
//
// Base display options come from FRAMEKIT_* environment variables.
package main

import (
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/bjaus/framekit"
	"github.com/bjaus/framekit/internal/source"
)

const envPrefix = "FRAMEKIT"

var errUsage = errors.New("usage: framekit [flags] FILE")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	fs := flag.NewFlagSet("framekit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	short := fs.Bool("short", false, "narrow output: 10 characters per line, cells cut at 20")
	format := fs.String("format", "", "output format: "+joinFormats())
	border := fs.String("border", "", "table border: none | ascii | rounded | heavy | double")
	text := fs.String("text", "", "comma-separated columns to run through the text extractor")
	ohe := fs.String("ohe", "", "column to run through the one-hot extractor")
	number := fs.String("number", "", "column to run through the numeric extractor and imputer")
	sheet := fs.String("sheet", "", "worksheet to read from .xlsx input (default first)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		logger.Error("Invalid arguments", slog.Int("files", fs.NArg()), "error", errUsage)
		return errUsage
	}
	path := fs.Arg(0)

	opts, err := framekit.OptionsFromEnv(envPrefix)
	if err != nil {
		logger.Error("Failed to load options", "error", err)
		return err
	}
	if *format != "" {
		f, err := framekit.ParseFormat(*format)
		if err != nil {
			logger.Error("Invalid format", slog.String("format", *format), "error", err)
			return err
		}
		opts.Format = f
	}
	if *border != "" {
		opts.Border = framekit.BorderStyle(*border)
	}

	df, err := source.Load(path, *sheet)
	if err != nil {
		logger.Error("Failed to load dataset", slog.String("path", path), "error", err)
		return err
	}
	logger.Debug("Loaded dataset",
		slog.String("path", path),
		slog.Int("rows", df.Nrow()),
		slog.Int("columns", df.Ncol()))

	var stage framekit.Transformer
	switch {
	case *text != "":
		stage = framekit.NewTextExtractor(splitColumns(*text)...)
	case *ohe != "":
		stage = framekit.NewOHEExtractor(*ohe)
	case *number != "":
		stage = framekit.Chain(framekit.NewNumberExtractor(*number), framekit.NewImputer())
	}

	var value any = df
	if stage != nil {
		features, err := framekit.FitTransform(stage, df)
		if err != nil {
			logger.Error("Failed to extract features", slog.String("path", path), "error", err)
			return err
		}
		value = features
	}

	p := framekit.NewPrinter(stdout, opts)
	if *short {
		err = p.PrintShort(value)
	} else {
		err = p.PrintFull(value)
	}
	if err != nil {
		logger.Error("Failed to print", slog.String("path", path), "error", err)
		return err
	}
	return nil
}

func splitColumns(s string) []string {
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func joinFormats() string {
	names := make([]string, 0, len(framekit.Formats()))
	for _, f := range framekit.Formats() {
		names = append(names, f.String())
	}
	return strings.Join(names, " | ")
}
