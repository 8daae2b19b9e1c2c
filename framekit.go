package framekit

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrColumnNotFound    = errors.New("column not found")
	ErrNotRenderable     = errors.New("value not renderable")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidOptions    = errors.New("invalid options")
	ErrNotNumeric        = errors.New("value not numeric")
	ErrShapeMismatch     = errors.New("shape mismatch")
)

// Format represents an output format.
type Format string

const (
	Table    Format = "table"
	Markdown Format = "markdown"
	HTML     Format = "html"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
)

var formats = []Format{Table, Markdown, HTML, CSV, TSV, JSON, JSONL, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// IsDisplay reports whether f honours the display constraints in [Options].
// Data formats (CSV, TSV, JSON, JSONL, YAML) always emit the complete dataset.
func (f Format) IsDisplay() bool {
	switch f {
	case Table, Markdown, HTML:
		return true
	default:
		return false
	}
}

// BorderStyle controls table border characters.
type BorderStyle string

const (
	BorderNone    BorderStyle = "none"    // No borders, space-separated columns
	BorderASCII   BorderStyle = "ascii"   // +-+|
	BorderRounded BorderStyle = "rounded" // ╭─╮╰╯│┬┴├┤┼
	BorderHeavy   BorderStyle = "heavy"   // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble  BorderStyle = "double"  // ╔═╗╚╝║╦╩╠╣╬
)
