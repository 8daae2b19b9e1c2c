package framekit

import (
	"bytes"
	"fmt"
	"io"
)

// Render writes v to w using opts. Renderable values are gota dataframes
// and series, [Array] and gonum matrices. Nothing is written when v cannot
// be rendered or opts are invalid.
func Render(w io.Writer, v any, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	f, err := frameOf(v)
	if err != nil {
		return err
	}
	switch opts.format() {
	case Table:
		return writeTable(w, buildGrid(f, opts), opts)
	case Markdown:
		return writeMarkdown(w, buildGrid(f, opts), opts)
	case HTML:
		return writeHTML(w, buildGrid(f, opts), opts)
	case CSV:
		return writeCSV(w, f, opts, ',')
	case TSV:
		return writeTSV(w, f, opts)
	case JSON:
		return writeJSON(w, f)
	case JSONL:
		return writeJSONL(w, f)
	case YAML:
		return writeYAML(w, f)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, opts.Format)
	}
}

// Marshal renders v and returns the bytes.
func Marshal(v any, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, v, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PrintFull renders v to w with [FullOptions].
func PrintFull(w io.Writer, v any) error { return Render(w, v, FullOptions()) }

// PrintShort renders v to w with [ShortOptions].
func PrintShort(w io.Writer, v any) error { return Render(w, v, ShortOptions()) }

// Printer renders values to one writer with its own base options. Each
// call works on a copy, so a failed render leaves the printer as it was.
// A Printer is safe for concurrent use when its writer is.
type Printer struct {
	w    io.Writer
	opts Options
}

// NewPrinter returns a printer writing to w with base options opts.
func NewPrinter(w io.Writer, opts Options) *Printer {
	return &Printer{w: w, opts: opts}
}

// Options returns the printer's base options.
func (p *Printer) Options() Options { return p.opts }

// Print renders v with the base options.
func (p *Printer) Print(v any) error { return Render(p.w, v, p.opts) }

// PrintFull renders v with the base options widened by [Options.Full].
func (p *Printer) PrintFull(v any) error { return Render(p.w, v, p.opts.Full()) }

// PrintShort renders v with the base options narrowed by [Options.Short].
func (p *Printer) PrintShort(v any) error { return Render(p.w, v, p.opts.Short()) }
