package framekit

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"gopkg.in/yaml.v3"
)

// Options is the formatting context for a single render call. Limits of 0
// mean unlimited. Options are plain values: deriving a variant never changes
// the original.
type Options struct {
	Format Format      `yaml:"format" envconfig:"FORMAT" default:"table" validate:"omitempty,oneof=table markdown html csv tsv json jsonl yaml"`
	Border BorderStyle `yaml:"border" envconfig:"BORDER" default:"none" validate:"omitempty,oneof=none ascii rounded heavy double"`

	// Index prints the positional row index as the first column.
	Index bool `yaml:"index" envconfig:"INDEX" default:"true"`

	MaxRows     int `yaml:"max_rows" envconfig:"MAX_ROWS" default:"60" validate:"gte=0"`
	MaxColumns  int `yaml:"max_columns" envconfig:"MAX_COLUMNS" default:"20" validate:"gte=0"`
	Width       int `yaml:"width" envconfig:"WIDTH" default:"80" validate:"gte=0"`
	MaxColWidth int `yaml:"max_colwidth" envconfig:"MAX_COLWIDTH" default:"50" validate:"gte=0"`

	Float FloatFormat `yaml:"float" envconfig:"FLOAT"`
}

// FloatFormat controls how floating point cells are printed.
type FloatFormat struct {
	Precision int  `yaml:"precision" envconfig:"PRECISION" default:"6" validate:"gte=0,lte=17"`
	MinWidth  int  `yaml:"min_width" envconfig:"MIN_WIDTH" default:"0" validate:"gte=0"`
	Grouping  bool `yaml:"grouping" envconfig:"GROUPING" default:"false"`
}

var validate = validator.New()

// DefaultOptions returns the stock display settings: 60 rows, 20 columns,
// 80 characters wide, cells cut at 50 characters, six decimals.
func DefaultOptions() Options {
	return Options{
		Format:      Table,
		Border:      BorderNone,
		Index:       true,
		MaxRows:     60,
		MaxColumns:  20,
		Width:       80,
		MaxColWidth: 50,
		Float:       FloatFormat{Precision: 6},
	}
}

// FullOptions returns [DefaultOptions] widened by [Options.Full].
func FullOptions() Options { return DefaultOptions().Full() }

// ShortOptions returns [DefaultOptions] narrowed by [Options.Short].
func ShortOptions() Options { return DefaultOptions().Short() }

// Full returns a copy of o that shows every row and column on a 2000
// character line, never truncates cells and prints floats comma-grouped with
// two decimals in a field of at least 20 characters.
func (o Options) Full() Options {
	o.MaxRows = 0
	o.MaxColumns = 0
	o.Width = 2000
	o.Float = FloatFormat{Precision: 2, MinWidth: 20, Grouping: true}
	o.MaxColWidth = 0
	return o
}

// Short is [Options.Full] with a 10 character line and cells truncated at
// 20 characters.
func (o Options) Short() Options {
	o = o.Full()
	o.Width = 10
	o.MaxColWidth = 20
	return o
}

// Validate checks o against its field constraints.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	return nil
}

// OptionsFromEnv reads options from environment variables named
// PREFIX_FIELD, e.g. FRAMEKIT_WIDTH or FRAMEKIT_FLOAT_PRECISION. Unset
// variables take the [DefaultOptions] values.
func OptionsFromEnv(prefix string) (Options, error) {
	var o Options
	if err := envconfig.Process(prefix, &o); err != nil {
		return Options{}, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	if err := o.Validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}

// LoadOptions decodes a YAML document over [DefaultOptions]. An empty
// document yields the defaults.
func LoadOptions(r io.Reader) (Options, error) {
	o := DefaultOptions()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	if err := o.Validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}

func (o Options) format() Format {
	if o.Format == "" {
		return Table
	}
	return o.Format
}

func (o Options) border() BorderStyle {
	if o.Border == "" {
		return BorderNone
	}
	return o.Border
}

func (f FloatFormat) format(v float64) string {
	var s string
	switch {
	case math.IsNaN(v):
		s = "NaN"
	case math.IsInf(v, 1):
		s = "inf"
	case math.IsInf(v, -1):
		s = "-inf"
	case f.Grouping:
		s = message.NewPrinter(language.English).Sprint(number.Decimal(v, number.Scale(f.Precision)))
	default:
		s = strconv.FormatFloat(v, 'f', f.Precision, 64)
	}
	if pad := f.MinWidth - runewidth.StringWidth(s); pad > 0 {
		s = strings.Repeat(" ", pad) + s
	}
	return s
}
