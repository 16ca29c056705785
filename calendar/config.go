package calendar

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/calendrical/chrono-toolbox-go/compare"
	"github.com/calendrical/chrono-toolbox-go/field"
	"github.com/calendrical/chrono-toolbox-go/interval"
)

// Declarative calendar configuration. Calendars whose field limits are
// all fixed (possibly vague) ranges can be authored as YAML instead of
// code:
//
//	name: florentine
//	base: iso
//	start_of_year: {day: 25, month: 3}
//	leap:
//	  mean_year_length: "365.2425"
//	offsets:
//	  year: 1
//	fields:
//	  monthOfYear: {min: 1, max: 12}
//	  dayOfMonth: {min: 1, max_between: [28, 31]}
//	shapes: [date, yearAndMonth, year]
//
// Computed limits cannot be expressed in a file; calendars needing them
// are configured programmatically, or derive them from their base.

type fileConfig struct {
	Name        string `yaml:"name"`
	Base        string `yaml:"base"`
	StartOfYear *struct {
		Day   int64 `yaml:"day"`
		Month int64 `yaml:"month"`
	} `yaml:"start_of_year"`
	Leap    *leapSpec            `yaml:"leap"`
	Offsets map[string]int64     `yaml:"offsets"`
	Fields  map[string]fieldSpec `yaml:"fields"`
	Shapes  []string             `yaml:"shapes"`
}

type leapSpec struct {
	Cycle *struct {
		Every  int64 `yaml:"every"`
		Except int64 `yaml:"except"`
		Unless int64 `yaml:"unless"`
	} `yaml:"cycle"`
	MeanYearLength string `yaml:"mean_year_length"`
}

// fieldSpec declares a field's bounds. min/max give exact boundaries;
// min_between/max_between give the envelope a vague boundary lies in.
type fieldSpec struct {
	Min        *int64    `yaml:"min"`
	Max        *int64    `yaml:"max"`
	MinBetween *[2]int64 `yaml:"min_between"`
	MaxBetween *[2]int64 `yaml:"max_between"`
}

// LoadConfig reads a declarative calendar configuration file.
func LoadConfig(path string) (Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return ParseConfig(buf)
}

// ParseConfig builds a validated Config from YAML. Unknown field names
// fail with an UnsupportedFieldError naming them.
func ParseConfig(buf []byte) (Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(buf, &fc); err != nil {
		return Config{}, fmt.Errorf("parsing calendar config: %w", err)
	}
	if fc.Name == "" {
		return Config{}, fmt.Errorf("calendar config: name is required")
	}

	cfg := Config{Name: fc.Name, Base: fc.Base}
	if fc.StartOfYear != nil {
		cfg.StartOfYear = StartOfYear{Day: fc.StartOfYear.Day, Month: fc.StartOfYear.Month}
	}

	if fc.Leap != nil {
		leap, err := fc.Leap.rule()
		if err != nil {
			return Config{}, fmt.Errorf("calendar config %q: %w", fc.Name, err)
		}
		cfg.Leap = leap
	}

	if len(fc.Offsets) > 0 {
		cfg.Offsets = make(map[field.Kind]Offset, len(fc.Offsets))
		for name, off := range fc.Offsets {
			k, ok := field.ParseKind(name)
			if !ok {
				return Config{}, &UnsupportedFieldError{Field: name}
			}
			cfg.Offsets[k] = FixedOffset(off)
		}
	}

	if len(fc.Fields) > 0 {
		cfg.Fields = make(map[field.Kind]field.Definition, len(fc.Fields))
		for name, spec := range fc.Fields {
			k, ok := field.ParseKind(name)
			if !ok {
				return Config{}, &UnsupportedFieldError{Field: name}
			}
			bounds, err := spec.bounds()
			if err != nil {
				return Config{}, fmt.Errorf("calendar config %q, field %s: %w", fc.Name, name, err)
			}
			cfg.Fields[k] = field.Definition{Limit: field.FixedLimit{Bounds: bounds}}
		}
	}

	if len(fc.Shapes) == 0 {
		cfg.Shapes = DefaultShapes()
	} else {
		for _, name := range fc.Shapes {
			s, ok := ParseShape(name)
			if !ok {
				return Config{}, fmt.Errorf("calendar config %q: unknown shape %q", fc.Name, name)
			}
			cfg.Shapes = append(cfg.Shapes, s)
		}
	}

	return cfg, nil
}

func (l *leapSpec) rule() (LeapRule, error) {
	switch {
	case l.Cycle != nil && l.MeanYearLength != "":
		return nil, fmt.Errorf("leap: cycle and mean_year_length are mutually exclusive")
	case l.Cycle != nil:
		return CycleLeap(l.Cycle.Every, l.Cycle.Except, l.Cycle.Unless), nil
	case l.MeanYearLength != "":
		d, err := compare.NewDecimal(l.MeanYearLength)
		if err != nil {
			return nil, fmt.Errorf("leap: invalid mean_year_length %q: %w", l.MeanYearLength, err)
		}
		return MeanYearLeap(d.Value), nil
	default:
		return nil, fmt.Errorf("leap: either cycle or mean_year_length is required")
	}
}

func (s fieldSpec) bounds() (field.Bounds, error) {
	if s.MinBetween == nil && s.MaxBetween == nil {
		switch {
		case s.Min != nil && s.Max != nil:
			return interval.Closed(compare.Int(*s.Min), compare.Int(*s.Max)), nil
		case s.Min != nil:
			return interval.AtLeast(compare.Int(*s.Min)), nil
		case s.Max != nil:
			return interval.AtMost(compare.Int(*s.Max)), nil
		default:
			return interval.Unbounded[compare.Int](), nil
		}
	}

	lower := interval.Unbounded[compare.Int]()
	switch {
	case s.MinBetween != nil:
		lower = interval.Closed(compare.Int(s.MinBetween[0]), compare.Int(s.MinBetween[1]))
	case s.Min != nil:
		lower = interval.Point(compare.Int(*s.Min))
	}
	upper := interval.Unbounded[compare.Int]()
	switch {
	case s.MaxBetween != nil:
		upper = interval.Closed(compare.Int(s.MaxBetween[0]), compare.Int(s.MaxBetween[1]))
	case s.Max != nil:
		upper = interval.Point(compare.Int(*s.Max))
	}
	return interval.NewVague(lower, upper, true, true)
}
