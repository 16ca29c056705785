package calendar

import (
	"github.com/calendrical/chrono-toolbox-go/compare"
	"github.com/calendrical/chrono-toolbox-go/field"
	"github.com/calendrical/chrono-toolbox-go/interval"
)

// ISO returns the configuration of the ISO 8601 (proleptic Gregorian)
// calendar as one instance of the generic engine: the engine itself knows
// nothing about month lengths or leap centuries, it all lives in this
// configuration.
func ISO() Config {
	leap := GregorianLeap()

	dayOfMonth := field.Definition{
		Limit: field.ComputedLimit{Compute: isoDayOfMonthBounds(leap)},
	}
	dayOfYear := field.Definition{
		Limit: field.ComputedLimit{Compute: isoDayOfYearBounds(leap)},
	}
	monthOfYear := field.Definition{
		Limit:     field.Fixed(1, 12),
		Supported: map[field.Kind]field.Definition{field.KindDayOfMonth: dayOfMonth},
	}
	canonicalYear := field.Definition{
		Limit: field.FixedLimit{Bounds: interval.Unbounded[compare.Int]()},
		Supported: map[field.Kind]field.Definition{
			field.KindMonthOfYear: monthOfYear,
			field.KindDayOfYear:   dayOfYear,
		},
	}

	return Config{
		Name:        "iso",
		StartOfYear: StartOfYear{Day: 1, Month: 1},
		Leap:        leap,
		Fields: map[field.Kind]field.Definition{
			field.KindEra:           {Limit: field.Fixed(0, 1)},
			field.KindYearOfEra:     {Limit: field.FixedLimit{Bounds: interval.AtLeast(compare.Int(1))}},
			field.KindCanonicalYear: canonicalYear,
			field.KindQuarterOfYear: {Limit: field.Fixed(1, 4)},
			field.KindMonthOfYear:   monthOfYear,
			field.KindWeekOfYear:    {Limit: field.FixedLimit{Bounds: mustVague(interval.Point(compare.Int(1)), interval.Closed(compare.Int(52), compare.Int(53)))}},
			field.KindWeekOfMonth:   {Limit: field.FixedLimit{Bounds: mustVague(interval.Point(compare.Int(1)), interval.Closed(compare.Int(4), compare.Int(6)))}},
			field.KindDayOfWeek:     {Limit: field.Fixed(1, 7)},
			field.KindDayOfMonth:    dayOfMonth,
			field.KindDayOfYear:     dayOfYear,
		},
		Equivalents: map[field.Kind][]field.Kind{
			field.KindCanonicalYear: {field.KindYear},
		},
		Offsets: map[field.Kind]Offset{
			// year 1 BCE is canonical year 0, 2 BCE is -1, and so on
			field.KindYearOfEra: FuncOffset(func(local int64, values field.Values) int64 {
				if era, ok := values.Value(field.KindEra); ok && era == 0 {
					return 1 - local
				}
				return local
			}),
		},
		Shapes: DefaultShapes(),
	}
}

var monthDays = [13]int64{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the length of an ISO month, 0 for months outside
// [1, 12].
func DaysInMonth(month int64, leap bool) int64 {
	if month < 1 || month > 12 {
		return 0
	}
	d := monthDays[month]
	if month == 2 && leap {
		d++
	}
	return d
}

// isoDayOfMonthBounds bounds day-of-month by the current month and
// leap-year state. Before the month is known the limit stays vague:
// the maximum is somewhere in 28..31.
func isoDayOfMonthBounds(leap LeapRule) func(field.Values) field.Bounds {
	vague := mustVague(interval.Point(compare.Int(1)), interval.Closed(compare.Int(28), compare.Int(31)))
	return func(v field.Values) field.Bounds {
		m, ok := v.Value(field.KindMonth)
		if !ok {
			m, ok = v.Value(field.KindMonthOfYear)
		}
		if !ok {
			return vague
		}
		isLeap := false
		if y, ok := v.Value(field.KindYear); ok {
			isLeap = leap(y)
		}
		return interval.Closed(compare.Int(1), compare.Int(DaysInMonth(m, isLeap)))
	}
}

func isoDayOfYearBounds(leap LeapRule) func(field.Values) field.Bounds {
	vague := mustVague(interval.Point(compare.Int(1)), interval.Closed(compare.Int(365), compare.Int(366)))
	return func(v field.Values) field.Bounds {
		y, ok := v.Value(field.KindYear)
		if !ok {
			return vague
		}
		days := int64(365)
		if leap(y) {
			days = 366
		}
		return interval.Closed(compare.Int(1), compare.Int(days))
	}
}

// mustVague wraps interval.NewVague for statically known envelopes.
func mustVague(lower, upper interval.Range[compare.Int]) interval.Vague[compare.Int] {
	v, err := interval.NewVague(lower, upper, true, true)
	if err != nil {
		panic(err)
	}
	return v
}
