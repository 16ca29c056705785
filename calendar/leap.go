package calendar

import "github.com/cockroachdb/apd/v3"

// LeapRule reports whether a canonical year is a leap year. Rules are
// injectable: the engine never hard-codes a historical leap table.
type LeapRule func(year int64) bool

// CycleLeap builds the divisor-based family of leap rules: a year is leap
// when divisible by every, unless it is also divisible by except, unless
// it is in turn divisible by unless. CycleLeap(4, 100, 400) is the
// Gregorian rule; pass zero to disable a level.
func CycleLeap(every, except, unless int64) LeapRule {
	return func(year int64) bool {
		if every <= 0 || year%every != 0 {
			return false
		}
		if except > 0 && year%except == 0 {
			return unless > 0 && year%unless == 0
		}
		return true
	}
}

// GregorianLeap returns the Gregorian 4/100/400 rule.
func GregorianLeap() LeapRule {
	return CycleLeap(4, 100, 400)
}

// MeanYearLeap derives a leap rule from a fractional mean year length,
// e.g. "365.2425" yields 97 leap years per 400: a year is leap when the
// accumulated fractional days reach a whole day. The fraction is carried
// in exact decimal arithmetic; binary floats drift at century boundaries.
func MeanYearLeap(length *apd.Decimal) LeapRule {
	var integ, frac apd.Decimal
	length.Modf(&integ, &frac)
	return func(year int64) bool {
		return wholeDays(year, &frac) > wholeDays(year-1, &frac)
	}
}

func wholeDays(year int64, frac *apd.Decimal) int64 {
	ctx := apd.BaseContext.WithPrecision(34)
	var accumulated, floored apd.Decimal
	if _, err := ctx.Mul(&accumulated, apd.New(year, 0), frac); err != nil {
		return 0
	}
	if _, err := ctx.Floor(&floored, &accumulated); err != nil {
		return 0
	}
	n, err := floored.Int64()
	if err != nil {
		return 0
	}
	return n
}
