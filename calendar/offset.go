package calendar

import "github.com/calendrical/chrono-toolbox-go/field"

// Offset converts a calendar-local field value into the terms of the
// calendar's base. The variant is closed: a fixed integer distance or an
// arbitrary conversion function.
type Offset interface {
	canonical(local int64, values field.Values) int64
}

// FixedOffset is the constant amount the calendar's values run ahead of
// its base: canonical = local - offset.
type FixedOffset int64

func (o FixedOffset) canonical(local int64, _ field.Values) int64 {
	return local - int64(o)
}

// FuncOffset computes the base-calendar value from the local value and
// the companion field values of the instance, e.g. an era-dependent year
// conversion.
type FuncOffset func(local int64, values field.Values) int64

func (o FuncOffset) canonical(local int64, values field.Values) int64 {
	return o(local, values)
}
