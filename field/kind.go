// Package field models temporal fields: the closed enumeration of field
// kinds, the presence-based resolution of generic kinds to concrete ones,
// per-field value limits, and the field graph shared by all instances of a
// calendar.
package field

//go:generate go run ../internal/cmd/generate

// Kind identifies a temporal field. Generic kinds (KindYear, KindMonth,
// KindDay, ...) name a field family; concrete kinds (KindDayOfMonth, ...)
// pin the meaning down to the companions present in a field bag.
//
// The names, wire spellings and base-kind table live in kind_gen.go.
type Kind uint8

const (
	KindInvalid Kind = iota

	// generic kinds
	KindEra
	KindYear
	KindQuarter
	KindMonth
	KindWeek
	KindDay

	// concrete kinds
	KindCanonicalYear
	KindYearOfEra
	KindQuarterOfYear
	KindMonthOfYear
	KindMonthOfQuarter
	KindWeekOfYear
	KindWeekOfMonth
	KindDayOfYear
	KindDayOfMonth
	KindDayOfWeek

	kindCount
)

// IsGeneric reports whether k names a field family rather than a concrete
// field.
func (k Kind) IsGeneric() bool {
	return k != KindInvalid && k.Base() == k
}
