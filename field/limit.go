package field

import (
	"github.com/calendrical/chrono-toolbox-go/compare"
	"github.com/calendrical/chrono-toolbox-go/interval"
)

// Bounds is the containment contract shared by exact and vague ranges
// over field values. Both interval.Range[compare.Int] and
// interval.Vague[compare.Int] satisfy it.
type Bounds interface {
	Contains(v compare.Int) (bool, error)
}

// Values provides read access to the resolved field values of an
// instance, so computed limits can consult their context (e.g. the month
// and leap-year state bounding day-of-month).
type Values interface {
	Value(kind Kind) (int64, bool)
}

// MapValues adapts a plain kind-to-value mapping to the Values contract.
type MapValues map[Kind]int64

func (m MapValues) Value(kind Kind) (int64, bool) {
	v, ok := m[kind]
	return v, ok
}

// Limit is a field's value limit: either fixed bounds, or bounds computed
// from the values of companion fields. The variant is closed; callers
// branch exhaustively instead of runtime-checking arbitrary shapes.
type Limit interface {
	isLimit()
}

// FixedLimit declares context-independent bounds.
type FixedLimit struct {
	Bounds Bounds
}

func (FixedLimit) isLimit() {}

// ComputedLimit declares bounds that depend on the current values of
// companion fields.
type ComputedLimit struct {
	Compute func(values Values) Bounds
}

func (ComputedLimit) isLimit() {}

// Fixed is shorthand for a FixedLimit over an exact closed integer range.
func Fixed(lower, upper int64) Limit {
	return FixedLimit{Bounds: interval.Closed(compare.Int(lower), compare.Int(upper))}
}

// BoundsAt resolves a limit against the given context values. A computed
// limit requires a context; fixed limits ignore it.
func BoundsAt(l Limit, values Values) (Bounds, error) {
	switch l := l.(type) {
	case FixedLimit:
		return l.Bounds, nil
	case ComputedLimit:
		if values == nil {
			return nil, &interval.RangeError{Reason: "computed limit requires context values"}
		}
		return l.Compute(values), nil
	}
	return nil, &interval.RangeError{Reason: "no limit declared"}
}
