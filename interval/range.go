// Package interval implements the value-range algebra of the calendar
// engine: closed, open and unbounded ranges over any comparable type, and
// vague ranges whose boundaries are themselves ranges.
//
// Ranges are immutable value types. Every mutating-looking operation
// (refine, expand) returns a new range and leaves the receiver untouched,
// so ranges can be shared freely between calendars and instances.
package interval

import (
	"fmt"

	"github.com/calendrical/chrono-toolbox-go/compare"
)

// Boundary describes one side of a Range. An undefined boundary means the
// range is unbounded on that side; Inclusive is meaningless then.
type Boundary[T compare.Comparable[T]] struct {
	Value     T
	Defined   bool
	Inclusive bool
}

// Range is an interval over T. The zero value is the full unbounded range.
type Range[T compare.Comparable[T]] struct {
	lower Boundary[T]
	upper Boundary[T]
}

// New builds a range from explicit boundaries.
func New[T compare.Comparable[T]](lower, upper Boundary[T]) Range[T] {
	return Range[T]{lower: lower, upper: upper}
}

// Closed returns [lower, upper].
func Closed[T compare.Comparable[T]](lower, upper T) Range[T] {
	return Range[T]{
		lower: Boundary[T]{Value: lower, Defined: true, Inclusive: true},
		upper: Boundary[T]{Value: upper, Defined: true, Inclusive: true},
	}
}

// Open returns (lower, upper).
func Open[T compare.Comparable[T]](lower, upper T) Range[T] {
	return Range[T]{
		lower: Boundary[T]{Value: lower, Defined: true},
		upper: Boundary[T]{Value: upper, Defined: true},
	}
}

// UpperOpen returns [lower, upper): the lower boundary is included, the
// upper is not.
func UpperOpen[T compare.Comparable[T]](lower, upper T) Range[T] {
	return Range[T]{
		lower: Boundary[T]{Value: lower, Defined: true, Inclusive: true},
		upper: Boundary[T]{Value: upper, Defined: true},
	}
}

// LowerOpen returns (lower, upper]: the upper boundary is included, the
// lower is not.
func LowerOpen[T compare.Comparable[T]](lower, upper T) Range[T] {
	return Range[T]{
		lower: Boundary[T]{Value: lower, Defined: true},
		upper: Boundary[T]{Value: upper, Defined: true, Inclusive: true},
	}
}

// AtLeast returns [lower, +inf).
func AtLeast[T compare.Comparable[T]](lower T) Range[T] {
	return Range[T]{lower: Boundary[T]{Value: lower, Defined: true, Inclusive: true}}
}

// AtMost returns (-inf, upper].
func AtMost[T compare.Comparable[T]](upper T) Range[T] {
	return Range[T]{upper: Boundary[T]{Value: upper, Defined: true, Inclusive: true}}
}

// Unbounded returns the full range, which contains every value.
func Unbounded[T compare.Comparable[T]]() Range[T] {
	return Range[T]{}
}

// Point returns the degenerate range [v, v].
func Point[T compare.Comparable[T]](v T) Range[T] {
	return Closed(v, v)
}

func (r Range[T]) Lower() Boundary[T] { return r.lower }

func (r Range[T]) Upper() Boundary[T] { return r.upper }

// Contains reports whether v lies inside the range, honoring the
// inclusivity flags. Unbounded sides always satisfy. An undecidable
// boundary comparison is reported as a RangeError.
func (r Range[T]) Contains(v T) (bool, error) {
	if r.lower.Defined {
		c := r.lower.Value.Compare(v)
		if !c.Exists() {
			return false, &RangeError{Reason: fmt.Sprintf("lower boundary %v is not comparable to %v", r.lower.Value, v)}
		}
		if c.IsGreater() {
			return false, nil
		}
		if c.IsEqual() && !r.lower.Inclusive {
			return false, nil
		}
	}
	if r.upper.Defined {
		c := r.upper.Value.Compare(v)
		if !c.Exists() {
			return false, &RangeError{Reason: fmt.Sprintf("upper boundary %v is not comparable to %v", r.upper.Value, v)}
		}
		if c.IsLesser() {
			return false, nil
		}
		if c.IsEqual() && !r.upper.Inclusive {
			return false, nil
		}
	}
	return true, nil
}

// IsEmpty reports whether the range admits no value at all. Only ranges
// with both boundaries defined can be empty, e.g. the exclusive-exclusive
// range (5, 5).
func (r Range[T]) IsEmpty() bool {
	if !r.lower.Defined || !r.upper.Defined {
		return false
	}
	c := r.lower.Value.Compare(r.upper.Value)
	if c.IsGreater() {
		return true
	}
	if c.IsEqual() && !(r.lower.Inclusive && r.upper.Inclusive) {
		return true
	}
	return false
}

// RefineLower returns a range whose lower boundary is tightened to v, but
// only if v lies strictly inside the current boundary. Refinement never
// widens; undecidable comparisons leave the range unchanged.
func (r Range[T]) RefineLower(v T) Range[T] {
	if r.lower.Defined {
		c := r.lower.Value.Compare(v)
		if !c.Exists() || !c.IsLesser() {
			return r
		}
	}
	r.lower = Boundary[T]{Value: v, Defined: true, Inclusive: true}
	return r
}

// RefineUpper is the upper-boundary counterpart of RefineLower.
func (r Range[T]) RefineUpper(v T) Range[T] {
	if r.upper.Defined {
		c := r.upper.Value.Compare(v)
		if !c.Exists() || !c.IsGreater() {
			return r
		}
	}
	r.upper = Boundary[T]{Value: v, Defined: true, Inclusive: true}
	return r
}

// ExpandLower returns a range whose lower boundary is loosened to v.
// Expansion never tightens: when v lies inside the current boundary, or
// the side is already unbounded, or the comparison is undecidable, the
// receiver is returned unchanged.
func (r Range[T]) ExpandLower(v T) Range[T] {
	if !r.lower.Defined {
		return r
	}
	c := r.lower.Value.Compare(v)
	if !c.Exists() || !c.IsGreater() {
		return r
	}
	r.lower = Boundary[T]{Value: v, Defined: true, Inclusive: true}
	return r
}

// ExpandUpper is the upper-boundary counterpart of ExpandLower.
func (r Range[T]) ExpandUpper(v T) Range[T] {
	if !r.upper.Defined {
		return r
	}
	c := r.upper.Value.Compare(v)
	if !c.Exists() || !c.IsLesser() {
		return r
	}
	r.upper = Boundary[T]{Value: v, Defined: true, Inclusive: true}
	return r
}

// ExpandLowerUnbounded drops a defined lower boundary. An already
// unbounded side stays as it is.
func (r Range[T]) ExpandLowerUnbounded() Range[T] {
	if r.lower.Defined {
		r.lower = Boundary[T]{}
	}
	return r
}

// ExpandUpperUnbounded drops a defined upper boundary.
func (r Range[T]) ExpandUpperUnbounded() Range[T] {
	if r.upper.Defined {
		r.upper = Boundary[T]{}
	}
	return r
}

// Expand returns a range guaranteed to contain v. It fails when the value
// sits exactly on an exclusive boundary, which cannot legally be widened
// onto its own endpoint, and when a boundary comparison is undecidable.
func (r Range[T]) Expand(v T) (Range[T], error) {
	ok, err := r.Contains(v)
	if err != nil {
		return r, err
	}
	if ok {
		return r, nil
	}
	if r.lower.Defined {
		switch c := r.lower.Value.Compare(v); {
		case c.IsGreater():
			return r.ExpandLower(v), nil
		case c.IsEqual():
			return r, &RangeError{Reason: fmt.Sprintf("cannot expand exclusive lower boundary onto %v", v)}
		}
	}
	if r.upper.Defined {
		switch c := r.upper.Value.Compare(v); {
		case c.IsLesser():
			return r.ExpandUpper(v), nil
		case c.IsEqual():
			return r, &RangeError{Reason: fmt.Sprintf("cannot expand exclusive upper boundary onto %v", v)}
		}
	}
	return r, &RangeError{Reason: fmt.Sprintf("cannot expand range %v to contain %v", r, v)}
}

// Hull returns the smallest range containing both the receiver and other.
// An unbounded side on either range is unbounded in the result.
func (r Range[T]) Hull(other Range[T]) Range[T] {
	out := r
	if !other.lower.Defined {
		out.lower = Boundary[T]{}
	} else if out.lower.Defined {
		c := out.lower.Value.Compare(other.lower.Value)
		if c.IsGreater() {
			out.lower = other.lower
		} else if c.IsEqual() && other.lower.Inclusive {
			out.lower.Inclusive = true
		}
	}
	if !other.upper.Defined {
		out.upper = Boundary[T]{}
	} else if out.upper.Defined {
		c := out.upper.Value.Compare(other.upper.Value)
		if c.IsLesser() {
			out.upper = other.upper
		} else if c.IsEqual() && other.upper.Inclusive {
			out.upper.Inclusive = true
		}
	}
	return out
}

// Compare orders ranges totally: lower boundaries first, where an
// unbounded lower sorts before any bounded one and, on equal values, an
// inclusive lower before an exclusive one; then upper boundaries, where an
// unbounded upper sorts after any bounded one and an inclusive upper after
// an exclusive one. Range therefore itself satisfies compare.Comparable.
func (r Range[T]) Compare(other Range[T]) compare.Result {
	if c := compareLower(r.lower, other.lower); !c.IsEqual() {
		return c
	}
	return compareUpper(r.upper, other.upper)
}

func compareLower[T compare.Comparable[T]](a, b Boundary[T]) compare.Result {
	switch {
	case !a.Defined && !b.Defined:
		return compare.Equal
	case !a.Defined:
		return compare.Lesser
	case !b.Defined:
		return compare.Greater
	}
	c := a.Value.Compare(b.Value)
	if !c.IsEqual() {
		return c
	}
	switch {
	case a.Inclusive == b.Inclusive:
		return compare.Equal
	case a.Inclusive:
		return compare.Lesser
	default:
		return compare.Greater
	}
}

func compareUpper[T compare.Comparable[T]](a, b Boundary[T]) compare.Result {
	switch {
	case !a.Defined && !b.Defined:
		return compare.Equal
	case !a.Defined:
		return compare.Greater
	case !b.Defined:
		return compare.Lesser
	}
	c := a.Value.Compare(b.Value)
	if !c.IsEqual() {
		return c
	}
	switch {
	case a.Inclusive == b.Inclusive:
		return compare.Equal
	case a.Inclusive:
		return compare.Greater
	default:
		return compare.Lesser
	}
}

func (r Range[T]) String() string {
	lo, hi := "-inf", "+inf"
	lb, ub := "(", ")"
	if r.lower.Defined {
		lo = fmt.Sprintf("%v", r.lower.Value)
		if r.lower.Inclusive {
			lb = "["
		}
	}
	if r.upper.Defined {
		hi = fmt.Sprintf("%v", r.upper.Value)
		if r.upper.Inclusive {
			ub = "]"
		}
	}
	return fmt.Sprintf("%s%s, %s%s", lb, lo, hi, ub)
}
