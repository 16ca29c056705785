package interval

import (
	"fmt"

	"github.com/calendrical/chrono-toolbox-go/compare"
)

// Vague is a range whose lower and upper boundaries are themselves ranges:
// an envelope of envelopes. The lower envelope describes how low the true
// lower boundary might be (its own lower bound is the smallest possible
// minimum, its upper bound the largest possible minimum), and symmetrically
// for the upper envelope. Vague ranges model fields whose legal bounds
// depend on context that is not resolved yet, e.g. the day-of-month
// maximum before month and leap-year state are known.
type Vague[T compare.Comparable[T]] struct {
	lower        Range[T]
	upper        Range[T]
	includeLower bool
	includeUpper bool
}

// NewVague builds a vague range from its two boundary envelopes. Scalar
// boundaries are wrapped with Point by the caller; an undefined side is an
// Unbounded envelope. The envelopes must not cross: wherever defined,
// minimal lower <= maximal lower <= minimal upper <= maximal upper.
func NewVague[T compare.Comparable[T]](lower, upper Range[T], includeLower, includeUpper bool) (Vague[T], error) {
	chain := []Boundary[T]{lower.Lower(), lower.Upper(), upper.Lower(), upper.Upper()}
	for i := 0; i < len(chain)-1; i++ {
		a := chain[i]
		for _, b := range chain[i+1:] {
			if !a.Defined || !b.Defined {
				continue
			}
			c := a.Value.Compare(b.Value)
			if !c.Exists() {
				return Vague[T]{}, &RangeError{Reason: fmt.Sprintf("envelope boundaries %v and %v are not comparable", a.Value, b.Value)}
			}
			if c.IsGreater() {
				return Vague[T]{}, &RangeError{Reason: fmt.Sprintf("crossing envelopes: boundary %v exceeds %v", a.Value, b.Value)}
			}
		}
	}
	return Vague[T]{lower: lower, upper: upper, includeLower: includeLower, includeUpper: includeUpper}, nil
}

// VagueOf builds the common case of a vague range from its four scalar
// corner values, inclusive on both sides.
func VagueOf[T compare.Comparable[T]](minLower, maxLower, minUpper, maxUpper T) (Vague[T], error) {
	return NewVague(Closed(minLower, maxLower), Closed(minUpper, maxUpper), true, true)
}

// LowerEnvelope returns the envelope of the true lower boundary.
func (v Vague[T]) LowerEnvelope() Range[T] { return v.lower }

// UpperEnvelope returns the envelope of the true upper boundary.
func (v Vague[T]) UpperEnvelope() Range[T] { return v.upper }

func (v Vague[T]) IncludesLower() bool { return v.includeLower }

func (v Vague[T]) IncludesUpper() bool { return v.includeUpper }

// Guaranteed returns the narrowest range implied by the envelopes: from
// the maximal lower boundary to the minimal upper boundary. Values inside
// it are legal in every context the envelopes admit.
//
// A half-open envelope leaves its inner boundary unknown; the guarantee
// then falls back to the envelope's defined boundary, so values outside
// the envelope are never guaranteed. Only a fully unbounded side carries
// no bound through.
func (v Vague[T]) Guaranteed() Range[T] {
	lo := v.lower.Upper()
	if !lo.Defined {
		lo = v.lower.Lower()
	}
	hi := v.upper.Lower()
	if !hi.Defined {
		hi = v.upper.Upper()
	}
	lo.Inclusive = v.includeLower
	hi.Inclusive = v.includeUpper
	return Range[T]{lower: lo, upper: hi}
}

// Possible returns the widest range implied by the envelopes: from the
// minimal lower boundary to the maximal upper boundary. Values outside it
// are illegal in every context.
func (v Vague[T]) Possible() Range[T] {
	lo := v.lower.Lower()
	hi := v.upper.Upper()
	lo.Inclusive = v.includeLower
	hi.Inclusive = v.includeUpper
	return Range[T]{lower: lo, upper: hi}
}

// Contains uses the most restrictive interpretation of the envelopes: v is
// contained only when it lies inside the guaranteed range, i.e. when it is
// legal regardless of how the context resolves the true boundaries.
func (v Vague[T]) Contains(value T) (bool, error) {
	return v.Guaranteed().Contains(value)
}

// ContainsPossibly is the permissive counterpart of Contains: it reports
// whether value could be legal in at least one context.
func (v Vague[T]) ContainsPossibly(value T) (bool, error) {
	return v.Possible().Contains(value)
}

// ExpandLower widens the lower envelope to cover env, leaving the upper
// envelope untouched. Pass Point(v) to widen by a scalar.
func (v Vague[T]) ExpandLower(env Range[T]) Vague[T] {
	v.lower = v.lower.Hull(env)
	return v
}

// ExpandUpper widens the upper envelope to cover env.
func (v Vague[T]) ExpandUpper(env Range[T]) Vague[T] {
	v.upper = v.upper.Hull(env)
	return v
}

func (v Vague[T]) String() string {
	return fmt.Sprintf("vague{lower: %v, upper: %v}", v.lower, v.upper)
}
