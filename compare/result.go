// Package compare provides the ordering primitives underlying all range
// arithmetic: a tri-state comparison result and the Comparable capability
// contract.
//
// A Result distinguishes a decided ordering (Lesser, Equal, Greater) from an
// undecidable one (Undefined, e.g. comparing against a NaN decimal). Range
// operations that need a decision fail on Undefined instead of guessing.
package compare

// Result is the outcome of comparing two orderable values.
type Result int8

const (
	// Undefined is reported when the inputs are not comparable.
	Undefined Result = iota
	Lesser
	Equal
	Greater
)

// Exists reports whether the comparison could be decided.
func (r Result) Exists() bool { return r != Undefined }

func (r Result) IsLesser() bool { return r == Lesser }

func (r Result) IsEqual() bool { return r == Equal }

func (r Result) IsGreater() bool { return r == Greater }

// Invert flips the direction of the comparison. Equal and Undefined are
// unchanged.
func (r Result) Invert() Result {
	switch r {
	case Lesser:
		return Greater
	case Greater:
		return Lesser
	default:
		return r
	}
}

// Of converts a conventional three-way comparison integer into a Result.
func Of(cmp int) Result {
	switch {
	case cmp < 0:
		return Lesser
	case cmp > 0:
		return Greater
	default:
		return Equal
	}
}

func (r Result) String() string {
	switch r {
	case Lesser:
		return "lesser"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "undefined"
	}
}
