package compare

// Comparable is the capability contract for values usable as range
// boundaries. Implementations with a total order never return Undefined.
// Partial orders are permitted, but operations built on top that need a
// decision (containment, expansion) fail when a comparison is Undefined.
type Comparable[T any] interface {
	Compare(other T) Result
}

// Int is the comparable integer type all calendar field values are
// measured in.
type Int int64

func (i Int) Compare(other Int) Result {
	switch {
	case i < other:
		return Lesser
	case i > other:
		return Greater
	default:
		return Equal
	}
}
