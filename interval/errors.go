package interval

// RangeError reports a boundary that cannot be constructed, decided or
// widened: malformed vague envelopes, expansion onto an exclusive
// endpoint, undecidable boundary comparisons, and unsatisfiable required
// field combinations at instance construction.
type RangeError struct {
	Reason string
	// Field names the offending field where the failure originates from
	// field validation; empty for pure range algebra failures.
	Field string
}

func (e *RangeError) Error() string {
	if e.Field != "" {
		return "range error on field " + e.Field + ": " + e.Reason
	}
	return "range error: " + e.Reason
}
