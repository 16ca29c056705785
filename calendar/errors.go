package calendar

import (
	"fmt"
	"strings"

	"github.com/calendrical/chrono-toolbox-go/field"
	"github.com/calendrical/chrono-toolbox-go/interval"
)

// The error taxonomy of the engine. Every failure is synchronous, raised
// at the point of detection, and carries the offending field name and,
// where applicable, the value. Nothing is retried internally and no error
// is swallowed: callers catch by type and decide how to react.

// UnsupportedFieldError reports a field outside the declared vocabulary.
// Re-exported so callers can catch the whole taxonomy from this package.
type UnsupportedFieldError = field.UnsupportedFieldError

// RangeError reports boundary-construction failures and unsatisfiable
// required-field combinations at instance construction.
type RangeError = interval.RangeError

// InvalidFieldValueError reports a known field whose supplied value falls
// outside its validated range.
type InvalidFieldValueError struct {
	Field string
	Value int64
	// Cause carries an upstream range failure, if any.
	Cause error
}

func (e *InvalidFieldValueError) Error() string {
	msg := fmt.Sprintf("invalid value %d for field %q", e.Value, e.Field)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *InvalidFieldValueError) Unwrap() error { return e.Cause }

// CalendarError reports a resolution-level failure: no instance
// declaration matched the supplied field combination.
type CalendarError struct {
	Calendar string
	Fields   []string
}

func (e *CalendarError) Error() string {
	return fmt.Sprintf("calendar %q: the calendar instance does not exist for fields [%s]",
		e.Calendar, strings.Join(e.Fields, ", "))
}
