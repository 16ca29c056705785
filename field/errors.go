package field

import "fmt"

// UnsupportedFieldError reports a field that is not part of the declared
// vocabulary of a calendar or field node.
type UnsupportedFieldError struct {
	Field string
}

func (e *UnsupportedFieldError) Error() string {
	return fmt.Sprintf("unsupported field %q", e.Field)
}
