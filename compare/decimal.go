package compare

import (
	"github.com/cockroachdb/apd/v3"
)

// Decimal wraps an exact decimal value for use as a range boundary, e.g.
// for fractional mean year lengths. Decimals form a partial order: NaN
// forms and nil values are not comparable and yield Undefined.
type Decimal struct {
	Value *apd.Decimal
}

// NewDecimal parses a decimal from its string form.
func NewDecimal(s string) (Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{Value: d}, nil
}

func (d Decimal) Compare(other Decimal) Result {
	if d.Value == nil || other.Value == nil {
		return Undefined
	}
	if isNaN(d.Value) || isNaN(other.Value) {
		return Undefined
	}
	return Of(d.Value.Cmp(other.Value))
}

func isNaN(d *apd.Decimal) bool {
	return d.Form == apd.NaN || d.Form == apd.NaNSignaling
}

func (d Decimal) String() string {
	if d.Value == nil {
		return "NaN"
	}
	return d.Value.String()
}
