package compare

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
)

func TestDecimalCompare(t *testing.T) {
	mustDecimal := func(s string) Decimal {
		d, err := NewDecimal(s)
		if err != nil {
			t.Fatalf("NewDecimal(%q): %v", s, err)
		}
		return d
	}

	tests := []struct {
		name  string
		left  Decimal
		right Decimal
		want  Result
	}{
		{"lesser", mustDecimal("365.2425"), mustDecimal("365.25"), Lesser},
		{"equal with trailing zeros", mustDecimal("1.50"), mustDecimal("1.5"), Equal},
		{"greater", mustDecimal("366"), mustDecimal("365.2425"), Greater},
		{"nan right", mustDecimal("1"), Decimal{Value: &apd.Decimal{Form: apd.NaN}}, Undefined},
		{"nan left", Decimal{Value: &apd.Decimal{Form: apd.NaN}}, mustDecimal("1"), Undefined},
		{"nil value", mustDecimal("1"), Decimal{}, Undefined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.left.Compare(tt.right); got != tt.want {
				t.Errorf("Compare(%v, %v) = %v, want %v", tt.left, tt.right, got, tt.want)
			}
		})
	}
}
