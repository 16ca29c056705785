package field

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestResolveTable walks every row of the fixed presence table: for each
// base kind, exactly the listed companions resolve to the listed concrete
// kind.
func TestResolveTable(t *testing.T) {
	tests := []struct {
		name       string
		base       Kind
		companions []Kind
		want       Kind
	}{
		{"day with week", KindDay, []Kind{KindWeek}, KindDayOfWeek},
		{"day with week and month", KindDay, []Kind{KindWeek, KindMonth}, KindDayOfWeek},
		{"day with month", KindDay, []Kind{KindMonth}, KindDayOfMonth},
		{"day with month and year", KindDay, []Kind{KindMonth, KindYear}, KindDayOfMonth},
		{"day with year only", KindDay, []Kind{KindYear}, KindDayOfYear},
		{"year with era", KindYear, []Kind{KindEra}, KindYearOfEra},
		{"year without era", KindYear, nil, KindCanonicalYear},
		{"month with quarter", KindMonth, []Kind{KindQuarter}, KindMonthOfQuarter},
		{"month with year", KindMonth, []Kind{KindYear}, KindMonthOfYear},
		{"month with quarter and year", KindMonth, []Kind{KindQuarter, KindYear}, KindMonthOfQuarter},
		{"quarter with year", KindQuarter, []Kind{KindYear}, KindQuarterOfYear},
		{"week with month", KindWeek, []Kind{KindMonth}, KindWeekOfMonth},
		{"week with year", KindWeek, []Kind{KindYear}, KindWeekOfYear},
		{"era alone", KindEra, nil, KindEra},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			present := NewSet(append(tt.companions, tt.base)...)
			got, ok := Resolve(tt.base, present)
			if !ok {
				t.Fatalf("Resolve(%s, %v) did not match", tt.base, present.Kinds())
			}
			if got != tt.want {
				t.Errorf("Resolve(%s, %v) = %s, want %s", tt.base, present.Kinds(), got, tt.want)
			}
		})
	}
}

func TestResolveNoMatch(t *testing.T) {
	// absence of the base field itself never matches
	if k, ok := Resolve(KindDay, NewSet(KindYear, KindMonth)); ok {
		t.Errorf("Resolve(day) without day matched %s", k)
	}
	// a base field without any companion has no concrete meaning
	for _, base := range []Kind{KindDay, KindMonth, KindQuarter, KindWeek} {
		if k, ok := Resolve(base, NewSet(base)); ok {
			t.Errorf("Resolve(%s) without companions matched %s", base, k)
		}
	}
}

func TestResolveConcreteSpellings(t *testing.T) {
	// concrete kinds count as presence of their family
	got, ok := Resolve(KindDay, NewSet(KindDayOfMonth, KindMonthOfYear, KindCanonicalYear))
	if !ok || got != KindDayOfMonth {
		t.Errorf("Resolve(day) = %s, %v; want dayOfMonth", got, ok)
	}
}

func TestResolverExtension(t *testing.T) {
	r := NewResolver()
	r.Register(KindDay, func(present Set) (Kind, bool) {
		if present.Has(KindEra) {
			return KindDayOfYear, true
		}
		return KindInvalid, false
	})

	// the override wins when it matches
	got, ok := r.Resolve(KindDay, NewSet(KindDay, KindEra, KindMonth))
	if !ok || got != KindDayOfYear {
		t.Errorf("extension override: got %s, %v", got, ok)
	}
	// and falls back to the built-in table when it does not
	got, ok = r.Resolve(KindDay, NewSet(KindDay, KindMonth))
	if !ok || got != KindDayOfMonth {
		t.Errorf("extension fallback: got %s, %v", got, ok)
	}
	// a nil resolver behaves like the built-in table
	var nilResolver *Resolver
	got, ok = nilResolver.Resolve(KindDay, NewSet(KindDay, KindMonth))
	if !ok || got != KindDayOfMonth {
		t.Errorf("nil resolver: got %s, %v", got, ok)
	}
}

func TestSet(t *testing.T) {
	s := NewSet(KindYear, KindMonth, KindDay)
	if !s.Has(KindYear) || !s.Has(KindDay) {
		t.Error("set misses its members")
	}
	if s.Has(KindWeek) {
		t.Error("set reports absent member")
	}
	if diff := cmp.Diff([]Kind{KindYear, KindMonth, KindDay}, s.Kinds()); diff != "" {
		t.Errorf("Kinds() mismatch (-want +got):\n%s", diff)
	}
	if !s.With(KindWeek).Has(KindWeek) {
		t.Error("With did not add member")
	}
	if s.With(KindInvalid) != s {
		t.Error("With(KindInvalid) changed the set")
	}
	if !NewSet().IsEmpty() {
		t.Error("empty set not reported empty")
	}
}
