package interval_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/calendrical/chrono-toolbox-go/compare"
	"github.com/calendrical/chrono-toolbox-go/interval"
)

func mustContain(t *testing.T, r interval.Range[compare.Int], v int64, want bool) {
	t.Helper()
	got, err := r.Contains(compare.Int(v))
	if err != nil {
		t.Fatalf("%v.Contains(%d): %v", r, v, err)
	}
	if got != want {
		t.Errorf("%v.Contains(%d) = %v, want %v", r, v, got, want)
	}
}

func TestRangeContains(t *testing.T) {
	tests := []struct {
		name  string
		r     interval.Range[compare.Int]
		value int64
		want  bool
	}{
		{"closed inside", interval.Closed[compare.Int](1, 31), 15, true},
		{"closed lower boundary", interval.Closed[compare.Int](1, 31), 1, true},
		{"closed upper boundary", interval.Closed[compare.Int](1, 31), 31, true},
		{"closed below", interval.Closed[compare.Int](1, 31), 0, false},
		{"closed above", interval.Closed[compare.Int](1, 31), 32, false},
		{"upper open excludes endpoint", interval.UpperOpen[compare.Int](1, 31), 31, false},
		{"upper open includes lower", interval.UpperOpen[compare.Int](1, 31), 1, true},
		{"lower open excludes endpoint", interval.LowerOpen[compare.Int](1, 31), 1, false},
		{"lower open includes upper", interval.LowerOpen[compare.Int](1, 31), 31, true},
		{"open excludes both", interval.Open[compare.Int](1, 31), 1, false},
		{"at least includes endpoint", interval.AtLeast[compare.Int](1), 1, true},
		{"at least unbounded above", interval.AtLeast[compare.Int](1), 1 << 40, true},
		{"at most unbounded below", interval.AtMost[compare.Int](31), -(1 << 40), true},
		{"unbounded contains everything", interval.Unbounded[compare.Int](), 12345, true},
		{"point contains its value", interval.Point[compare.Int](7), 7, true},
		{"point excludes neighbors", interval.Point[compare.Int](7), 8, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mustContain(t, tt.r, tt.value, tt.want)
		})
	}
}

func TestRangeContainsUndecidable(t *testing.T) {
	nan := compare.Decimal{}
	one, err := compare.NewDecimal("1")
	if err != nil {
		t.Fatal(err)
	}
	r := interval.Closed(nan, nan)
	if _, err := r.Contains(one); err == nil {
		t.Fatal("expected error for undecidable boundary comparison")
	} else {
		var rangeErr *interval.RangeError
		if !errors.As(err, &rangeErr) {
			t.Fatalf("expected RangeError, got %T", err)
		}
	}
}

func TestRangeIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		r    interval.Range[compare.Int]
		want bool
	}{
		{"open same endpoints", interval.Open[compare.Int](5, 5), true},
		{"upper open same endpoints", interval.UpperOpen[compare.Int](5, 5), true},
		{"closed point", interval.Closed[compare.Int](5, 5), false},
		{"inverted", interval.Closed[compare.Int](6, 5), true},
		{"regular", interval.Closed[compare.Int](1, 2), false},
		{"unbounded", interval.Unbounded[compare.Int](), false},
		{"half bounded", interval.AtLeast[compare.Int](5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.IsEmpty(); got != tt.want {
				t.Errorf("%v.IsEmpty() = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestRefineNeverWidens(t *testing.T) {
	r := interval.Closed[compare.Int](10, 20)

	refined := r.RefineLower(compare.Int(15))
	mustContain(t, refined, 12, false)
	mustContain(t, refined, 15, true)

	// refining outside the bound in the widening direction is a no-op
	unchanged := r.RefineLower(compare.Int(5))
	if unchanged.Compare(r) != compare.Equal {
		t.Errorf("RefineLower(5) changed %v to %v", r, unchanged)
	}
	unchanged = r.RefineUpper(compare.Int(25))
	if unchanged.Compare(r) != compare.Equal {
		t.Errorf("RefineUpper(25) changed %v to %v", r, unchanged)
	}

	refined = r.RefineUpper(compare.Int(15))
	mustContain(t, refined, 18, false)
	mustContain(t, refined, 15, true)

	// an unbounded side can always be refined
	refined = interval.AtLeast[compare.Int](1).RefineUpper(compare.Int(31))
	mustContain(t, refined, 32, false)
	mustContain(t, refined, 31, true)
}

func TestExpandNeverTightens(t *testing.T) {
	r := interval.Closed[compare.Int](10, 20)

	expanded := r.ExpandLower(compare.Int(5))
	mustContain(t, expanded, 7, true)

	unchanged := r.ExpandLower(compare.Int(15))
	if unchanged.Compare(r) != compare.Equal {
		t.Errorf("ExpandLower(15) changed %v to %v", r, unchanged)
	}
	unchanged = r.ExpandUpper(compare.Int(15))
	if unchanged.Compare(r) != compare.Equal {
		t.Errorf("ExpandUpper(15) changed %v to %v", r, unchanged)
	}

	expanded = r.ExpandUpper(compare.Int(25))
	mustContain(t, expanded, 23, true)
}

func TestExpandUnbounded(t *testing.T) {
	r := interval.Closed[compare.Int](10, 20)

	expanded := r.ExpandUpperUnbounded()
	mustContain(t, expanded, 1<<40, true)
	if expanded.Upper().Defined {
		t.Error("upper boundary still defined after ExpandUpperUnbounded")
	}

	// an already unbounded side stays as it is
	again := expanded.ExpandUpperUnbounded()
	if again.Compare(expanded) != compare.Equal {
		t.Errorf("ExpandUpperUnbounded changed %v to %v", expanded, again)
	}

	expanded = r.ExpandLowerUnbounded()
	mustContain(t, expanded, -(1 << 40), true)
}

func TestExpandValue(t *testing.T) {
	r := interval.Closed[compare.Int](10, 20)

	// expanding to an already contained value returns the receiver
	same, err := r.Expand(compare.Int(15))
	if err != nil {
		t.Fatal(err)
	}
	if same.Compare(r) != compare.Equal {
		t.Errorf("Expand(15) changed %v to %v", r, same)
	}

	expanded, err := r.Expand(compare.Int(25))
	if err != nil {
		t.Fatal(err)
	}
	mustContain(t, expanded, 25, true)

	expanded, err = r.Expand(compare.Int(5))
	if err != nil {
		t.Fatal(err)
	}
	mustContain(t, expanded, 5, true)

	// the endpoint of an exclusive boundary cannot be included by widening
	if _, err := interval.UpperOpen[compare.Int](1, 31).Expand(compare.Int(31)); err == nil {
		t.Error("expected error expanding exclusive upper boundary onto its endpoint")
	}
	if _, err := interval.LowerOpen[compare.Int](1, 31).Expand(compare.Int(1)); err == nil {
		t.Error("expected error expanding exclusive lower boundary onto its endpoint")
	}
}

func TestRangeCompareTotalOrder(t *testing.T) {
	// expected total order, least to greatest
	ordered := []interval.Range[compare.Int]{
		interval.AtMost[compare.Int](31),
		interval.Unbounded[compare.Int](),
		interval.Closed[compare.Int](1, 15),
		interval.Closed[compare.Int](1, 31),
		interval.UpperOpen[compare.Int](1, 32),
		interval.Closed[compare.Int](1, 32),
		interval.AtLeast[compare.Int](1),
		interval.LowerOpen[compare.Int](1, 31),
		interval.Closed[compare.Int](2, 31),
	}

	for i, a := range ordered {
		if got := a.Compare(a); got != compare.Equal {
			t.Errorf("%v.Compare(itself) = %v", a, got)
		}
		for _, b := range ordered[i+1:] {
			if got := a.Compare(b); got != compare.Lesser {
				t.Errorf("%v.Compare(%v) = %v, want lesser", a, b, got)
			}
			if got := b.Compare(a); got != compare.Greater {
				t.Errorf("%v.Compare(%v) = %v, want greater", b, a, got)
			}
		}
	}

	// sorting a shuffled copy restores the order
	shuffled := []interval.Range[compare.Int]{
		ordered[4], ordered[8], ordered[0], ordered[6], ordered[2],
		ordered[7], ordered[1], ordered[5], ordered[3],
	}
	sort.Slice(shuffled, func(i, j int) bool {
		return shuffled[i].Compare(shuffled[j]).IsLesser()
	})
	want := make([]string, len(ordered))
	got := make([]string, len(shuffled))
	for i := range ordered {
		want[i] = ordered[i].String()
		got[i] = shuffled[i].String()
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sorted ranges mismatch (-want +got):\n%s", diff)
	}
}

func TestHull(t *testing.T) {
	a := interval.Closed[compare.Int](5, 10)
	b := interval.Closed[compare.Int](8, 20)

	hull := a.Hull(b)
	mustContain(t, hull, 5, true)
	mustContain(t, hull, 20, true)
	mustContain(t, hull, 4, false)
	mustContain(t, hull, 21, false)

	hull = a.Hull(interval.AtLeast[compare.Int](7))
	if hull.Upper().Defined {
		t.Error("hull with an unbounded-upper range should be unbounded above")
	}
	mustContain(t, hull, 5, true)
}
