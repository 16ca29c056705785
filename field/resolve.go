package field

// Resolve maps a generic kind to the concrete kind it denotes, given the
// companion kinds present in a field bag. The table is fixed and calendar
// independent:
//
//	day     + week               -> dayOfWeek
//	day     + month (no week)    -> dayOfMonth
//	day     + year (no month,
//	          no week)           -> dayOfYear
//	year    + era                -> yearOfEra
//	year    (no era)             -> canonicalYear
//	month   + quarter            -> monthOfQuarter
//	month   + year (no quarter)  -> monthOfYear
//	quarter + year               -> quarterOfYear
//	week    + month              -> weekOfMonth
//	week    + year (no month)    -> weekOfYear
//	era                          -> era
//
// A kind counts as present when the set holds it generically or as any
// concrete kind of its family. The boolean result is false when the base
// kind itself is absent or no concrete kind applies.
func Resolve(base Kind, present Set) (Kind, bool) {
	if !present.HasFamily(base) {
		return KindInvalid, false
	}
	switch base {
	case KindEra:
		return KindEra, true
	case KindYear:
		if present.HasFamily(KindEra) {
			return KindYearOfEra, true
		}
		return KindCanonicalYear, true
	case KindQuarter:
		if present.HasFamily(KindYear) {
			return KindQuarterOfYear, true
		}
	case KindMonth:
		if present.HasFamily(KindQuarter) {
			return KindMonthOfQuarter, true
		}
		if present.HasFamily(KindYear) {
			return KindMonthOfYear, true
		}
	case KindWeek:
		if present.HasFamily(KindMonth) {
			return KindWeekOfMonth, true
		}
		if present.HasFamily(KindYear) {
			return KindWeekOfYear, true
		}
	case KindDay:
		if present.HasFamily(KindWeek) {
			return KindDayOfWeek, true
		}
		if present.HasFamily(KindMonth) {
			return KindDayOfMonth, true
		}
		if present.HasFamily(KindYear) {
			return KindDayOfYear, true
		}
	}
	return KindInvalid, false
}

// Resolver extends the fixed resolution table with calendar specific
// concrete kinds. Registered entries take precedence over the built-in
// table for their base kind.
type Resolver struct {
	ext map[Kind]func(present Set) (Kind, bool)
}

func NewResolver() *Resolver {
	return &Resolver{ext: make(map[Kind]func(Set) (Kind, bool))}
}

// Register installs a resolution override for the given base kind.
func (r *Resolver) Register(base Kind, fn func(present Set) (Kind, bool)) {
	r.ext[base] = fn
}

// Resolve consults the registered overrides first, falling back to the
// built-in table. A nil Resolver behaves like the built-in table alone.
func (r *Resolver) Resolve(base Kind, present Set) (Kind, bool) {
	if r != nil {
		if fn, ok := r.ext[base]; ok {
			if k, ok := fn(present); ok {
				return k, true
			}
		}
	}
	return Resolve(base, present)
}
