package field

// Set is a small bitset of kinds, used for companion-presence checks
// during resolution.
type Set uint32

// NewSet returns a set containing the given kinds.
func NewSet(kinds ...Kind) Set {
	var s Set
	for _, k := range kinds {
		s = s.With(k)
	}
	return s
}

func (s Set) Has(k Kind) bool {
	return s&(1<<k) != 0
}

func (s Set) With(k Kind) Set {
	if k == KindInvalid || k >= kindCount {
		return s
	}
	return s | 1<<k
}

// HasFamily reports whether the set contains the generic kind itself or
// any concrete kind of its family.
func (s Set) HasFamily(generic Kind) bool {
	if s.Has(generic) {
		return true
	}
	for _, k := range Kinds() {
		if k != generic && k.Base() == generic && s.Has(k) {
			return true
		}
	}
	return false
}

// Kinds lists the members of the set in declaration order.
func (s Set) Kinds() []Kind {
	var out []Kind
	for _, k := range Kinds() {
		if s.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

func (s Set) IsEmpty() bool { return s == 0 }
