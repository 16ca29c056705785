package field

// Definition declares the legal values of one field and the nested fields
// that become reachable once this field's value is fixed (e.g. day-of-month
// reachable from a year definition once month is also known).
//
// Definitions are built once per calendar configuration and treated as
// immutable afterwards; they are shared by reference among all instances
// of that calendar.
type Definition struct {
	Kind      Kind
	Limit     Limit
	Supported map[Kind]Definition
}

// Define builds a definition without nested fields.
func Define(kind Kind, limit Limit) Definition {
	return Definition{Kind: kind, Limit: limit}
}

// Bounds resolves the definition's limit against the given context
// values.
func (d Definition) Bounds(values Values) (Bounds, error) {
	return BoundsAt(d.Limit, values)
}

// Nested returns the nested definition declared for kind, searching the
// definitions reachable from this one depth-first. Requesting a kind that
// is not declared anywhere below this definition fails with an
// UnsupportedFieldError naming the field.
func (d Definition) Nested(kind Kind) (Definition, error) {
	if def, ok := d.lookup(kind); ok {
		return def, nil
	}
	return Definition{}, &UnsupportedFieldError{Field: kind.String()}
}

func (d Definition) lookup(kind Kind) (Definition, bool) {
	if def, ok := d.Supported[kind]; ok {
		return def, true
	}
	for _, nested := range d.Supported {
		if def, ok := nested.lookup(kind); ok {
			return def, true
		}
	}
	return Definition{}, false
}

// SupportedKinds lists the kinds directly reachable from this definition.
func (d Definition) SupportedKinds() []Kind {
	var out []Kind
	for _, k := range Kinds() {
		if _, ok := d.Supported[k]; ok {
			out = append(out, k)
		}
	}
	return out
}
