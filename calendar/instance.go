package calendar

import (
	"github.com/calendrical/chrono-toolbox-go/compare"
	"github.com/calendrical/chrono-toolbox-go/field"
)

// Instance is a resolved, validated view over a field-value bag. All
// variants are immutable: Set and Derive build a new instance through the
// owning calendar instead of mutating in place.
type Instance interface {
	field.Values

	// Calendar returns the owning calendar, which the instance references
	// without owning.
	Calendar() *Calendar
	Shape() Shape
	// Primary returns the value of the instance's primary field: the day
	// for a date, the month for a year-and-month, the year for a year.
	Primary() int64
	// Get returns the stored value of a base field, the value of a
	// derived field computable from the base fields, or reports absence.
	Get(kind field.Kind) (int64, bool)
	// GetCanonical returns the field value expressed in the registry's
	// root calendar terms, offset and era adjusted.
	GetCanonical(kind field.Kind) (int64, error)
	// Range returns the validated bounds of a field in the context of
	// this instance; context-sensitive limits are evaluated against the
	// current field values. Undeclared fields fail with an
	// UnsupportedFieldError.
	Range(kind field.Kind) (field.Bounds, error)
	// RangeNamed is Range keyed by the raw field name; names outside the
	// field vocabulary fail with an UnsupportedFieldError naming them.
	RangeNamed(name string) (field.Bounds, error)
	// Set returns a new instance with the field's value replaced; the
	// value is validated against Range(kind) first.
	Set(kind field.Kind, value int64) (Instance, error)
	// Derive is Set for fields the source bag did not supply: the derived
	// field joins the supplied ones, which may resolve to a different
	// shape.
	Derive(kind field.Kind, value int64) (Instance, error)
	// Resolved reports which concrete kind a generic base field resolved
	// to for this instance's source, e.g. day -> dayOfMonth.
	Resolved(base field.Kind) (field.Kind, bool)
	// Fields returns a copy of the resolved field-value record.
	Fields() map[field.Kind]int64
}

// DateInstance is a fully specified date.
type DateInstance struct {
	instance
}

// YearAndMonthInstance is a year narrowed to a month.
type YearAndMonthInstance struct {
	instance
}

// YearInstance is a bare year.
type YearInstance struct {
	instance
}

// instance carries the shape-independent behavior.
type instance struct {
	cal     *Calendar
	shape   Shape
	primary field.Kind
	rec     record
	present field.Set
}

func (i *instance) Calendar() *Calendar { return i.cal }

func (i *instance) Shape() Shape { return i.shape }

func (i *instance) Primary() int64 {
	v, _ := i.Get(i.primary)
	return v
}

func (i *instance) Get(kind field.Kind) (int64, bool) {
	if v, ok := i.rec.values[kind]; ok {
		return v, true
	}
	// concrete spelling of a stored generic slot, e.g. dayOfMonth for day
	if base := kind.Base(); base != kind {
		if resolved, ok := i.Resolved(base); ok && resolved == kind {
			if v, ok := i.rec.values[base]; ok {
				return v, true
			}
		}
	}
	return 0, false
}

// Value makes the instance usable as field.Values context for computed
// limits and offsets.
func (i *instance) Value(kind field.Kind) (int64, bool) {
	return i.Get(kind)
}

func (i *instance) GetCanonical(kind field.Kind) (int64, error) {
	v, ok := i.Get(kind)
	if !ok {
		return 0, &UnsupportedFieldError{Field: kind.String()}
	}
	// a generic kind and its resolved concrete spelling name the same
	// slot, so they must take the same offset chain
	if kind.IsGeneric() {
		if resolved, ok := i.Resolved(kind); ok {
			kind = resolved
		}
	}
	return i.cal.Canonical(kind, v, i), nil
}

func (i *instance) Range(kind field.Kind) (field.Bounds, error) {
	def, ok := i.cal.definitionFor(kind, i.present)
	if !ok {
		return nil, &UnsupportedFieldError{Field: kind.String()}
	}
	return def.Bounds(i)
}

func (i *instance) RangeNamed(name string) (field.Bounds, error) {
	k, err := i.cal.KindOf(name)
	if err != nil {
		return nil, err
	}
	return i.Range(k)
}

func (i *instance) Set(kind field.Kind, value int64) (Instance, error) {
	return i.with(kind, value)
}

func (i *instance) Derive(kind field.Kind, value int64) (Instance, error) {
	return i.with(kind, value)
}

// with validates the value and rebuilds the instance through the owning
// calendar, re-running shape resolution over the overridden bag.
func (i *instance) with(kind field.Kind, value int64) (Instance, error) {
	bounds, err := i.Range(kind)
	if err != nil {
		return nil, err
	}
	ok, cerr := bounds.Contains(compare.Int(value))
	if cerr != nil {
		return nil, &InvalidFieldValueError{Field: kind.String(), Value: value, Cause: cerr}
	}
	if !ok {
		return nil, &InvalidFieldValueError{Field: kind.String(), Value: value}
	}
	source := make(map[string]int64, len(i.rec.values)+1)
	for k, v := range i.rec.values {
		if i.rec.base.Has(k) {
			source[k.String()] = v
		}
	}
	source[kind.String()] = value
	return i.cal.CreateInstance(source)
}

func (i *instance) Resolved(base field.Kind) (field.Kind, bool) {
	return i.cal.resolver.Resolve(base, i.present)
}

func (i *instance) Fields() map[field.Kind]int64 {
	out := make(map[field.Kind]int64, len(i.rec.values))
	for k, v := range i.rec.values {
		out[k] = v
	}
	return out
}

// BaseFields lists the field kinds that were supplied by the source.
func (i *instance) BaseFields() []field.Kind {
	return i.rec.base.Kinds()
}

// DerivedFields lists the field kinds computed from the base fields.
func (i *instance) DerivedFields() []field.Kind {
	return i.rec.derived.Kinds()
}
