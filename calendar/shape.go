package calendar

import (
	"fmt"

	"github.com/calendrical/chrono-toolbox-go/field"
)

// Shape names a concrete calendar-instance representation.
type Shape uint8

const (
	ShapeDate Shape = iota + 1
	ShapeYearAndMonth
	ShapeYear
)

func (s Shape) String() string {
	switch s {
	case ShapeDate:
		return "date"
	case ShapeYearAndMonth:
		return "yearAndMonth"
	case ShapeYear:
		return "year"
	default:
		return "invalid"
	}
}

// ParseShape returns the shape named by its wire spelling.
func ParseShape(name string) (Shape, bool) {
	switch name {
	case "date":
		return ShapeDate, true
	case "yearAndMonth":
		return ShapeYearAndMonth, true
	case "year":
		return ShapeYear, true
	default:
		return 0, false
	}
}

// DefaultShapes returns the standard resolution order, most specific
// first. Order matters: a full date must be recognized before the bare
// year its fields would also satisfy.
func DefaultShapes() []Shape {
	return []Shape{ShapeDate, ShapeYearAndMonth, ShapeYear}
}

// shapeDecl is one instance declaration: a base kind, the concrete kinds
// that may stand in for it, and the constructor invoked on a match.
type shapeDecl struct {
	shape        Shape
	base         field.Kind
	alternatives []field.Kind
	build        func(c *Calendar, b bag) (Instance, error)
}

func declFor(s Shape) (shapeDecl, error) {
	switch s {
	case ShapeDate:
		return shapeDecl{
			shape:        s,
			base:         field.KindDay,
			alternatives: []field.Kind{field.KindDayOfMonth, field.KindDayOfYear},
			build:        newDateInstance,
		}, nil
	case ShapeYearAndMonth:
		return shapeDecl{
			shape:        s,
			base:         field.KindMonth,
			alternatives: []field.Kind{field.KindMonthOfYear},
			build:        newYearAndMonthInstance,
		}, nil
	case ShapeYear:
		return shapeDecl{
			shape:        s,
			base:         field.KindYear,
			alternatives: []field.Kind{field.KindCanonicalYear, field.KindYearOfEra},
			build:        newYearInstance,
		}, nil
	default:
		return shapeDecl{}, fmt.Errorf("unknown instance shape %d", s)
	}
}

// requirement is one slot of a shape's required field table: the slot is
// satisfied by the slot kind itself or any of its alternatives, and the
// value is recorded under the slot kind.
type requirement struct {
	slot         field.Kind
	alternatives []field.Kind
}

// optionalField declares a field the shape carries when present in the
// source; absent fields may be derived from the required values by a
// default function.
type optionalField struct {
	slot         field.Kind
	alternatives []field.Kind
	defaultFn    func(required field.Values) (int64, bool)
}

// record is the canonical field-value mapping of a resolved instance.
type record struct {
	values  map[field.Kind]int64
	base    field.Set
	derived field.Set
}

// newRecord merges the required fields of a shape (failing with a
// RangeError when a slot cannot be satisfied from the source) with the
// optional and derived fields.
func (c *Calendar) newRecord(b bag, required []requirement, optional []optionalField) (record, error) {
	rec := record{values: make(map[field.Kind]int64)}
	for _, r := range required {
		kinds := append([]field.Kind{r.slot}, r.alternatives...)
		_, v, ok := b.first(kinds...)
		if !ok {
			return record{}, &RangeError{
				Reason: fmt.Sprintf("required field combination %v not satisfied", kinds),
				Field:  r.slot.String(),
			}
		}
		rec.values[r.slot] = v
		rec.base = rec.base.With(r.slot)
	}
	for _, o := range optional {
		kinds := append([]field.Kind{o.slot}, o.alternatives...)
		if _, v, ok := b.first(kinds...); ok {
			rec.values[o.slot] = v
			rec.base = rec.base.With(o.slot)
			continue
		}
		if o.defaultFn == nil {
			continue
		}
		if v, ok := o.defaultFn(field.MapValues(rec.values)); ok {
			rec.values[o.slot] = v
			rec.derived = rec.derived.With(o.slot)
		}
	}
	return rec, nil
}

func newDateInstance(c *Calendar, b bag) (Instance, error) {
	rec, err := c.newRecord(b,
		[]requirement{
			{slot: field.KindYear, alternatives: []field.Kind{field.KindCanonicalYear, field.KindYearOfEra}},
			{slot: field.KindDay, alternatives: []field.Kind{field.KindDayOfMonth, field.KindDayOfYear}},
		},
		[]optionalField{
			{slot: field.KindEra},
			{slot: field.KindMonth, alternatives: []field.Kind{field.KindMonthOfYear, field.KindMonthOfQuarter}},
			{slot: field.KindQuarter, alternatives: []field.Kind{field.KindQuarterOfYear}, defaultFn: quarterFromMonth},
			{slot: field.KindWeek, alternatives: []field.Kind{field.KindWeekOfYear, field.KindWeekOfMonth}},
		})
	if err != nil {
		return nil, err
	}
	return &DateInstance{instance{cal: c, shape: ShapeDate, primary: field.KindDay, rec: rec, present: b.present}}, nil
}

func newYearAndMonthInstance(c *Calendar, b bag) (Instance, error) {
	rec, err := c.newRecord(b,
		[]requirement{
			{slot: field.KindYear, alternatives: []field.Kind{field.KindCanonicalYear, field.KindYearOfEra}},
			{slot: field.KindMonth, alternatives: []field.Kind{field.KindMonthOfYear}},
		},
		[]optionalField{
			{slot: field.KindEra},
			{slot: field.KindQuarter, alternatives: []field.Kind{field.KindQuarterOfYear}, defaultFn: quarterFromMonth},
		})
	if err != nil {
		return nil, err
	}
	return &YearAndMonthInstance{instance{cal: c, shape: ShapeYearAndMonth, primary: field.KindMonth, rec: rec, present: b.present}}, nil
}

func newYearInstance(c *Calendar, b bag) (Instance, error) {
	rec, err := c.newRecord(b,
		[]requirement{
			{slot: field.KindYear, alternatives: []field.Kind{field.KindCanonicalYear, field.KindYearOfEra}},
		},
		[]optionalField{
			{slot: field.KindEra},
		})
	if err != nil {
		return nil, err
	}
	return &YearInstance{instance{cal: c, shape: ShapeYear, primary: field.KindYear, rec: rec, present: b.present}}, nil
}

// quarterFromMonth derives the quarter from a present month value.
func quarterFromMonth(required field.Values) (int64, bool) {
	m, ok := required.Value(field.KindMonth)
	if !ok || m < 1 {
		return 0, false
	}
	return (m-1)/3 + 1, true
}
