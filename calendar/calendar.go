// Package calendar implements the calendar registry and the resolution
// algorithm turning a raw bag of field values into a validated, typed
// calendar instance.
//
// Calendars are built once from a Config and immutable afterwards. All
// instances reference their calendar without owning it, so sharing a
// calendar between goroutines needs no locking as long as registration is
// finished before instances are created.
package calendar

import (
	"fmt"
	"slices"
	"sort"

	"github.com/calendrical/chrono-toolbox-go/field"
)

// StartOfYear anchors the first day of a calendar's year.
type StartOfYear struct {
	Day   int64
	Month int64
}

// Config describes a calendar to be registered. Base names an already
// registered calendar this one derives offsets and fields from.
type Config struct {
	Name        string
	Base        string
	StartOfYear StartOfYear
	Leap        LeapRule
	Offsets     map[field.Kind]Offset
	Fields      map[field.Kind]field.Definition
	Equivalents map[field.Kind][]field.Kind
	// Shapes lists the instance shapes the calendar resolves to, most
	// specific first. Order is significant: the first matching shape wins.
	Shapes []Shape
	// Resolver optionally extends the fixed concrete-field resolution
	// table with calendar specific kinds.
	Resolver *field.Resolver
}

// Registry is an arena of calendars. A calendar's base is an index into
// the same registry and bases must be registered first, so the calendar
// graph is a DAG by construction order.
type Registry struct {
	cals   []*Calendar
	byName map[string]int
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]int)}
}

// Register builds an immutable Calendar from cfg and adds it to the
// registry.
func (r *Registry) Register(cfg Config) (*Calendar, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("calendar name must not be empty")
	}
	if _, ok := r.byName[cfg.Name]; ok {
		return nil, fmt.Errorf("calendar %q already registered", cfg.Name)
	}
	base := -1
	if cfg.Base != "" {
		idx, ok := r.byName[cfg.Base]
		if !ok {
			return nil, fmt.Errorf("base calendar %q not registered", cfg.Base)
		}
		base = idx
	}

	graph, err := buildGraph(cfg)
	if err != nil {
		return nil, fmt.Errorf("calendar %q: %w", cfg.Name, err)
	}
	shapes := make([]shapeDecl, 0, len(cfg.Shapes))
	for _, s := range cfg.Shapes {
		decl, err := declFor(s)
		if err != nil {
			return nil, fmt.Errorf("calendar %q: %w", cfg.Name, err)
		}
		shapes = append(shapes, decl)
	}

	defs := make(map[field.Kind]field.Definition, len(cfg.Fields))
	for k, def := range cfg.Fields {
		def.Kind = k
		defs[k] = def
	}
	offsets := make(map[field.Kind]Offset, len(cfg.Offsets))
	for k, off := range cfg.Offsets {
		offsets[k] = off
	}

	c := &Calendar{
		name:        cfg.Name,
		reg:         r,
		base:        base,
		startOfYear: cfg.StartOfYear,
		leap:        cfg.Leap,
		offsets:     offsets,
		defs:        defs,
		graph:       graph,
		shapes:      shapes,
		resolver:    cfg.Resolver,
	}
	r.byName[cfg.Name] = len(r.cals)
	r.cals = append(r.cals, c)
	return c, nil
}

// Lookup finds a registered calendar by name.
func (r *Registry) Lookup(name string) (*Calendar, bool) {
	idx, ok := r.byName[name]
	if !ok {
		return nil, false
	}
	return r.cals[idx], true
}

// buildGraph arranges the declared field definitions into the arena:
// generic family nodes first, then concrete kinds linked to their family
// node by index handle.
func buildGraph(cfg Config) (*field.Graph, error) {
	g := field.NewGraph()
	handles := make(map[field.Kind]field.Handle)

	families := field.NewSet()
	for k := range cfg.Fields {
		families = families.With(k.Base())
	}
	for _, k := range field.Kinds() {
		if !k.IsGeneric() {
			continue
		}
		if _, declared := cfg.Fields[k]; !declared && !families.Has(k) {
			continue
		}
		def := cfg.Fields[k]
		def.Kind = k
		h, err := g.Add(field.NoHandle, k, cfg.Equivalents[k], def)
		if err != nil {
			return nil, err
		}
		handles[k] = h
	}
	for _, k := range field.Kinds() {
		if k.IsGeneric() {
			continue
		}
		def, declared := cfg.Fields[k]
		if !declared {
			continue
		}
		def.Kind = k
		if _, err := g.Add(handles[k.Base()], k, cfg.Equivalents[k], def); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Calendar is the immutable registry entry for one named calendar: its
// supported field definitions, offset and leap-year configuration, and
// the ordered instance declarations driving resolution.
type Calendar struct {
	name        string
	reg         *Registry
	base        int
	startOfYear StartOfYear
	leap        LeapRule
	offsets     map[field.Kind]Offset
	defs        map[field.Kind]field.Definition
	graph       *field.Graph
	shapes      []shapeDecl
	resolver    *field.Resolver
}

func (c *Calendar) Name() string { return c.name }

func (c *Calendar) StartOfYear() StartOfYear { return c.startOfYear }

// Base returns the calendar this one derives from, or nil for a root
// calendar.
func (c *Calendar) Base() *Calendar {
	if c.base < 0 {
		return nil
	}
	return c.reg.cals[c.base]
}

// Leap reports whether year is a leap year under this calendar's rule.
// Without a configured rule no year is leap.
func (c *Calendar) Leap(year int64) bool {
	if c.leap == nil {
		return false
	}
	return c.leap(year)
}

// Graph exposes the calendar's field graph.
func (c *Calendar) Graph() *field.Graph { return c.graph }

// Shapes lists the instance shapes in resolution order.
func (c *Calendar) Shapes() []Shape {
	out := make([]Shape, len(c.shapes))
	for i, d := range c.shapes {
		out[i] = d.shape
	}
	return out
}

// KindOf translates a raw field name into its kind. Unknown names fail
// with an UnsupportedFieldError.
func (c *Calendar) KindOf(name string) (field.Kind, error) {
	k, ok := field.ParseKind(name)
	if !ok {
		return field.KindInvalid, &UnsupportedFieldError{Field: name}
	}
	return k, nil
}

// bag is the parsed form of a raw field-value mapping. Keys that do not
// name a known field are ignored by resolution; they surface later as
// UnsupportedFieldError only if referenced explicitly.
type bag struct {
	values  map[field.Kind]int64
	present field.Set
}

func newBag(source map[string]int64) bag {
	b := bag{values: make(map[field.Kind]int64, len(source))}
	for name, v := range source {
		k, ok := field.ParseKind(name)
		if !ok {
			continue
		}
		b.values[k] = v
		b.present = b.present.With(k)
	}
	return b
}

// first returns the value of the first kind present in the bag, in the
// given order.
func (b bag) first(kinds ...field.Kind) (field.Kind, int64, bool) {
	for _, k := range kinds {
		if v, ok := b.values[k]; ok {
			return k, v, true
		}
	}
	return field.KindInvalid, 0, false
}

// CreateInstance resolves a raw bag of field values into a typed calendar
// instance. The ordered instance declarations are evaluated first to
// last: for each, the declaration's base kind is resolved to the concrete
// kind implied by the companions present in the source, and the first
// declaration whose resolved kind is among its allowed alternatives
// builds the instance. Resolution is deterministic: the same source bag
// always yields the same shape and field values.
//
// When no declaration matches, the supplied field combination is not
// expressible in this calendar and a CalendarError is returned.
func (c *Calendar) CreateInstance(source map[string]int64) (Instance, error) {
	b := newBag(source)
	for _, decl := range c.shapes {
		resolved, ok := c.resolver.Resolve(decl.base, b.present)
		if !ok {
			continue
		}
		if !slices.Contains(decl.alternatives, resolved) {
			continue
		}
		return decl.build(c, b)
	}
	names := make([]string, 0, len(source))
	for name := range source {
		names = append(names, name)
	}
	sort.Strings(names)
	return nil, &CalendarError{Calendar: c.name, Fields: names}
}

// Canonical converts a field value of this calendar into the terms of the
// registry's root calendar, applying each calendar's offset on the way
// down. Fields without an offset pass through unchanged.
func (c *Calendar) Canonical(kind field.Kind, value int64, values field.Values) int64 {
	for cal := c; cal != nil; cal = cal.Base() {
		if off, ok := cal.offsets[kind]; ok {
			value = off.canonical(value, values)
		} else if off, ok := cal.offsets[kind.Base()]; ok {
			value = off.canonical(value, values)
		}
	}
	return value
}

// definitionFor locates the definition validating kind for a source with
// the given present fields: directly declared, via presence resolution of
// a generic kind, or through an equivalent alias in the field graph.
func (c *Calendar) definitionFor(kind field.Kind, present field.Set) (field.Definition, bool) {
	if def, ok := c.defs[kind]; ok {
		return def, true
	}
	if kind.IsGeneric() {
		if resolved, ok := c.resolver.Resolve(kind, present); ok {
			if def, ok := c.defs[resolved]; ok {
				return def, true
			}
		}
	}
	if h, ok := c.graph.Lookup(kind); ok {
		def := c.graph.Definition(h)
		if def.Limit != nil {
			return def, true
		}
	}
	return field.Definition{}, false
}
