// Package generate emits the generated parts of the field package from
// the canonical kind table. The table is the single source of truth for
// kind names, wire spellings and the base-kind mapping.
package generate

import (
	. "github.com/dave/jennifer/jen"
	"github.com/iancoleman/strcase"
)

// kindSpec is one row of the canonical field-kind table. Base is empty
// for generic kinds.
type kindSpec struct {
	Name string
	Base string
}

var kindTable = []kindSpec{
	{Name: "Era"},
	{Name: "Year"},
	{Name: "Quarter"},
	{Name: "Month"},
	{Name: "Week"},
	{Name: "Day"},
	{Name: "CanonicalYear", Base: "Year"},
	{Name: "YearOfEra", Base: "Year"},
	{Name: "QuarterOfYear", Base: "Quarter"},
	{Name: "MonthOfYear", Base: "Month"},
	{Name: "MonthOfQuarter", Base: "Month"},
	{Name: "WeekOfYear", Base: "Week"},
	{Name: "WeekOfMonth", Base: "Week"},
	{Name: "DayOfYear", Base: "Day"},
	{Name: "DayOfMonth", Base: "Day"},
	{Name: "DayOfWeek", Base: "Day"},
}

func constName(name string) string { return "Kind" + name }

func wireName(name string) string { return strcase.ToLowerCamel(name) }

// KindsFile builds field/kind_gen.go.
func KindsFile() *File {
	f := NewFile("field")
	f.HeaderComment("Code generated by internal/cmd/generate. DO NOT EDIT.")

	f.Comment("String returns the wire spelling of the kind, as used in raw field bags")
	f.Comment("and configuration files.")
	f.Func().Params(Id("k").Id("Kind")).Id("String").Params().String().Block(
		Switch(Id("k")).BlockFunc(func(g *Group) {
			for _, s := range kindTable {
				g.Case(Id(constName(s.Name))).Block(Return(Lit(wireName(s.Name))))
			}
			g.Default().Block(Return(Lit("invalid")))
		}),
	)

	f.Comment("ParseKind returns the kind named by the wire spelling name.")
	f.Func().Id("ParseKind").Params(Id("name").String()).Params(Id("Kind"), Bool()).Block(
		Switch(Id("name")).BlockFunc(func(g *Group) {
			for _, s := range kindTable {
				g.Case(Lit(wireName(s.Name))).Block(Return(Id(constName(s.Name)), True()))
			}
			g.Default().Block(Return(Id("KindInvalid"), False()))
		}),
	)

	f.Comment("Base returns the generic family of the kind. Generic kinds are their own")
	f.Comment("base.")
	f.Func().Params(Id("k").Id("Kind")).Id("Base").Params().Id("Kind").Block(
		Switch(Id("k")).BlockFunc(func(g *Group) {
			for _, s := range kindTable {
				if s.Base == "" {
					continue
				}
				g.Case(Id(constName(s.Name))).Block(Return(Id(constName(s.Base))))
			}
			g.Default().Block(Return(Id("k")))
		}),
	)

	f.Comment("Kinds enumerates all valid kinds in declaration order.")
	f.Func().Id("Kinds").Params().Index().Id("Kind").Block(
		Return(Index().Id("Kind").ValuesFunc(func(g *Group) {
			for _, s := range kindTable {
				g.Line().Id(constName(s.Name))
			}
			g.Line()
		})),
	)

	return f
}
