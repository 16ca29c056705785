package field

import "fmt"

// Handle indexes a node within a Graph. Back-references between field
// nodes are plain indices into the arena, never owning pointers, so the
// graph has no cycle-lifetime concerns.
type Handle int

// NoHandle marks the absence of a base field.
const NoHandle Handle = -1

type node struct {
	base        Handle
	kind        Kind
	equivalents []Kind
	def         Definition
}

// Graph is an arena of field nodes, built once per calendar configuration
// and immutable afterwards. A node refines its base node to a finer
// precision (day-of-month refines day); equivalent kinds are aliases
// treated as the same semantic quantity (year vs canonicalYear).
type Graph struct {
	nodes  []node
	byKind map[Kind]Handle
}

func NewGraph() *Graph {
	return &Graph{byKind: make(map[Kind]Handle)}
}

// Add appends a field node and returns its handle. The base handle must
// already be part of the graph (or NoHandle), which keeps the graph
// acyclic by construction order.
func (g *Graph) Add(base Handle, kind Kind, equivalents []Kind, def Definition) (Handle, error) {
	if base != NoHandle && (base < 0 || int(base) >= len(g.nodes)) {
		return NoHandle, fmt.Errorf("base handle %d out of graph bounds", base)
	}
	if _, ok := g.byKind[kind]; ok {
		return NoHandle, fmt.Errorf("field %s already declared", kind)
	}
	h := Handle(len(g.nodes))
	g.nodes = append(g.nodes, node{
		base:        base,
		kind:        kind,
		equivalents: append([]Kind(nil), equivalents...),
		def:         def,
	})
	g.byKind[kind] = h
	return h, nil
}

// Lookup finds the node declared for kind, either directly or as an
// equivalent alias.
func (g *Graph) Lookup(kind Kind) (Handle, bool) {
	if h, ok := g.byKind[kind]; ok {
		return h, true
	}
	for h, n := range g.nodes {
		for _, eq := range n.equivalents {
			if eq == kind {
				return Handle(h), true
			}
		}
	}
	return NoHandle, false
}

func (g *Graph) Kind(h Handle) Kind {
	return g.nodes[h].kind
}

// Base returns the handle of the coarser-precision field the node
// refines, or NoHandle.
func (g *Graph) Base(h Handle) Handle {
	return g.nodes[h].base
}

func (g *Graph) Equivalents(h Handle) []Kind {
	return g.nodes[h].equivalents
}

func (g *Graph) Definition(h Handle) Definition {
	return g.nodes[h].def
}

func (g *Graph) Len() int {
	return len(g.nodes)
}
