// Package inlinegraph implements the "descriptor is the value" storage
// engine of spec §4.2: the vertex descriptor is the caller's own
// (hashable) vertex value, and the edge descriptor is the caller's own
// edge value, which must know its own source and destination. Storage is
// an ordered map from vertex to its list of outgoing edges.
//
// The teacher has no analogue of this engine (its core.Graph always owns
// string-ID vertices internally); this package is new, grounded on the
// teacher's `core.Vertex`/`core.Edge` field layout (ID/From/To/Weight,
// see core/types.go) but inverted so the user's own type plays that role
// instead of an internally generated string ID.
package inlinegraph

import (
	"github.com/google/uuid"
	"github.com/nodegraph/nodegraph/container"
	"github.com/nodegraph/nodegraph/prop"
)

// Edge is the contract a caller's edge value must satisfy: it must be
// able to report its own endpoints.
type Edge[V comparable] interface {
	Source() V
	Destination() V
}

// InlineGraph stores outgoing edges per vertex in an ordered map; no
// internal descriptor types are allocated; V and E are exactly the
// caller's own domain values. Supports multi-edges: AddEdge always
// appends.
type InlineGraph[V comparable, E interface {
	comparable
	Edge[V]
}] struct {
	vertices *container.OrderedSet[V]
	outgoing map[V][]E
	vprops   *prop.Map[V]
	eprops   *prop.Map[E]
}

// New returns an empty InlineGraph.
func New[V comparable, E interface {
	comparable
	Edge[V]
}]() *InlineGraph[V, E] {
	return &InlineGraph[V, E]{
		vertices: container.NewOrderedSet[V](),
		outgoing: make(map[V][]E),
		vprops:   prop.NewMap[V](),
		eprops:   prop.NewMap[E](),
	}
}

// AddVertex registers v, a no-op if it is already present.
func (g *InlineGraph[V, E]) AddVertex(v V) { g.vertices.Add(v) }

// RemoveVertex deletes v and every edge incident to it.
func (g *InlineGraph[V, E]) RemoveVertex(v V) {
	if !g.vertices.Contains(v) {
		return
	}
	for _, other := range g.vertices.Items() {
		if other == v {
			continue
		}
		kept := g.outgoing[other][:0]
		for _, e := range g.outgoing[other] {
			if e.Destination() == v {
				g.eprops.Delete(e)
				continue
			}
			kept = append(kept, e)
		}
		g.outgoing[other] = kept
	}
	for _, e := range g.outgoing[v] {
		g.eprops.Delete(e)
	}
	delete(g.outgoing, v)
	g.vertices.Remove(v)
	g.vprops.Delete(v)
}

// AddEdge appends edge to its source's outgoing list, registering the
// source and destination vertices if new. Always succeeds (ok is always
// true) since the edge itself names its own endpoints.
func (g *InlineGraph[V, E]) AddEdge(edge E) (E, bool) {
	from, to := edge.Source(), edge.Destination()
	g.vertices.Add(from)
	g.vertices.Add(to)
	g.outgoing[from] = append(g.outgoing[from], edge)
	return edge, true
}

// RemoveEdge removes the first occurrence of edge equal to e from its
// source's list.
func (g *InlineGraph[V, E]) RemoveEdge(e E) {
	from := e.Source()
	list := g.outgoing[from]
	for i, cur := range list {
		if any(cur) == any(e) {
			g.outgoing[from] = append(list[:i], list[i+1:]...)
			g.eprops.Delete(e)
			return
		}
	}
}

// OutgoingEdges returns v's outgoing edges in insertion order.
func (g *InlineGraph[V, E]) OutgoingEdges(v V) []E { return g.outgoing[v] }

// Destination returns e.Destination(), always ok since E carries its own
// endpoints.
func (g *InlineGraph[V, E]) Destination(e E) (V, bool) { return e.Destination(), true }

// Source returns e.Source().
func (g *InlineGraph[V, E]) Source(e E) (V, bool) { return e.Source(), true }

// OutDegree returns len(OutgoingEdges(v)).
func (g *InlineGraph[V, E]) OutDegree(v V) int { return len(g.outgoing[v]) }

// Vertices returns every vertex in insertion order.
func (g *InlineGraph[V, E]) Vertices() []V { return g.vertices.Items() }

// VertexCount returns the number of vertices.
func (g *InlineGraph[V, E]) VertexCount() int { return g.vertices.Len() }

// Edges returns every edge across all vertices, source-major in insertion
// order.
func (g *InlineGraph[V, E]) Edges() []E {
	var out []E
	for _, v := range g.vertices.Items() {
		out = append(out, g.outgoing[v]...)
	}
	return out
}

// EdgeCount returns the total number of edges.
func (g *InlineGraph[V, E]) EdgeCount() int {
	n := 0
	for _, v := range g.vertices.Items() {
		n += len(g.outgoing[v])
	}
	return n
}

// AdjacentVertices returns the destinations of v's outgoing edges.
func (g *InlineGraph[V, E]) AdjacentVertices(v V) []V {
	edges := g.outgoing[v]
	out := make([]V, len(edges))
	for i, e := range edges {
		out[i] = e.Destination()
	}
	return out
}

// VertexBag returns v's property bag.
func (g *InlineGraph[V, E]) VertexBag(v V) *prop.Bag { return g.vprops.Bag(v) }

// EdgeBag returns e's property bag.
func (g *InlineGraph[V, E]) EdgeBag(e E) *prop.Bag { return g.eprops.Bag(e) }

// NewEdgeID returns a fresh random identifier, for callers whose edge
// type wants a unique id field distinct from its (source, destination)
// pair (e.g. to distinguish parallel edges by identity rather than by
// value equality).
func NewEdgeID() string { return uuid.NewString() }
