// Package lazygraph implements the closure-based engine of spec §4.2:
// built from a single neighbor-producing closure, it satisfies
// IncidenceGraph only — no vertex listing, no edge listing, no mutation
// — and never caches a result, leaving that to the caller.
//
// New to this pack; grounded on the teacher's tsp/eulerian.go style of
// keeping algorithm state as plain closures over a base graph rather than
// a stored struct, generalized here into the engine itself.
package lazygraph

// NeighborFunc produces v's outgoing edges on demand.
type NeighborFunc[V comparable, E comparable] func(v V) []E

// EndpointFunc resolves an edge's source and destination.
type EndpointFunc[V comparable, E comparable] struct {
	Source      func(e E) (V, bool)
	Destination func(e E) (V, bool)
}

// LazyGraph wraps a NeighborFunc (and the endpoint accessors needed to
// satisfy IncidenceGraph) with no internal state of its own.
type LazyGraph[V comparable, E comparable] struct {
	neighbors NeighborFunc[V, E]
	endpoints EndpointFunc[V, E]
}

// New returns a LazyGraph over the given closures. Nothing is evaluated
// until a query method is called, and nothing is ever cached.
func New[V comparable, E comparable](neighbors NeighborFunc[V, E], endpoints EndpointFunc[V, E]) *LazyGraph[V, E] {
	return &LazyGraph[V, E]{neighbors: neighbors, endpoints: endpoints}
}

// FromVertexFunc builds a LazyGraph from a closure that yields neighbor
// vertices directly, synthesizing a trivial edge type (the (from, to)
// pair itself) and trivial endpoint accessors — the spec's "V -> sequence
// of V" specialization.
func FromVertexFunc[V comparable](neighbors func(v V) []V) *LazyGraph[V, [2]V] {
	wrapped := func(v V) [][2]V {
		vs := neighbors(v)
		out := make([][2]V, len(vs))
		for i, to := range vs {
			out[i] = [2]V{v, to}
		}
		return out
	}
	return New[V, [2]V](wrapped, EndpointFunc[V, [2]V]{
		Source:      func(e [2]V) (V, bool) { return e[0], true },
		Destination: func(e [2]V) (V, bool) { return e[1], true },
	})
}

// OutgoingEdges calls the wrapped NeighborFunc. The result is not cached.
func (g *LazyGraph[V, E]) OutgoingEdges(v V) []E { return g.neighbors(v) }

// Destination resolves e's destination via the wrapped EndpointFunc.
func (g *LazyGraph[V, E]) Destination(e E) (V, bool) { return g.endpoints.Destination(e) }

// Source resolves e's source via the wrapped EndpointFunc.
func (g *LazyGraph[V, E]) Source(e E) (V, bool) { return g.endpoints.Source(e) }

// OutDegree returns len(OutgoingEdges(v)), re-evaluating the closure.
func (g *LazyGraph[V, E]) OutDegree(v V) int { return len(g.neighbors(v)) }
