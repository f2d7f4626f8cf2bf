package views

// complementBase is the subset of EdgeLookupGraph + VertexListGraph a
// ComplementGraphView needs.
type complementBase[V comparable, E comparable] interface {
	Vertices() []V
	VertexCount() int
	Edge(u, v V) (E, bool)
	EdgeCount() int
}

// ComplementEdge is the synthetic edge descriptor a ComplementGraphView
// produces: the (source, destination) pair itself, per spec.
type ComplementEdge[V comparable] struct {
	From, To V
}

// Complement is the complement of base over ordered pairs (u, v), u != v:
// for each such pair where base.Edge(u,v) is absent, Complement yields a
// synthetic edge. No caching; OutgoingEdges is O(V) per call, Edges is
// O(V²) per call, matching spec's documented cost.
type Complement[V comparable, E comparable] struct {
	base complementBase[V, E]
}

// NewComplement wraps base.
func NewComplement[V comparable, E comparable](base complementBase[V, E]) *Complement[V, E] {
	return &Complement[V, E]{base: base}
}

// OutgoingEdges yields one synthetic edge per vertex w != v such that
// base has no edge v->w. O(V).
func (c *Complement[V, E]) OutgoingEdges(v V) []ComplementEdge[V] {
	var out []ComplementEdge[V]
	for _, w := range c.base.Vertices() {
		if w == v {
			continue
		}
		if _, ok := c.base.Edge(v, w); ok {
			continue
		}
		out = append(out, ComplementEdge[V]{From: v, To: w})
	}
	return out
}

// Destination returns e.To.
func (c *Complement[V, E]) Destination(e ComplementEdge[V]) (V, bool) { return e.To, true }

// Source returns e.From.
func (c *Complement[V, E]) Source(e ComplementEdge[V]) (V, bool) { return e.From, true }

// OutDegree returns len(OutgoingEdges(v)), O(V).
func (c *Complement[V, E]) OutDegree(v V) int { return len(c.OutgoingEdges(v)) }

// Edge returns the synthetic edge u->v iff u != v and base has no edge
// u->v.
func (c *Complement[V, E]) Edge(u, v V) (ComplementEdge[V], bool) {
	if u == v {
		return ComplementEdge[V]{}, false
	}
	if _, ok := c.base.Edge(u, v); ok {
		return ComplementEdge[V]{}, false
	}
	return ComplementEdge[V]{From: u, To: v}, true
}

// Vertices delegates to the base.
func (c *Complement[V, E]) Vertices() []V { return c.base.Vertices() }

// VertexCount delegates to the base.
func (c *Complement[V, E]) VertexCount() int { return c.base.VertexCount() }

// Edges enumerates every synthetic edge by iterating all ordered pairs.
// O(V²).
func (c *Complement[V, E]) Edges() []ComplementEdge[V] {
	verts := c.base.Vertices()
	var out []ComplementEdge[V]
	for _, u := range verts {
		for _, v := range verts {
			if u == v {
				continue
			}
			if _, ok := c.base.Edge(u, v); ok {
				continue
			}
			out = append(out, ComplementEdge[V]{From: u, To: v})
		}
	}
	return out
}

// EdgeCountExact returns the exact complement edge count by the same
// O(V²) enumeration as Edges, always correct regardless of the base's
// loop or symmetry structure.
func (c *Complement[V, E]) EdgeCountExact() int { return len(c.Edges()) }

// EdgeCount returns the constant-time formula n*(n-1) - |E(base)|. This
// is only correct when base has no self-loops and no parallel edges (so
// base.EdgeCount counts each ordered pair at most once); under those
// documented preconditions it matches EdgeCountExact in O(1) instead of
// O(V²), whether or not base's edges are symmetric. It never falls back
// to enumeration; callers unsure whether the precondition holds should
// use EdgeCountExact.
func (c *Complement[V, E]) EdgeCount() int {
	n := c.base.VertexCount()
	return n*(n-1) - c.base.EdgeCount()
}
