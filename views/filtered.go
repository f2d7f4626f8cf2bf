package views

// filteredBase is the subset of IncidenceGraph a Filtered view needs.
type filteredBase[V comparable, E comparable] interface {
	OutgoingEdges(v V) []E
	Destination(e E) (V, bool)
	Source(e E) (V, bool)
}

// VertexPredicate reports whether v should be visible through the view.
type VertexPredicate[V comparable] func(v V) bool

// EdgePredicate reports whether e should be visible through the view.
type EdgePredicate[E comparable] func(e E) bool

// Filtered restricts base to the vertices and edges that pass the given
// predicates. An edge is visible iff both of its endpoints pass
// includeVertex and the edge itself passes includeEdge. Nil predicates
// default to "include everything".
type Filtered[V comparable, E comparable] struct {
	base          filteredBase[V, E]
	includeVertex VertexPredicate[V]
	includeEdge   EdgePredicate[E]
}

// NewFiltered wraps base with the given predicates.
func NewFiltered[V comparable, E comparable](base filteredBase[V, E], includeVertex VertexPredicate[V], includeEdge EdgePredicate[E]) *Filtered[V, E] {
	if includeVertex == nil {
		includeVertex = func(V) bool { return true }
	}
	if includeEdge == nil {
		includeEdge = func(E) bool { return true }
	}
	return &Filtered[V, E]{base: base, includeVertex: includeVertex, includeEdge: includeEdge}
}

func (f *Filtered[V, E]) visible(e E) bool {
	if !f.includeEdge(e) {
		return false
	}
	from, ok := f.base.Source(e)
	if !ok || !f.includeVertex(from) {
		return false
	}
	to, ok := f.base.Destination(e)
	if !ok || !f.includeVertex(to) {
		return false
	}
	return true
}

// OutgoingEdges returns v's outgoing edges that pass both predicates, or
// nil if v itself fails includeVertex.
func (f *Filtered[V, E]) OutgoingEdges(v V) []E {
	if !f.includeVertex(v) {
		return nil
	}
	var out []E
	for _, e := range f.base.OutgoingEdges(v) {
		if f.visible(e) {
			out = append(out, e)
		}
	}
	return out
}

// Destination delegates to the base.
func (f *Filtered[V, E]) Destination(e E) (V, bool) { return f.base.Destination(e) }

// Source delegates to the base.
func (f *Filtered[V, E]) Source(e E) (V, bool) { return f.base.Source(e) }

// OutDegree returns len(OutgoingEdges(v)).
func (f *Filtered[V, E]) OutDegree(v V) int { return len(f.OutgoingEdges(v)) }

// FilteredWithVertexList additionally lifts VertexListGraph from a base
// that provides it, restricted to vertices passing includeVertex.
type FilteredWithVertexList[V comparable, E comparable] struct {
	*Filtered[V, E]
	vbase vertexListBase[V]
}

// NewFilteredWithVertexList wraps a base satisfying both IncidenceGraph
// and VertexListGraph.
func NewFilteredWithVertexList[V comparable, E comparable](base interface {
	filteredBase[V, E]
	vertexListBase[V]
}, includeVertex VertexPredicate[V], includeEdge EdgePredicate[E]) *FilteredWithVertexList[V, E] {
	return &FilteredWithVertexList[V, E]{
		Filtered: NewFiltered[V, E](base, includeVertex, includeEdge),
		vbase:    base,
	}
}

// Vertices returns the base's vertices passing includeVertex.
func (f *FilteredWithVertexList[V, E]) Vertices() []V {
	var out []V
	for _, v := range f.vbase.Vertices() {
		if f.includeVertex(v) {
			out = append(out, v)
		}
	}
	return out
}

// VertexCount returns len(Vertices()).
func (f *FilteredWithVertexList[V, E]) VertexCount() int { return len(f.Vertices()) }

// FilteredWithEdgeList additionally lifts EdgeListGraph from a base that
// provides it.
type FilteredWithEdgeList[V comparable, E comparable] struct {
	*Filtered[V, E]
	ebase edgeListBase[E]
}

// NewFilteredWithEdgeList wraps a base satisfying both IncidenceGraph and
// EdgeListGraph.
func NewFilteredWithEdgeList[V comparable, E comparable](base interface {
	filteredBase[V, E]
	edgeListBase[E]
}, includeVertex VertexPredicate[V], includeEdge EdgePredicate[E]) *FilteredWithEdgeList[V, E] {
	return &FilteredWithEdgeList[V, E]{
		Filtered: NewFiltered[V, E](base, includeVertex, includeEdge),
		ebase:    base,
	}
}

// Edges returns the base's edges that pass both predicates.
func (f *FilteredWithEdgeList[V, E]) Edges() []E {
	var out []E
	for _, e := range f.ebase.Edges() {
		if f.visible(e) {
			out = append(out, e)
		}
	}
	return out
}

// EdgeCount returns len(Edges()).
func (f *FilteredWithEdgeList[V, E]) EdgeCount() int { return len(f.Edges()) }
