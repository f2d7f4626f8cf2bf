// Package views implements the zero-copy graph adaptors of spec §4.3:
// Reversed, Complement, Filtered, and the Computed{Vertex,Edge}Property
// overlays. None of them take
// ownership of, or copy, the base graph; they are valid only while the
// base stays alive and unmutated for the duration of the view's
// iteration.
//
// New to this pack: the teacher has no view/adaptor layer (its Graph is
// always concrete), so these are grounded on the capability-lattice
// interfaces in lattice/traits.go rather than on any one teacher file.
package views

import "github.com/nodegraph/nodegraph/prop"

// bidirectionalBase is the subset of lattice.BidirectionalGraph this view
// needs.
type bidirectionalBase[V comparable, E comparable] interface {
	OutgoingEdges(v V) []E
	IncomingEdges(v V) []E
	Destination(e E) (V, bool)
	Source(e E) (V, bool)
	OutDegree(v V) int
	InDegree(v V) int
}

// vertexListBase is the subset needed to lift VertexListGraph through.
type vertexListBase[V comparable] interface {
	Vertices() []V
	VertexCount() int
}

// edgeListBase is the subset needed to lift EdgeListGraph through.
type edgeListBase[E comparable] interface {
	Edges() []E
	EdgeCount() int
}

// Reversed swaps the roles of outgoing and incoming edges of base:
// OutgoingEdges(v) == base.IncomingEdges(v), Source/Destination swap, and
// VertexListGraph/EdgeListGraph are lifted through unchanged when base
// provides them.
type Reversed[V comparable, E comparable] struct {
	base bidirectionalBase[V, E]
}

// NewReversed wraps base. base must satisfy BidirectionalGraph.
func NewReversed[V comparable, E comparable](base bidirectionalBase[V, E]) *Reversed[V, E] {
	return &Reversed[V, E]{base: base}
}

// OutgoingEdges returns base.IncomingEdges(v).
func (r *Reversed[V, E]) OutgoingEdges(v V) []E { return r.base.IncomingEdges(v) }

// IncomingEdges returns base.OutgoingEdges(v).
func (r *Reversed[V, E]) IncomingEdges(v V) []E { return r.base.OutgoingEdges(v) }

// Destination returns base.Source(e).
func (r *Reversed[V, E]) Destination(e E) (V, bool) { return r.base.Source(e) }

// Source returns base.Destination(e).
func (r *Reversed[V, E]) Source(e E) (V, bool) { return r.base.Destination(e) }

// OutDegree returns base.InDegree(v).
func (r *Reversed[V, E]) OutDegree(v V) int { return r.base.InDegree(v) }

// InDegree returns base.OutDegree(v).
func (r *Reversed[V, E]) InDegree(v V) int { return r.base.OutDegree(v) }

// ReversedWithVertexList additionally lifts VertexListGraph from a base
// that provides it.
type ReversedWithVertexList[V comparable, E comparable] struct {
	*Reversed[V, E]
	vbase vertexListBase[V]
}

// NewReversedWithVertexList wraps a base satisfying both
// BidirectionalGraph and VertexListGraph.
func NewReversedWithVertexList[V comparable, E comparable](base interface {
	bidirectionalBase[V, E]
	vertexListBase[V]
}) *ReversedWithVertexList[V, E] {
	return &ReversedWithVertexList[V, E]{Reversed: NewReversed[V, E](base), vbase: base}
}

// Vertices delegates to the base.
func (r *ReversedWithVertexList[V, E]) Vertices() []V { return r.vbase.Vertices() }

// VertexCount delegates to the base.
func (r *ReversedWithVertexList[V, E]) VertexCount() int { return r.vbase.VertexCount() }

// ReversedWithEdgeList additionally lifts EdgeListGraph. Edges() returns
// the base's own edge set unchanged (reversal does not alter which edges
// exist, only which endpoint each query treats as "out").
type ReversedWithEdgeList[V comparable, E comparable] struct {
	*Reversed[V, E]
	ebase edgeListBase[E]
}

// NewReversedWithEdgeList wraps a base satisfying BidirectionalGraph and
// EdgeListGraph.
func NewReversedWithEdgeList[V comparable, E comparable](base interface {
	bidirectionalBase[V, E]
	edgeListBase[E]
}) *ReversedWithEdgeList[V, E] {
	return &ReversedWithEdgeList[V, E]{Reversed: NewReversed[V, E](base), ebase: base}
}

// Edges delegates to the base.
func (r *ReversedWithEdgeList[V, E]) Edges() []E { return r.ebase.Edges() }

// EdgeCount delegates to the base.
func (r *ReversedWithEdgeList[V, E]) EdgeCount() int { return r.ebase.EdgeCount() }

// propertyBase is the subset needed for property pass-through (reversal
// does not change property bags).
type propertyBase[V comparable, E comparable] interface {
	VertexBag(v V) *prop.Bag
	EdgeBag(e E) *prop.Bag
}
