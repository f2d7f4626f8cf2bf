// Package lattice declares the capability lattice: a hierarchy of small,
// single-capability graph interfaces that storage engines opt into and
// algorithms demand a minimal subset of, per spec §4.1.
//
// Each interface is parameterized by the graph's own vertex descriptor
// type V and edge descriptor type E, both required to be comparable so
// they can key maps and sets the way every storage engine and algorithm in
// this module relies on. This plays the role of the source's associated
// types (spec §9's "open-world polymorphism" design note): a concrete
// engine fixes V and E once, and every capability interface it implements
// shares that same pair, exactly as BGL's VertexDescriptor/EdgeDescriptor
// associated types do. The shape mirrors the BGL-style capability
// interfaces in gonum's graph package (Node/Edge/Graph/DirectedGraph/
// Coster/MutableGraph) and the generic Graph[K,T] construction style of
// dominikbraun/graph, composed here to match the exact capability table of
// spec §4.1.
package lattice

import "github.com/nodegraph/nodegraph/prop"

// GraphBase is the root of the lattice: typing only, no operations. Every
// other capability interface embeds it so that algorithms can demand
// "any GraphBase with these further capabilities" via Go's interface
// embedding.
type GraphBase[V comparable, E comparable] interface {
}

// IncidenceGraph is the most fundamental traversable capability: given a
// vertex, enumerate its outgoing edges and resolve an edge's endpoints.
//
// Contract: iteration via OutgoingEdges is finite; Destination/Source are
// defined for every edge OutgoingEdges can produce; len(OutgoingEdges(v))
// == OutDegree(v).
type IncidenceGraph[V comparable, E comparable] interface {
	GraphBase[V, E]

	// OutgoingEdges returns the edges leaving v, in the engine's natural
	// order (insertion order for ordered storages, per spec §3).
	OutgoingEdges(v V) []E

	// Destination returns the destination vertex of e and true, or the
	// zero V and false if e is not a known edge of this graph.
	Destination(e E) (V, bool)

	// Source returns the source vertex of e and true, or the zero V and
	// false if e is not a known edge of this graph.
	Source(e E) (V, bool)

	// OutDegree returns len(OutgoingEdges(v)).
	OutDegree(v V) int
}

// BidirectionalGraph additionally exposes incoming edges. Contract: sum of
// in-degrees over all vertices equals the edge count, equals the sum of
// out-degrees.
type BidirectionalGraph[V comparable, E comparable] interface {
	IncidenceGraph[V, E]

	// IncomingEdges returns the edges whose destination is v.
	IncomingEdges(v V) []E

	// InDegree returns len(IncomingEdges(v)).
	InDegree(v V) int
}

// VertexListGraph exposes the full vertex set. Contract: iteration visits
// each live vertex exactly once.
type VertexListGraph[V comparable, E comparable] interface {
	GraphBase[V, E]

	// Vertices returns all live vertices, in the engine's natural order.
	Vertices() []V

	// VertexCount returns len(Vertices()).
	VertexCount() int
}

// EdgeListGraph exposes the full edge set. Contract: iteration visits each
// live edge exactly once.
type EdgeListGraph[V comparable, E comparable] interface {
	GraphBase[V, E]

	// Edges returns all live edges, in the engine's natural order.
	Edges() []E

	// EdgeCount returns len(Edges()).
	EdgeCount() int
}

// AdjacencyGraph exposes the set of vertices reachable by one out-edge (or
// by either direction, for engines like AdjacencyMatrix that treat
// adjacency symmetrically).
type AdjacencyGraph[V comparable, E comparable] interface {
	GraphBase[V, E]

	// AdjacentVertices returns the distinct vertices reachable from v by a
	// single edge.
	AdjacentVertices(v V) []V
}

// EdgeLookupGraph supports direct endpoint-pair lookup. Contract: returns
// some edge with those endpoints if any exist; O(1) for AdjacencyMatrix,
// O(out-degree) otherwise, per spec §4.1.
type EdgeLookupGraph[V comparable, E comparable] interface {
	GraphBase[V, E]

	// Edge returns an edge from `from` to `to` and true, or the zero E and
	// false if none exists.
	Edge(from, to V) (E, bool)
}

// MutableGraph is the capability for engines that support structural
// mutation. Contract: RemoveVertex first removes every incident edge;
// AddEdge fails (returns ok=false) iff an endpoint is not live; AddEdge may
// return an existing edge's descriptor instead of allocating a new one,
// per the storage engine's own multi-edge policy.
type MutableGraph[V comparable, E comparable] interface {
	GraphBase[V, E]

	// AddVertex allocates and returns a new vertex descriptor.
	AddVertex() V

	// RemoveVertex deletes v and every edge incident to it.
	RemoveVertex(v V)

	// AddEdge creates (or, per storage policy, reuses) an edge from `from`
	// to `to`. ok is false iff an endpoint is not live in this graph.
	AddEdge(from, to V) (E, bool)

	// RemoveEdge deletes e.
	RemoveEdge(e E)
}

// PropertyGraph exposes the property maps backing this graph's vertices
// and edges, keyed by this graph's own descriptors, per spec §4.4. Both
// accessors return a live *prop.Bag; engines that have no data for a
// descriptor yet still return a non-nil, all-defaults bag (see prop.Bag).
type PropertyGraph[V comparable, E comparable] interface {
	GraphBase[V, E]

	// VertexBag returns the property bag for v.
	VertexBag(v V) *prop.Bag

	// EdgeBag returns the property bag for e.
	EdgeBag(e E) *prop.Bag
}

// MutablePropertyGraph is a PropertyGraph whose maps can also be written.
// Writes are visible to subsequent reads on the same graph. In practice
// this is the same method set as PropertyGraph, since prop.Bag values
// returned are already live and mutable via prop.Set; the distinct
// interface exists so algorithms can demand "writable properties" in their
// type constraints. Because the method sets are identical, the compiler
// does not tell the two apart: every PropertyGraph also satisfies
// MutablePropertyGraph.
type MutablePropertyGraph[V comparable, E comparable] interface {
	PropertyGraph[V, E]
}

// BinaryIncidenceGraph is the capability for engines that store at most a
// left and a right outgoing edge per vertex (the adjlist binary edge store
// variant), enabling an `inorder` DFS traversal. Contract: left and right,
// if both present, are distinct; OutgoingEdges == their union.
type BinaryIncidenceGraph[V comparable, E comparable] interface {
	IncidenceGraph[V, E]

	// LeftEdge returns the left slot's edge and true, or zero/false.
	LeftEdge(v V) (E, bool)

	// RightEdge returns the right slot's edge and true, or zero/false.
	RightEdge(v V) (E, bool)
}

// Partition identifies which side of a bipartition a vertex belongs to.
type Partition int

const (
	// LeftPartition marks a vertex as belonging to the bipartite graph's
	// left side.
	LeftPartition Partition = iota
	// RightPartition marks a vertex as belonging to the bipartite graph's
	// right side.
	RightPartition
)

// BipartiteGraph is the capability for engines that maintain a two-coloring
// invariant over their vertices. Contract: every edge connects distinct
// partitions.
type BipartiteGraph[V comparable, E comparable] interface {
	IncidenceGraph[V, E]

	// PartitionOf returns the partition of v and true, or false if v is
	// not a live vertex of this graph.
	PartitionOf(v V) (Partition, bool)

	// LeftPartitionVertices returns all vertices tagged LeftPartition.
	LeftPartitionVertices() []V

	// RightPartitionVertices returns all vertices tagged RightPartition.
	RightPartitionVertices() []V
}

// MutableBipartiteGraph extends BipartiteGraph with partition-aware
// mutation. Contract: AddEdge returns ok=false if both endpoints would be
// in the same partition.
type MutableBipartiteGraph[V comparable, E comparable] interface {
	BipartiteGraph[V, E]
	MutableGraph[V, E]

	// AddVertexTo allocates a new vertex tagged with the given partition.
	AddVertexTo(part Partition) V

	// MoveVertex retags v to part. Returns false if doing so would violate
	// the bipartition invariant of an existing incident edge.
	MoveVertex(v V, part Partition) bool
}
