// Package adjlist implements the adjacency list storage engine: the
// default, sparse engine described in spec §4.2, composed from a
// VertexStore, an EdgeStore, and vertex/edge property maps.
//
// Adapted from teacher `core/types.go` + `core/methods.go` (insertion-
// ordered vertex/edge maps, per-source adjacency lists, monotonic id
// allocation under a single mutex pair), generalized from the teacher's
// concrete string-keyed *Graph into int-descriptor VertexDescriptor/
// EdgeDescriptor storage driven by the container package's ordered
// collections, and re-targeted at the lattice interfaces instead of a
// standalone API surface.
package adjlist

import (
	"github.com/nodegraph/nodegraph/container"
	"github.com/nodegraph/nodegraph/prop"
)

// VertexDescriptor identifies a vertex within one AdjacencyList. It is
// only valid within the graph that issued it, per spec §3.
type VertexDescriptor int

// EdgeDescriptor identifies an edge within one AdjacencyList.
type EdgeDescriptor int

// VertexStore allocates monotonically increasing vertex ids and tracks
// which are currently live, in insertion order. Adapted from teacher
// `core.Graph.vertices`/`nextEdgeID`-style monotone allocation.
type VertexStore struct {
	next int
	live *container.OrderedSet[VertexDescriptor]
}

// NewVertexStore returns an empty VertexStore.
func NewVertexStore() *VertexStore {
	return &VertexStore{live: container.NewOrderedSet[VertexDescriptor]()}
}

// Add allocates and returns a new vertex descriptor. O(1).
func (s *VertexStore) Add() VertexDescriptor {
	v := VertexDescriptor(s.next)
	s.next++
	s.live.Add(v)
	return v
}

// Contains reports whether v is currently live. O(1).
func (s *VertexStore) Contains(v VertexDescriptor) bool { return s.live.Contains(v) }

// Remove deletes v from the live set. The caller is responsible for first
// removing v's incident edges. O(1) amortized.
func (s *VertexStore) Remove(v VertexDescriptor) { s.live.Remove(v) }

// All returns live vertices in insertion order. O(V).
func (s *VertexStore) All() []VertexDescriptor { return s.live.Items() }

// Count returns the number of live vertices. O(1).
func (s *VertexStore) Count() int { return s.live.Len() }

// edgeRecord stores one edge's endpoints.
type edgeRecord struct {
	from, to VertexDescriptor
}

// EdgeStore allocates monotonically increasing edge ids, stores endpoints
// in an insertion-ordered map, and maintains a per-source list of
// outgoing edge ids, matching spec §4.2's "EdgeStore (ordered)" contract.
// In-edge iteration is not supported directly; wrap with CacheInOutEdges
// for that.
type EdgeStore struct {
	next     int
	edges    *container.OrderedMap[EdgeDescriptor, edgeRecord]
	outgoing map[VertexDescriptor]*container.OrderedSet[EdgeDescriptor]
	allowMulti bool
}

// NewEdgeStore returns an empty EdgeStore. allowMulti controls whether
// AddEdge may create a second edge between the same ordered pair; when
// false, AddEdge returns the existing edge's descriptor instead (the
// AdjacencyList engine's multi-edge policy, distinct from AdjacencyMatrix
// which forbids parallel edges unconditionally).
func NewEdgeStore(allowMulti bool) *EdgeStore {
	return &EdgeStore{
		edges:      container.NewOrderedMap[EdgeDescriptor, edgeRecord](),
		outgoing:   make(map[VertexDescriptor]*container.OrderedSet[EdgeDescriptor]),
		allowMulti: allowMulti,
	}
}

func (s *EdgeStore) outSet(v VertexDescriptor) *container.OrderedSet[EdgeDescriptor] {
	set, ok := s.outgoing[v]
	if !ok {
		set = container.NewOrderedSet[EdgeDescriptor]()
		s.outgoing[v] = set
	}
	return set
}

// existingParallel returns an existing edge id from->to, if any, used to
// implement the "return existing descriptor" multi-edge policy.
func (s *EdgeStore) existingParallel(from, to VertexDescriptor) (EdgeDescriptor, bool) {
	set, ok := s.outgoing[from]
	if !ok {
		return 0, false
	}
	for _, eid := range set.Items() {
		rec, _ := s.edges.Get(eid)
		if rec.to == to {
			return eid, true
		}
	}
	return 0, false
}

// Add records a new edge from->to and returns its descriptor. O(1) unless
// multi-edges are disallowed and a duplicate check is required, in which
// case it is O(out-degree(from)).
func (s *EdgeStore) Add(from, to VertexDescriptor) EdgeDescriptor {
	if !s.allowMulti {
		if existing, ok := s.existingParallel(from, to); ok {
			return existing
		}
	}
	eid := EdgeDescriptor(s.next)
	s.next++
	s.edges.Set(eid, edgeRecord{from: from, to: to})
	s.outSet(from).Add(eid)
	return eid
}

// Endpoints returns the (from, to) of e. O(1).
func (s *EdgeStore) Endpoints(e EdgeDescriptor) (VertexDescriptor, VertexDescriptor, bool) {
	rec, ok := s.edges.Get(e)
	return rec.from, rec.to, ok
}

// OutgoingEdges returns v's outgoing edge ids in insertion order. O(out-
// degree(v)).
func (s *EdgeStore) OutgoingEdges(v VertexDescriptor) []EdgeDescriptor {
	set, ok := s.outgoing[v]
	if !ok {
		return nil
	}
	return set.Items()
}

// Remove deletes e. O(out-degree(source)) since the source's outgoing list
// must be compacted, matching spec's documented O(deg) removal cost for
// the default (uncached) edge store.
func (s *EdgeStore) Remove(e EdgeDescriptor) {
	rec, ok := s.edges.Get(e)
	if !ok {
		return
	}
	s.edges.Delete(e)
	if set, ok := s.outgoing[rec.from]; ok {
		set.Remove(e)
	}
}

// All returns all edges in insertion order. O(E).
func (s *EdgeStore) All() []EdgeDescriptor { return s.edges.Keys() }

// Count returns the number of live edges. O(1).
func (s *EdgeStore) Count() int { return s.edges.Len() }

// RemoveVertexEdges removes every edge touching v as a source, used by
// AdjacencyList.RemoveVertex before the caller also scans for edges that
// target v (a plain EdgeStore has no in-edge index; CacheInOutEdges makes
// that O(in-degree) instead of O(E)).
func (s *EdgeStore) RemoveVertexEdges(v VertexDescriptor) {
	set, ok := s.outgoing[v]
	if !ok {
		return
	}
	for _, eid := range append([]EdgeDescriptor(nil), set.Items()...) {
		s.Remove(eid)
	}
	delete(s.outgoing, v)
}

// AdjacencyList is the default sparse graph engine: a VertexStore, an
// EdgeStore (optionally wrapped by CacheInOutEdges for fast in-edges), and
// vertex/edge property maps. It satisfies IncidenceGraph, VertexListGraph,
// EdgeListGraph, AdjacencyGraph, EdgeLookupGraph, MutableGraph,
// PropertyGraph, and MutablePropertyGraph; it additionally satisfies
// BidirectionalGraph when constructed with WithInEdgeCache.
type AdjacencyList struct {
	vertices *VertexStore
	edges    edgeIndex
	vprops   *prop.Map[VertexDescriptor]
	eprops   *prop.Map[EdgeDescriptor]
}

// edgeIndex is the minimal surface AdjacencyList needs from either a plain
// EdgeStore or a CacheInOutEdges wrapper, so both can back the same
// engine.
type edgeIndex interface {
	Add(from, to VertexDescriptor) EdgeDescriptor
	Endpoints(e EdgeDescriptor) (VertexDescriptor, VertexDescriptor, bool)
	OutgoingEdges(v VertexDescriptor) []EdgeDescriptor
	Remove(e EdgeDescriptor)
	All() []EdgeDescriptor
	Count() int
	RemoveVertexEdges(v VertexDescriptor)
}

// Option configures an AdjacencyList at construction time.
type Option func(*config)

type config struct {
	allowMulti  bool
	inEdgeCache bool
}

// WithMultiEdges permits parallel edges between the same ordered pair of
// vertices (teacher's `core.WithMultiEdges`).
func WithMultiEdges() Option { return func(c *config) { c.allowMulti = true } }

// WithInEdgeCache wraps the edge store with CacheInOutEdges so the
// resulting AdjacencyList also satisfies BidirectionalGraph with
// O(in-degree) IncomingEdges, per spec §4.2's documented wrapper.
func WithInEdgeCache() Option { return func(c *config) { c.inEdgeCache = true } }

// New constructs an empty AdjacencyList.
func New(opts ...Option) *AdjacencyList {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	var idx edgeIndex
	base := NewEdgeStore(cfg.allowMulti)
	if cfg.inEdgeCache {
		idx = NewCacheInOutEdges(base)
	} else {
		idx = base
	}
	return &AdjacencyList{
		vertices: NewVertexStore(),
		edges:    idx,
		vprops:   prop.NewMap[VertexDescriptor](),
		eprops:   prop.NewMap[EdgeDescriptor](),
	}
}

// AddVertex allocates a new vertex. O(1).
func (g *AdjacencyList) AddVertex() VertexDescriptor { return g.vertices.Add() }

// RemoveVertex deletes v and every edge incident to it. With
// WithInEdgeCache this is O(deg(v)); without it, incoming edges from other
// sources must be found by an O(E) scan, since a plain EdgeStore only
// indexes outgoing edges per source.
func (g *AdjacencyList) RemoveVertex(v VertexDescriptor) {
	// RemoveVertexEdges handles the outgoing side (and, for
	// CacheInOutEdges, the incoming side too) in a single call.
	g.edges.RemoveVertexEdges(v)
	if _, cached := g.edges.(*CacheInOutEdges); !cached {
		for _, e := range g.edges.All() {
			if _, to, ok := g.edges.Endpoints(e); ok && to == v {
				g.edges.Remove(e)
			}
		}
	}
	g.vertices.Remove(v)
	g.vprops.Delete(v)
}

// AddEdge creates (or, per the multi-edge policy, reuses) an edge from
// `from` to `to`. ok is false iff either endpoint is not live.
func (g *AdjacencyList) AddEdge(from, to VertexDescriptor) (EdgeDescriptor, bool) {
	if !g.vertices.Contains(from) || !g.vertices.Contains(to) {
		return 0, false
	}
	return g.edges.Add(from, to), true
}

// RemoveEdge deletes e.
func (g *AdjacencyList) RemoveEdge(e EdgeDescriptor) {
	g.edges.Remove(e)
	g.eprops.Delete(e)
}

// OutgoingEdges returns v's outgoing edges in insertion order.
func (g *AdjacencyList) OutgoingEdges(v VertexDescriptor) []EdgeDescriptor {
	return g.edges.OutgoingEdges(v)
}

// Destination returns e's destination vertex.
func (g *AdjacencyList) Destination(e EdgeDescriptor) (VertexDescriptor, bool) {
	_, to, ok := g.edges.Endpoints(e)
	return to, ok
}

// Source returns e's source vertex.
func (g *AdjacencyList) Source(e EdgeDescriptor) (VertexDescriptor, bool) {
	from, _, ok := g.edges.Endpoints(e)
	return from, ok
}

// OutDegree returns len(OutgoingEdges(v)).
func (g *AdjacencyList) OutDegree(v VertexDescriptor) int {
	return len(g.edges.OutgoingEdges(v))
}

// Vertices returns all live vertices in insertion order.
func (g *AdjacencyList) Vertices() []VertexDescriptor { return g.vertices.All() }

// VertexCount returns the number of live vertices.
func (g *AdjacencyList) VertexCount() int { return g.vertices.Count() }

// Edges returns all live edges in insertion order.
func (g *AdjacencyList) Edges() []EdgeDescriptor { return g.edges.All() }

// EdgeCount returns the number of live edges.
func (g *AdjacencyList) EdgeCount() int { return g.edges.Count() }

// AdjacentVertices returns the distinct destinations reachable from v by a
// single out-edge.
func (g *AdjacencyList) AdjacentVertices(v VertexDescriptor) []VertexDescriptor {
	seen := container.NewOrderedSet[VertexDescriptor]()
	for _, e := range g.edges.OutgoingEdges(v) {
		if _, to, ok := g.edges.Endpoints(e); ok {
			seen.Add(to)
		}
	}
	return seen.Items()
}

// Edge returns an edge from `from` to `to`, scanning `from`'s outgoing
// list. O(out-degree(from)).
func (g *AdjacencyList) Edge(from, to VertexDescriptor) (EdgeDescriptor, bool) {
	for _, e := range g.edges.OutgoingEdges(from) {
		if _, dst, ok := g.edges.Endpoints(e); ok && dst == to {
			return e, true
		}
	}
	return 0, false
}

// VertexBag returns v's property bag.
func (g *AdjacencyList) VertexBag(v VertexDescriptor) *prop.Bag { return g.vprops.Bag(v) }

// EdgeBag returns e's property bag.
func (g *AdjacencyList) EdgeBag(e EdgeDescriptor) *prop.Bag { return g.eprops.Bag(e) }

// IncomingEdges returns edges targeting v. Only meaningful (and only
// efficient) when the AdjacencyList was built WithInEdgeCache; without the
// cache this scans all edges, O(E).
func (g *AdjacencyList) IncomingEdges(v VertexDescriptor) []EdgeDescriptor {
	if cache, ok := g.edges.(*CacheInOutEdges); ok {
		return cache.IncomingEdges(v)
	}
	var out []EdgeDescriptor
	for _, e := range g.edges.All() {
		if _, to, ok := g.edges.Endpoints(e); ok && to == v {
			out = append(out, e)
		}
	}
	return out
}

// InDegree returns len(IncomingEdges(v)).
func (g *AdjacencyList) InDegree(v VertexDescriptor) int { return len(g.IncomingEdges(v)) }
