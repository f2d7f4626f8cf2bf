// Package bipartite implements the bipartite adjacency-list storage
// engine of spec §4.2: an AdjacencyList paired with a partition tag per
// vertex, where AddEdge rejects same-partition pairs and vertices can be
// created directly into, or moved between, the left and right partitions.
//
// The teacher has no two-partition engine; this package generalizes
// `adjlist`'s EdgeStore-backed design (see adjlist/adjlist.go) to carry
// the extra partition bookkeeping MutableBipartiteGraph requires.
package bipartite

import (
	"github.com/nodegraph/nodegraph/container"
	"github.com/nodegraph/nodegraph/lattice"
	"github.com/nodegraph/nodegraph/prop"
)

// VertexDescriptor identifies a vertex within one BipartiteAdjacencyList.
type VertexDescriptor int

// EdgeDescriptor identifies an edge within one BipartiteAdjacencyList.
type EdgeDescriptor int

type edgeRecord struct {
	from, to VertexDescriptor
}

// BipartiteAdjacencyList is the two-partition engine of spec §4.2.
type BipartiteAdjacencyList struct {
	nextVertex int
	partition  map[VertexDescriptor]lattice.Partition
	left       *container.OrderedSet[VertexDescriptor]
	right      *container.OrderedSet[VertexDescriptor]

	nextEdge int
	edges    *container.OrderedMap[EdgeDescriptor, edgeRecord]
	outgoing map[VertexDescriptor]*container.OrderedSet[EdgeDescriptor]

	vprops *prop.Map[VertexDescriptor]
	eprops *prop.Map[EdgeDescriptor]
}

// New returns an empty BipartiteAdjacencyList.
func New() *BipartiteAdjacencyList {
	return &BipartiteAdjacencyList{
		partition: make(map[VertexDescriptor]lattice.Partition),
		left:      container.NewOrderedSet[VertexDescriptor](),
		right:     container.NewOrderedSet[VertexDescriptor](),
		edges:     container.NewOrderedMap[EdgeDescriptor, edgeRecord](),
		outgoing:  make(map[VertexDescriptor]*container.OrderedSet[EdgeDescriptor]),
		vprops:    prop.NewMap[VertexDescriptor](),
		eprops:    prop.NewMap[EdgeDescriptor](),
	}
}

// AddVertex allocates a new vertex in the left partition, satisfying the
// plain MutableGraph surface. Callers that care which side a vertex lands
// on should use AddVertexTo instead.
func (g *BipartiteAdjacencyList) AddVertex() VertexDescriptor {
	return g.AddVertexTo(lattice.LeftPartition)
}

// AddVertexTo creates a new vertex in the given partition.
func (g *BipartiteAdjacencyList) AddVertexTo(p lattice.Partition) VertexDescriptor {
	v := VertexDescriptor(g.nextVertex)
	g.nextVertex++
	g.partition[v] = p
	if p == lattice.LeftPartition {
		g.left.Add(v)
	} else {
		g.right.Add(v)
	}
	return v
}

// MoveVertex reassigns v's partition. It returns false, leaving v where it
// was, if v is unknown or if an edge incident to v has its other endpoint
// in partition to (the move would put both endpoints on one side).
// Incident edges are never changed.
func (g *BipartiteAdjacencyList) MoveVertex(v VertexDescriptor, to lattice.Partition) bool {
	cur, ok := g.partition[v]
	if !ok {
		return false
	}
	if cur == to {
		return true
	}
	for _, eid := range g.edges.Keys() {
		rec, _ := g.edges.Get(eid)
		other := rec.from
		if rec.from == v {
			other = rec.to
		} else if rec.to != v {
			continue
		}
		if g.partition[other] == to {
			return false
		}
	}
	if cur == lattice.LeftPartition {
		g.left.Remove(v)
	} else {
		g.right.Remove(v)
	}
	g.partition[v] = to
	if to == lattice.LeftPartition {
		g.left.Add(v)
	} else {
		g.right.Add(v)
	}
	return true
}

// PartitionOf reports v's current partition.
func (g *BipartiteAdjacencyList) PartitionOf(v VertexDescriptor) (lattice.Partition, bool) {
	p, ok := g.partition[v]
	return p, ok
}

// LeftPartitionVertices returns the left partition in insertion order.
func (g *BipartiteAdjacencyList) LeftPartitionVertices() []VertexDescriptor { return g.left.Items() }

// RightPartitionVertices returns the right partition in insertion order.
func (g *BipartiteAdjacencyList) RightPartitionVertices() []VertexDescriptor {
	return g.right.Items()
}

// Vertices returns left then right, in each partition's insertion order.
func (g *BipartiteAdjacencyList) Vertices() []VertexDescriptor {
	out := make([]VertexDescriptor, 0, g.left.Len()+g.right.Len())
	out = append(out, g.left.Items()...)
	out = append(out, g.right.Items()...)
	return out
}

// VertexCount returns the total number of vertices in both partitions.
func (g *BipartiteAdjacencyList) VertexCount() int { return g.left.Len() + g.right.Len() }

func (g *BipartiteAdjacencyList) outSet(v VertexDescriptor) *container.OrderedSet[EdgeDescriptor] {
	set, ok := g.outgoing[v]
	if !ok {
		set = container.NewOrderedSet[EdgeDescriptor]()
		g.outgoing[v] = set
	}
	return set
}

// AddEdge adds from->to, rejecting the call when both endpoints sit in
// the same partition (the bipartite invariant), or when an endpoint is
// unknown. A duplicate from->to pair returns the existing edge.
func (g *BipartiteAdjacencyList) AddEdge(from, to VertexDescriptor) (EdgeDescriptor, bool) {
	pf, ok := g.partition[from]
	if !ok {
		return 0, false
	}
	pt, ok := g.partition[to]
	if !ok {
		return 0, false
	}
	if pf == pt {
		return 0, false
	}
	for _, eid := range g.outSet(from).Items() {
		rec, _ := g.edges.Get(eid)
		if rec.to == to {
			return eid, true
		}
	}
	eid := EdgeDescriptor(g.nextEdge)
	g.nextEdge++
	g.edges.Set(eid, edgeRecord{from: from, to: to})
	g.outSet(from).Add(eid)
	return eid, true
}

// RemoveEdge removes e.
func (g *BipartiteAdjacencyList) RemoveEdge(e EdgeDescriptor) {
	rec, ok := g.edges.Get(e)
	if !ok {
		return
	}
	g.edges.Delete(e)
	if set, ok := g.outgoing[rec.from]; ok {
		set.Remove(e)
	}
	g.eprops.Delete(e)
}

// RemoveVertex deletes v and every edge touching it.
func (g *BipartiteAdjacencyList) RemoveVertex(v VertexDescriptor) {
	p, ok := g.partition[v]
	if !ok {
		return
	}
	for _, eid := range append([]EdgeDescriptor(nil), g.Edges()...) {
		rec, _ := g.edges.Get(eid)
		if rec.from == v || rec.to == v {
			g.RemoveEdge(eid)
		}
	}
	delete(g.outgoing, v)
	delete(g.partition, v)
	if p == lattice.LeftPartition {
		g.left.Remove(v)
	} else {
		g.right.Remove(v)
	}
	g.vprops.Delete(v)
}

// OutgoingEdges returns from's outgoing edges in insertion order.
func (g *BipartiteAdjacencyList) OutgoingEdges(from VertexDescriptor) []EdgeDescriptor {
	set, ok := g.outgoing[from]
	if !ok {
		return nil
	}
	return set.Items()
}

// Destination returns e's destination vertex.
func (g *BipartiteAdjacencyList) Destination(e EdgeDescriptor) (VertexDescriptor, bool) {
	rec, ok := g.edges.Get(e)
	return rec.to, ok
}

// Source returns e's source vertex.
func (g *BipartiteAdjacencyList) Source(e EdgeDescriptor) (VertexDescriptor, bool) {
	rec, ok := g.edges.Get(e)
	return rec.from, ok
}

// OutDegree returns len(OutgoingEdges(v)).
func (g *BipartiteAdjacencyList) OutDegree(v VertexDescriptor) int {
	return len(g.OutgoingEdges(v))
}

// Edges returns every edge in insertion order.
func (g *BipartiteAdjacencyList) Edges() []EdgeDescriptor { return g.edges.Keys() }

// EdgeCount returns the number of edges.
func (g *BipartiteAdjacencyList) EdgeCount() int { return g.edges.Len() }

// VertexBag returns v's property bag.
func (g *BipartiteAdjacencyList) VertexBag(v VertexDescriptor) *prop.Bag { return g.vprops.Bag(v) }

// EdgeBag returns e's property bag.
func (g *BipartiteAdjacencyList) EdgeBag(e EdgeDescriptor) *prop.Bag { return g.eprops.Bag(e) }
