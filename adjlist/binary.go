package adjlist

import "github.com/nodegraph/nodegraph/prop"

// BinaryAdjacencyList is the "binary edge store" variant of spec §4.2: each
// vertex has at most two outgoing slots, left and right. AddEdge fills the
// first empty slot, or replaces right when both are full — the "right
// slot overwrite" policy the spec documents as one valid, explicitly
// stated choice (see SPEC_FULL.md §6(b)). It satisfies
// BinaryIncidenceGraph, and by extension IncidenceGraph.
type BinaryAdjacencyList struct {
	vertices *VertexStore
	next     int
	left     map[VertexDescriptor]EdgeDescriptor
	right    map[VertexDescriptor]EdgeDescriptor
	hasLeft  map[VertexDescriptor]bool
	hasRight map[VertexDescriptor]bool
	endpoint map[EdgeDescriptor]edgeRecord
	vprops   *prop.Map[VertexDescriptor]
	eprops   *prop.Map[EdgeDescriptor]
}

// NewBinaryAdjacencyList returns an empty binary-slot engine.
func NewBinaryAdjacencyList() *BinaryAdjacencyList {
	return &BinaryAdjacencyList{
		vertices: NewVertexStore(),
		left:     make(map[VertexDescriptor]EdgeDescriptor),
		right:    make(map[VertexDescriptor]EdgeDescriptor),
		hasLeft:  make(map[VertexDescriptor]bool),
		hasRight: make(map[VertexDescriptor]bool),
		endpoint: make(map[EdgeDescriptor]edgeRecord),
		vprops:   prop.NewMap[VertexDescriptor](),
		eprops:   prop.NewMap[EdgeDescriptor](),
	}
}

// AddVertex allocates a new vertex with two empty slots.
func (g *BinaryAdjacencyList) AddVertex() VertexDescriptor { return g.vertices.Add() }

// AddEdge fills from's left slot if empty, else its right slot, else
// overwrites the right slot (the documented policy). ok is false iff
// either endpoint is not live.
func (g *BinaryAdjacencyList) AddEdge(from, to VertexDescriptor) (EdgeDescriptor, bool) {
	if !g.vertices.Contains(from) || !g.vertices.Contains(to) {
		return 0, false
	}
	eid := EdgeDescriptor(g.next)
	g.next++
	g.endpoint[eid] = edgeRecord{from: from, to: to}

	switch {
	case !g.hasLeft[from]:
		g.left[from] = eid
		g.hasLeft[from] = true
	case !g.hasRight[from]:
		g.right[from] = eid
		g.hasRight[from] = true
	default:
		delete(g.endpoint, g.right[from])
		g.right[from] = eid
		g.hasRight[from] = true
	}
	return eid, true
}

// LeftEdge returns from's left slot edge, if any.
func (g *BinaryAdjacencyList) LeftEdge(v VertexDescriptor) (EdgeDescriptor, bool) {
	e, ok := g.left[v]
	return e, ok && g.hasLeft[v]
}

// RightEdge returns from's right slot edge, if any.
func (g *BinaryAdjacencyList) RightEdge(v VertexDescriptor) (EdgeDescriptor, bool) {
	e, ok := g.right[v]
	return e, ok && g.hasRight[v]
}

// OutgoingEdges returns the union of the left and right slots, in that
// order.
func (g *BinaryAdjacencyList) OutgoingEdges(v VertexDescriptor) []EdgeDescriptor {
	var out []EdgeDescriptor
	if e, ok := g.LeftEdge(v); ok {
		out = append(out, e)
	}
	if e, ok := g.RightEdge(v); ok {
		out = append(out, e)
	}
	return out
}

// Destination returns e's destination vertex.
func (g *BinaryAdjacencyList) Destination(e EdgeDescriptor) (VertexDescriptor, bool) {
	rec, ok := g.endpoint[e]
	return rec.to, ok
}

// Source returns e's source vertex.
func (g *BinaryAdjacencyList) Source(e EdgeDescriptor) (VertexDescriptor, bool) {
	rec, ok := g.endpoint[e]
	return rec.from, ok
}

// OutDegree returns len(OutgoingEdges(v)), at most 2.
func (g *BinaryAdjacencyList) OutDegree(v VertexDescriptor) int {
	return len(g.OutgoingEdges(v))
}

// RemoveEdge clears whichever slot holds e.
func (g *BinaryAdjacencyList) RemoveEdge(e EdgeDescriptor) {
	rec, ok := g.endpoint[e]
	if !ok {
		return
	}
	if g.left[rec.from] == e {
		delete(g.left, rec.from)
		g.hasLeft[rec.from] = false
	}
	if g.right[rec.from] == e {
		delete(g.right, rec.from)
		g.hasRight[rec.from] = false
	}
	delete(g.endpoint, e)
	g.eprops.Delete(e)
}

// VertexBag returns v's property bag.
func (g *BinaryAdjacencyList) VertexBag(v VertexDescriptor) *prop.Bag { return g.vprops.Bag(v) }

// EdgeBag returns e's property bag.
func (g *BinaryAdjacencyList) EdgeBag(e EdgeDescriptor) *prop.Bag { return g.eprops.Bag(e) }

// Vertices returns all live vertices in insertion order.
func (g *BinaryAdjacencyList) Vertices() []VertexDescriptor { return g.vertices.All() }

// VertexCount returns the number of live vertices.
func (g *BinaryAdjacencyList) VertexCount() int { return g.vertices.Count() }
