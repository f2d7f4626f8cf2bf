// Package adjmatrix implements the adjacency matrix storage engine: the
// dense, fast-lookup engine of spec §4.2. Vertex descriptors are stable
// small integers; adding a vertex grows the backing matrix by one row and
// one column, preserving the descriptor-to-index mapping for all existing
// descriptors, per spec §6.
//
// Adapted from teacher `matrix/impl_dense.go` (flat row-major backing
// store, explicit shape growth) and `matrix/impl_adjacency.go`
// (boolean/weight adjacency semantics), generalized into a mutable
// EdgeLookupGraph + AdjacencyGraph + MutableGraph over the lattice instead
// of the teacher's standalone linear-algebra-flavored Matrix type.
package adjmatrix

import "github.com/nodegraph/nodegraph/prop"

// VertexDescriptor identifies a vertex within one AdjacencyMatrix.
type VertexDescriptor int

// EdgeDescriptor identifies an edge within one AdjacencyMatrix.
type EdgeDescriptor int

type edgeRecord struct {
	from, to VertexDescriptor
}

// AdjacencyMatrix is a square boolean matrix of live edges plus an
// endpoint map and an edge lookup table keyed by the (from, to) pair.
// Parallel edges are not representable: a second AddEdge
// call for an already-true cell returns the existing edge (idempotent),
// per spec.
type AdjacencyMatrix struct {
	n        int  // number of allocated rows/cols == number of ever-added vertices
	cells    []bool
	live     map[VertexDescriptor]bool
	order    []VertexDescriptor // insertion order, index == matrix row/col
	index    map[VertexDescriptor]int
	edgeID   map[edgeRecord]EdgeDescriptor
	byID     map[EdgeDescriptor]edgeRecord
	nextEdge int
	vprops   *prop.Map[VertexDescriptor]
	eprops   *prop.Map[EdgeDescriptor]
}

// New returns an empty AdjacencyMatrix.
func New() *AdjacencyMatrix {
	return &AdjacencyMatrix{
		live:   make(map[VertexDescriptor]bool),
		index:  make(map[VertexDescriptor]int),
		edgeID: make(map[edgeRecord]EdgeDescriptor),
		byID:   make(map[EdgeDescriptor]edgeRecord),
		vprops: prop.NewMap[VertexDescriptor](),
		eprops: prop.NewMap[EdgeDescriptor](),
	}
}

func (g *AdjacencyMatrix) cellAt(i, j int) bool { return g.cells[i*g.n+j] }
func (g *AdjacencyMatrix) setCell(i, j int, v bool) {
	g.cells[i*g.n+j] = v
}

// AddVertex grows the matrix by one row and one column, O(n), and returns
// the new vertex's stable descriptor.
func (g *AdjacencyMatrix) AddVertex() VertexDescriptor {
	v := VertexDescriptor(len(g.order))
	newN := g.n + 1
	newCells := make([]bool, newN*newN)
	for i := 0; i < g.n; i++ {
		copy(newCells[i*newN:i*newN+g.n], g.cells[i*g.n:i*g.n+g.n])
	}
	g.cells = newCells
	g.n = newN
	g.index[v] = len(g.order)
	g.order = append(g.order, v)
	g.live[v] = true
	return v
}

// RemoveVertex removes incident edges then deletes v's row/column. The
// descriptor->index mapping for other live vertices is otherwise stable;
// only v's own slot is marked dead and its cells cleared (compacting the
// physical matrix would renumber surviving descriptors, which the
// stability contract in spec §6 forbids).
func (g *AdjacencyMatrix) RemoveVertex(v VertexDescriptor) {
	if !g.live[v] {
		return
	}
	i, ok := g.index[v]
	if !ok {
		return
	}
	for j := 0; j < g.n; j++ {
		if g.cellAt(i, j) {
			g.removeEdgeAt(v, g.order[j])
		}
		if g.cellAt(j, i) {
			g.removeEdgeAt(g.order[j], v)
		}
	}
	g.live[v] = false
	g.vprops.Delete(v)
}

func (g *AdjacencyMatrix) removeEdgeAt(from, to VertexDescriptor) {
	rec := edgeRecord{from: from, to: to}
	if eid, ok := g.edgeID[rec]; ok {
		delete(g.edgeID, rec)
		delete(g.byID, eid)
		g.eprops.Delete(eid)
	}
	fi, fj := g.index[from], g.index[to]
	g.setCell(fi, fj, false)
}

// AddEdge sets matrix[from][to]=true and allocates a new edge id, or
// returns the existing edge if the cell was already true. ok is false iff
// an endpoint is not live. O(1).
func (g *AdjacencyMatrix) AddEdge(from, to VertexDescriptor) (EdgeDescriptor, bool) {
	if !g.live[from] || !g.live[to] {
		return 0, false
	}
	rec := edgeRecord{from: from, to: to}
	if eid, ok := g.edgeID[rec]; ok {
		return eid, true
	}
	eid := EdgeDescriptor(g.nextEdge)
	g.nextEdge++
	g.edgeID[rec] = eid
	g.byID[eid] = rec
	i, j := g.index[from], g.index[to]
	g.setCell(i, j, true)
	return eid, true
}

// RemoveEdge clears the cell and removes endpoint/lookup entries. O(1).
func (g *AdjacencyMatrix) RemoveEdge(e EdgeDescriptor) {
	rec, ok := g.byID[e]
	if !ok {
		return
	}
	g.removeEdgeAt(rec.from, rec.to)
}

// Edge returns the edge from->to, O(1), or false if the cell is unset or
// either endpoint is dead.
func (g *AdjacencyMatrix) Edge(from, to VertexDescriptor) (EdgeDescriptor, bool) {
	if !g.live[from] || !g.live[to] {
		return 0, false
	}
	eid, ok := g.edgeID[edgeRecord{from: from, to: to}]
	return eid, ok
}

// OutgoingEdges returns from's outgoing edges by scanning its matrix row.
// O(n).
func (g *AdjacencyMatrix) OutgoingEdges(from VertexDescriptor) []EdgeDescriptor {
	if !g.live[from] {
		return nil
	}
	i := g.index[from]
	var out []EdgeDescriptor
	for j := 0; j < g.n; j++ {
		to := g.order[j]
		if !g.live[to] || !g.cellAt(i, j) {
			continue
		}
		out = append(out, g.edgeID[edgeRecord{from: from, to: to}])
	}
	return out
}

// IncomingEdges returns edges targeting v by scanning its matrix column.
// O(n).
func (g *AdjacencyMatrix) IncomingEdges(v VertexDescriptor) []EdgeDescriptor {
	if !g.live[v] {
		return nil
	}
	j := g.index[v]
	var out []EdgeDescriptor
	for i := 0; i < g.n; i++ {
		from := g.order[i]
		if !g.live[from] || !g.cellAt(i, j) {
			continue
		}
		out = append(out, g.edgeID[edgeRecord{from: from, to: v}])
	}
	return out
}

// Destination returns e's destination.
func (g *AdjacencyMatrix) Destination(e EdgeDescriptor) (VertexDescriptor, bool) {
	rec, ok := g.byID[e]
	return rec.to, ok
}

// Source returns e's source.
func (g *AdjacencyMatrix) Source(e EdgeDescriptor) (VertexDescriptor, bool) {
	rec, ok := g.byID[e]
	return rec.from, ok
}

// OutDegree returns len(OutgoingEdges(v)).
func (g *AdjacencyMatrix) OutDegree(v VertexDescriptor) int { return len(g.OutgoingEdges(v)) }

// InDegree returns len(IncomingEdges(v)).
func (g *AdjacencyMatrix) InDegree(v VertexDescriptor) int { return len(g.IncomingEdges(v)) }

// Vertices returns live vertices in insertion order.
func (g *AdjacencyMatrix) Vertices() []VertexDescriptor {
	out := make([]VertexDescriptor, 0, len(g.order))
	for _, v := range g.order {
		if g.live[v] {
			out = append(out, v)
		}
	}
	return out
}

// VertexCount returns the number of live vertices.
func (g *AdjacencyMatrix) VertexCount() int { return len(g.Vertices()) }

// Edges returns all live edges in ascending descriptor order (their
// allocation order).
func (g *AdjacencyMatrix) Edges() []EdgeDescriptor {
	out := make([]EdgeDescriptor, 0, len(g.byID))
	for eid := range g.byID {
		out = append(out, eid)
	}
	// allocation order == ascending id, a stable deterministic order.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// EdgeCount returns the number of live edges.
func (g *AdjacencyMatrix) EdgeCount() int { return len(g.byID) }

// AdjacentVertices returns destinations reachable from v by one edge
// (row scan) union sources reaching v (column scan), matching spec's
// "both directions for matrix" allowance for AdjacencyGraph.
func (g *AdjacencyMatrix) AdjacentVertices(v VertexDescriptor) []VertexDescriptor {
	seen := make(map[VertexDescriptor]bool)
	var out []VertexDescriptor
	for _, e := range g.OutgoingEdges(v) {
		to, _ := g.Destination(e)
		if !seen[to] {
			seen[to] = true
			out = append(out, to)
		}
	}
	for _, e := range g.IncomingEdges(v) {
		from, _ := g.Source(e)
		if !seen[from] {
			seen[from] = true
			out = append(out, from)
		}
	}
	return out
}

// VertexBag returns v's property bag.
func (g *AdjacencyMatrix) VertexBag(v VertexDescriptor) *prop.Bag { return g.vprops.Bag(v) }

// EdgeBag returns e's property bag.
func (g *AdjacencyMatrix) EdgeBag(e EdgeDescriptor) *prop.Bag { return g.eprops.Bag(e) }
