package adjlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjacencyList_AddAndQuery(t *testing.T) {
	g := New()
	a := g.AddVertex()
	b := g.AddVertex()
	c := g.AddVertex()

	eAB, ok := g.AddEdge(a, b)
	require.True(t, ok)
	_, ok = g.AddEdge(b, c)
	require.True(t, ok)

	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []EdgeDescriptor{eAB}, g.OutgoingEdges(a))
	assert.Equal(t, 1, g.OutDegree(a))

	dst, ok := g.Destination(eAB)
	require.True(t, ok)
	assert.Equal(t, b, dst)

	_, ok = g.AddEdge(a, VertexDescriptor(999))
	assert.False(t, ok, "adding an edge to a non-live vertex must fail")
}

func TestAdjacencyList_MultiEdgePolicy(t *testing.T) {
	noMulti := New()
	a, b := noMulti.AddVertex(), noMulti.AddVertex()
	e1, _ := noMulti.AddEdge(a, b)
	e2, _ := noMulti.AddEdge(a, b)
	assert.Equal(t, e1, e2, "without WithMultiEdges, re-adding the same pair returns the existing edge")
	assert.Equal(t, 1, noMulti.EdgeCount())

	multi := New(WithMultiEdges())
	a2, b2 := multi.AddVertex(), multi.AddVertex()
	e3, _ := multi.AddEdge(a2, b2)
	e4, _ := multi.AddEdge(a2, b2)
	assert.NotEqual(t, e3, e4)
	assert.Equal(t, 2, multi.EdgeCount())
}

func TestAdjacencyList_RemoveVertexRemovesIncidentEdges(t *testing.T) {
	g := New()
	a, b, c := g.AddVertex(), g.AddVertex(), g.AddVertex()
	g.AddEdge(a, b)
	g.AddEdge(b, c)
	g.AddEdge(c, a)

	g.RemoveVertex(b)

	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount(), "only c->a should remain")
	for _, e := range g.Edges() {
		from, to, _ := g.edges.Endpoints(e)
		assert.NotEqual(t, b, from)
		assert.NotEqual(t, b, to)
	}
}

func TestAdjacencyList_InEdgeCacheSatisfiesBidirectional(t *testing.T) {
	g := New(WithInEdgeCache())
	a, b := g.AddVertex(), g.AddVertex()
	eAB, _ := g.AddEdge(a, b)

	assert.Equal(t, []EdgeDescriptor{eAB}, g.IncomingEdges(b))
	assert.Equal(t, 1, g.InDegree(b))
	assert.Equal(t, 0, g.InDegree(a))

	g.RemoveVertex(a)
	assert.Empty(t, g.IncomingEdges(b), "removing the source must clear the destination's incoming index too")
}

func TestAdjacencyList_PropertyBagDefaults(t *testing.T) {
	g := New()
	a := g.AddVertex()
	bag := g.VertexBag(a)
	assert.NotNil(t, bag)
}

func TestBinaryAdjacencyList_RightSlotOverwritePolicy(t *testing.T) {
	g := NewBinaryAdjacencyList()
	a := g.AddVertex()
	b := g.AddVertex()
	c := g.AddVertex()
	d := g.AddVertex()

	e1, _ := g.AddEdge(a, b)
	e2, _ := g.AddEdge(a, c)
	e3, _ := g.AddEdge(a, d) // must overwrite right (e2), leaving left (e1) intact

	left, ok := g.LeftEdge(a)
	require.True(t, ok)
	assert.Equal(t, e1, left)

	right, ok := g.RightEdge(a)
	require.True(t, ok)
	assert.Equal(t, e3, right)

	assert.Equal(t, []EdgeDescriptor{e1, e3}, g.OutgoingEdges(a))

	_, stillThere := g.Destination(e2)
	assert.False(t, stillThere, "the overwritten right edge must be gone")
}
