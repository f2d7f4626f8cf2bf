package inlinegraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cityEdge struct {
	from, to string
}

func (e cityEdge) Source() string      { return e.from }
func (e cityEdge) Destination() string { return e.to }

func TestInlineGraph_AddEdgeRegistersBothEndpoints(t *testing.T) {
	g := New[string, cityEdge]()
	_, ok := g.AddEdge(cityEdge{from: "SF", to: "LA"})
	require.True(t, ok)

	assert.ElementsMatch(t, []string{"SF", "LA"}, g.Vertices())
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, []string{"LA"}, g.AdjacentVertices("SF"))
}

func TestInlineGraph_SupportsMultiEdges(t *testing.T) {
	g := New[string, cityEdge]()
	g.AddEdge(cityEdge{from: "A", to: "B"})
	g.AddEdge(cityEdge{from: "A", to: "B"})
	assert.Equal(t, 2, g.OutDegree("A"))
}

func TestInlineGraph_RemoveVertexRemovesIncidentEdges(t *testing.T) {
	g := New[string, cityEdge]()
	g.AddEdge(cityEdge{from: "A", to: "B"})
	g.AddEdge(cityEdge{from: "B", to: "C"})
	g.AddEdge(cityEdge{from: "C", to: "A"})

	g.RemoveVertex("B")

	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
	for _, e := range g.Edges() {
		assert.NotEqual(t, "B", e.Source())
		assert.NotEqual(t, "B", e.Destination())
	}
}

func TestInlineGraph_RemoveEdge(t *testing.T) {
	g := New[string, cityEdge]()
	e, _ := g.AddEdge(cityEdge{from: "A", to: "B"})
	g.RemoveEdge(e)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestInlineGraph_PropertyBagDefaults(t *testing.T) {
	g := New[string, cityEdge]()
	g.AddVertex("A")
	assert.NotNil(t, g.VertexBag("A"))
}

func TestNewEdgeID_IsUnique(t *testing.T) {
	assert.NotEqual(t, NewEdgeID(), NewEdgeID())
}
