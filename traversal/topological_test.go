package traversal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dagGraph is a plain directed graph keyed by vertex name, with each edge
// represented directly as its destination (like costGraph/chainGraph in
// traversal_test.go).
type dagGraph struct {
	vertices []string
	out      map[string][]string
}

func newDAGGraph() *dagGraph { return &dagGraph{out: map[string][]string{}} }

func (g *dagGraph) addVertex(v string)      { g.vertices = append(g.vertices, v) }
func (g *dagGraph) addEdge(from, to string) { g.out[from] = append(g.out[from], to) }

func (g *dagGraph) Vertices() []string                  { return g.vertices }
func (g *dagGraph) OutgoingEdges(v string) []string      { return g.out[v] }
func (g *dagGraph) Destination(e string) (string, bool) { return e, true }
func (g *dagGraph) Source(string) (string, bool)        { return "", true }

// buildDiamondDAG wires A->C, B->C, B->D, C->E, D->E: two independent
// roots feeding a shared sink through two parallel paths.
func buildDiamondDAG() *dagGraph {
	g := newDAGGraph()
	for _, v := range []string{"A", "B", "C", "D", "E"} {
		g.addVertex(v)
	}
	g.addEdge("A", "C")
	g.addEdge("B", "C")
	g.addEdge("B", "D")
	g.addEdge("C", "E")
	g.addEdge("D", "E")
	return g
}

func TestTopologicalSort_OrdersDAG(t *testing.T) {
	g := buildDiamondDAG()
	order, err := TopologicalSort[string, string](g)
	require.NoError(t, err)
	require.Len(t, order, 5)

	pos := make(map[string]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	assert.Less(t, pos["A"], pos["C"])
	assert.Less(t, pos["B"], pos["C"])
	assert.Less(t, pos["B"], pos["D"])
	assert.Less(t, pos["C"], pos["E"])
	assert.Less(t, pos["D"], pos["E"])
}

func TestTopologicalSort_CycleReturnsError(t *testing.T) {
	g := newDAGGraph()
	g.addVertex("A")
	g.addVertex("B")
	g.addEdge("A", "B")
	g.addEdge("B", "A")

	order, err := TopologicalSort[string, string](g)
	assert.ErrorIs(t, err, ErrCycleDetected)
	assert.Nil(t, order)
}
