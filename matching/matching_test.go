package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// bipartiteEdge connects a left vertex to a right vertex, both named with
// an L/R prefix to keep them distinct in a single string vertex space.
type bipartiteEdge struct {
	from, to string
}

type graph struct {
	left, right []string
	out         map[string][]bipartiteEdge
}

func newGraph() *graph {
	return &graph{out: map[string][]bipartiteEdge{}}
}

func (g *graph) addLeft(v string)  { g.left = append(g.left, v) }
func (g *graph) addRight(v string) { g.right = append(g.right, v) }

func (g *graph) addEdge(from, to string) {
	g.out[from] = append(g.out[from], bipartiteEdge{from, to})
}

func (g *graph) OutgoingEdges(v string) []bipartiteEdge     { return g.out[v] }
func (g *graph) Destination(e bipartiteEdge) (string, bool) { return e.to, true }
func (g *graph) LeftPartitionVertices() []string             { return g.left }
func (g *graph) RightPartitionVertices() []string            { return g.right }

// buildJobAssignment builds a classic 3-worker/3-job example where a
// perfect matching exists: W1-{J1,J2}, W2-{J1}, W3-{J2,J3}.
func buildJobAssignment() *graph {
	g := newGraph()
	g.addLeft("W1")
	g.addLeft("W2")
	g.addLeft("W3")
	g.addRight("J1")
	g.addRight("J2")
	g.addRight("J3")
	g.addEdge("W1", "J1")
	g.addEdge("W1", "J2")
	g.addEdge("W2", "J1")
	g.addEdge("W3", "J2")
	g.addEdge("W3", "J3")
	return g
}

func TestHopcroftKarp_FindsPerfectMatching(t *testing.T) {
	g := buildJobAssignment()
	m := HopcroftKarp[string, bipartiteEdge](g)
	assert.Equal(t, 3, m.Size())

	seen := map[string]bool{}
	for _, v := range m.PairOf {
		assert.False(t, seen[v], "each job must be assigned to at most one worker")
		seen[v] = true
	}
}

func TestHopcroftKarp_ReportsMaximumWhenNoPerfectMatchingExists(t *testing.T) {
	g := newGraph()
	g.addLeft("W1")
	g.addLeft("W2")
	g.addRight("J1")
	g.addEdge("W1", "J1")
	g.addEdge("W2", "J1")

	m := HopcroftKarp[string, bipartiteEdge](g)
	assert.Equal(t, 1, m.Size(), "only one worker can take the single shared job")
}

func TestHopcroftKarp_EmptyGraphHasEmptyMatching(t *testing.T) {
	g := newGraph()
	m := HopcroftKarp[string, bipartiteEdge](g)
	assert.Equal(t, 0, m.Size())
}
