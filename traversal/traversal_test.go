package traversal

import (
	"errors"
	"testing"

	"github.com/nodegraph/nodegraph/adjlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chainGraph is a simple line graph 0->1->2->3->4 plus a shortcut 0->2,
// enough to exercise tree vs non-tree edge classification.
type chainGraph struct {
	out map[int][]int
}

func newChainGraph() *chainGraph {
	g := &chainGraph{out: map[int][]int{}}
	g.add(0, 1)
	g.add(1, 2)
	g.add(2, 3)
	g.add(3, 4)
	g.add(0, 2)
	return g
}

func (g *chainGraph) add(u, v int) { g.out[u] = append(g.out[u], v) }

func (g *chainGraph) OutgoingEdges(v int) []int    { return g.out[v] }
func (g *chainGraph) Destination(e int) (int, bool) { return e, true }
func (g *chainGraph) Source(e int) (int, bool)      { return 0, true }

func TestBFS_VisitsInLevelOrder(t *testing.T) {
	g := newChainGraph()
	var order []int
	v := Visitor[int, int]{ExamineVertex: func(n int) error { order = append(order, n); return nil }}
	c := NewBFS[int, int](g, 0, v)
	require.NoError(t, Traverse(c))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestDFS_VisitsDepthFirst(t *testing.T) {
	g := newChainGraph()
	var order []int
	v := Visitor[int, int]{ExamineVertex: func(n int) error { order = append(order, n); return nil }}
	c := NewDFS[int, int](g, 0, v)
	require.NoError(t, Traverse(c))
	assert.Equal(t, []int{0, 2, 3, 4, 1}, order, "DFS explores 0's last-pushed neighbor first")
}

func TestTraverse_ClassifiesTreeAndNonTreeEdges(t *testing.T) {
	g := newChainGraph()
	var tree, nonTree int
	v := Visitor[int, int]{
		TreeEdge:    func(int) error { tree++; return nil },
		NonTreeEdge: func(int) error { nonTree++; return nil },
	}
	c := NewBFS[int, int](g, 0, v)
	require.NoError(t, Traverse(c))
	assert.Equal(t, 4, tree, "4 vertices reached besides the start => 4 tree edges")
	assert.Equal(t, 1, nonTree, "1->2 is the one redundant edge: BFS already reached 2 via 0->2")
}

func TestCursor_MaxDepthStopsExpansion(t *testing.T) {
	g := newChainGraph()
	var seen []int
	v := Visitor[int, int]{ExamineVertex: func(n int) error { seen = append(seen, n); return nil }}
	c := NewBFS[int, int](g, 0, v, WithMaxDepth[int, int](1))
	require.NoError(t, Traverse(c))
	assert.ElementsMatch(t, []int{0, 1, 2}, seen)
}

func TestCursor_HookErrorAbortsTraversal(t *testing.T) {
	g := newChainGraph()
	boom := errors.New("boom")
	v := Visitor[int, int]{ExamineVertex: func(n int) error {
		if n == 2 {
			return boom
		}
		return nil
	}}
	c := NewBFS[int, int](g, 0, v)
	err := Traverse(c)
	assert.ErrorIs(t, err, boom)
}

func TestSearch_StopsAtGoal(t *testing.T) {
	g := newChainGraph()
	var examined []int
	v := Visitor[int, int]{ExamineVertex: func(n int) error { examined = append(examined, n); return nil }}
	c := NewBFS[int, int](g, 0, v)
	step, found, err := Search[int, int](c, 2)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, step.Vertex)
	assert.NotContains(t, examined, 4, "Search must stop examining once the goal is found")
}

func TestPriority_ExploresCheapestFirst(t *testing.T) {
	// graph: 0 -> 1 (cost 5), 0 -> 2 (cost 1), 2 -> 1 (cost 1, cheaper
	// than the direct 0->1 edge).
	weight := map[[2]int]float64{
		{0, 1}: 5,
		{0, 2}: 1,
		{2, 1}: 1,
	}
	out := map[int][]int{0: {1, 2}, 2: {1}}
	g := &costGraph{out: out}

	priority := func(from, e, to int) float64 { return weight[[2]int{from, to}] }

	var order []int
	var relaxed int
	v := Visitor[int, int]{
		ExamineVertex: func(n int) error { order = append(order, n); return nil },
		EdgeRelaxed:   func(e int) error { relaxed++; return nil },
	}
	c := NewPriority[int, int](g, 0, priority, v)
	require.NoError(t, Traverse(c))
	assert.Equal(t, []int{0, 2, 1}, order, "priority traversal examines 2 (cost 1) before the direct cost-5 edge to 1")
	assert.GreaterOrEqual(t, relaxed, 2)
}

type costGraph struct {
	out map[int][]int
}

func (g *costGraph) OutgoingEdges(v int) []int      { return g.out[v] }
func (g *costGraph) Destination(e int) (int, bool) { return e, true }
func (g *costGraph) Source(e int) (int, bool)      { return 0, true }

func TestIDDFS_FindsGoalWithinBound(t *testing.T) {
	g := newChainGraph()
	step, found, err := IDDFS[int, int](g, 0, 4, 10, Visitor[int, int]{})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 4, step.Vertex)

	_, found, err = IDDFS[int, int](g, 0, 4, 1, Visitor[int, int]{})
	require.NoError(t, err)
	assert.False(t, found, "depth bound 1 cannot reach vertex 4")
}

// buildSmallTree is 1 with children 2,3 and 2 with child 4 — small enough
// that preorder and postorder finish-order visibly disagree.
func buildSmallTree() *dagGraph {
	g := newDAGGraph()
	for _, v := range []string{"1", "2", "3", "4"} {
		g.addVertex(v)
	}
	g.addEdge("1", "2")
	g.addEdge("1", "3")
	g.addEdge("2", "4")
	return g
}

func TestDFS_PreorderFinishesAVertexBeforeItsChildrenReturn(t *testing.T) {
	g := buildSmallTree()
	var finished []string
	v := Visitor[string, string]{FinishVertex: func(n string) error { finished = append(finished, n); return nil }}
	c := NewDFS[string, string](g, "1", v)
	require.NoError(t, Traverse(c))
	assert.Equal(t, []string{"1", "3", "2", "4"}, finished, "preorder finishes 1 right after examining its own edges, before 2's subtree runs")
}

func TestDFS_PostorderFinishesAVertexAfterItsSubtree(t *testing.T) {
	g := buildSmallTree()
	var finished []string
	v := Visitor[string, string]{FinishVertex: func(n string) error { finished = append(finished, n); return nil }}
	c := NewDFS[string, string](g, "1", v, WithOrder[string, string](Postorder))
	require.NoError(t, Traverse(c))
	assert.Equal(t, []string{"4", "2", "3", "1"}, finished, "postorder finishes 4 and 2 before 1, unlike preorder")
}

func TestInorderDFS_VisitsLeftRootRight(t *testing.T) {
	g := adjlist.NewBinaryAdjacencyList()
	root := g.AddVertex()
	left := g.AddVertex()
	right := g.AddVertex()
	leftLeft := g.AddVertex()
	leftRight := g.AddVertex()
	rightLeft := g.AddVertex()
	rightRight := g.AddVertex()
	g.AddEdge(root, left)
	g.AddEdge(root, right)
	g.AddEdge(left, leftLeft)
	g.AddEdge(left, leftRight)
	g.AddEdge(right, rightLeft)
	g.AddEdge(right, rightRight)

	var order []adjlist.VertexDescriptor
	v := Visitor[adjlist.VertexDescriptor, adjlist.EdgeDescriptor]{
		ExamineVertex: func(n adjlist.VertexDescriptor) error { order = append(order, n); return nil },
	}
	c := NewInorderDFS[adjlist.VertexDescriptor, adjlist.EdgeDescriptor](g, root, v)
	require.NoError(t, Traverse(c))
	assert.Equal(t, []adjlist.VertexDescriptor{leftLeft, left, leftRight, root, rightLeft, right, rightRight}, order)
}

func TestCompose_InvokesBothInOrder(t *testing.T) {
	var calls []string
	a := Visitor[int, int]{StartVertex: func(int) error { calls = append(calls, "a"); return nil }}
	b := Visitor[int, int]{StartVertex: func(int) error { calls = append(calls, "b"); return nil }}
	combined := Compose(a, b)
	require.NoError(t, combined.StartVertex(0))
	assert.Equal(t, []string{"a", "b"}, calls)
}
