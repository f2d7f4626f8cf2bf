package traversal

// dfsFrame is one level of NewDFS(WithOrder(Postorder))'s explicit call
// stack: a vertex paused mid-expansion, remembering which of its outgoing
// edges have already been pushed.
type dfsFrame[V comparable, E comparable] struct {
	vertex  V
	depth   int
	edge    E
	hasEdge bool

	entered bool
	edges   []E
	idx     int
}

// nextPostorder drives the frame stack built by NewDFS(WithOrder(Postorder)):
// a vertex is entered (StartVertex/ExamineVertex fire, its edges are
// fetched) the first time its frame reaches the top, but its Step is only
// returned once every edge has been walked and every child frame has
// itself been popped — i.e. after its whole subtree has finished,
// mirroring the teacher's recursive white/gray/black walk one frame pop
// at a time instead of a call stack.
func (c *Cursor[V, E]) nextPostorder() (Step[V, E], bool, error) {
	for len(c.frames) > 0 {
		top := &c.frames[len(c.frames)-1]

		if !top.entered {
			top.entered = true
			c.visited[top.vertex] = true
			if !c.startFired {
				c.startFired = true
				if err := callV(c.visitor.StartVertex, top.vertex); err != nil {
					c.done = true
					return Step[V, E]{}, false, err
				}
			}
			if err := callV(c.visitor.ExamineVertex, top.vertex); err != nil {
				c.done = true
				return Step[V, E]{}, false, err
			}
			if c.maxDepth <= 0 || top.depth < c.maxDepth {
				top.edges = c.g.OutgoingEdges(top.vertex)
			}
		}

		if top.idx < len(top.edges) {
			e := top.edges[top.idx]
			top.idx++
			if err := callE(c.visitor.ExamineEdge, e); err != nil {
				c.done = true
				return Step[V, E]{}, false, err
			}
			to, ok := c.g.Destination(e)
			if !ok {
				continue
			}
			if c.visited[to] || c.discovered[to] {
				if err := callE(c.visitor.NonTreeEdge, e); err != nil {
					c.done = true
					return Step[V, E]{}, false, err
				}
				continue
			}
			c.discovered[to] = true
			if err := callV(c.visitor.DiscoverVertex, to); err != nil {
				c.done = true
				return Step[V, E]{}, false, err
			}
			if err := callE(c.visitor.TreeEdge, e); err != nil {
				c.done = true
				return Step[V, E]{}, false, err
			}
			c.frames = append(c.frames, dfsFrame[V, E]{vertex: to, depth: top.depth + 1, edge: e, hasEdge: true})
			continue
		}

		step := Step[V, E]{Vertex: top.vertex, Depth: top.depth, Edge: top.edge, HasEdge: top.hasEdge}
		c.frames = c.frames[:len(c.frames)-1]
		if err := callV(c.visitor.FinishVertex, top.vertex); err != nil {
			c.done = true
			return Step[V, E]{}, false, err
		}
		return step, true, nil
	}
	c.done = true
	return Step[V, E]{}, false, nil
}

// binaryIncidenceGraph is the local shape NewInorderDFS requires: a graph
// exposing at most a left and a right outgoing edge per vertex, matching
// lattice.BinaryIncidenceGraph without importing lattice (consistent with
// this package's other locally declared capability interfaces).
type binaryIncidenceGraph[V comparable, E comparable] interface {
	IncidenceGraph[V, E]
	LeftEdge(v V) (E, bool)
	RightEdge(v V) (E, bool)
}

type inorderState int

const (
	stDescendLeft inorderState = iota
	stVisit
	stDescendRight
	stDone
)

type inorderFrame[V comparable, E comparable] struct {
	vertex  V
	depth   int
	edge    E
	hasEdge bool
	state   inorderState
}

// nextInorder drives the frame stack built by NewInorderDFS: each frame
// walks its own left child to completion, then visits itself, then walks
// its right child, then finishes — the one ordering that needs the
// left/right distinction BinaryIncidenceGraph provides.
func (c *Cursor[V, E]) nextInorder() (Step[V, E], bool, error) {
	for len(c.inFrames) > 0 {
		top := &c.inFrames[len(c.inFrames)-1]

		switch top.state {
		case stDescendLeft:
			top.state = stVisit
			if c.maxDepth > 0 && top.depth >= c.maxDepth {
				continue
			}
			le, ok := c.bg.LeftEdge(top.vertex)
			if !ok {
				continue
			}
			if err := callE(c.visitor.ExamineEdge, le); err != nil {
				c.done = true
				return Step[V, E]{}, false, err
			}
			to, ok := c.bg.Destination(le)
			if !ok || c.discovered[to] {
				continue
			}
			c.discovered[to] = true
			if err := callV(c.visitor.DiscoverVertex, to); err != nil {
				c.done = true
				return Step[V, E]{}, false, err
			}
			if err := callE(c.visitor.TreeEdge, le); err != nil {
				c.done = true
				return Step[V, E]{}, false, err
			}
			c.inFrames = append(c.inFrames, inorderFrame[V, E]{vertex: to, depth: top.depth + 1, edge: le, hasEdge: true, state: stDescendLeft})

		case stVisit:
			top.state = stDescendRight
			c.visited[top.vertex] = true
			if !c.startFired {
				c.startFired = true
				if err := callV(c.visitor.StartVertex, top.vertex); err != nil {
					c.done = true
					return Step[V, E]{}, false, err
				}
			}
			if err := callV(c.visitor.ExamineVertex, top.vertex); err != nil {
				c.done = true
				return Step[V, E]{}, false, err
			}
			return Step[V, E]{Vertex: top.vertex, Depth: top.depth, Edge: top.edge, HasEdge: top.hasEdge}, true, nil

		case stDescendRight:
			top.state = stDone
			if c.maxDepth > 0 && top.depth >= c.maxDepth {
				continue
			}
			re, ok := c.bg.RightEdge(top.vertex)
			if !ok {
				continue
			}
			if err := callE(c.visitor.ExamineEdge, re); err != nil {
				c.done = true
				return Step[V, E]{}, false, err
			}
			to, ok := c.bg.Destination(re)
			if !ok || c.discovered[to] {
				continue
			}
			c.discovered[to] = true
			if err := callV(c.visitor.DiscoverVertex, to); err != nil {
				c.done = true
				return Step[V, E]{}, false, err
			}
			if err := callE(c.visitor.TreeEdge, re); err != nil {
				c.done = true
				return Step[V, E]{}, false, err
			}
			c.inFrames = append(c.inFrames, inorderFrame[V, E]{vertex: to, depth: top.depth + 1, edge: re, hasEdge: true, state: stDescendLeft})

		case stDone:
			c.inFrames = c.inFrames[:len(c.inFrames)-1]
			if err := callV(c.visitor.FinishVertex, top.vertex); err != nil {
				c.done = true
				return Step[V, E]{}, false, err
			}
		}
	}
	c.done = true
	return Step[V, E]{}, false, nil
}
