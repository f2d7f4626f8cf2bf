package traversal

// Step describes one vertex examined by a Cursor: the vertex itself, its
// depth from the start, and the tree edge that first discovered it (zero
// value and HasEdge=false for the start vertex).
type Step[V comparable, E comparable] struct {
	Vertex  V
	Depth   int
	Edge    E
	HasEdge bool
}

// PriorityFunc computes the traversal priority of reaching `to` from
// `from` via edge e; lower values are examined first. Used only by
// priority-ordered cursors.
type PriorityFunc[V comparable, E comparable] func(from V, e E, to V) float64

// Cursor is the traversal/search framework's exported state machine:
// calling Next repeatedly drains the frontier one vertex at a time,
// firing visitor hooks as it goes, and can be abandoned at any point by
// the caller (cooperative cancellation, no resource leak beyond letting
// the Cursor become garbage).
type Cursor[V comparable, E comparable] struct {
	g          IncidenceGraph[V, E]
	front      frontier[V, E]
	visitor    Visitor[V, E]
	maxDepth   int // 0 = unlimited
	priority   PriorityFunc[V, E]
	visited    map[V]bool
	discovered map[V]bool
	best       map[V]float64
	startFired bool
	done       bool

	// order selects NewDFS's emission timing; zero value is Preorder.
	// Postorder switches Next to nextPostorder, which drives frames
	// instead of front.
	order  Order
	frames []dfsFrame[V, E]

	// inorder-only state, set up by NewInorderDFS.
	inorder  bool
	bg       binaryIncidenceGraph[V, E]
	inFrames []inorderFrame[V, E]
}

// Option configures a Cursor at construction time.
type Option[V comparable, E comparable] func(*Cursor[V, E])

// WithMaxDepth stops exploring past the given depth (0 means unlimited,
// the default).
func WithMaxDepth[V comparable, E comparable](d int) Option[V, E] {
	return func(c *Cursor[V, E]) { c.maxDepth = d }
}

// Order selects when NewDFS emits a vertex's Step relative to its
// children.
type Order int

const (
	// Preorder emits a vertex as soon as it's first visited, before its
	// subtree is explored. NewDFS's default.
	Preorder Order = iota
	// Postorder defers emission until every descendant has finished.
	Postorder
)

// WithOrder selects NewDFS's traversal order; it has no effect on
// NewBFS/NewPriority cursors.
func WithOrder[V comparable, E comparable](o Order) Option[V, E] {
	return func(c *Cursor[V, E]) { c.order = o }
}

func newCursor[V comparable, E comparable](g IncidenceGraph[V, E], start V, front frontier[V, E], visitor Visitor[V, E], opts ...Option[V, E]) *Cursor[V, E] {
	c := &Cursor[V, E]{
		g:          g,
		front:      front,
		visitor:    visitor,
		visited:    make(map[V]bool),
		discovered: make(map[V]bool),
		best:       make(map[V]float64),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.discovered[start] = true
	c.front.push(frontierEntry[V, E]{vertex: start, depth: 0})
	return c
}

// NewBFS returns a Cursor exploring from start in level order (FIFO
// frontier).
func NewBFS[V comparable, E comparable](g IncidenceGraph[V, E], start V, visitor Visitor[V, E], opts ...Option[V, E]) *Cursor[V, E] {
	return newCursor[V, E](g, start, newFIFOFrontier[V, E](), visitor, opts...)
}

// NewDFS returns a Cursor exploring from start depth-first. By default it
// emits each vertex preorder (as soon as it's first visited, via a plain
// LIFO frontier); passing WithOrder(Postorder) switches to an explicit
// frame stack that defers a vertex's Step/FinishVertex until its entire
// subtree has finished, matching the teacher's recursive post-order walk.
func NewDFS[V comparable, E comparable](g IncidenceGraph[V, E], start V, visitor Visitor[V, E], opts ...Option[V, E]) *Cursor[V, E] {
	c := &Cursor[V, E]{
		g:          g,
		visitor:    visitor,
		visited:    make(map[V]bool),
		discovered: make(map[V]bool),
		best:       make(map[V]float64),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.discovered[start] = true
	if c.order == Postorder {
		c.frames = []dfsFrame[V, E]{{vertex: start, depth: 0}}
	} else {
		c.front = newLIFOFrontier[V, E]()
		c.front.push(frontierEntry[V, E]{vertex: start, depth: 0})
	}
	return c
}

// NewInorderDFS returns a Cursor exploring a BinaryIncidenceGraph-shaped
// graph left-subtree, vertex, right-subtree, the one order general DFS
// can't express. Gated on g exposing LeftEdge/RightEdge (lattice's
// BinaryIncidenceGraph capability, checked structurally rather than by
// importing lattice).
func NewInorderDFS[V comparable, E comparable](g binaryIncidenceGraph[V, E], start V, visitor Visitor[V, E], opts ...Option[V, E]) *Cursor[V, E] {
	c := &Cursor[V, E]{
		g:          g,
		bg:         g,
		visitor:    visitor,
		inorder:    true,
		visited:    make(map[V]bool),
		discovered: make(map[V]bool),
		best:       make(map[V]float64),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.discovered[start] = true
	c.inFrames = []inorderFrame[V, E]{{vertex: start, depth: 0, state: stDescendLeft}}
	return c
}

// NewPriority returns a Cursor exploring from start in order of
// ascending priority (best-first), firing EdgeRelaxed/EdgeNotRelaxed as
// it discovers cheaper routes to a not-yet-finalized vertex. Dijkstra and
// A* are priority traversals with a particular PriorityFunc and a
// termination condition layered on top; see the shortestpath package.
func NewPriority[V comparable, E comparable](g IncidenceGraph[V, E], start V, priority PriorityFunc[V, E], visitor Visitor[V, E], opts ...Option[V, E]) *Cursor[V, E] {
	c := &Cursor[V, E]{
		g:          g,
		visitor:    visitor,
		priority:   priority,
		visited:    make(map[V]bool),
		discovered: make(map[V]bool),
		best:       make(map[V]float64),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.front = newPriorityFrontier[V, E](func(e frontierEntry[V, E]) float64 { return c.best[e.vertex] })
	c.discovered[start] = true
	c.best[start] = 0
	c.front.push(frontierEntry[V, E]{vertex: start, depth: 0})
	return c
}

// Next advances the traversal by one vertex, firing visitor hooks for
// every event encountered along the way. ok is false once the frontier
// is exhausted; a non-nil error means a hook aborted the traversal and no
// further call to Next should be made.
func (c *Cursor[V, E]) Next() (Step[V, E], bool, error) {
	if c.done {
		return Step[V, E]{}, false, nil
	}
	if c.inorder {
		return c.nextInorder()
	}
	if c.order == Postorder {
		return c.nextPostorder()
	}
	for c.front.len() > 0 {
		entry, _ := c.front.pop()
		if c.visited[entry.vertex] {
			continue // stale priority-queue duplicate
		}
		c.visited[entry.vertex] = true

		if !c.startFired {
			c.startFired = true
			if err := callV(c.visitor.StartVertex, entry.vertex); err != nil {
				c.done = true
				return Step[V, E]{}, false, err
			}
		}
		if err := callV(c.visitor.ExamineVertex, entry.vertex); err != nil {
			c.done = true
			return Step[V, E]{}, false, err
		}

		step := Step[V, E]{Vertex: entry.vertex, Depth: entry.depth, Edge: entry.edge, HasEdge: entry.hasEdge}

		if c.maxDepth <= 0 || entry.depth < c.maxDepth {
			if err := c.examineOutgoing(entry); err != nil {
				c.done = true
				return Step[V, E]{}, false, err
			}
		}

		if err := callV(c.visitor.FinishVertex, entry.vertex); err != nil {
			c.done = true
			return Step[V, E]{}, false, err
		}
		return step, true, nil
	}
	c.done = true
	return Step[V, E]{}, false, nil
}

func (c *Cursor[V, E]) examineOutgoing(entry frontierEntry[V, E]) error {
	for _, e := range c.g.OutgoingEdges(entry.vertex) {
		if err := callE(c.visitor.ExamineEdge, e); err != nil {
			return err
		}
		to, ok := c.g.Destination(e)
		if !ok {
			continue
		}

		if c.priority != nil {
			if err := c.relax(entry.vertex, e, to); err != nil {
				return err
			}
			continue
		}

		if c.visited[to] {
			if err := callE(c.visitor.NonTreeEdge, e); err != nil {
				return err
			}
			continue
		}
		if !c.discovered[to] {
			c.discovered[to] = true
			if err := callV(c.visitor.DiscoverVertex, to); err != nil {
				return err
			}
			if err := callE(c.visitor.TreeEdge, e); err != nil {
				return err
			}
			c.front.push(frontierEntry[V, E]{vertex: to, depth: entry.depth + 1, edge: e, hasEdge: true})
		} else {
			if err := callE(c.visitor.NonTreeEdge, e); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Cursor[V, E]) relax(from V, e E, to V) error {
	if c.visited[to] {
		return callE(c.visitor.EdgeNotRelaxed, e)
	}
	p := c.priority(from, e, to)
	if !c.discovered[to] || p < c.best[to] {
		if !c.discovered[to] {
			c.discovered[to] = true
			if err := callV(c.visitor.DiscoverVertex, to); err != nil {
				return err
			}
		}
		c.best[to] = p
		c.front.push(frontierEntry[V, E]{vertex: to, depth: 0, edge: e, hasEdge: true})
		return callE(c.visitor.EdgeRelaxed, e)
	}
	return callE(c.visitor.EdgeNotRelaxed, e)
}

// Traverse fully drains a Cursor, visiting every reachable vertex and
// returning the first hook error encountered, if any.
func Traverse[V comparable, E comparable](c *Cursor[V, E]) error {
	for {
		_, ok, err := c.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

// Search drains c until it examines goal or is exhausted. Per spec,
// search is the lazy/interruptible surface: callers wanting to interrupt
// sooner should call c.Next() directly instead of using this helper.
func Search[V comparable, E comparable](c *Cursor[V, E], goal V) (Step[V, E], bool, error) {
	for {
		step, ok, err := c.Next()
		if err != nil || !ok {
			return Step[V, E]{}, false, err
		}
		if step.Vertex == goal {
			return step, true, nil
		}
	}
}
