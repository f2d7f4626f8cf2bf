package traversal

import "github.com/nodegraph/nodegraph/container"

type frontierEntry[V comparable, E comparable] struct {
	vertex  V
	depth   int
	edge    E
	hasEdge bool
}

type frontier[V comparable, E comparable] interface {
	push(e frontierEntry[V, E])
	pop() (frontierEntry[V, E], bool)
	len() int
}

// fifoFrontier is a plain queue, giving BFS's level-order guarantee.
type fifoFrontier[V comparable, E comparable] struct {
	items []frontierEntry[V, E]
}

func newFIFOFrontier[V comparable, E comparable]() *fifoFrontier[V, E] {
	return &fifoFrontier[V, E]{}
}

func (f *fifoFrontier[V, E]) push(e frontierEntry[V, E]) { f.items = append(f.items, e) }

func (f *fifoFrontier[V, E]) pop() (frontierEntry[V, E], bool) {
	if len(f.items) == 0 {
		var zero frontierEntry[V, E]
		return zero, false
	}
	e := f.items[0]
	f.items = f.items[1:]
	return e, true
}

func (f *fifoFrontier[V, E]) len() int { return len(f.items) }

// lifoFrontier is a plain stack, giving DFS's depth-first order via an
// explicit frontier instead of recursion (so a Cursor can suspend between
// steps).
type lifoFrontier[V comparable, E comparable] struct {
	items []frontierEntry[V, E]
}

func newLIFOFrontier[V comparable, E comparable]() *lifoFrontier[V, E] {
	return &lifoFrontier[V, E]{}
}

func (f *lifoFrontier[V, E]) push(e frontierEntry[V, E]) { f.items = append(f.items, e) }

func (f *lifoFrontier[V, E]) pop() (frontierEntry[V, E], bool) {
	n := len(f.items)
	if n == 0 {
		var zero frontierEntry[V, E]
		return zero, false
	}
	e := f.items[n-1]
	f.items = f.items[:n-1]
	return e, true
}

func (f *lifoFrontier[V, E]) len() int { return len(f.items) }

// priorityFrontier orders entries by an externally supplied priority,
// lowest first, reusing container.PriorityQueue's lazy decrease-key
// pattern: pushing a cheaper duplicate for a vertex already queued is
// normal, and Cursor skips stale pops via its visited set.
type priorityFrontier[V comparable, E comparable] struct {
	pq       *container.PriorityQueue[frontierEntry[V, E]]
	priority func(frontierEntry[V, E]) float64
}

func newPriorityFrontier[V comparable, E comparable](priority func(frontierEntry[V, E]) float64) *priorityFrontier[V, E] {
	return &priorityFrontier[V, E]{pq: container.NewPriorityQueue[frontierEntry[V, E]](), priority: priority}
}

func (f *priorityFrontier[V, E]) push(e frontierEntry[V, E]) { f.pq.Push(e, f.priority(e)) }

func (f *priorityFrontier[V, E]) pop() (frontierEntry[V, E], bool) {
	e, _, ok := f.pq.Pop()
	return e, ok
}

func (f *priorityFrontier[V, E]) len() int { return f.pq.Len() }
