// Package traversal implements the traversal/search framework of spec
// §4.5: a strategy (BFS, DFS, priority/best-first, or iteratively
// deepening DFS) encapsulates a frontier, a visited set, and a stepping
// function; the framework exposes both an eager Traverse entry point and
// a lazy, externally-interruptible Search cursor, and both accept an
// optional Visitor of named hook callbacks that compose.
//
// Adapted from the teacher's bfs/dfs walker pattern (bfs/bfs.go,
// dfs/dfs.go: a small walker struct driving a queue/stack with
// functional-option hooks and cooperative context cancellation),
// generalized from *core.Graph/string IDs to any IncidenceGraph over
// comparable descriptor types, and reshaped so the walker is an exported
// state machine (Cursor) instead of a function-local loop, per spec's
// "keep the state-machine form exported for portability" guidance.
package traversal

// IncidenceGraph is the minimal capability the traversal framework
// needs: the subset of lattice.IncidenceGraph relevant to stepping a
// frontier. Declared locally (rather than imported from lattice) so this
// package stays usable with priority functions that need more than plain
// incidence, without widening its import surface.
type IncidenceGraph[V comparable, E comparable] interface {
	OutgoingEdges(v V) []E
	Destination(e E) (V, bool)
	Source(e E) (V, bool)
}

// Visitor is a record of optional callbacks fired at named traversal
// events, per spec §4.5. Any nil field is treated as a no-op. A non-nil
// error returned from a hook aborts the traversal; Cursor.Next and
// Traverse propagate it to the caller.
type Visitor[V comparable, E comparable] struct {
	// StartVertex fires once, for the traversal's initial vertex, before
	// anything else.
	StartVertex func(v V) error

	// DiscoverVertex fires the first time a vertex is seen (pushed onto
	// the frontier), before it is examined.
	DiscoverVertex func(v V) error

	// ExamineVertex fires when a vertex is popped off the frontier for
	// processing.
	ExamineVertex func(v V) error

	// ExamineEdge fires for every outgoing edge of a vertex being
	// examined, before classifying it as tree or non-tree.
	ExamineEdge func(e E) error

	// TreeEdge fires for an edge that leads to a vertex's first
	// discovery. Priority-ordered traversals do not fire it; they report
	// EdgeRelaxed/EdgeNotRelaxed instead.
	TreeEdge func(e E) error

	// NonTreeEdge fires for an edge to an already-discovered vertex
	// (back, forward, or cross edge; the framework does not distinguish
	// which). Priority-ordered traversals do not fire it either.
	NonTreeEdge func(e E) error

	// FinishVertex fires after a vertex and all its outgoing edges have
	// been examined.
	FinishVertex func(v V) error

	// EdgeRelaxed fires, for priority-ordered traversals only, when an
	// edge improves the best known priority for its destination.
	EdgeRelaxed func(e E) error

	// EdgeNotRelaxed fires, for priority-ordered traversals only, when an
	// edge does not improve the best known priority for its destination.
	EdgeNotRelaxed func(e E) error
}

// Logger is the minimal structured-logging capability a host application
// can plug into a traversal via NewLoggingVisitor, satisfied directly by
// *zap.SugaredLogger and, via the diagnostics subpackage, by a plain
// *zap.Logger.
type Logger interface {
	Debugf(format string, args ...any)
}

// NewLoggingVisitor returns a Visitor that logs DiscoverVertex,
// ExamineVertex, TreeEdge, and FinishVertex events at debug level. Compose
// it with another Visitor via Compose to observe a traversal without
// displacing the caller's own hooks.
func NewLoggingVisitor[V comparable, E comparable](log Logger) Visitor[V, E] {
	return Visitor[V, E]{
		DiscoverVertex: func(v V) error {
			log.Debugf("traversal: discover vertex %v", v)
			return nil
		},
		ExamineVertex: func(v V) error {
			log.Debugf("traversal: examine vertex %v", v)
			return nil
		},
		TreeEdge: func(e E) error {
			log.Debugf("traversal: tree edge %v", e)
			return nil
		},
		FinishVertex: func(v V) error {
			log.Debugf("traversal: finish vertex %v", v)
			return nil
		},
	}
}

func callV[V comparable](fn func(V) error, v V) error {
	if fn == nil {
		return nil
	}
	return fn(v)
}

func callE[E comparable](fn func(E) error, e E) error {
	if fn == nil {
		return nil
	}
	return fn(e)
}

// Compose returns a Visitor whose hooks invoke both a's and b's hooks, in
// that order, for every event either defines. Per spec: "applying a
// visitor to a strategy that already has one produces a strategy whose
// hooks invoke both, in declaration order."
func Compose[V comparable, E comparable](a, b Visitor[V, E]) Visitor[V, E] {
	return Visitor[V, E]{
		StartVertex:    composeV(a.StartVertex, b.StartVertex),
		DiscoverVertex: composeV(a.DiscoverVertex, b.DiscoverVertex),
		ExamineVertex:  composeV(a.ExamineVertex, b.ExamineVertex),
		ExamineEdge:    composeE(a.ExamineEdge, b.ExamineEdge),
		TreeEdge:       composeE(a.TreeEdge, b.TreeEdge),
		NonTreeEdge:    composeE(a.NonTreeEdge, b.NonTreeEdge),
		FinishVertex:   composeV(a.FinishVertex, b.FinishVertex),
		EdgeRelaxed:    composeE(a.EdgeRelaxed, b.EdgeRelaxed),
		EdgeNotRelaxed: composeE(a.EdgeNotRelaxed, b.EdgeNotRelaxed),
	}
}

func composeV[V comparable](a, b func(V) error) func(V) error {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(v V) error {
		if err := a(v); err != nil {
			return err
		}
		return b(v)
	}
}

func composeE[E comparable](a, b func(E) error) func(E) error {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(e E) error {
		if err := a(e); err != nil {
			return err
		}
		return b(e)
	}
}
