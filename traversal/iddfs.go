package traversal

// IDDFS repeatedly runs a depth-limited DFS from start, with an
// increasing depth bound, until goal is examined or bound exceeds
// maxDepth. Returns the step at which goal was found and true, or
// ok=false if goal was never reached within maxDepth.
func IDDFS[V comparable, E comparable](g IncidenceGraph[V, E], start, goal V, maxDepth int, visitor Visitor[V, E]) (Step[V, E], bool, error) {
	for limit := 0; limit <= maxDepth; limit++ {
		c := NewDFS[V, E](g, start, visitor, WithMaxDepth[V, E](limit))
		step, found, err := Search[V, E](c, goal)
		if err != nil {
			return Step[V, E]{}, false, err
		}
		if found {
			return step, true, nil
		}
	}
	return Step[V, E]{}, false, nil
}
