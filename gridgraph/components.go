package gridgraph

// ConnectedComponent returns every vertex reachable from start via
// OutgoingEdges, i.e. start's connected component under this grid's
// direction set. Adapted from the teacher's original ConnectedComponents
// BFS, generalized from grouping by equal cell value to plain grid
// connectivity.
//
// O(W*H*d) time, O(W*H) memory.
func (g *GridGraph) ConnectedComponent(start Vertex) []Vertex {
	if !g.InBounds(start.X, start.Y) {
		return nil
	}
	visited := make(map[Vertex]bool)
	queue := []Vertex{start}
	visited[start] = true
	var comp []Vertex
	for qi := 0; qi < len(queue); qi++ {
		v := queue[qi]
		comp = append(comp, v)
		for _, to := range g.AdjacentVertices(v) {
			if !visited[to] {
				visited[to] = true
				queue = append(queue, to)
			}
		}
	}
	return comp
}
