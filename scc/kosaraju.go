package scc

import "github.com/nodegraph/nodegraph/views"

// BidirectionalGraph is the capability Kosaraju needs to build a
// transpose view without copying the graph.
type BidirectionalGraph[V comparable, E comparable] interface {
	VertexListGraph[V, E]
	IncomingEdges(v V) []E
	OutDegree(v V) int
	InDegree(v V) int
	Source(e E) (V, bool)
}

// Kosaraju computes strongly connected components with two DFS passes:
// one over g recording a finish order, one over views.Reversed(g) in
// reverse finish order, each tree of the second pass being one SCC.
func Kosaraju[V comparable, E comparable](g BidirectionalGraph[V, E]) Components[V] {
	vertices := g.Vertices()
	visited := map[V]bool{}
	var finishOrder []V

	for _, start := range vertices {
		if visited[start] {
			continue
		}
		type frame struct {
			vertex    V
			edgeIndex int
		}
		var stack []frame
		visited[start] = true
		stack = append(stack, frame{vertex: start})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			edges := g.OutgoingEdges(top.vertex)
			advanced := false
			for top.edgeIndex < len(edges) {
				e := edges[top.edgeIndex]
				top.edgeIndex++
				v, ok := g.Destination(e)
				if !ok {
					continue
				}
				if !visited[v] {
					visited[v] = true
					stack = append(stack, frame{vertex: v})
					advanced = true
					break
				}
			}
			if advanced {
				continue
			}
			finishOrder = append(finishOrder, top.vertex)
			stack = stack[:len(stack)-1]
		}
	}

	reversed := views.NewReversed[V, E](g)
	visited2 := map[V]bool{}
	componentOf := map[V]int{}
	var members [][]V

	for i := len(finishOrder) - 1; i >= 0; i-- {
		start := finishOrder[i]
		if visited2[start] {
			continue
		}
		var component []V
		var stack []V
		visited2[start] = true
		stack = append(stack, start)
		for len(stack) > 0 {
			n := len(stack) - 1
			u := stack[n]
			stack = stack[:n]
			component = append(component, u)
			componentOf[u] = len(members)
			for _, e := range reversed.OutgoingEdges(u) {
				v, ok := reversed.Destination(e)
				if !ok || visited2[v] {
					continue
				}
				visited2[v] = true
				stack = append(stack, v)
			}
		}
		members = append(members, component)
	}

	return Components[V]{ComponentOf: componentOf, Members: members}
}
