package gridgraph

// StepCost assigns the cost of moving into a cell: 0 or 1. Weights
// outside {0, 1} are not supported by the 0-1 BFS below.
type StepCost func(v Vertex) int

func (g *GridGraph) index(x, y int) int { return y*g.width + x }

func (g *GridGraph) coordinate(idx int) (x, y int) { return idx % g.width, idx / g.width }

// CheapestPath finds a minimum-cost path from any cell in src to any cell
// in dst using 0-1 BFS, where cost assigns each destination cell a step
// cost of 0 or 1. Returns the cell sequence (including both endpoints)
// and its total cost, or ErrNoPath if dst is unreachable.
//
// O(W*H*d) time, O(W*H) memory; adapted from the teacher's original
// ExpandIsland, generalized from a fixed land/water threshold to an
// arbitrary StepCost closure.
func (g *GridGraph) CheapestPath(src, dst []Vertex, cost StepCost) (path []Vertex, total int, err error) {
	if len(src) == 0 || len(dst) == 0 {
		return nil, 0, ErrNoPath
	}
	n := g.width * g.height
	dstSet := make(map[int]struct{}, len(dst))
	for _, c := range dst {
		dstSet[g.index(c.X, c.Y)] = struct{}{}
	}

	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	capDeque := n + 1
	deque := make([]int, capDeque)
	head, tail := 0, 0

	for _, c := range src {
		i := g.index(c.X, c.Y)
		dist[i] = 0
		head = (head - 1 + capDeque) % capDeque
		deque[head] = i
	}

	target := -1
	for head != tail {
		u := deque[head]
		head = (head + 1) % capDeque
		if _, ok := dstSet[u]; ok {
			target = u
			break
		}
		x0, y0 := g.coordinate(u)
		for _, d := range g.directions {
			nx, ny := x0+d.DX, y0+d.DY
			if !g.InBounds(nx, ny) {
				continue
			}
			v := g.index(nx, ny)
			step := cost(Vertex{X: nx, Y: ny})
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					head = (head - 1 + capDeque) % capDeque
					deque[head] = v
				} else {
					deque[tail] = v
					tail = (tail + 1) % capDeque
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}

	var idxPath []int
	for at := target; at >= 0; at = prev[at] {
		idxPath = append([]int{at}, idxPath...)
	}
	path = make([]Vertex, len(idxPath))
	for i, idx := range idxPath {
		x, y := g.coordinate(idx)
		path[i] = Vertex{X: x, Y: y}
	}
	return path, dist[target], nil
}
