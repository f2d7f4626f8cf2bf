// Package gridgraph implements the implicit grid engine: vertices are
// (x, y) coordinate pairs with no storage beyond the grid's dimensions
// and its allowed direction set. Edges are synthesized on demand by
// applying each allowed direction's delta and bounds-checking the
// result.
//
// Adapted from the teacher's original gridgraph.go, types.go, and
// expand.go (precomputed neighbor-offset slices, InBounds, row-major
// index/coordinate conversion), stripped of the land/water cell-value
// domain and generalized into a bare IncidenceGraph + AdjacencyGraph +
// EdgeLookupGraph over coordinates instead of a conversion target for
// *core.Graph.
package gridgraph

// Vertex is a grid coordinate. It doubles as the VertexDescriptor for this
// engine.
type Vertex struct {
	X, Y int
}

// Edge is a grid coordinate pair; it doubles as the EdgeDescriptor. There
// is one synthesized edge per (source, direction) combination that stays
// in bounds.
type Edge struct {
	From, To Vertex
}

// Direction is a named (Δx, Δy) offset.
type Direction struct {
	Name   string
	DX, DY int
}

var (
	up        = Direction{"up", 0, -1}
	down      = Direction{"down", 0, 1}
	left      = Direction{"left", -1, 0}
	right     = Direction{"right", 1, 0}
	upRight   = Direction{"upRight", 1, -1}
	downRight = Direction{"downRight", 1, 1}
	downLeft  = Direction{"downLeft", -1, 1}
	upLeft    = Direction{"upLeft", -1, -1}
)

// Orthogonal returns the four axis-aligned directions: up, right, down, left.
func Orthogonal() []Direction { return []Direction{up, right, down, left} }

// Diagonal returns the four diagonal directions.
func Diagonal() []Direction { return []Direction{upRight, downRight, downLeft, upLeft} }

// All returns all eight directions, orthogonal then diagonal.
func All() []Direction { return append(Orthogonal(), Diagonal()...) }

// GridGraph is the implicit width x height grid engine. It holds no
// per-vertex or per-edge state beyond its dimensions and direction set;
// every query is computed in place.
type GridGraph struct {
	width, height int
	directions    []Direction
}

// New returns a GridGraph of the given dimensions using directions (use
// Orthogonal, Diagonal, or All, or a custom subset).
func New(width, height int, directions []Direction) *GridGraph {
	return &GridGraph{width: width, height: height, directions: directions}
}

// Width returns the grid's width.
func (g *GridGraph) Width() int { return g.width }

// Height returns the grid's height.
func (g *GridGraph) Height() int { return g.height }

// InBounds reports whether (x, y) lies within the grid.
func (g *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// OutgoingEdges yields, for each allowed direction, the edge to the
// neighbor obtained by applying that direction's delta, when in bounds.
func (g *GridGraph) OutgoingEdges(v Vertex) []Edge {
	var out []Edge
	for _, d := range g.directions {
		nx, ny := v.X+d.DX, v.Y+d.DY
		if !g.InBounds(nx, ny) {
			continue
		}
		out = append(out, Edge{From: v, To: Vertex{X: nx, Y: ny}})
	}
	return out
}

// IncomingEdges exploits the grid's symmetry of deltas: every direction
// set produced by Orthogonal, Diagonal, and All is closed under negation,
// so u reaches v by direction d iff v reaches u by -d, and scanning from
// the other side with the same set yields the incoming edges.
func (g *GridGraph) IncomingEdges(v Vertex) []Edge {
	var out []Edge
	for _, d := range g.directions {
		px, py := v.X-d.DX, v.Y-d.DY
		if !g.InBounds(px, py) {
			continue
		}
		out = append(out, Edge{From: Vertex{X: px, Y: py}, To: v})
	}
	return out
}

// Destination returns e.To.
func (g *GridGraph) Destination(e Edge) (Vertex, bool) { return e.To, true }

// Source returns e.From.
func (g *GridGraph) Source(e Edge) (Vertex, bool) { return e.From, true }

// OutDegree returns len(OutgoingEdges(v)).
func (g *GridGraph) OutDegree(v Vertex) int { return len(g.OutgoingEdges(v)) }

// InDegree returns len(IncomingEdges(v)).
func (g *GridGraph) InDegree(v Vertex) int { return len(g.IncomingEdges(v)) }

// AdjacentVertices returns the destinations of OutgoingEdges(v).
func (g *GridGraph) AdjacentVertices(v Vertex) []Vertex {
	edges := g.OutgoingEdges(v)
	out := make([]Vertex, len(edges))
	for i, e := range edges {
		out[i] = e.To
	}
	return out
}

// Edge returns the edge u->v iff v-u matches an allowed delta and v is in
// bounds.
func (g *GridGraph) Edge(u, v Vertex) (Edge, bool) {
	if !g.InBounds(v.X, v.Y) {
		return Edge{}, false
	}
	dx, dy := v.X-u.X, v.Y-u.Y
	for _, d := range g.directions {
		if d.DX == dx && d.DY == dy {
			return Edge{From: u, To: v}, true
		}
	}
	return Edge{}, false
}

// Vertices returns every (x, y) pair in the grid in row-major order.
func (g *GridGraph) Vertices() []Vertex {
	out := make([]Vertex, 0, g.width*g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			out = append(out, Vertex{X: x, Y: y})
		}
	}
	return out
}

// VertexCount returns width * height.
func (g *GridGraph) VertexCount() int { return g.width * g.height }
