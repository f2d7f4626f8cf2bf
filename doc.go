// Package nodegraph is a generic graph library: a small set of storage
// engines (adjacency list, adjacency matrix, bipartite, grid, inline,
// lazy) implementing a shared capability lattice of interfaces, plus
// read-only views, a typed property system, a traversal/search framework,
// and a library of classic graph algorithms built as free functions over
// those capabilities rather than methods on any one engine.
//
// Organized as:
//
//	lattice/       — the capability interfaces every storage engine and
//	                 algorithm is written against (IncidenceGraph,
//	                 BidirectionalGraph, MutableGraph, ...)
//	adjlist/       — sparse adjacency-list storage (the default engine)
//	adjmatrix/     — dense adjacency-matrix storage
//	bipartite/     — adjacency-list storage with tracked left/right parts
//	gridgraph/     — implicit grid storage; edges synthesized on demand
//	inlinegraph/   — storage keyed by caller-supplied domain values
//	lazygraph/     — storage backed by a caller-supplied adjacency closure
//	views/         — Reversed, Complement, Filtered, Computed* read-only views
//	prop/          — the typed property bag/map system and cost functions
//	traversal/     — BFS/DFS/Priority/IDDFS over a Visitor-hookable Cursor
//	shortestpath/  — Dijkstra, A*, Bellman-Ford, Floyd-Warshall, Yen, ...
//	mst/           — Kruskal, Prim, Borůvka
//	maxflow/       — Ford-Fulkerson, Edmonds-Karp, Dinic
//	matching/      — Hopcroft-Karp bipartite matching
//	scc/           — Tarjan, Kosaraju strongly-connected-components
//	coloring/      — Greedy, Welsh-Powell, DSatur vertex coloring
//	eulerian/      — Hierholzer's algorithm
//	hamiltonian/   — exact Backtracking and nearest-neighbor+2-opt Heuristic
//	isomorphism/   — VF2 and Weisfeiler-Lehman
//	generators/    — Erdős-Rényi, Barabási-Albert, Watts-Strogatz
//	diagnostics/   — zap adapter for traversal/algorithm visitor tracing
package nodegraph
