// Package digraph is the public face of graphkind: a weighted directed graph
// of fixed order that can classify itself and report single-source shortest
// distances.
//
// What:
//
//   - New(n)                      empty graph on vertices 0..n-1
//   - AddEdge(from, to, w)        strict insertion, no overwrite, no parallel edges
//   - Classify()                  one of NegativeCycle, NegativeEdge, DAG, NonNegative
//   - ShortestPaths()             distances from vertex 0, or ok=false on a
//     reachable negative cycle
//
// Classification order (first match wins):
//
//  1. NegativeCycle – Bellman-Ford from vertex 0 still relaxes after V−1 passes.
//  2. NegativeEdge  – some edge weight is < 0.
//  3. DAG           – no cycle is reachable from vertex 0.
//  4. NonNegative   – everything else.
//
// A DAG carrying a negative edge is therefore NegativeEdge, not DAG.
//
// Reachability caveat:
//
//	Both the negative-cycle check and the DAG check start at vertex 0 and
//	see nothing else. A component that vertex 0 cannot reach may hold a
//	negative cycle, or any cycle, and the graph is still classified as if it
//	did not. Callers that need whole-graph answers must make vertex 0 a hub.
//
// Concurrency:
//
//	A Graph is not safe for concurrent mutation. Finish all AddEdge calls
//	before analysing; Classify and ShortestPaths only read. Distinct Graph
//	values share nothing.
//
// Errors (sentinel, from package matrix):
//
//   - matrix.ErrBadShape       New with n < 1
//   - matrix.ErrOutOfRange     AddEdge with an index outside [0, n)
//   - matrix.ErrDuplicateEdge  AddEdge on an occupied cell (incl. the diagonal)
package digraph
