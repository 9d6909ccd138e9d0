// Package dfs implements cycle detection on a dense directed adjacency matrix
// by depth-first search.
//
// What:
//
//   - AcyclicFrom walks the graph from a single root and reports whether any
//     directed cycle is reachable from it.
//   - The walk keeps an explicit stack of frames (vertex, next column), so a
//     path as long as the vertex count never touches the goroutine stack.
//   - Vertices carry three colors: White (unseen), Gray (on the current
//     path) and Black (fully explored). An edge into a Gray vertex closes a
//     cycle.
//
// Why:
//
//   - Detect whether a weighted digraph is a DAG before choosing how to
//     describe it.
//   - Work directly on the dense matrix the graph is stored in; no adjacency
//     lists are built.
//
// Scope:
//
//   - Only vertices reachable from root are visited. A cycle confined to an
//     unreachable component does not change the answer.
//   - Diagonal cells are ignored. Every vertex of a dense matrix carries an
//     implicit zero-weight self-loop, which never counts as a cycle.
//
// Key Types:
//
//   - VertexState: White, Gray, Black
//   - Adjacency: Order() and Edge(u, v); *matrix.Dense satisfies it
//
// Complexity:
//
//   - AcyclicFrom: Time O(V²) (each reachable row scanned once), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil        adjacency is nil
//   - ErrRootOutOfRange  root outside [0, Order())
package dfs
