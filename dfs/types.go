package dfs

import "errors"

// VertexState represents the DFS visitation state of a vertex.
type VertexState uint8

const (
	White VertexState = iota // White: the vertex has not been visited yet.
	Gray                     // Gray: the vertex is on the current DFS path.
	Black                    // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil adjacency is passed to a traversal.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrRootOutOfRange indicates that the root index is outside [0, Order()).
	ErrRootOutOfRange = errors.New("dfs: root vertex out of range")
)

// Adjacency is the read-only matrix view the traversals walk.
// *matrix.Dense satisfies it.
type Adjacency interface {
	// Order returns the number of vertices.
	Order() int
	// Edge reports the weight of u→v and whether the edge exists.
	Edge(u, v int) (int64, bool)
}

// frame is one entry of the explicit DFS stack: the vertex and the next
// column of its matrix row still to be examined.
type frame struct {
	vertex int
	next   int
}
