package digraph

import (
	"fmt"

	"github.com/katalvlaran/graphkind/bellmanford"
	"github.com/katalvlaran/graphkind/dfs"
	"github.com/katalvlaran/graphkind/matrix"
)

// Graph is a weighted digraph backed by a dense adjacency matrix.
type Graph struct {
	m *matrix.Dense
}

// New returns an edgeless graph on n vertices (n ≥ 1).
func New(n int) (*Graph, error) {
	m, err := matrix.NewDense(n)
	if err != nil {
		return nil, fmt.Errorf("digraph: New(%d): %w", n, err)
	}

	return &Graph{m: m}, nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	return g.m.Order()
}

// AddEdge inserts from→to with weight w.
// It fails with matrix.ErrOutOfRange or matrix.ErrDuplicateEdge and leaves
// the graph unchanged on failure.
func (g *Graph) AddEdge(from, to int, w int64) error {
	if err := g.m.Insert(from, to, w); err != nil {
		return fmt.Errorf("digraph: AddEdge(%d→%d, w=%d): %w", from, to, w, err)
	}

	return nil
}

// Weight returns the cell for from→to.
func (g *Graph) Weight(from, to int) (matrix.Weight, error) {
	return g.m.At(from, to)
}

// Matrix returns a deep copy of the adjacency matrix.
func (g *Graph) Matrix() *matrix.Dense {
	return g.m.Clone()
}

// HasNegativeCycle reports whether a negative cycle is reachable from vertex 0.
func (g *Graph) HasNegativeCycle() bool {
	return bellmanford.HasNegativeCycle(g.m)
}

// HasNegativeEdge reports whether any edge weight is < 0.
func (g *Graph) HasNegativeEdge() bool {
	n := g.m.Order()
	var u, v int
	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			if w, ok := g.m.Edge(u, v); ok && w < 0 {
				return true
			}
		}
	}

	return false
}

// IsDAG reports whether no cycle is reachable from vertex 0.
// Self-loops are ignored.
func (g *Graph) IsDAG() bool {
	// Root 0 is always in range and m is never nil, so err is always nil.
	ok, err := dfs.AcyclicFrom(g.m, bellmanford.Source)

	return err == nil && ok
}

// Classify returns the Category of g. See the package documentation for the
// priority order and the reachability caveat.
func (g *Graph) Classify() Category {
	switch {
	case g.HasNegativeCycle():
		return NegativeCycle
	case g.HasNegativeEdge():
		return NegativeEdge
	case g.IsDAG():
		return DAG
	default:
		return NonNegative
	}
}

// ShortestPaths returns the distance from vertex 0 to every vertex, indexed
// by vertex, and true. Unreachable vertices are +∞. If a negative cycle is
// reachable from vertex 0 it returns nil and false.
func (g *Graph) ShortestPaths() ([]bellmanford.Distance, bool) {
	return bellmanford.ShortestPaths(g.m)
}

// String renders the adjacency matrix: one tab-separated row per line,
// absent edges as "inf".
func (g *Graph) String() string {
	return g.m.String()
}
