package dfs

import (
	"fmt"
)

// AcyclicFrom reports whether no directed cycle is reachable from root.
//
// Rules:
//   - Diagonal cells (self-loops) are ignored, including the implicit
//     zero-weight loop every vertex carries.
//   - Reaching a Gray vertex (one on the current path) is a back-edge and
//     reports a cycle.
//   - Vertices unreachable from root are never visited and cannot affect
//     the result.
//
// Errors:
//   - ErrGraphNil        if g is nil.
//   - ErrRootOutOfRange  if root ∉ [0, g.Order()).
func AcyclicFrom(g Adjacency, root int) (bool, error) {
	// 1) Validate inputs
	if g == nil {
		return false, ErrGraphNil
	}
	n := g.Order()
	if root < 0 || root >= n {
		return false, fmt.Errorf("dfs: AcyclicFrom(%d) with order %d: %w", root, n, ErrRootOutOfRange)
	}

	// 2) Prepare visitation state and explicit stack
	state := make([]VertexState, n) // all White
	stack := make([]frame, 0, n)

	state[root] = Gray
	stack = append(stack, frame{vertex: root})

	// 3) Iterate until the root's row is exhausted
	var top *frame
	var u, v int
	var pushed bool
	for len(stack) > 0 {
		top = &stack[len(stack)-1]
		u = top.vertex
		pushed = false

		// 3a) Resume scanning u's row from the saved cursor
		for top.next < n && !pushed {
			v = top.next
			top.next++

			if v == u {
				continue // self-loops never count
			}
			if _, ok := g.Edge(u, v); !ok {
				continue
			}

			switch state[v] {
			case Gray:
				// Back-edge to a vertex on the current path
				return false, nil
			case White:
				state[v] = Gray
				stack = append(stack, frame{vertex: v}) // top is stale from here on
				pushed = true
			}
		}

		// 3b) Row finished: u is fully explored
		if !pushed {
			state[u] = Black
			stack = stack[:len(stack)-1]
		}
	}

	return true, nil
}
