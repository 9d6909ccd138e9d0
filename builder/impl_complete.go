// SPDX-License-Identifier: MIT
// Package: graphkind/builder
//
// impl_complete.go - Complete() constructor.
//
// Contract:
//   • Emits every off-diagonal ordered pair (u, v), u ascending then v.
//   • The diagonal is never touched (it is occupied by construction).
//
// Complexity: O(n²) edges.

package builder

import (
	"github.com/katalvlaran/graphkind/digraph"
)

const methodComplete = "Complete"

// Complete returns a Constructor for the complete digraph on all vertices.
func Complete() Constructor {
	return func(g *digraph.Graph, cfg builderConfig) error {
		n := g.Order()
		var u, v int
		for u = 0; u < n; u++ {
			for v = 0; v < n; v++ {
				if u == v {
					continue
				}
				if err := addEdge(g, cfg, methodComplete, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
