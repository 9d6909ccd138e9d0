// SPDX-License-Identifier: MIT
// Package: graphkind/builder
//
// impl_cycle.go - Cycle() constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices); the directed 2-cycle is legal.
//   • Emits edges in stable order i → (i+1)%n for i = 0..n-1.
//
// Complexity: O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphkind/digraph"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 2
)

// Cycle returns a Constructor for the directed ring 0 → 1 → … → n-1 → 0.
func Cycle() Constructor {
	return func(g *digraph.Graph, cfg builderConfig) error {
		n := g.Order()
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
