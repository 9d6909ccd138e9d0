// SPDX-License-Identifier: MIT
// Package: graphkind/builder
//
// impl_star.go - implementation of Star(bidirectional) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertex 0 is the hub; leaves are 1..n-1 in ascending order.
//   - Emits spokes 0 → i. With bidirectional, also emits i → 0 right after
//     each spoke, so every leaf sits on a 2-cycle through the hub.
//   - Each direction draws its own weight from cfg.weightFn(cfg.rng).
//
// Complexity:
//   - Time: O(n-1) edges, or O(2n-2) when bidirectional.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphkind/digraph"
)

// File-local constants (stable method tags).
const (
	methodStar   = "Star"
	minStarNodes = 2
	starHub      = 0
)

// Star returns a Constructor that builds a star around hub vertex 0.
func Star(bidirectional bool) Constructor {
	return func(g *digraph.Graph, cfg builderConfig) error {
		n := g.Order()
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		var leaf int
		for leaf = 1; leaf < n; leaf++ {
			// Hub → leaf spoke.
			if err := addEdge(g, cfg, methodStar, starHub, leaf); err != nil {
				return err
			}
			if bidirectional {
				if err := addEdge(g, cfg, methodStar, leaf, starHub); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
