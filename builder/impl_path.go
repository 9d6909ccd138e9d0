// SPDX-License-Identifier: MIT
// Package: graphkind/builder
//
// impl_path.go - Path() and Edges() constructors.
//
// Contract:
//   • Path emits i → i+1 for i = 0..n-2 in ascending order.
//   • Edges emits the given ordered pairs in the order provided.
//   • Weights come from cfg.weightFn(cfg.rng).

package builder

import (
	"github.com/katalvlaran/graphkind/digraph"
)

const (
	methodPath  = "Path"
	methodEdges = "Edges"
)

// Path returns a Constructor for the directed path 0 → 1 → … → n-1.
// A single-vertex graph yields no edges.
func Path() Constructor {
	return func(g *digraph.Graph, cfg builderConfig) error {
		n := g.Order()
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, cfg, methodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Edges returns a Constructor emitting each ordered pair as given.
func Edges(pairs ...[2]int) Constructor {
	return func(g *digraph.Graph, cfg builderConfig) error {
		for _, p := range pairs {
			if err := addEdge(g, cfg, methodEdges, p[0], p[1]); err != nil {
				return err
			}
		}

		return nil
	}
}
