// SPDX-License-Identifier: MIT
// Package: graphkind/builder
//
// impl_random_sparse.go - RandomSparse(p) constructor.
//
// Contract:
//   • p ∈ [0,1] (else ErrInvalidProbability).
//   • For 0 < p < 1 an RNG is required (else ErrNeedRandSource).
//   • Each off-diagonal ordered pair is kept independently with probability p,
//     sampled in stable order (u asc, then v asc).
//   • p == 0 emits nothing; p == 1 equals Complete().
//
// Determinism: fixed seed ⇒ identical edge set and weights.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphkind/digraph"
)

const (
	methodRandomSparse = "RandomSparse"
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse returns a Constructor sampling an Erdős–Rényi-style digraph.
func RandomSparse(p float64) Constructor {
	return func(g *digraph.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side effects).
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Sample ordered pairs in stable order.
		n := g.Order()
		var u, v int
		for u = 0; u < n; u++ {
			for v = 0; v < n; v++ {
				if u == v {
					continue
				}
				// Deterministic edge set for p ∈ {0,1}; Bernoulli trial otherwise.
				keep := p == probMax
				if !keep && p > probMin {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
