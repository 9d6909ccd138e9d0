// SPDX-License-Identifier: MIT
// Package: graphkind/builder
//
// api.go - public entry points.
//
// A Constructor adds edges to an existing *digraph.Graph. BuildGraph creates
// the graph with the requested order, resolves options once, and runs the
// constructors in order. Constructors may be combined; an edge emitted twice
// surfaces as matrix.ErrDuplicateEdge rather than being merged.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphkind/digraph"
)

// Constructor emits edges into g using the resolved configuration.
type Constructor func(g *digraph.Graph, cfg builderConfig) error

// BuildGraph creates an n-vertex graph and applies every constructor.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*digraph.Graph, error) {
	g, err := digraph.New(n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	if err = Apply(g, bopts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}

// Apply runs constructors against an existing graph.
func Apply(g *digraph.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return nil
}

// addEdge draws a weight and inserts u→v, tagging failures with method.
func addEdge(g *digraph.Graph, cfg builderConfig, method string, u, v int) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	return nil
}
