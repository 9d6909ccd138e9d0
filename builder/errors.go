// SPDX-License-Identifier: MIT
// Package: graphkind/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`; digraph errors (duplicate
//     edge, out of range) pass through unchanged underneath.
//   • Constructors never panic at runtime; validation panics are confined to
//     option and weight-function constructors (WithX..., XWeightFn).

package builder

import "errors"

// ErrTooFewVertices indicates that the graph order is below the minimum the
// requested constructor needs (e.g., Cycle on a single vertex).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a structural failure such as a nil
// constructor or a nil target graph.
var ErrConstructFailed = errors.New("builder: construction failed")
