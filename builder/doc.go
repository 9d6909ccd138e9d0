// Package builder generates deterministic weighted digraph fixtures.
//
// Constructors (Path, Cycle, Star, Complete, RandomSparse, Edges) add edges to a
// *digraph.Graph whose order was fixed by BuildGraph. Weights come from a
// WeightFn; negative weights are allowed, so the same fixtures exercise
// every classification category.
//
// Example:
//
//	g, err := builder.BuildGraph(5,
//	    []builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(-1))},
//	    builder.Cycle(),
//	)
//	// g.Classify() == digraph.NegativeCycle
package builder
