// Package bellmanford implements single-source shortest paths over a dense
// weighted digraph, together with negative-cycle detection.
//
// What:
//
//   - Init:              distance vector with the source at 0 and every
//     other vertex unreachable.
//   - CanRelax:          the one predicate deciding whether u→v still
//     improves dist[v]. Both Relax and HasImprovablePair go through it.
//   - Relax:             exactly V−1 full passes over every ordered pair.
//   - HasImprovablePair: the V-th pass; true means a negative cycle is
//     reachable from the source.
//   - ShortestPaths:     Init → Relax → HasImprovablePair in one call.
//
// Scope:
//
//	The source is always vertex 0 (Source). Only vertices reachable from it
//	take part: a negative cycle in a component that vertex 0 cannot reach is
//	NOT reported, and its vertices simply stay unreachable.
//
// Arithmetic:
//
//	Weights are int64. Distances are accumulated exactly in 128 bits, so
//	CanRelax never wraps or clamps and a reachable negative cycle is always
//	seen, whatever the weights. A finite distance may exceed the int64 range
//	(two MaxInt64 edges in a row); Value then reports false and Big holds
//	the exact figure.
//
// Complexity:
//
//   - Relax:             Time O(V³) on the dense matrix, Memory O(V)
//   - HasImprovablePair: Time O(V²),                     Memory O(1)
//
// Functions panic only on programmer error: a distance vector whose length
// differs from the graph order. The panic value is ErrDistanceLength.
package bellmanford
