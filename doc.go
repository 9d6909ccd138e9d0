// Package graphkind classifies weighted directed graphs and computes
// single-source shortest distances on them.
//
// 🚀 What is graphkind?
//
//	A small, dependency-light toolkit that puts a weighted digraph into one
//	of four categories and, when it is safe, measures it:
//		• NEGATIVE_CYCLE   – a negative-weight cycle is reachable from vertex 0
//		• NEGATIVE_EDGE    – some edge is negative, but no such cycle exists
//		• DAG              – no cycle at all
//		• ALL_NON_NEGATIVE – everything else
//
// ✨ Why graphkind?
//
//   - Tagged weights and distances – no magic "infinity" numbers
//   - Exact arithmetic – extreme int64 weights never wrap or clamp
//   - Iterative traversal – deep graphs never blow the stack
//   - Explicit errors – duplicate and out-of-range edges are rejected
//
// Under the hood, everything is organized under these packages:
//
//	matrix/      – dense V×V weight matrix with duplicate-rejecting insertion
//	bellmanford/ – relaxation, negative-cycle check, shortest distances
//	dfs/         – three-color iterative cycle detection
//	digraph/     – the Graph facade: New, AddEdge, Classify, ShortestPaths
//	builder/     – deterministic topologies (path, cycle, complete, random)
//	internal/    – codecs, reports, batch runner, config and the CLI
//	cmd/graphkind – the command-line entry point
//
// Quick ASCII example:
//
//	0 ──(2)──▶ 1 ──(2)──▶ 3
//	 \         │         ▲
//	 (4)      (-3)       (3)
//	   \        ▼         │
//	    └─────▶ 2 ────────┘
//
//	is NEGATIVE_EDGE with distances 0→1 = 2, 0→2 = -1, 0→3 = 2.
//
//	go install github.com/katalvlaran/graphkind/cmd/graphkind@latest
package graphkind
