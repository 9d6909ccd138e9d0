package bellmanford

// Init returns a fresh distance vector of length n: Source at 0, every other
// vertex unreachable.
// Complexity: O(n).
func Init(n int) []Distance {
	dist := make([]Distance, n) // zero value is Unreachable
	if n > 0 {
		dist[Source] = Finite(0)
	}

	return dist
}

// CanRelax reports whether edge u→v improves dist[v]: the edge exists,
// dist[u] is finite, and dist[u]+w(u,v) < dist[v]. The sum is exact; it
// never wraps or clamps.
func CanRelax(g Graph, dist []Distance, u, v int) bool {
	_, ok := candidate(g, dist, u, v)

	return ok
}

// candidate is the single comparison behind CanRelax. It returns the
// improved distance for v and true, or false when u→v does not improve v.
func candidate(g Graph, dist []Distance, u, v int) (wide, bool) {
	// 1) No edge, nothing to relax
	w, ok := g.Edge(u, v)
	if !ok {
		return wide{}, false
	}
	// 2) An unreachable tail cannot improve anything
	du := dist[u]
	if !du.finite {
		return wide{}, false
	}
	// 3) Compare against the current estimate; +∞ is beaten by any finite sum
	sum := du.value.add(wideFrom(w))
	dv := dist[v]
	if dv.finite && !sum.less(dv.value) {
		return wide{}, false
	}

	return sum, true
}

// Relax runs exactly n−1 passes over every ordered pair (u, v), lowering
// dist[v] whenever CanRelax holds. The input is copied; the caller's slice
// is never written.
// Panics with ErrDistanceLength if len(dist) != g.Order().
// Complexity: O(n³).
func Relax(g Graph, dist []Distance) []Distance {
	n := g.Order()
	mustMatch(n, dist)

	// Private copy; the caller's vector stays intact.
	out := make([]Distance, n)
	copy(out, dist)

	var pass, u, v int
	var sum wide
	var ok bool
	for pass = 0; pass < n-1; pass++ {
		for u = 0; u < n; u++ {
			for v = 0; v < n; v++ {
				if sum, ok = candidate(g, out, u, v); ok {
					out[v] = Distance{value: sum, finite: true}
				}
			}
		}
	}

	return out
}

// HasImprovablePair performs one extra scan with CanRelax and reports
// whether any ordered pair still improves. After Relax this means a
// negative cycle is reachable from Source.
// Panics with ErrDistanceLength if len(dist) != g.Order().
// Complexity: O(n²).
func HasImprovablePair(g Graph, dist []Distance) bool {
	n := g.Order()
	mustMatch(n, dist)

	var u, v int
	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			if CanRelax(g, dist, u, v) {
				return true
			}
		}
	}

	return false
}

// ShortestPaths returns the distance from Source to every vertex, and true.
// When a negative cycle is reachable from Source it returns nil and false.
// Unreachable vertices hold Unreachable(); the Source entry is always 0.
func ShortestPaths(g Graph) ([]Distance, bool) {
	dist := Relax(g, Init(g.Order()))
	if HasImprovablePair(g, dist) {
		return nil, false
	}

	return dist, true
}

// HasNegativeCycle reports whether a negative cycle is reachable from Source.
func HasNegativeCycle(g Graph) bool {
	_, ok := ShortestPaths(g)

	return !ok
}

// mustMatch guards the public entry points against mismatched vectors.
func mustMatch(n int, dist []Distance) {
	if len(dist) != n {
		panic(ErrDistanceLength)
	}
}
