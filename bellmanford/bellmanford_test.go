package bellmanford_test

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkind/bellmanford"
	"github.com/katalvlaran/graphkind/matrix"
)

// edge is a compact (from, to, weight) triple used to seed test matrices.
type edge struct {
	from, to int
	w        int64
}

// dense builds an n×n matrix holding the given edges.
func dense(t testing.TB, n int, edges ...edge) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, m.Insert(e.from, e.to, e.w))
	}

	return m
}

// finite converts plain ints to a finite distance vector for comparisons.
func finite(ds ...int64) []bellmanford.Distance {
	out := make([]bellmanford.Distance, len(ds))
	for i, d := range ds {
		out[i] = bellmanford.Finite(d)
	}

	return out
}

func TestInit(t *testing.T) {
	dist := bellmanford.Init(4)
	require.Len(t, dist, 4)
	assert.Equal(t, bellmanford.Finite(0), dist[bellmanford.Source])
	for _, d := range dist[1:] {
		assert.False(t, d.IsFinite())
	}
}

func TestCanRelax(t *testing.T) {
	m := dense(t, 3, edge{0, 1, 5}, edge{1, 2, -1})
	dist := bellmanford.Init(3)

	assert.True(t, bellmanford.CanRelax(m, dist, 0, 1), "finite tail beats +inf")
	assert.False(t, bellmanford.CanRelax(m, dist, 1, 2), "unreachable tail never relaxes")
	assert.False(t, bellmanford.CanRelax(m, dist, 0, 2), "missing edge never relaxes")
	assert.False(t, bellmanford.CanRelax(m, dist, 0, 0), "zero self-loop never improves")

	dist[1] = bellmanford.Finite(5)
	assert.False(t, bellmanford.CanRelax(m, dist, 0, 1), "equal sums do not improve")
	assert.True(t, bellmanford.CanRelax(m, dist, 1, 2))
}

// TestRelax_DoesNotMutateInput guards the copy-on-relax contract.
func TestRelax_DoesNotMutateInput(t *testing.T) {
	m := dense(t, 3, edge{0, 1, 1}, edge{1, 2, 1})
	in := bellmanford.Init(3)
	snapshot := append([]bellmanford.Distance(nil), in...)

	out := bellmanford.Relax(m, in)

	assert.Equal(t, snapshot, in)
	assert.Equal(t, finite(0, 1, 2), out)
}

// recoverError runs f and returns the error it panicked with, if any.
func recoverError(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	f()

	return nil
}

func TestRelax_LengthMismatchPanics(t *testing.T) {
	m := dense(t, 3)
	assert.PanicsWithError(t, bellmanford.ErrDistanceLength.Error(), func() {
		bellmanford.Relax(m, bellmanford.Init(2))
	})

	err := recoverError(func() { bellmanford.HasImprovablePair(m, bellmanford.Init(4)) })
	assert.True(t, errors.Is(err, bellmanford.ErrDistanceLength), "panic value must be the sentinel, got %v", err)
}

func TestShortestPaths_Scenarios(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		edges []edge
		want  []bellmanford.Distance
		ok    bool
	}{
		{
			name:  "negative cycle",
			n:     5,
			edges: []edge{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}, {3, 1, -4}, {0, 3, 10}},
			ok:    false,
		},
		{
			name:  "negative edge",
			n:     4,
			edges: []edge{{0, 1, 2}, {0, 2, 4}, {1, 2, -3}, {1, 3, 2}, {2, 3, 3}},
			want:  finite(0, 2, -1, 2),
			ok:    true,
		},
		{
			name:  "non-negative with cycle",
			n:     4,
			edges: []edge{{0, 1, 5}, {0, 2, 2}, {0, 3, 7}, {1, 2, 1}, {1, 3, 3}, {2, 0, 6}},
			want:  finite(0, 5, 2, 7),
			ok:    true,
		},
		{
			name:  "dag",
			n:     4,
			edges: []edge{{0, 1, 1}, {0, 2, 2}, {1, 3, 4}, {2, 3, 3}},
			want:  finite(0, 1, 2, 5),
			ok:    true,
		},
		{
			name:  "single vertex",
			n:     1,
			want:  finite(0),
			ok:    true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := dense(t, tc.n, tc.edges...)
			got, ok := bellmanford.ShortestPaths(m)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, !tc.ok, bellmanford.HasNegativeCycle(m))
		})
	}
}

// TestShortestPaths_Unreachable keeps disconnected vertices at +inf.
func TestShortestPaths_Unreachable(t *testing.T) {
	m := dense(t, 4, edge{0, 1, 3}, edge{2, 3, 1})
	got, ok := bellmanford.ShortestPaths(m)
	require.True(t, ok)
	assert.Equal(t, []bellmanford.Distance{
		bellmanford.Finite(0),
		bellmanford.Finite(3),
		bellmanford.Unreachable(),
		bellmanford.Unreachable(),
	}, got)
	assert.Equal(t, "inf", got[2].String())
}

// TestShortestPaths_UnreachableNegativeCycle documents the source-scoped
// detection: a negative cycle vertex 0 cannot reach goes unnoticed.
func TestShortestPaths_UnreachableNegativeCycle(t *testing.T) {
	m := dense(t, 4, edge{0, 1, 1}, edge{2, 3, -5}, edge{3, 2, 1})
	got, ok := bellmanford.ShortestPaths(m)
	require.True(t, ok)
	assert.False(t, got[2].IsFinite())
	assert.False(t, got[3].IsFinite())
}

// TestShortestPaths_NegativeSelfCycleViaTwoVertices checks the smallest
// reachable negative cycle.
func TestShortestPaths_NegativeTwoCycle(t *testing.T) {
	m := dense(t, 2, edge{0, 1, 1}, edge{1, 0, -2})
	_, ok := bellmanford.ShortestPaths(m)
	assert.False(t, ok)
}

// TestShortestPaths_ExtremeWeights keeps sums beyond the int64 range exact.
func TestShortestPaths_ExtremeWeights(t *testing.T) {
	t.Run("positive overflow", func(t *testing.T) {
		m := dense(t, 3, edge{0, 1, math.MaxInt64}, edge{1, 2, math.MaxInt64})
		got, ok := bellmanford.ShortestPaths(m)
		require.True(t, ok)
		assert.Equal(t, bellmanford.Finite(math.MaxInt64), got[1])

		d, inRange := got[2].Value()
		assert.False(t, inRange)
		assert.Zero(t, d)
		assert.True(t, got[2].IsFinite())
		assert.False(t, got[2].InRange())
		assert.Equal(t, "18446744073709551614", got[2].String())

		want := new(big.Int).Mul(big.NewInt(math.MaxInt64), big.NewInt(2))
		assert.Zero(t, want.Cmp(got[2].Big()))
	})

	t.Run("negative overflow", func(t *testing.T) {
		m := dense(t, 3, edge{0, 1, math.MinInt64}, edge{1, 2, math.MinInt64})
		got, ok := bellmanford.ShortestPaths(m)
		require.True(t, ok)
		assert.Equal(t, "-18446744073709551616", got[2].String())
		assert.False(t, got[2].InRange())
	})

	t.Run("zero cycle at the extremes", func(t *testing.T) {
		m := dense(t, 3, edge{0, 1, 0}, edge{1, 2, math.MaxInt64}, edge{2, 1, -math.MaxInt64})
		got, ok := bellmanford.ShortestPaths(m)
		require.True(t, ok)
		assert.Equal(t, finite(0, 0, math.MaxInt64), got)
	})

	t.Run("negative cycle past MinInt64", func(t *testing.T) {
		// The cycle 1 → 2 → 1 weighs exactly MinInt64; its first lap already
		// drives the distances below the int64 range.
		m := dense(t, 3,
			edge{0, 1, 0},
			edge{1, 2, math.MinInt64 / 2},
			edge{2, 1, math.MinInt64 / 2},
		)
		got, ok := bellmanford.ShortestPaths(m)
		assert.False(t, ok)
		assert.Nil(t, got)
		assert.True(t, bellmanford.HasNegativeCycle(m))
	})

	t.Run("mixed extremes form a negative cycle", func(t *testing.T) {
		m := dense(t, 3, edge{0, 1, math.MaxInt64}, edge{1, 2, math.MinInt64}, edge{2, 1, math.MaxInt64 - 1})
		_, ok := bellmanford.ShortestPaths(m)
		assert.False(t, ok)
	})
}

// TestShortestPaths_Idempotent re-runs the analysis on the same matrix.
func TestShortestPaths_Idempotent(t *testing.T) {
	m := dense(t, 4, edge{0, 1, 2}, edge{0, 2, 4}, edge{1, 2, -3}, edge{1, 3, 2}, edge{2, 3, 3})
	first, ok1 := bellmanford.ShortestPaths(m)
	second, ok2 := bellmanford.ShortestPaths(m)
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, first, second)
}
