package hausdorff

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/hupe1980/hausdorff/distance"
	"github.com/hupe1980/hausdorff/grid"
	"github.com/hupe1980/hausdorff/point"
	"github.com/hupe1980/hausdorff/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSearcher(t *testing.T, opts ...Option) *Searcher {
	t.Helper()
	s, err := New(opts...)
	require.NoError(t, err)
	return s
}

func cornerSets(t *testing.T, seed int64) ([]point.Point, []point.Point) {
	t.Helper()
	a, err := grid.FromRows([][]int{
		{0, 0, 1, 1},
		{0, 0, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	require.NoError(t, err)
	b, err := grid.FromRows([][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{1, 1, 0, 0},
		{1, 1, 0, 0},
	})
	require.NoError(t, err)

	isTarget := func(v int) bool { return v > 0 }
	rng := rand.New(rand.NewSource(seed))
	return grid.Points(a, isTarget, rng), grid.Points(b, isTarget, rng)
}

func TestDirectedCorners(t *testing.T) {
	s := newSearcher(t)
	for seed := int64(0); seed < 10; seed++ {
		xs, ys := cornerSets(t, seed)

		res, err := s.Directed(context.Background(), xs, ys)
		require.NoError(t, err)
		assert.Equal(t, uint64(8), res.Pair.Value)
		assert.InDelta(t, math.Sqrt(8), res.Distance, 1e-12)
		assert.Equal(t, point.Point{0, 3}, res.Pair.X)
		assert.Equal(t, point.Point{2, 1}, res.Pair.Y)
	}
}

func TestDirectedMatchesBruteForce(t *testing.T) {
	metrics := []distance.Metric{distance.MetricSquaredL2, distance.MetricManhattan, distance.MetricChebyshev}

	for _, m := range metrics {
		t.Run(m.String(), func(t *testing.T) {
			s := newSearcher(t, WithMetric(m))
			fn, err := distance.Provider(m)
			require.NoError(t, err)

			rng := testutil.NewRNG(int64(m) + 1)
			for i := 0; i < 50; i++ {
				dim := 1 + rng.Intn(3)
				xs := rng.RandomPoints(1+rng.Intn(40), dim, 20)
				ys := rng.RandomPoints(1+rng.Intn(40), dim, 20)

				want, ok := testutil.BruteForceDirected(xs, ys, fn)
				require.True(t, ok)

				got, err := s.Directed(context.Background(), xs, ys)
				require.NoError(t, err)
				assert.Equal(t, want.Value, got.Pair.Value)
				assert.Equal(t, got.Pair.Value, fn(got.Pair.X, got.Pair.Y))
				assert.LessOrEqual(t, got.Stats.Comparisons, len(xs)*len(ys))
			}
		})
	}
}

func TestDirectedOrderIndependent(t *testing.T) {
	s := newSearcher(t)
	rng := testutil.NewRNG(99)
	xs := rng.RandomMask(0.3, 16, 16).Points(rng)
	ys := rng.RandomMask(0.1, 16, 16).Points(rng)

	first, err := s.Directed(context.Background(), xs, ys)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		rng.Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
		rng.Shuffle(len(ys), func(i, j int) { ys[i], ys[j] = ys[j], ys[i] })
		again, err := s.Directed(context.Background(), xs, ys)
		require.NoError(t, err)
		assert.Equal(t, first.Pair.Value, again.Pair.Value)
	}
}

func TestDirectedZeroDistance(t *testing.T) {
	s := newSearcher(t)
	pts := []point.Point{{1, 1}, {2, 2}}

	res, err := s.Directed(context.Background(), pts, pts)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), res.Pair.Value)
	assert.Equal(t, 0.0, res.Distance)
	assert.NotNil(t, res.Pair.X)
	assert.True(t, res.Pair.X.Equal(res.Pair.Y))
}

func TestDirectedPruning(t *testing.T) {
	s := newSearcher(t)
	xs := []point.Point{{100}, {0}, {1}, {2}}
	ys := []point.Point{{0}, {1}, {2}}

	res, err := s.Directed(context.Background(), xs, ys)
	require.NoError(t, err)
	assert.Equal(t, uint64(98*98), res.Pair.Value)
	assert.Equal(t, Stats{Comparisons: 6, Pruned: 3}, res.Stats)
}

func TestDirectedErrors(t *testing.T) {
	s := newSearcher(t)
	ctx := context.Background()
	pts := []point.Point{{0, 0}}

	t.Run("EmptySet", func(t *testing.T) {
		_, err := s.Directed(ctx, nil, pts)
		assert.ErrorIs(t, err, ErrEmptySet)
		_, err = s.Directed(ctx, pts, []point.Point{})
		assert.ErrorIs(t, err, ErrEmptySet)
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		_, err := s.Directed(ctx, pts, []point.Point{{1, 2, 3}})
		var dm *ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
		assert.Equal(t, 2, dm.Expected)
		assert.Equal(t, 3, dm.Actual)
		assert.EqualError(t, err, "dimension mismatch: expected 2, got 3")
	})

	t.Run("Canceled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := s.Directed(cctx, pts, pts)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSymmetric(t *testing.T) {
	s := newSearcher(t)
	xs := []point.Point{{0}}
	ys := []point.Point{{0}, {10}}

	fwd, err := s.Directed(context.Background(), xs, ys)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), fwd.Pair.Value)

	res, err := s.Symmetric(context.Background(), xs, ys)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), res.Pair.Value)
	assert.Equal(t, point.Point{10}, res.Pair.X)
	assert.Equal(t, point.Point{0}, res.Pair.Y)
	assert.Equal(t, 4, res.Stats.Comparisons)

	_, err = s.Symmetric(context.Background(), xs, nil)
	assert.ErrorIs(t, err, ErrEmptySet)
}

func TestOptions(t *testing.T) {
	t.Run("Manhattan", func(t *testing.T) {
		s := newSearcher(t, WithMetric(distance.MetricManhattan))
		xs, ys := cornerSets(t, 1)
		res, err := s.Directed(context.Background(), xs, ys)
		require.NoError(t, err)
		assert.Equal(t, 4.0, res.Distance)
	})

	t.Run("UnknownMetric", func(t *testing.T) {
		_, err := New(WithMetric(distance.Metric(99)))
		assert.Error(t, err)
	})

	t.Run("DistanceFunc", func(t *testing.T) {
		calls := 0
		fn := func(a, b point.Point) uint64 {
			calls++
			return distance.Chebyshev(a, b)
		}
		s := newSearcher(t, WithDistanceFunc(fn, nil))
		res, err := s.Directed(context.Background(), []point.Point{{0, 0}}, []point.Point{{3, 5}})
		require.NoError(t, err)
		assert.Equal(t, 5.0, res.Distance)
		assert.Equal(t, 1, calls)
	})

	t.Run("NilValues", func(t *testing.T) {
		s := newSearcher(t, WithLogger(nil), WithMetricsCollector(nil), WithDistanceFunc(nil, nil))
		xs, ys := cornerSets(t, 2)
		res, err := s.Directed(context.Background(), xs, ys)
		require.NoError(t, err)
		assert.InDelta(t, math.Sqrt(8), res.Distance, 1e-12)
	})
}

func TestMetricsCollector(t *testing.T) {
	mc := &BasicMetricsCollector{}
	s := newSearcher(t, WithMetricsCollector(mc))
	xs := []point.Point{{100}, {0}, {1}, {2}}
	ys := []point.Point{{0}, {1}, {2}}

	_, err := s.Directed(context.Background(), xs, ys)
	require.NoError(t, err)
	_, err = s.Directed(context.Background(), nil, ys)
	require.Error(t, err)

	stats := mc.GetStats()
	assert.Equal(t, int64(2), stats.SearchCount)
	assert.Equal(t, int64(1), stats.SearchErrors)
	assert.Equal(t, int64(6), stats.Comparisons)
	assert.Equal(t, int64(3), stats.Pruned)
}

func BenchmarkDirected(b *testing.B) {
	rng := testutil.NewRNG(7)
	xs := rng.RandomMask(0.2, 64, 64).Points(rng)
	ys := rng.RandomMask(0.2, 64, 64).Points(rng)
	s, _ := New()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Directed(ctx, xs, ys)
	}
}
